package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bryanwahyu/truthlens/internal/application/orchestrator"
	"github.com/bryanwahyu/truthlens/internal/config"
	"github.com/bryanwahyu/truthlens/internal/infra/analysisclient"
	"github.com/bryanwahyu/truthlens/internal/logging"
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "truthlens",
		Short:         "Check text for misinformation, bias and unverified claims",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadSettings(v)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "path to a config.yaml with a client section")
	flags.String("endpoint", "", "analysis service URL (default "+analysisclient.DefaultEndpoint+")")
	flags.String("origin", "", "Origin header sent with each request")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	_ = v.BindPFlags(flags)

	v.SetEnvPrefix("TRUTHLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.AddCommand(newAnalyzeCmd(v), newTUICmd(v))
	return root
}

// loadSettings fills endpoint and origin from the config file when neither
// a flag nor an environment variable set them.
func loadSettings(v *viper.Viper) error {
	logging.SetLogLevel(v.GetString("log-level"))

	path := v.GetString("config")
	if path == "" {
		return nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	v.SetDefault("endpoint", cfg.Client.Endpoint)
	v.SetDefault("origin", cfg.Client.Origin)
	return nil
}

func newController(v *viper.Viper) *orchestrator.Controller {
	log := logging.GetLogger()
	client := analysisclient.New(
		v.GetString("endpoint"),
		analysisclient.WithOrigin(v.GetString("origin")),
		analysisclient.WithLogger(log),
	)
	return orchestrator.NewController(client, orchestrator.WithLogger(log))
}
