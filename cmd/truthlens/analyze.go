package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bryanwahyu/truthlens/internal/ui"
)

func newAnalyzeCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [text|-]",
		Short: "Analyze text once and print the result",
		Long:  "Analyze text once and print the result. With no argument or \"-\" the text is read from stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			ctrl := newController(v)
			submitErr := ctrl.Submit(cmd.Context(), text)

			out := ui.RenderSnapshot(ctrl.Snapshot(), ui.DefaultStyles())
			if out != "" {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			if submitErr != nil && out != "" {
				return reportedError{submitErr}
			}
			return submitErr
		},
	}
}

func readText(in io.Reader, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(b), "\n"), nil
}
