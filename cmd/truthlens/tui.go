package main

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bryanwahyu/truthlens/internal/logging"
	"github.com/bryanwahyu/truthlens/internal/ui"
)

func newTUICmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive analyzer",
		RunE: func(cmd *cobra.Command, args []string) error {
			// logs would corrupt the alternate screen
			logging.SetOutput(io.Discard)

			model := ui.NewModel(cmd.Context(), newController(v), ui.DefaultStyles())
			_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}
