package main

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/segctl/internal/logger"
	"github.com/mark3labs/segctl/internal/tui"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive segmented control demo",
	Long: `Run a full-screen demo hosting one segmented control.

Click a segment or use the arrow keys to move the selector. Press notifications
are shown in the events pane.`,
	RunE: runRun,
}

func init() {
	addControlFlags(runCmd.Flags())
}

func runRun(cmd *cobra.Command, args []string) error {
	_, opts, err := loadOptions(cmd.Flags())
	if err != nil {
		return err
	}

	app, err := tui.NewApp(opts)
	if err != nil {
		return err
	}

	logger.Info("starting demo with %d segments", len(opts.Titles))
	if _, err := tea.NewProgram(app).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
