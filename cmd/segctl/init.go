package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/segctl/internal/config"
	"github.com/spf13/cobra"
)

var initFlags struct {
	project bool
	force   bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create segctl configuration file",
	Long: `Create a segctl configuration file with sensible defaults.

By default, creates a global config at ~/.config/segctl/segctl.yml.
Use --project to create a project-local config in the current directory.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initFlags.project, "project", "p", false, "Create config in current directory instead of global location")
	initCmd.Flags().BoolVarP(&initFlags.force, "force", "f", false, "Overwrite existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	// Determine target path
	targetPath := config.GlobalPath()
	if initFlags.project {
		targetPath = config.ProjectPath()
	}

	if !initFlags.force && fileExists(targetPath) {
		return fmt.Errorf("config file already exists at %s\n\nUse --force to overwrite", targetPath)
	}

	cfg := config.Default()

	var err error
	if initFlags.project {
		err = config.WriteProject(cfg)
	} else {
		err = config.WriteGlobal(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config written to: %s\n\n", targetPath)
	fmt.Fprintln(cmd.OutOrStdout(), "Run 'segctl run' to try it out.")
	return nil
}

// fileExists checks if a file exists (helper for init command).
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
