package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/segctl/internal/logger"
	"github.com/mark3labs/segctl/internal/tui/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█▀▀ █▀▀ █▀▀ █▀▀ ▀█▀ █"
	logoText2 = "▄▄█ ██▄ █▄█ █▄▄  █  █▄▄"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "segctl",
	Short: "Segmented control for terminal UIs",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	// Set Long description with logo
	rootCmd.Long = renderLogo() + `

segctl is a horizontal segmented control for Bubbletea programs: a row of
equally sized segments with a divider line and an animated selector under
the active one.

Use 'segctl run' for an interactive demo, 'segctl render' to print one
frame, and 'segctl init' to write a configuration file.`

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(initCmd)
}
