package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/mark3labs/segctl/internal/tui"
	"github.com/spf13/cobra"
)

var renderFlags struct {
	width    int
	selected int
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print one frame of the control",
	Long: `Render the segmented control once and print it to stdout.

Colors are downsampled to what the terminal supports, and dropped entirely
when stdout is not a terminal.`,
	RunE: runRender,
}

func init() {
	addControlFlags(renderCmd.Flags())
	renderCmd.Flags().IntVarP(&renderFlags.width, "width", "w", 60, "Control width in columns")
	renderCmd.Flags().IntVarP(&renderFlags.selected, "select", "s", 0, "Index of the selected segment")
}

func runRender(cmd *cobra.Command, args []string) error {
	_, opts, err := loadOptions(cmd.Flags())
	if err != nil {
		return err
	}

	out, err := tui.RenderStatic(opts, renderFlags.width, renderFlags.selected)
	if err != nil {
		return err
	}

	w := colorprofile.NewWriter(os.Stdout, os.Environ())
	if _, err := fmt.Fprintln(w, out); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}
