package tui

import (
	"fmt"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/segctl/internal/tui/segmented"
)

// RenderStatic draws a single frame of a control width cells wide with the
// segment at selected chosen, and returns the rendered screen.
func RenderStatic(opts Options, width, selected int) (string, error) {
	if width < 1 {
		return "", fmt.Errorf("width must be >= 1, got %d", width)
	}
	if opts.ControlHeight < 1 {
		opts.ControlHeight = 1
	}
	if opts.Appearance == (segmented.Appearance{}) {
		opts.Appearance = segmented.DefaultAppearance()
	}

	c, err := segmented.New(
		segmented.Rect{Width: float64(width), Height: float64(opts.ControlHeight)},
		opts.Titles,
		segmented.WithAppearance(opts.Appearance),
	)
	if err != nil {
		return "", err
	}
	if err := c.SelectItem(selected, false); err != nil {
		return "", err
	}

	canvas := uv.NewScreenBuffer(width, opts.ControlHeight)
	c.Draw(canvas, canvas.Bounds())
	return canvas.Render(), nil
}
