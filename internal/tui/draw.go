package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/mark3labs/segctl/internal/tui/theme"
)

// DrawStyled renders lipgloss-styled content at a position
func DrawStyled(scr uv.Screen, area uv.Rectangle, style lipgloss.Style, text string) {
	content := style.Width(area.Dx()).Height(area.Dy()).Render(text)
	uv.NewStyledString(content).Draw(scr, area)
}

// DrawPanel renders a panel with a title header and returns the inner content area.
// The header shows "Title ────────" with a trailing rule line.
func DrawPanel(scr uv.Screen, area uv.Rectangle, title string) uv.Rectangle {
	if area.Dy() < 1 || area.Dx() < 1 {
		return uv.Rectangle{}
	}
	s := theme.Current().S()

	styledTitle := s.PanelTitle.Render(ansi.Truncate(title, area.Dx(), "…"))
	ruleWidth := area.Dx() - lipgloss.Width(styledTitle) - 1 // -1 for space
	if ruleWidth < 0 {
		ruleWidth = 0
	}
	header := styledTitle + " " + s.PanelRule.Render(strings.Repeat("─", ruleWidth))

	titleArea := uv.Rectangle{
		Min: area.Min,
		Max: uv.Position{X: area.Max.X, Y: area.Min.Y + 1},
	}
	uv.NewStyledString(header).Draw(scr, titleArea)

	return uv.Rectangle{
		Min: uv.Position{X: area.Min.X, Y: area.Min.Y + 1},
		Max: area.Max,
	}
}
