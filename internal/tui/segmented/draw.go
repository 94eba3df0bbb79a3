package segmented

import (
	"math"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/mark3labs/segctl/internal/tui/theme"
)

const (
	dividerGlyph  = "─"
	selectorGlyph = "━"
	blockGlyph    = "█"
	ellipsis      = "…"
)

// Draw renders the control into area, laying it out again first when area
// differs from the current bounds. The selector is drawn over the divider.
// Returns nil since the control never shows a cursor.
func (c *Control) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	if area.Dx() <= 0 || area.Dy() <= 0 {
		return nil
	}
	if bounds := RectFromCells(area); bounds != c.bounds {
		c.Layout(bounds)
	}
	a := c.appearance

	if a.BackgroundColor != "" {
		fill := lipgloss.NewStyle().
			Background(theme.HexToColor(a.BackgroundColor)).
			Width(area.Dx()).
			Height(area.Dy()).
			Render("")
		uv.NewStyledString(fill).Draw(scr, area)
	}

	// Strips need a row left over for the labels, otherwise labels win.
	stripRows := rowsFor(math.Max(a.BottomLineHeight, a.SelectorHeight))
	drawStrips := area.Dy() > stripRows

	for _, it := range c.items {
		r := it.frame.Offset(c.bounds.X, c.bounds.Y).Cells().Intersect(area)
		if r.Dx() <= 0 || r.Dy() <= 0 {
			continue
		}
		lines := make([]string, r.Dy())
		lines[labelRow(r, area.Max.Y-stripRows)-r.Min.Y] = ansi.Truncate(it.title, r.Dx(), ellipsis)
		content := it.style.
			Width(r.Dx()).
			Height(r.Dy()).
			Align(lipgloss.Center).
			Render(strings.Join(lines, "\n"))
		uv.NewStyledString(content).Draw(scr, r)
	}

	if !drawStrips {
		return nil
	}

	divider := bottomStrip(area, area.Min.X, area.Max.X, a.BottomLineHeight)
	drawStrip(scr, divider, dividerGlyph, a.BottomLineColor)

	sel := c.SelectorFrame()
	x0 := int(math.Round(c.bounds.X + sel.X))
	x1 := int(math.Round(c.bounds.X + sel.MaxX()))
	drawStrip(scr, bottomStrip(area, x0, x1, a.SelectorHeight), selectorGlyph, a.SelectorColor)

	return nil
}

// labelRow returns the row of r the label is drawn on: the vertical centre,
// moved up above stripTop when the strips would cover it and r has room.
func labelRow(r uv.Rectangle, stripTop int) int {
	row := r.Min.Y + (r.Dy()-1)/2
	if row >= stripTop && stripTop > r.Min.Y {
		row = min(stripTop, r.Max.Y) - 1
	}
	return row
}

// bottomStrip returns the rows of area covered by a strip of height h
// hugging the bottom edge, between columns x0 and x1.
func bottomStrip(area uv.Rectangle, x0, x1 int, h float64) uv.Rectangle {
	rows := rowsFor(h)
	strip := uv.Rectangle{
		Min: uv.Position{X: x0, Y: area.Max.Y - rows},
		Max: uv.Position{X: x1, Y: area.Max.Y},
	}
	return strip.Intersect(area)
}

// drawStrip fills r with glyph in color. Transparent strips are skipped.
func drawStrip(scr uv.Screen, r uv.Rectangle, glyph, color string) {
	if color == "" || r.Dx() <= 0 || r.Dy() <= 0 {
		return
	}
	if r.Dy() > 1 {
		glyph = blockGlyph
	}
	row := strings.Repeat(glyph, r.Dx())
	rows := make([]string, r.Dy())
	for i := range rows {
		rows[i] = row
	}
	content := lipgloss.NewStyle().
		Foreground(theme.HexToColor(color)).
		Render(strings.Join(rows, "\n"))
	uv.NewStyledString(content).Draw(scr, r)
}
