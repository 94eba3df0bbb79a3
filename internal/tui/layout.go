package tui

import uv "github.com/charmbracelet/ultraviolet"

// Layout dimensions
const (
	// FooterHeight is the height of the help footer in rows
	FooterHeight = 1
	// EventsWidthMax caps the event log pane width
	EventsWidthMax = 48
	// CompactWidthBreakpoint is the width below which the event log is hidden
	CompactWidthBreakpoint = 60
)

// Layout defines the rectangular regions for all UI components
type Layout struct {
	Area    uv.Rectangle
	Control uv.Rectangle
	Content uv.Rectangle
	Events  uv.Rectangle
	Footer  uv.Rectangle
}

// IsCompact returns true when the event log pane is hidden
func (l Layout) IsCompact() bool {
	return l.Events.Empty()
}

// CalculateLayout computes the layout rectangles based on terminal
// dimensions. The control spans the full width at the top.
func CalculateLayout(width, height, controlHeight int) Layout {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	area := uv.Rectangle{Max: uv.Position{X: width, Y: height}}

	if controlHeight > height {
		controlHeight = height
	}
	if controlHeight < 0 {
		controlHeight = 0
	}
	footerHeight := FooterHeight
	if controlHeight+footerHeight > height {
		footerHeight = height - controlHeight
	}

	// Split vertically: control | body | footer
	controlRect, rest := uv.SplitVertical(area, uv.Fixed(controlHeight))
	bodyRect, footerRect := uv.SplitVertical(rest, uv.Fixed(rest.Dy()-footerHeight))

	// Split body horizontally: content | gap (1 char) | events
	var contentRect, eventsRect uv.Rectangle
	if width >= CompactWidthBreakpoint {
		eventsWidth := EventsWidthMax
		if bodyRect.Dx()/3 < eventsWidth {
			eventsWidth = bodyRect.Dx() / 3
		}
		contentRect, eventsRect = uv.SplitHorizontal(bodyRect, uv.Fixed(bodyRect.Dx()-eventsWidth))
		contentRect.Max.X -= 1
	} else {
		contentRect = bodyRect
	}

	return Layout{
		Area:    area,
		Control: controlRect,
		Content: contentRect,
		Events:  eventsRect,
		Footer:  footerRect,
	}
}
