package theme

import "charm.land/lipgloss/v2"

// Styles contains the pre-built lipgloss styles for the demo TUI.
type Styles struct {
	PanelTitle  lipgloss.Style
	PanelRule   lipgloss.Style
	Muted       lipgloss.Style
	Highlight   lipgloss.Style
	EventWill   lipgloss.Style
	EventDid    lipgloss.Style
	EventAction lipgloss.Style
	Footer      lipgloss.Style
}

// buildStyles constructs the pre-built styles from theme colors.
func (t *Theme) buildStyles() *Styles {
	return &Styles{
		PanelTitle: lipgloss.NewStyle().
			Foreground(HexToColor(t.FgSubtle)).
			Bold(true),
		PanelRule: lipgloss.NewStyle().
			Foreground(HexToColor(t.BgSurface1)),
		Muted: lipgloss.NewStyle().
			Foreground(HexToColor(t.FgMuted)),
		Highlight: lipgloss.NewStyle().
			Foreground(HexToColor(t.FgBright)).
			Bold(true),
		EventWill: lipgloss.NewStyle().
			Foreground(HexToColor(t.Info)),
		EventDid: lipgloss.NewStyle().
			Foreground(HexToColor(t.Success)),
		EventAction: lipgloss.NewStyle().
			Foreground(HexToColor(t.Warning)),
		Footer: lipgloss.NewStyle().
			Foreground(HexToColor(t.FgMuted)).
			Background(HexToColor(t.BgMantle)),
	}
}
