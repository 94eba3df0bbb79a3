package segmented

import (
	"fmt"
	"math"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/segctl/internal/tui/theme"
)

// Font maps a label typeface onto the text attributes a terminal supports.
type Font struct {
	Bold      bool
	Italic    bool
	Underline bool
	Faint     bool
}

// Regular is the plain font.
var Regular = Font{}

// BoldFont is Regular with bold enabled.
var BoldFont = Font{Bold: true}

func (f Font) apply(s lipgloss.Style) lipgloss.Style {
	return s.Bold(f.Bold).Italic(f.Italic).Underline(f.Underline).Faint(f.Faint)
}

// Appearance bundles the visual parameters of a Control. Colors are
// "#rrggbb" strings; an empty string means transparent. Sizes are in cells.
type Appearance struct {
	BackgroundColor         string
	SelectedBackgroundColor string
	TextColor               string
	Font                    Font
	SelectedTextColor       string
	SelectedFont            Font
	BottomLineColor         string
	SelectorColor           string
	BottomLineHeight        float64
	SelectorHeight          float64
	LabelTopPadding         float64
}

// AppearanceOption overrides one field of the default appearance.
type AppearanceOption func(*Appearance)

// DefaultAppearance returns the default appearance for the active theme.
func DefaultAppearance() Appearance {
	t := theme.Current()
	return Appearance{
		BackgroundColor:         "",
		SelectedBackgroundColor: "",
		TextColor:               t.FgMuted,
		Font:                    Regular,
		SelectedTextColor:       t.FgBright,
		SelectedFont:            BoldFont,
		BottomLineColor:         t.BgSurface1,
		SelectorColor:           t.Primary,
		BottomLineHeight:        1,
		SelectorHeight:          1,
		LabelTopPadding:         0,
	}
}

// NewAppearance returns DefaultAppearance with opts applied in order.
func NewAppearance(opts ...AppearanceOption) Appearance {
	a := DefaultAppearance()
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// WithBackgroundColor sets the unselected segment background.
func WithBackgroundColor(c string) AppearanceOption {
	return func(a *Appearance) { a.BackgroundColor = c }
}

// WithSelectedBackgroundColor sets the selected segment background.
func WithSelectedBackgroundColor(c string) AppearanceOption {
	return func(a *Appearance) { a.SelectedBackgroundColor = c }
}

// WithTextColor sets the unselected label color.
func WithTextColor(c string) AppearanceOption {
	return func(a *Appearance) { a.TextColor = c }
}

// WithFont sets the unselected label font.
func WithFont(f Font) AppearanceOption {
	return func(a *Appearance) { a.Font = f }
}

// WithSelectedTextColor sets the selected label color.
func WithSelectedTextColor(c string) AppearanceOption {
	return func(a *Appearance) { a.SelectedTextColor = c }
}

// WithSelectedFont sets the selected label font.
func WithSelectedFont(f Font) AppearanceOption {
	return func(a *Appearance) { a.SelectedFont = f }
}

// WithBottomLineColor sets the divider line color.
func WithBottomLineColor(c string) AppearanceOption {
	return func(a *Appearance) { a.BottomLineColor = c }
}

// WithSelectorColor sets the selector bar color.
func WithSelectorColor(c string) AppearanceOption {
	return func(a *Appearance) { a.SelectorColor = c }
}

// WithBottomLineHeight sets the divider line height in cells.
func WithBottomLineHeight(h float64) AppearanceOption {
	return func(a *Appearance) { a.BottomLineHeight = h }
}

// WithSelectorHeight sets the selector bar height in cells.
func WithSelectorHeight(h float64) AppearanceOption {
	return func(a *Appearance) { a.SelectorHeight = h }
}

// WithLabelTopPadding sets the space above the labels in cells.
func WithLabelTopPadding(p float64) AppearanceOption {
	return func(a *Appearance) { a.LabelTopPadding = p }
}

// Validate checks that sizes are finite and non-negative and that colors
// are either empty or "#rrggbb".
func (a Appearance) Validate() error {
	sizes := []struct {
		name string
		v    float64
	}{
		{"bottom line height", a.BottomLineHeight},
		{"selector height", a.SelectorHeight},
		{"label top padding", a.LabelTopPadding},
	}
	for _, s := range sizes {
		if math.IsNaN(s.v) || math.IsInf(s.v, 0) || s.v < 0 {
			return fmt.Errorf("%s must be a non-negative number, got %v: %w", s.name, s.v, ErrInvalidArgument)
		}
	}

	colors := []struct {
		name string
		v    string
	}{
		{"background color", a.BackgroundColor},
		{"selected background color", a.SelectedBackgroundColor},
		{"text color", a.TextColor},
		{"selected text color", a.SelectedTextColor},
		{"bottom line color", a.BottomLineColor},
		{"selector color", a.SelectorColor},
	}
	for _, c := range colors {
		if c.v != "" && !theme.IsHexColor(c.v) {
			return fmt.Errorf("%s %q is not #rrggbb: %w", c.name, c.v, ErrInvalidArgument)
		}
	}
	return nil
}

// labelStyle returns the label style for an item in the given state.
func (a Appearance) labelStyle(selected bool) lipgloss.Style {
	fg, bg, font := a.TextColor, a.BackgroundColor, a.Font
	if selected {
		fg, bg, font = a.SelectedTextColor, a.SelectedBackgroundColor, a.SelectedFont
	}
	s := lipgloss.NewStyle().
		Foreground(theme.HexToColor(fg)).
		Background(theme.HexToColor(bg))
	return font.apply(s)
}
