package config

import (
	"fmt"
	"strings"

	"github.com/mark3labs/segctl/internal/tui/segmented"
)

// AppearanceConfig overrides segmented control appearance fields. Unset
// fields keep the theme defaults; an empty color string means transparent.
type AppearanceConfig struct {
	BackgroundColor         *string  `mapstructure:"background_color" yaml:"background_color,omitempty"`
	SelectedBackgroundColor *string  `mapstructure:"selected_background_color" yaml:"selected_background_color,omitempty"`
	TextColor               *string  `mapstructure:"text_color" yaml:"text_color,omitempty"`
	Font                    *string  `mapstructure:"font" yaml:"font,omitempty"`
	SelectedTextColor       *string  `mapstructure:"selected_text_color" yaml:"selected_text_color,omitempty"`
	SelectedFont            *string  `mapstructure:"selected_font" yaml:"selected_font,omitempty"`
	BottomLineColor         *string  `mapstructure:"bottom_line_color" yaml:"bottom_line_color,omitempty"`
	SelectorColor           *string  `mapstructure:"selector_color" yaml:"selector_color,omitempty"`
	BottomLineHeight        *float64 `mapstructure:"bottom_line_height" yaml:"bottom_line_height,omitempty"`
	SelectorHeight          *float64 `mapstructure:"selector_height" yaml:"selector_height,omitempty"`
	LabelTopPadding         *float64 `mapstructure:"label_top_padding" yaml:"label_top_padding,omitempty"`
}

// appearanceKeys lists the keys of the appearance block.
var appearanceKeys = []string{
	"background_color",
	"selected_background_color",
	"text_color",
	"font",
	"selected_text_color",
	"selected_font",
	"bottom_line_color",
	"selector_color",
	"bottom_line_height",
	"selector_height",
	"label_top_padding",
}

// Options converts the overrides to appearance options.
func (a AppearanceConfig) Options() ([]segmented.AppearanceOption, error) {
	var opts []segmented.AppearanceOption

	colors := []struct {
		v   *string
		opt func(string) segmented.AppearanceOption
	}{
		{a.BackgroundColor, segmented.WithBackgroundColor},
		{a.SelectedBackgroundColor, segmented.WithSelectedBackgroundColor},
		{a.TextColor, segmented.WithTextColor},
		{a.SelectedTextColor, segmented.WithSelectedTextColor},
		{a.BottomLineColor, segmented.WithBottomLineColor},
		{a.SelectorColor, segmented.WithSelectorColor},
	}
	for _, c := range colors {
		if c.v != nil {
			opts = append(opts, c.opt(*c.v))
		}
	}

	fonts := []struct {
		name string
		v    *string
		opt  func(segmented.Font) segmented.AppearanceOption
	}{
		{"font", a.Font, segmented.WithFont},
		{"selected_font", a.SelectedFont, segmented.WithSelectedFont},
	}
	for _, f := range fonts {
		if f.v == nil {
			continue
		}
		font, err := ParseFont(*f.v)
		if err != nil {
			return nil, fmt.Errorf("appearance.%s: %w", f.name, err)
		}
		opts = append(opts, f.opt(font))
	}

	sizes := []struct {
		v   *float64
		opt func(float64) segmented.AppearanceOption
	}{
		{a.BottomLineHeight, segmented.WithBottomLineHeight},
		{a.SelectorHeight, segmented.WithSelectorHeight},
		{a.LabelTopPadding, segmented.WithLabelTopPadding},
	}
	for _, s := range sizes {
		if s.v != nil {
			opts = append(opts, s.opt(*s.v))
		}
	}
	return opts, nil
}

// Appearance builds a validated appearance from the theme defaults and the
// overrides.
func (a AppearanceConfig) Appearance() (segmented.Appearance, error) {
	opts, err := a.Options()
	if err != nil {
		return segmented.Appearance{}, err
	}
	app := segmented.NewAppearance(opts...)
	if err := app.Validate(); err != nil {
		return segmented.Appearance{}, fmt.Errorf("appearance: %w", err)
	}
	return app, nil
}

// ParseFont parses a comma or space separated attribute list such as
// "bold,italic". "regular" and "" yield the plain font.
func ParseFont(s string) (segmented.Font, error) {
	var f segmented.Font
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == ',' || r == ' ' || r == '+'
	})
	for _, field := range fields {
		switch field {
		case "regular", "normal":
		case "bold":
			f.Bold = true
		case "italic":
			f.Italic = true
		case "underline":
			f.Underline = true
		case "faint":
			f.Faint = true
		default:
			return segmented.Font{}, fmt.Errorf("unknown font attribute %q", field)
		}
	}
	return f, nil
}
