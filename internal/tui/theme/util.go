package theme

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// IsHexColor reports whether s is a "#rrggbb" color.
func IsHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	_, err := colorful.Hex(s)
	return err == nil
}

// InterpolateColor blends between two hex colors based on position (0.0 to 1.0).
// Invalid input colors fall back to colorA unchanged.
func InterpolateColor(colorA, colorB string, pos float64) string {
	a, err := colorful.Hex(colorA)
	if err != nil {
		return colorA
	}
	b, err := colorful.Hex(colorB)
	if err != nil {
		return colorA
	}
	if pos < 0 {
		pos = 0
	} else if pos > 1 {
		pos = 1
	}
	return a.BlendLuv(b, pos).Clamped().Hex()
}

// ApplyGradient colors each rune of text along a gradient from colorA to colorB.
func ApplyGradient(text, colorA, colorB string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, r := range runes {
		pos := 0.0
		if len(runes) > 1 {
			pos = float64(i) / float64(len(runes)-1)
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(InterpolateColor(colorA, colorB, pos)))
		sb.WriteString(style.Render(string(r)))
	}
	return sb.String()
}
