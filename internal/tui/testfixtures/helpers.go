package testfixtures

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// Initialize test environment
func init() {
	// Set Ascii profile to disable color output for consistent assertions across CI/platforms
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical sizes used by control tests
const (
	TestTermWidth  = 120
	TestTermHeight = 40

	// ControlWidth and ControlHeight give the 300x44 scenario control.
	ControlWidth  = 300
	ControlHeight = 44
)

// Titles used across tests
var (
	ABC   = []string{"A", "B", "C"}
	Tabs  = []string{"Overview", "Activity", "Settings", "Billing"}
	Empty = []string{}
)

// ScreenLines renders the canvas and returns its rows as plain text with
// ANSI sequences stripped and trailing spaces trimmed.
func ScreenLines(canvas uv.ScreenBuffer) []string {
	out := strings.ReplaceAll(canvas.Render(), "\r\n", "\n")
	lines := strings.Split(ansi.Strip(out), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}

// RenderLines draws with renderFn onto a fresh canvas of the given size and
// returns ScreenLines of the result.
func RenderLines(width, height int, renderFn func(canvas uv.ScreenBuffer)) []string {
	canvas := uv.NewScreenBuffer(width, height)
	renderFn(canvas)
	return ScreenLines(canvas)
}
