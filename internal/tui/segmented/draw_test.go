package segmented_test

import (
	"strings"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/segctl/internal/tui/segmented"
	"github.com/mark3labs/segctl/internal/tui/testfixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drawControl(t *testing.T, c *segmented.Control, width, height int) []string {
	t.Helper()
	return testfixtures.RenderLines(width, height, func(canvas uv.ScreenBuffer) {
		assert.Nil(t, c.Draw(canvas, uv.Rect(0, 0, width, height)))
	})
}

func TestDraw_LabelsCentered(t *testing.T) {
	t.Parallel()

	c, _ := newControl(t, testfixtures.ABC)
	lines := drawControl(t, c, 30, 3)
	require.GreaterOrEqual(t, len(lines), 3)

	assert.Equal(t, 4, strings.Index(lines[1], "A"))
	assert.Equal(t, 14, strings.Index(lines[1], "B"))
	assert.Equal(t, 24, strings.Index(lines[1], "C"))
}

func TestDraw_SelectorOverDivider(t *testing.T) {
	t.Parallel()

	c, _ := newControl(t, testfixtures.ABC)
	lines := drawControl(t, c, 30, 3)
	assert.Equal(t, strings.Repeat("━", 10)+strings.Repeat("─", 20), lines[2])

	require.NoError(t, c.SelectItem(2, false))
	lines = drawControl(t, c, 30, 3)
	assert.Equal(t, strings.Repeat("─", 20)+strings.Repeat("━", 10), lines[2])
}

func TestDraw_LaysOutToArea(t *testing.T) {
	t.Parallel()

	c, _ := newControl(t, testfixtures.ABC)
	require.NoError(t, c.SelectItem(1, false))

	drawControl(t, c, 60, 3)
	assert.Equal(t, segmented.Rect{Width: 60, Height: 3}, c.Bounds())
	assert.Equal(t, 20.0, c.SegmentWidth())
	assert.Equal(t, 20.0, c.SelectorFrame().X)
}

func TestDraw_UnevenWidthStaysContiguous(t *testing.T) {
	t.Parallel()

	c, _ := newControl(t, testfixtures.ABC)
	require.NoError(t, c.SelectItem(1, false))

	// 31 / 3 cells per segment: the selector covers the middle third after rounding
	lines := drawControl(t, c, 31, 2)
	bottom := []rune(lines[1])
	require.Len(t, bottom, 31)
	assert.Equal(t, strings.Repeat("─", 10)+strings.Repeat("━", 11)+strings.Repeat("─", 10), string(bottom))
}

func TestDraw_TruncatesLongTitles(t *testing.T) {
	t.Parallel()

	c, _ := newControl(t, []string{"Overviewing", "B"})
	lines := drawControl(t, c, 12, 2)
	assert.Contains(t, lines[0], "Overv…")
	assert.NotContains(t, lines[0], "Overviewing")
}

func TestDraw_TransparentStripsSkipped(t *testing.T) {
	t.Parallel()

	a := segmented.NewAppearance(
		segmented.WithBottomLineColor(""),
		segmented.WithSelectorColor(""),
	)
	c, _ := newControl(t, testfixtures.ABC, segmented.WithAppearance(a))
	lines := drawControl(t, c, 30, 3)
	assert.NotContains(t, strings.Join(lines, "\n"), "─")
	assert.NotContains(t, strings.Join(lines, "\n"), "━")
}

func TestDraw_ThickSelectorUsesBlocks(t *testing.T) {
	t.Parallel()

	a := segmented.NewAppearance(segmented.WithSelectorHeight(2))
	c, _ := newControl(t, testfixtures.ABC, segmented.WithAppearance(a))
	lines := drawControl(t, c, 30, 4)
	assert.Equal(t, 4, strings.Index(lines[1], "A"), "label stays centred above the strips")
	assert.True(t, strings.HasPrefix(lines[2], strings.Repeat("█", 10)))
	assert.True(t, strings.HasPrefix(lines[3], strings.Repeat("█", 10)))
	assert.Equal(t, strings.Repeat("█", 10)+strings.Repeat("─", 20), lines[3])
}

func TestDraw_SingleRowShowsLabels(t *testing.T) {
	t.Parallel()

	c, _ := newControl(t, []string{"Alpha", "Beta"})
	lines := drawControl(t, c, 20, 1)
	require.NotEmpty(t, lines)

	assert.Contains(t, lines[0], "Alpha")
	assert.Contains(t, lines[0], "Beta")
	assert.NotContains(t, lines[0], "━", "no room for the selector under the labels")
	assert.NotContains(t, lines[0], "─")
}

func TestDraw_LabelMovesAboveThickStrips(t *testing.T) {
	t.Parallel()

	a := segmented.NewAppearance(segmented.WithSelectorHeight(2))
	c, _ := newControl(t, testfixtures.ABC, segmented.WithAppearance(a))
	lines := drawControl(t, c, 30, 3)
	require.GreaterOrEqual(t, len(lines), 3)

	assert.Equal(t, 4, strings.Index(lines[0], "A"))
	assert.Equal(t, 14, strings.Index(lines[0], "B"))
	assert.True(t, strings.HasPrefix(lines[1], strings.Repeat("█", 10)))
	assert.Equal(t, strings.Repeat("█", 10)+strings.Repeat("─", 20), lines[2])
}

func TestDraw_EmptyAreaIsNoop(t *testing.T) {
	t.Parallel()

	c, _ := newControl(t, testfixtures.ABC)
	canvas := uv.NewScreenBuffer(10, 1)
	assert.Nil(t, c.Draw(canvas, uv.Rect(0, 0, 0, 0)))
	assert.Equal(t, 300.0, c.Bounds().Width, "empty area leaves layout alone")
}
