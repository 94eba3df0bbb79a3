package segmented

import (
	"math"

	uv "github.com/charmbracelet/ultraviolet"
)

// Rect is a rectangle in fractional terminal cells. Layout is computed in
// this space and snapped to whole cells only when drawing.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectFromCells converts a cell rectangle to a Rect.
func RectFromCells(r uv.Rectangle) Rect {
	return Rect{
		X:      float64(r.Min.X),
		Y:      float64(r.Min.Y),
		Width:  float64(r.Dx()),
		Height: float64(r.Dy()),
	}
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Offset translates r by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Cells snaps r to the cell grid. Edges are rounded independently so two
// rects sharing an edge also share it after snapping.
func (r Rect) Cells() uv.Rectangle {
	x0 := int(math.Round(r.X))
	y0 := int(math.Round(r.Y))
	x1 := int(math.Round(r.MaxX()))
	y1 := int(math.Round(r.MaxY()))
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return uv.Rectangle{
		Min: uv.Position{X: x0, Y: y0},
		Max: uv.Position{X: x1, Y: y1},
	}
}

// rowsFor converts a fractional strip height to drawn rows. Any positive
// height takes at least one row.
func rowsFor(h float64) int {
	if h <= 0 {
		return 0
	}
	return int(math.Ceil(h))
}
