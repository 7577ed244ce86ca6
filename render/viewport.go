package render

import "math"

// Viewport maps surface units to terminal cells
type Viewport struct {
	CellWidth  float64
	CellHeight float64
}

// NewViewport creates a viewport, non-positive cell sizes fall back to 1
func NewViewport(cellWidth, cellHeight float64) Viewport {
	if cellWidth <= 0 {
		cellWidth = 1
	}
	if cellHeight <= 0 {
		cellHeight = 1
	}
	return Viewport{CellWidth: cellWidth, CellHeight: cellHeight}
}

// ToCell returns the cell containing a surface point
func (v Viewport) ToCell(x, y float64) (int, int) {
	return int(math.Floor(x / v.CellWidth)), int(math.Floor(y / v.CellHeight))
}

// ToCellF returns fractional cell coordinates for line traversal
func (v Viewport) ToCellF(x, y float64) (float64, float64) {
	return x / v.CellWidth, y / v.CellHeight
}

// ToSurface returns the surface point at the centre of a cell
func (v Viewport) ToSurface(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * v.CellWidth, (float64(row) + 0.5) * v.CellHeight
}

// SurfaceSize returns the surface extent covered by a grid of cells
func (v Viewport) SurfaceSize(cols, rows int) (float64, float64) {
	return float64(cols) * v.CellWidth, float64(rows) * v.CellHeight
}
