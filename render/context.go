package render

import (
	"time"

	"github.com/lixenwraith/slicer/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Now     time.Time
	Session *engine.Session

	Viewport Viewport

	// Screen dimensions in cells
	ScreenWidth  int
	ScreenHeight int
}

// ToCell maps surface units to a cell
func (rc RenderContext) ToCell(x, y float64) (int, int) {
	return rc.Viewport.ToCell(x, y)
}

// CenterColumn returns the first column of text of the given cell width centred on the screen
func (rc RenderContext) CenterColumn(width int) int {
	return (rc.ScreenWidth - width) / 2
}
