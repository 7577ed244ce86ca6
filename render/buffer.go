package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/slicer/core"
)

// RenderBuffer is the persistent drawing surface
// Cells survive between frames, the background wash fades them out
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to the background using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = blankCell()
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Bounds returns buffer dimensions in cells
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x, y, out of range yields a blank cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return blankCell()
	}
	return b.cells[y*b.width+x]
}

// ===== COMPOSITOR API =====

// Set draws a rune with the foreground blended at alpha over what is there
func (b *RenderBuffer) Set(x, y int, r rune, fg core.RGB, alpha float64, bold bool) {
	if !b.inBounds(x, y) || alpha <= 0 {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = dst.Fg.Blend(fg, alpha)
	dst.Bold = bold
}

// SetBg blends the background of a cell, rune and foreground are kept
func (b *RenderBuffer) SetBg(x, y int, bg core.RGB, alpha float64) {
	if !b.inBounds(x, y) || alpha <= 0 {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Bg = dst.Bg.Blend(bg, alpha)
}

// SetWithBg writes an opaque cell
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg core.RGB, bold bool) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg, Bold: bold}
}

// SetText writes an opaque string starting at x, advancing by display width
// Returns the number of cells used
func (b *RenderBuffer) SetText(x, y int, text string, fg, bg core.RGB, bold bool) int {
	col := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.SetWithBg(col, y, r, fg, bg, bold)
		if w == 2 {
			b.SetWithBg(col+1, y, 0, fg, bg, bold)
		}
		col += w
	}
	return col - x
}

// Wash blends every cell towards color, glyphs whose foreground has converged are erased
func (b *RenderBuffer) Wash(color core.RGB, alpha float64, tolerance uint8) {
	for i := range b.cells {
		c := &b.cells[i]
		c.Fg = c.Fg.Blend(color, alpha)
		c.Bg = c.Bg.Blend(color, alpha)
		if c.Rune != 0 && c.Fg.Near(color, tolerance) {
			c.Rune = 0
			c.Bold = false
		}
	}
}

// ===== OUTPUT =====

// Flush writes the buffer to the screen without showing it
// A wide glyph covers the next cell, which is skipped, one at the right edge is replaced by a space
func (b *RenderBuffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x := 0; x < b.width; x++ {
			c := row[x]
			style := tcell.StyleDefault.
				Foreground(RGBToTcell(c.Fg)).
				Background(RGBToTcell(c.Bg)).
				Bold(c.Bold)

			r := c.Rune
			if r == 0 {
				r = ' '
			}
			w := runewidth.RuneWidth(r)
			if w == 2 && x == b.width-1 {
				r, w = ' ', 1
			}
			screen.SetContent(x, y, r, nil, style)
			if w == 2 {
				x++
			}
		}
	}
}
