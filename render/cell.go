package render

import "github.com/lixenwraith/slicer/core"

// Cell is one character position of the drawing surface, Rune 0 means empty
type Cell struct {
	Rune rune
	Fg   core.RGB
	Bg   core.RGB
	Bold bool
}

func blankCell() Cell {
	return Cell{Fg: RgbBackground, Bg: RgbBackground}
}
