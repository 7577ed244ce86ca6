package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/slicer/constants"
	"github.com/lixenwraith/slicer/core"
)

// Palette
var (
	RgbBackground = core.ParseHex(constants.BackgroundHex)
	RgbTrail      = core.ParseHex(constants.TrailHex)
	RgbOutline    = core.ParseHex(constants.OutlineHex)
	RgbText       = core.ParseHex(constants.TextHex)
)

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// TcellToRGB converts tcell.Color to RGB, ColorDefault is treated as the background
func TcellToRGB(c tcell.Color) core.RGB {
	if c == tcell.ColorDefault {
		return RgbBackground
	}
	r, g, b := c.RGB()
	return core.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}
