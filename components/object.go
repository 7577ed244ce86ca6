package components

import (
	"time"

	"github.com/lixenwraith/slicer/core"
)

// Category is a visual preset of the falling object catalog
type Category struct {
	Name  string
	Glyph rune
	Color core.RGB
}

// Catalog is the fixed set of categories spawned uniformly at random
var Catalog = []Category{
	{Name: "apple", Glyph: '🍎', Color: core.ParseHex("#ff3b30")},
	{Name: "orange", Glyph: '🍊', Color: core.ParseHex("#ff9500")},
	{Name: "lemon", Glyph: '🍋', Color: core.ParseHex("#ffcc00")},
	{Name: "watermelon", Glyph: '🍉', Color: core.ParseHex("#ff375f")},
	{Name: "strawberry", Glyph: '🍓', Color: core.ParseHex("#ff2d55")},
	{Name: "banana", Glyph: '🍌', Color: core.ParseHex("#ffff00")},
	{Name: "peach", Glyph: '🍑', Color: core.ParseHex("#ffb3ba")},
	{Name: "kiwi", Glyph: '🥝', Color: core.ParseHex("#8bc34a")},
}

// Half identifies which part of a sliced object a fragment represents
type Half uint8

const (
	HalfNone  Half = iota // Whole object
	HalfLeft              // Left fragment after a slice
	HalfRight             // Right fragment after a slice
)

// FallingObject is a sliceable entity launched from below the surface
// Split transitions false->true once and is never cleared
type FallingObject struct {
	core.Kinetic

	Category Category
	Size     float64

	Split     bool
	SplitTime time.Time
	Half      Half
}

// Glyph returns the display glyph of the object's category
func (o *FallingObject) Glyph() rune {
	return o.Category.Glyph
}

// Color returns the display color of the object's category
func (o *FallingObject) Color() core.RGB {
	return o.Category.Color
}

// SplitAge returns time since the slice, zero for whole objects
func (o *FallingObject) SplitAge(now time.Time) time.Duration {
	if !o.Split {
		return 0
	}
	return now.Sub(o.SplitTime)
}

// IsFragment reports whether the object is one of the two halves created by a slice
func (o *FallingObject) IsFragment() bool {
	return o.Half != HalfNone
}
