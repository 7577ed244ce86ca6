package renderers

import (
	"github.com/lixenwraith/slicer/constants"
	"github.com/lixenwraith/slicer/render"
)

// BackgroundRenderer washes the persistent surface towards the background colour
// Whatever was drawn in earlier frames fades out, leaving motion trails
type BackgroundRenderer struct{}

// NewBackgroundRenderer creates a new background renderer
func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{}
}

// Render applies one wash step
func (r *BackgroundRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	buf.Wash(render.RgbBackground, constants.WashAlpha, constants.WashTolerance)
}
