package renderers

import (
	"github.com/lixenwraith/slicer/constants"
	"github.com/lixenwraith/slicer/render"
)

// ParticleRenderer draws burst particles faded by remaining life
type ParticleRenderer struct{}

// NewParticleRenderer creates a new particle renderer
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

// Render draws one cell per live particle
func (r *ParticleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for i := range ctx.Session.Particles {
		p := &ctx.Session.Particles[i]
		if !p.Alive() {
			continue
		}
		x, y := ctx.ToCell(p.X, p.Y)
		buf.Set(x, y, constants.ParticleGlyph, p.Color, min(p.Life, 1), false)
	}
}
