package renderers

import (
	"github.com/lixenwraith/slicer/components"
	"github.com/lixenwraith/slicer/constants"
	"github.com/lixenwraith/slicer/render"
	"github.com/lixenwraith/slicer/systems"
	"github.com/lixenwraith/slicer/vmath"
)

// TrailRenderer draws the pointer trail as a polyline of highlighted cells
type TrailRenderer struct {
	live []components.TrailPoint
}

// NewTrailRenderer creates a new trail renderer
func NewTrailRenderer() *TrailRenderer {
	return &TrailRenderer{}
}

// Render draws every segment between consecutive live samples
// A segment fades with the age of its newer endpoint
func (r *TrailRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	r.live = r.live[:0]
	for _, p := range ctx.Session.Trail {
		if !systems.Expired(p, ctx.Now) {
			r.live = append(r.live, p)
		}
	}
	if len(r.live) < 2 {
		return
	}

	for i := 1; i < len(r.live); i++ {
		from, to := r.live[i-1], r.live[i]
		alpha := SegmentAlpha(to, ctx)
		if alpha <= 0 {
			continue
		}

		x1, y1 := ctx.Viewport.ToCellF(from.X, from.Y)
		x2, y2 := ctx.Viewport.ToCellF(to.X, to.Y)
		vmath.Traverse(x1, y1, x2, y2, func(x, y int) bool {
			buf.SetBg(x, y, render.RgbTrail, alpha)
			return true
		})
	}
}

// SegmentAlpha returns the opacity of a trail segment ending at p
func SegmentAlpha(p components.TrailPoint, ctx render.RenderContext) float64 {
	age := float64(p.Age(ctx.Now)) / float64(constants.TrailLifetime)
	return max(0, constants.TrailAlpha*(1-age))
}
