package renderers

import (
	"math"

	"github.com/lixenwraith/slicer/components"
	"github.com/lixenwraith/slicer/constants"
	"github.com/lixenwraith/slicer/core"
	"github.com/lixenwraith/slicer/render"
	"github.com/lixenwraith/slicer/vmath"
)

// ObjectRenderer draws falling objects, split remains and their drips
type ObjectRenderer struct{}

// NewObjectRenderer creates a new object renderer
func NewObjectRenderer() *ObjectRenderer {
	return &ObjectRenderer{}
}

// Render draws each object in its own transform
func (r *ObjectRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, obj := range ctx.Session.Objects {
		r.renderObject(ctx, buf, obj)
	}
}

func (r *ObjectRenderer) renderObject(ctx render.RenderContext, buf *render.RenderBuffer, obj *components.FallingObject) {
	alpha := ObjectAlpha(obj, ctx)
	if alpha <= 0 {
		return
	}
	t := render.NewTransform(obj.X, obj.Y, obj.Rotation)
	color := obj.Color()

	r.renderDisc(ctx, buf, obj, t, color, alpha*constants.DiscAlpha)

	if obj.IsFragment() {
		return
	}

	cx, cy := ctx.ToCell(t.X, t.Y)
	buf.Set(cx, cy, obj.Glyph(), color, alpha, false)

	sx, sy := t.Apply(0, -obj.Size*constants.StemLength)
	stemX, stemY := ctx.ToCell(sx, sy)
	buf.Set(stemX, stemY, constants.StemGlyph, color.Darken(constants.DripDarken), alpha, false)

	if obj.Split {
		r.renderDrips(ctx, buf, obj, t, color)
	}
}

// renderDisc fills the cells whose centre lies inside the object radius
// Fragments keep only the cells on their side of the rotated cut
func (r *ObjectRenderer) renderDisc(ctx render.RenderContext, buf *render.RenderBuffer, obj *components.FallingObject, t render.Transform, color core.RGB, alpha float64) {
	minX, minY := ctx.ToCell(obj.X-obj.Size, obj.Y-obj.Size)
	maxX, maxY := ctx.ToCell(obj.X+obj.Size, obj.Y+obj.Size)
	radiusSq := obj.Size * obj.Size

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := ctx.Viewport.ToSurface(x, y)
			dx, dy := px-t.X, py-t.Y
			if dx*dx+dy*dy >= radiusSq {
				continue
			}
			if obj.IsFragment() {
				lx, _ := vmath.Rotate(dx, dy, -t.Angle)
				if (obj.Half == components.HalfLeft) != (lx < 0) {
					continue
				}
			}
			buf.SetBg(x, y, color, alpha)
		}
	}
}

// renderDrips draws juice drips growing below a split object
func (r *ObjectRenderer) renderDrips(ctx render.RenderContext, buf *render.RenderBuffer, obj *components.FallingObject, t render.Transform, color core.RGB) {
	alpha := DripAlpha(obj, ctx)
	if alpha <= 0 {
		return
	}
	age := float64(obj.SplitAge(ctx.Now).Milliseconds())
	drip := color.Darken(constants.DripDarken)

	for j := 0; j < constants.DripCount; j++ {
		lx := -constants.DripSpacing + constants.DripSpacing*float64(j)
		ly := age / constants.DripFallRate * float64(j+1)
		dx, dy := t.Apply(lx, ly)
		x, y := ctx.ToCell(dx, dy)
		buf.Set(x, y, constants.DripGlyph, drip, alpha, false)
	}
}

// ObjectAlpha is 1 for whole objects and fades over the split lifetime
func ObjectAlpha(obj *components.FallingObject, ctx render.RenderContext) float64 {
	if !obj.Split {
		return 1
	}
	return math.Max(0, 1-splitProgress(obj, ctx))
}

// DripAlpha starts at half opacity and fades twice as fast as the object
func DripAlpha(obj *components.FallingObject, ctx render.RenderContext) float64 {
	return math.Max(0, constants.DripAlpha-splitProgress(obj, ctx))
}

func splitProgress(obj *components.FallingObject, ctx render.RenderContext) float64 {
	return float64(obj.SplitAge(ctx.Now)) / float64(constants.SplitLifetime)
}
