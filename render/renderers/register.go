package renderers

import "github.com/lixenwraith/slicer/render"

// RegisterAll installs the render pass stages in their fixed order
func RegisterAll(o *render.RenderOrchestrator) {
	o.Register(NewBackgroundRenderer(), render.PriorityBackground)
	o.Register(NewTrailRenderer(), render.PriorityTrail)
	o.Register(NewObjectRenderer(), render.PriorityObjects)
	o.Register(NewParticleRenderer(), render.PriorityParticles)
	o.Register(NewOverlayRenderer(), render.PriorityOverlay)
}
