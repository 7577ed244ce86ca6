package input

import (
	"time"

	"github.com/lixenwraith/slicer/engine"
	"github.com/lixenwraith/slicer/render"
	"github.com/lixenwraith/slicer/systems"
)

// Router applies intents to a running session
type Router struct {
	session  *engine.Session
	slice    *systems.SliceSystem
	viewport render.Viewport
	onResize func(cols, rows int)
}

// NewRouter creates a router, onResize may be nil
func NewRouter(s *engine.Session, slice *systems.SliceSystem, viewport render.Viewport, onResize func(cols, rows int)) *Router {
	return &Router{
		session:  s,
		slice:    slice,
		viewport: viewport,
		onResize: onResize,
	}
}

// Handle applies one intent, it returns false when the host should quit
func (r *Router) Handle(intent *Intent, now time.Time) bool {
	if intent == nil {
		return true
	}

	switch intent.Type {
	case IntentQuit:
		return false
	case IntentStart:
		r.session.Start()
	case IntentTogglePause:
		r.session.SetPlaying(!r.session.IsPlaying())
	case IntentPointer:
		x, y := r.viewport.ToSurface(intent.X, intent.Y)
		r.slice.PointerMoved(r.session, x, y, now)
	case IntentResize:
		w, h := r.viewport.SurfaceSize(intent.X, intent.Y)
		r.session.Resize(w, h)
		if r.onResize != nil {
			r.onResize(intent.X, intent.Y)
		}
	}
	return true
}
