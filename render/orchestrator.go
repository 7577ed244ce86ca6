package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/slicer/engine"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline and implements engine.FrameRenderer
type RenderOrchestrator struct {
	screen    tcell.Screen
	buffer    *RenderBuffer
	viewport  Viewport
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator sized to the screen
func NewRenderOrchestrator(screen tcell.Screen, viewport Viewport) *RenderOrchestrator {
	width, height := screen.Size()
	return &RenderOrchestrator{
		screen:    screen,
		buffer:    NewRenderBuffer(width, height),
		viewport:  viewport,
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions and syncs the screen
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

// Buffer exposes the drawing surface
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// Viewport returns the surface to cell mapping
func (o *RenderOrchestrator) Viewport() Viewport {
	return o.viewport
}

// RenderFrame executes the render pipeline: render all, flush, show
// The buffer is not cleared, the background stage fades previous frames
func (o *RenderOrchestrator) RenderFrame(s *engine.Session, now time.Time) {
	width, height := o.buffer.Bounds()
	ctx := RenderContext{
		Now:          now,
		Session:      s,
		Viewport:     o.viewport,
		ScreenWidth:  width,
		ScreenHeight: height,
	}

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.buffer)
	}

	o.buffer.Flush(o.screen)
	o.screen.Show()
}
