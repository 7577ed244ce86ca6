package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize is the buffer between the input poller and the main loop
	EventQueueSize = 256
)

// Surface Geometry
const (
	// CellWidth and CellHeight are the surface units covered by one terminal cell
	CellWidth  = 10
	CellHeight = 20
)
