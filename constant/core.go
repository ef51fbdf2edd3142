package constant

import "time"

// Host Loop Timing
const (
	// FrameUpdateInterval is the default animation frame interval (~30 FPS, plenty for falling snow)
	FrameUpdateInterval = 33 * time.Millisecond

	// EventQueueSize buffers terminal events between the poller goroutine and the host loop
	EventQueueSize = 256
)

// Terminal cell geometry in layout pixels, layouts run in pixels and the host divides back
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)
