package engine

import "time"

// Frameable is what a TickSource drives.
type Frameable interface {
	// TickInterval is the delay to wait before the next frame. It may change
	// between frames.
	TickInterval() time.Duration
	// Frame runs one scheduled step.
	Frame()
}

// TickSource calls Frame on its target once per tick interval between Start
// and Stop. Implementations must never call Frame concurrently with any
// other call into the engine.
type TickSource interface {
	Start(target Frameable)
	Stop()
}
