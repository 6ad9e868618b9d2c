package game

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridsnake/internal/engine"
)

// tickData marks an interrupt event as a scheduled tick. gen ties it to the
// Start call that scheduled it.
type tickData struct {
	gen uint64
}

// TimerSource is an engine.TickSource that never calls the engine from its
// own goroutine. Each timer posts a tick event to the screen's event queue;
// the game loop hands it back through Deliver, so frames run on the loop
// goroutine between input events.
//
// Start, Stop and Deliver must all be called from the game loop goroutine.
type TimerSource struct {
	post   func(tcell.Event) error
	gen    uint64
	timer  *time.Timer
	target engine.Frameable
}

// NewTimerSource creates a tick source that posts events with post.
func NewTimerSource(post func(tcell.Event) error) *TimerSource {
	return &TimerSource{post: post}
}

// Start schedules the first frame after the target's tick interval.
func (s *TimerSource) Start(target engine.Frameable) {
	s.cancel()
	s.target = target
	s.arm(target.TickInterval())
}

// Stop cancels scheduling. A tick already queued is dropped on delivery.
func (s *TimerSource) Stop() {
	s.cancel()
	s.target = nil
}

// Deliver handles an interrupt event from the loop. It returns false if the
// event was not a tick. Stale ticks are swallowed.
func (s *TimerSource) Deliver(ev *tcell.EventInterrupt) bool {
	data, ok := ev.Data().(tickData)
	if !ok {
		return false
	}
	if data.gen != s.gen || s.target == nil {
		return true
	}

	s.target.Frame()

	// Frame may have stopped us (game over); only re-arm if still current.
	if data.gen == s.gen && s.target != nil {
		s.arm(s.target.TickInterval())
	}
	return true
}

func (s *TimerSource) arm(d time.Duration) {
	gen := s.gen
	post := s.post
	s.timer = time.AfterFunc(d, func() {
		_ = post(tcell.NewEventInterrupt(tickData{gen: gen}))
	})
}

func (s *TimerSource) cancel() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
