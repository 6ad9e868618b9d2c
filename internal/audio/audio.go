// Package audio plays short synthesized sound effects through beep.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sound identifies one effect.
type Sound int

const (
	SoundEat Sound = iota
	SoundGameOver
	SoundHighScore
)

// String returns the effect name.
func (s Sound) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundGameOver:
		return "game_over"
	case SoundHighScore:
		return "high_score"
	default:
		return "unknown"
	}
}

// note is one tone in an effect.
type note struct {
	freq     float64
	duration time.Duration
}

var effectNotes = map[Sound][]note{
	SoundEat:       {{660, 40 * time.Millisecond}, {990, 50 * time.Millisecond}},
	SoundGameOver:  {{392, 120 * time.Millisecond}, {311, 120 * time.Millisecond}, {220, 260 * time.Millisecond}},
	SoundHighScore: {{987.77, 90 * time.Millisecond}, {1318.51, 220 * time.Millisecond}},
}

// Effect builds the streamer for a sound. It returns nil for unknown sounds.
func Effect(s Sound) beep.Streamer {
	notes, ok := effectNotes[s]
	if !ok {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			continue
		}
		parts = append(parts, beep.Take(sampleRate.N(n.duration), tone))
	}

	// Quarter volume; a raw sine at full scale is harsh in headphones.
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: -2}
}

// Player plays effects on the system speaker. The zero value and a player
// that failed to initialize are silent.
type Player struct {
	mu          sync.Mutex
	initialized bool
}

// NewPlayer returns a silent player; call Init to enable output.
func NewPlayer() *Player {
	return &Player{}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	p.initialized = true
	return nil
}

// Play starts a sound without waiting for it to finish.
func (p *Player) Play(s Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	if streamer := Effect(s); streamer != nil {
		speaker.Play(streamer)
	}
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
