// Package sound plays short tones for game events.
package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/plus3/tetris/tetris"
)

const sampleRate = beep.SampleRate(44100)

// Player turns game events into sounds. The zero value is not usable; call New.
type Player struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	output func(beep.Streamer)
}

// Option configures a Player.
type Option func(*Player)

// WithVolume sets the linear volume, 1 being unchanged. The default is 0.5.
func WithVolume(v float64) Option {
	return func(p *Player) {
		p.volume = v
	}
}

// WithOutput sends sounds to fn instead of the speaker.
func WithOutput(fn func(beep.Streamer)) Option {
	return func(p *Player) {
		p.output = fn
	}
}

func New(opts ...Option) *Player {
	p := &Player{
		rate:   sampleRate,
		volume: 0.5,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Init opens the speaker. Without it, and without WithOutput, events are dropped.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.output != nil {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	mixer := &beep.Mixer{}
	speaker.Play(mixer)
	p.output = func(s beep.Streamer) {
		speaker.Lock()
		mixer.Add(s)
		speaker.Unlock()
	}
	return nil
}

// OnEvent plays the sound for ev, if it has one. It matches tetris.Observer.
func (p *Player) OnEvent(ev tetris.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.output == nil {
		return
	}
	if s := p.Effect(ev); s != nil {
		p.output(s)
	}
}

// Effect builds the streamer for ev. Locks that clear nothing are silent.
func (p *Player) Effect(ev tetris.Event) beep.Streamer {
	var s beep.Streamer
	switch ev.Kind {
	case tetris.Locked:
		if ev.Lines == 0 {
			return nil
		}
		s = p.clear(ev.Lines)
	case tetris.Held:
		s = note(660, 40*time.Millisecond, p.rate)
	case tetris.GameOver:
		s = beep.Seq(
			note(440, 150*time.Millisecond, p.rate),
			note(349.23, 150*time.Millisecond, p.rate),
			note(261.63, 400*time.Millisecond, p.rate),
		)
	default:
		panic("sound: unknown event " + ev.Kind.String())
	}
	return volume(s, p.volume)
}

// clear rises one step per cleared line; four lines add an octave on top.
func (p *Player) clear(lines int) beep.Streamer {
	steps := []float64{523.25, 659.25, 783.99, 1046.50}
	notes := make([]beep.Streamer, 0, lines)
	for i := range min(lines, len(steps)) {
		notes = append(notes, note(steps[i], 70*time.Millisecond, p.rate))
	}
	if lines < 4 {
		return beep.Seq(notes...)
	}
	return beep.Mix(
		volume(beep.Seq(notes...), 0.7),
		volume(note(2093.00, 280*time.Millisecond, p.rate), 0.3),
	)
}
