package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// tone is a sine oscillator that stops after a fixed number of samples.
type tone struct {
	step      float64
	phase     float64
	remaining int
}

func newTone(freq float64, d time.Duration, rate beep.SampleRate) *tone {
	return &tone{
		step:      freq / float64(rate),
		remaining: rate.N(d),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.remaining <= 0 {
		return 0, false
	}
	for i := range samples {
		if t.remaining == 0 {
			return i, true
		}
		v := math.Sin(2 * math.Pi * t.phase)
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.step
		t.phase -= math.Floor(t.phase)
		t.remaining--
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// fade ramps a streamer in over attack samples and out over its last release samples.
type fade struct {
	streamer beep.Streamer
	position int
	total    int
	attack   int
	release  int
}

func newFade(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *fade {
	return &fade{
		streamer: s,
		total:    rate.N(d),
		attack:   rate.N(attack),
		release:  rate.N(release),
	}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := range n {
		gain := 1.0
		if f.position < f.attack {
			gain = float64(f.position) / float64(f.attack)
		}
		if left := f.total - f.position; left < f.release {
			gain = max(float64(left)/float64(f.release), 0)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// note is one shaped tone.
func note(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return newFade(newTone(freq, d, rate), d, 5*time.Millisecond, d/2, rate)
}

// volume scales s by a linear factor; zero or less is silent.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}
