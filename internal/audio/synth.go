// Package audio turns simulation cues into sound with beep.
package audio

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/tomz197/asteroid-arena/internal/sim"
)

// SampleRate is the output rate of every synthesized effect.
const SampleRate = beep.SampleRate(44100)

const thudFrequency = 110.0 // Hz

// Synth builds one-shot streamers for cues.
type Synth struct {
	rate beep.SampleRate
	rng  *rand.Rand
}

// NewSynth returns a synth producing samples at rate.
func NewSynth(rate beep.SampleRate) *Synth {
	return &Synth{
		rate: rate,
		rng:  rand.New(rand.NewPCG(1, 2)),
	}
}

// Streamer returns a finite streamer for cue: a noise burst for a ship hit,
// a low sine thud for an asteroid hit. Both fade out linearly over the cue's
// decay and are scaled by its amplitude.
func (s *Synth) Streamer(cue sim.Cue) (beep.Streamer, error) {
	length := s.rate.N(cue.Decay)
	if length <= 0 {
		return nil, fmt.Errorf("cue %v: decay %v is shorter than one sample", cue.Effect, cue.Decay)
	}

	var src beep.Streamer
	switch cue.Effect {
	case sim.EffectPlayerHit:
		src = &noise{rng: s.rng}
	case sim.EffectAsteroidHit:
		tone, err := generators.SineTone(s.rate, thudFrequency)
		if err != nil {
			return nil, fmt.Errorf("cue %v: %w", cue.Effect, err)
		}
		src = tone
	default:
		return nil, fmt.Errorf("unknown effect %d", cue.Effect)
	}

	return gain(&decay{streamer: src, total: length}, cue.Amplitude), nil
}

// noise is an endless white noise source.
type noise struct {
	rng *rand.Rand
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := n.rng.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (n *noise) Err() error { return nil }

// decay fades its source from full volume to silence over total samples and
// then ends the stream.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	remaining := d.total - d.position
	if remaining <= 0 {
		return 0, false
	}
	if len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok := d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(d.position)/float64(d.total)
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// gain scales s linearly; zero or negative amplitude is silence.
func gain(s beep.Streamer, amplitude float64) beep.Streamer {
	if amplitude <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(amplitude)}
}
