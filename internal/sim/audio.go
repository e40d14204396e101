package sim

import (
	"time"

	"github.com/tomz197/asteroid-arena/internal/config"
)

// Effect identifies a sound the core asks the mixer to play.
type Effect int

const (
	EffectPlayerHit Effect = iota
	EffectAsteroidHit
)

func (e Effect) String() string {
	switch e {
	case EffectPlayerHit:
		return "player-hit"
	case EffectAsteroidHit:
		return "asteroid-hit"
	}
	return "unknown"
}

// Cue is one "play this effect" request.
type Cue struct {
	Effect    Effect
	Amplitude float64       // 0..1
	Decay     time.Duration // Envelope length
}

// AudioChannel is one slot of the cue pool.
type AudioChannel struct {
	Busy bool
	Cue  Cue
}

// AudioChannels is a fixed pool of cue slots shared with the mixer. The core
// fills free slots; the mixer frees them once it has taken the cue.
type AudioChannels [config.AudioChannels]AudioChannel

// Raise writes cue into the first free slot. When every slot is busy the cue
// is dropped and Raise returns false.
func (c *AudioChannels) Raise(cue Cue) bool {
	for i := range c {
		if !c[i].Busy {
			c[i] = AudioChannel{Busy: true, Cue: cue}
			return true
		}
	}
	return false
}

// Drain hands every pending cue to fn in slot order and frees the slots.
func (c *AudioChannels) Drain(fn func(Cue)) {
	for i := range c {
		if c[i].Busy {
			fn(c[i].Cue)
			c[i] = AudioChannel{}
		}
	}
}

// Pending counts busy slots.
func (c *AudioChannels) Pending() int {
	n := 0
	for i := range c {
		if c[i].Busy {
			n++
		}
	}
	return n
}

func playerHitCue() Cue {
	return Cue{Effect: EffectPlayerHit, Amplitude: config.PlayerHitAmplitude, Decay: config.PlayerHitDecay}
}

func asteroidHitCue() Cue {
	return Cue{Effect: EffectAsteroidHit, Amplitude: config.AsteroidHitAmplitude, Decay: config.AsteroidHitDecay}
}
