package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/asteroid-arena/internal/sim"
)

// Mixer plays cues on top of each other. It is itself a beep.Streamer, so it
// can feed the system speaker or be read directly.
type Mixer struct {
	synth  *Synth
	logger *log.Logger

	mu  sync.Mutex
	mix beep.Mixer
}

// NewMixer returns an empty mixer. A nil logger discards warnings.
func NewMixer(synth *Synth, logger *log.Logger) *Mixer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Mixer{synth: synth, logger: logger}
}

// Play starts cue. Cues that cannot be synthesized are logged and skipped.
func (m *Mixer) Play(cue sim.Cue) {
	s, err := m.synth.Streamer(cue)
	if err != nil {
		m.logger.Warn("Skipping audio cue", "effect", cue.Effect, "error", err)
		return
	}

	m.mu.Lock()
	m.mix.Add(s)
	m.mu.Unlock()
}

// Active returns the number of cues still sounding.
func (m *Mixer) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mix.Len()
}

// Stream mixes every active cue into samples. It never ends; with nothing
// playing it yields silence.
func (m *Mixer) Stream(samples [][2]float64) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mix.Stream(samples)
}

func (m *Mixer) Err() error { return nil }

// Speaker is a Mixer attached to the system audio device.
type Speaker struct {
	*Mixer
}

// OpenSpeaker initializes the audio device and starts playing an empty mixer.
func OpenSpeaker(logger *log.Logger) (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	s := &Speaker{Mixer: NewMixer(NewSynth(SampleRate), logger)}
	speaker.Play(s.Mixer)
	return s, nil
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	speaker.Clear()
	speaker.Close()
}
