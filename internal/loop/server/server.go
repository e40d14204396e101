package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroid-arena/internal/config"
	"github.com/tomz197/asteroid-arena/internal/object"
	"github.com/tomz197/asteroid-arena/internal/sim"
)

// ErrArenaFull is returned by Join when every ship is taken.
var ErrArenaFull = errors.New("arena full")

// Arena is the interface clients use to talk to the host. It decouples the
// client from the concrete Server so tests can drive it with a fake.
type Arena interface {
	Join(name string) (*PlayerHandle, error)
	Leave(slot int)
	SendIntents(slot int, intents object.Intents)
	Snapshot() *sim.Snapshot
}

// AudioSink plays the cues raised by the simulation.
type AudioSink interface {
	Play(cue sim.Cue)
}

// Server owns the world and runs it on its own goroutine. Clients only see
// published snapshots.
type Server struct {
	world     *sim.World
	worldOpts []sim.Option
	logger    *log.Logger
	audio     AudioSink
	snapshot  atomic.Pointer[sim.Snapshot]
	intentCh  chan slotIntents

	mu    sync.RWMutex
	slots []*PlayerHandle // nil = free seat

	// Owned by the loop goroutine.
	intents []object.Intents
	round   int
}

// Compile-time check that Server implements Arena.
var _ Arena = (*Server)(nil)

type slotIntents struct {
	slot    int
	intents object.Intents
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithAudio routes simulation cues to sink. Without it cues are discarded.
func WithAudio(sink AudioSink) Option {
	return func(s *Server) { s.audio = sink }
}

// WithWorldOptions passes options through to the simulation.
func WithWorldOptions(opts ...sim.Option) Option {
	return func(s *Server) { s.worldOpts = append(s.worldOpts, opts...) }
}

// NewServer creates a host for an arena configuration.
func NewServer(cfg config.Simulation, opts ...Option) (*Server, error) {
	s := &Server{
		logger:   log.New(io.Discard),
		intentCh: make(chan slotIntents, 256),
	}
	for _, opt := range opts {
		opt(s)
	}

	world, err := sim.NewWorld(cfg, s.worldOpts...)
	if err != nil {
		return nil, fmt.Errorf("new server: %w", err)
	}
	s.world = world
	s.slots = make([]*PlayerHandle, cfg.Players)
	s.intents = make([]object.Intents, cfg.Players)
	s.round = world.Round()
	s.snapshot.Store(world.Snapshot())
	return s, nil
}

// Run ticks the simulation at config.ServerTickRate. Blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) {
	s.logger.Info("Arena started", "players", len(s.slots), "tick", config.ServerTickTime)
	defer s.logger.Info("Arena stopped")

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		frameStart := time.Now()
		s.Step(frameMillis(frameStart.Sub(last)))
		last = frameStart

		if elapsed := time.Since(frameStart); elapsed < config.ServerTickTime {
			time.Sleep(config.ServerTickTime - elapsed)
		}
	}
}

// frameMillis converts a wall-clock frame to milliseconds, capped at
// config.MaxFrameMs.
func frameMillis(d time.Duration) float64 {
	return min(float64(d)/float64(time.Millisecond), config.MaxFrameMs)
}

// Step advances the world by frameMs of real time and publishes a snapshot.
// It must only be called from one goroutine; Run does so.
func (s *Server) Step(frameMs float64) {
	s.collectIntents()
	for slot, in := range s.intents {
		s.world.SetIntents(slot, in)
	}

	s.world.Advance(frameMs)
	s.drainAudio()

	if r := s.world.Round(); r != s.round {
		s.round = r
		s.logger.Info("Round reset", "round", r, "scores", s.world.Scoreboard())
		s.broadcast(Event{Type: EventRoundReset, Round: r})
	}

	s.snapshot.Store(s.world.Snapshot())
}

// collectIntents applies the latest intents per seat. Free seats fly with
// no input.
func (s *Server) collectIntents() {
drain:
	for {
		select {
		case si := <-s.intentCh:
			if si.slot >= 0 && si.slot < len(s.intents) {
				s.intents[si.slot] = si.intents
			}
		default:
			break drain
		}
	}

	s.mu.RLock()
	for slot, h := range s.slots {
		if h == nil {
			s.intents[slot] = object.Intents{}
		}
	}
	s.mu.RUnlock()
}

func (s *Server) drainAudio() {
	channels := s.world.Audio()
	if s.audio == nil {
		channels.Drain(func(sim.Cue) {})
		return
	}
	channels.Drain(s.audio.Play)
}

// Join claims the first free seat.
func (s *Server) Join(name string) (*PlayerHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for slot, h := range s.slots {
		if h != nil {
			continue
		}
		h = &PlayerHandle{
			Slot:     slot,
			Name:     name,
			EventsCh: make(chan Event, 16),
		}
		s.slots[slot] = h
		s.logger.Info("Player joined", "name", name, "slot", slot)
		return h, nil
	}
	return nil, fmt.Errorf("join %q: %w", name, ErrArenaFull)
}

// Leave frees a seat and closes its event channel.
func (s *Server) Leave(slot int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slot < 0 || slot >= len(s.slots) || s.slots[slot] == nil {
		return
	}
	h := s.slots[slot]
	close(h.EventsCh)
	s.slots[slot] = nil
	s.logger.Info("Player left", "name", h.Name, "slot", slot)
}

// SendIntents queues a seat's control flags for the next tick. Input is
// dropped when the queue is full.
func (s *Server) SendIntents(slot int, intents object.Intents) {
	select {
	case s.intentCh <- slotIntents{slot: slot, intents: intents}:
	default:
	}
}

// Snapshot returns the latest published world state.
func (s *Server) Snapshot() *sim.Snapshot {
	return s.snapshot.Load()
}

// Occupied counts taken seats.
func (s *Server) Occupied() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, h := range s.slots {
		if h != nil {
			n++
		}
	}
	return n
}

// Shutdown notifies every client and waits up to timeout for them to leave.
// The caller should cancel the Run context afterwards.
func (s *Server) Shutdown(timeout time.Duration) {
	s.broadcast(Event{Type: EventServerShutdown})

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for s.Occupied() > 0 {
		select {
		case <-deadline:
			s.logger.Warn("Shutdown timed out", "remaining", s.Occupied())
			return
		case <-ticker.C:
		}
	}
}

func (s *Server) broadcast(ev Event) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, h := range s.slots {
		if h == nil {
			continue
		}
		select {
		case h.EventsCh <- ev:
		default:
		}
	}
}
