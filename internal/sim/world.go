// Package sim is the arena simulation core: a fixed-step integrator, the
// bounds builder, the collision engine and the lifecycle rules, all owned by
// a single World value. It is single-threaded and never blocks.
package sim

import (
	"fmt"

	"github.com/tomz197/asteroid-arena/internal/config"
	"github.com/tomz197/asteroid-arena/internal/object"
)

// World is the simulation context. Components reach entities only through it.
type World struct {
	cfg       config.Simulation
	rng       Random
	players   []*object.Player
	asteroids []object.Asteroid // Fixed pool, len == cfg.AsteroidMax
	spawner   *object.AsteroidSpawner
	audio     AudioChannels
	events    []CollisionEvent // Events of the latest sub-step
	round     int
	simTimeMs float64
}

// Option configures a World.
type Option func(*World)

// WithRandom replaces the seeded random source.
func WithRandom(r Random) Option {
	return func(w *World) {
		w.rng = r
	}
}

// NewWorld validates cfg and starts the first round.
func NewWorld(cfg config.Simulation, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}

	w := &World{
		cfg:       cfg,
		players:   make([]*object.Player, cfg.Players),
		asteroids: make([]object.Asteroid, cfg.AsteroidMax),
		spawner:   object.NewAsteroidSpawner(cfg.SpawnInterval),
		round:     1,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = NewRandom(cfg.Seed)
	}

	for i := range w.players {
		pos, rot := startPose(i, cfg.Players, cfg.Arena)
		w.players[i] = object.NewPlayer(i, pos, rot)
	}
	w.startRound()
	return w, nil
}

// Config returns the session configuration.
func (w *World) Config() config.Simulation { return w.cfg }

// Round returns the current round number, starting at 1.
func (w *World) Round() int { return w.round }

// SimTime returns the total simulated time in milliseconds.
func (w *World) SimTime() float64 { return w.simTimeMs }

// Audio returns the cue pool for the mixer to drain.
func (w *World) Audio() *AudioChannels { return &w.audio }

// Events returns the collision events of the latest sub-step. The slice is
// reused by the next sub-step.
func (w *World) Events() []CollisionEvent { return w.events }

// SetIntents replaces a player's control flags for the coming frame.
// Out-of-range ids are ignored.
func (w *World) SetIntents(player int, intents object.Intents) {
	if player < 0 || player >= len(w.players) {
		return
	}
	w.players[player].Intents = intents
}

// PlayersAlive counts ships that are still flying.
func (w *World) PlayersAlive() int {
	n := 0
	for _, p := range w.players {
		if p.Alive() {
			n++
		}
	}
	return n
}

// AsteroidsSpawned counts occupied pool slots.
func (w *World) AsteroidsSpawned() int {
	n := 0
	for i := range w.asteroids {
		if w.asteroids[i].Spawned {
			n++
		}
	}
	return n
}

// startPose spreads players evenly across the arena's horizontal midline, nose up.
func startPose(id, count int, a config.Arena) (object.Vec2, float64) {
	x := a.Left + a.Width()*float64(id+1)/float64(count+1)
	y := a.Bottom + a.Height()/2
	return object.Vec2{x, y}, 0
}
