package sim

import (
	"github.com/tomz197/asteroid-arena/internal/config"
	"github.com/tomz197/asteroid-arena/internal/object"
)

// AsteroidPose is what a renderer needs to draw one pool slot.
type AsteroidPose struct {
	ID          int
	Visible     bool
	Position    object.Vec2
	RotationDeg float64
	Scale       float64
	Size        object.AsteroidSize
}

// PlayerPose is what a renderer needs to draw one ship, its blast and its shot.
type PlayerPose struct {
	ID          int
	State       object.PlayerState
	Position    object.Vec2
	RotationDeg float64
	Scale       float64
	BlastScale  float64
	ShotVisible bool
	ShotWorld   object.Vec2 // Arena coordinates
	ShotDisplay object.Vec2 // Ship frame, drawn with the ship's rotation
	Score       uint
	TopScore    uint
}

// Snapshot is an immutable copy of the world after a frame.
type Snapshot struct {
	Round     int
	Arena     config.Arena
	Asteroids []AsteroidPose
	Players   []PlayerPose
	SimTimeMs float64
}

// Snapshot copies the current poses and scores. The result shares no memory
// with the world and is safe to hand to another goroutine.
func (w *World) Snapshot() *Snapshot {
	s := &Snapshot{
		Round:     w.round,
		Arena:     w.cfg.Arena,
		Asteroids: make([]AsteroidPose, len(w.asteroids)),
		Players:   make([]PlayerPose, len(w.players)),
		SimTimeMs: w.simTimeMs,
	}

	for i := range w.asteroids {
		a := &w.asteroids[i]
		s.Asteroids[i] = AsteroidPose{
			ID:          i,
			Visible:     a.Spawned,
			Position:    a.Position,
			RotationDeg: a.RotationDeg,
			Scale:       a.Scale,
			Size:        object.ClassifyScale(a.Scale, w.cfg.AsteroidScale),
		}
	}

	for i, p := range w.players {
		s.Players[i] = PlayerPose{
			ID:          i,
			State:       p.State,
			Position:    p.Position,
			RotationDeg: p.RotationDeg,
			Scale:       config.ShipScale,
			BlastScale:  p.BlastScale,
			ShotVisible: p.ShotInFlight(),
			ShotWorld:   p.Shot.WorldPosition(p.Position),
			ShotDisplay: p.Shot.Display,
			Score:       p.Score,
			TopScore:    p.TopScore,
		}
	}
	return s
}

// Visible counts asteroids on screen.
func (s *Snapshot) Visible() int {
	n := 0
	for _, a := range s.Asteroids {
		if a.Visible {
			n++
		}
	}
	return n
}
