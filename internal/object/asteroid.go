package object

import (
	"github.com/tomz197/asteroid-arena/internal/config"
	"github.com/tomz197/asteroid-arena/internal/physics"
)

// AsteroidSize represents the size class of an asteroid.
type AsteroidSize int

const (
	AsteroidSmall  AsteroidSize = 1
	AsteroidMedium AsteroidSize = 2
	AsteroidLarge  AsteroidSize = 3
)

func (s AsteroidSize) String() string {
	switch s {
	case AsteroidSmall:
		return "small"
	case AsteroidMedium:
		return "medium"
	case AsteroidLarge:
		return "large"
	}
	return "unknown"
}

// NominalScale returns the spawn scale of a class before the session multiplier.
func NominalScale(size AsteroidSize) float64 {
	switch size {
	case AsteroidLarge:
		return config.AsteroidScaleLarge
	case AsteroidMedium:
		return config.AsteroidScaleMedium
	default:
		return config.AsteroidScaleSmall
	}
}

// NominalMass returns the mass of a class before the session multiplier.
func NominalMass(size AsteroidSize) float64 {
	switch size {
	case AsteroidLarge:
		return config.AsteroidMassLarge
	case AsteroidMedium:
		return config.AsteroidMassMedium
	default:
		return config.AsteroidMassSmall
	}
}

// ClassifyScale maps a continuous scale onto a class using the midpoints
// between nominal class scales, relative to the session multiplier.
func ClassifyScale(scale, multiplier float64) AsteroidSize {
	largeMedium := (config.AsteroidScaleLarge + config.AsteroidScaleMedium) / 2 * multiplier
	mediumSmall := (config.AsteroidScaleMedium + config.AsteroidScaleSmall) / 2 * multiplier
	switch {
	case scale > largeMedium:
		return AsteroidLarge
	case scale > mediumSmall:
		return AsteroidMedium
	default:
		return AsteroidSmall
	}
}

// Latch records which asteroid this one is currently interpenetrating.
// The zero value means "none".
type Latch struct {
	Partner int
	Set     bool
}

// With returns a latch pointing at id.
func With(id int) Latch { return Latch{Partner: id, Set: true} }

// Is reports whether the latch points at id.
func (l Latch) Is(id int) bool { return l.Set && l.Partner == id }

// Asteroid is one slot of the asteroid pool.
type Asteroid struct {
	Spawned       bool
	CollidingWith Latch
	Mass          float64
	Scale         float64
	Position      Vec2
	Velocity      Vec2    // Arena units per reference step
	HeadingDeg    float64 // Direction of travel at spawn or last fragmentation
	RotationDeg   float64
	RotationSpeed float64 // Degrees per reference step

	// World-space outline and triangles for the current sub-step only.
	Vertices [8]Vec2
	Bounds   [6]physics.Triangle
}

// Motion is the randomized part of a spawn.
type Motion struct {
	HeadingDeg    float64
	Speed         float64
	RotationDeg   float64
	RotationSpeed float64
}

// Spawn (re)initializes the slot as a live asteroid of the given class.
func (a *Asteroid) Spawn(pos Vec2, size AsteroidSize, m Motion, scaleMul, massMul float64) {
	*a = Asteroid{
		Spawned:  true,
		Mass:     NominalMass(size) * massMul,
		Scale:    NominalScale(size) * scaleMul,
		Position: pos,
	}
	a.Redirect(m)
	a.RotationDeg = WrapAngle(m.RotationDeg)
}

// Redirect replaces heading, velocity and rotation speed, keeping the pose.
func (a *Asteroid) Redirect(m Motion) {
	a.HeadingDeg = WrapAngle(m.HeadingDeg)
	a.Velocity = Facing(a.HeadingDeg).Mul(m.Speed)
	a.RotationSpeed = m.RotationSpeed
}

// Shrink drops the asteroid to the given smaller class.
func (a *Asteroid) Shrink(size AsteroidSize, scaleMul, massMul float64) {
	a.Scale = NominalScale(size) * scaleMul
	a.Mass = NominalMass(size) * massMul
}

// Despawn frees the slot. The caller is responsible for clearing a partner's
// latch that points back here.
func (a *Asteroid) Despawn() {
	a.Spawned = false
	a.CollidingWith = Latch{}
}

// Integrate advances the asteroid by k reference steps: constant velocity,
// arena wrap and spin.
func (a *Asteroid) Integrate(k float64, arena config.Arena) {
	a.Position = a.Position.Add(a.Velocity.Mul(k))
	WrapPosition(arena, &a.Position)
	a.RotationDeg = WrapAngle(a.RotationDeg + a.RotationSpeed*k)
}

// RefreshBounds recomputes the world-space outline and triangles from the pose.
func (a *Asteroid) RefreshBounds() {
	for i, v := range physics.AsteroidVertices {
		a.Vertices[i] = physics.TransformPoint(v, a.Position, a.Scale, a.RotationDeg)
	}
	for i, idx := range physics.AsteroidTriangles {
		a.Bounds[i] = physics.Triangle{a.Vertices[idx[0]], a.Vertices[idx[1]], a.Vertices[idx[2]]}
	}
}

// Tips returns the world-space spike vertices.
func (a *Asteroid) Tips() [3]Vec2 {
	var tips [3]Vec2
	for i, idx := range physics.AsteroidTips {
		tips[i] = a.Vertices[idx]
	}
	return tips
}
