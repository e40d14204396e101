// Package object holds the arena entities: asteroids, player ships and their shots.
// Entities integrate their own kinematics; cross-entity rules live in package sim.
package object

import (
	"math"

	"github.com/tomz197/asteroid-arena/internal/config"
	"github.com/tomz197/asteroid-arena/internal/input"
	"github.com/tomz197/asteroid-arena/internal/physics"
)

// Intents is an alias for the input package's per-ship control flags.
type Intents = input.Intents

// Vec2 is an alias for the physics vector type.
type Vec2 = physics.Vec2

// WrapPosition moves a point that left the arena to just inside the opposite
// edge (Asteroids-style). Points inside the arena are untouched.
func WrapPosition(a config.Arena, p *Vec2) {
	switch {
	case p[0] > a.Right:
		p[0] = a.Left + config.WrapEpsilon
	case p[0] < a.Left:
		p[0] = a.Right - config.WrapEpsilon
	}
	switch {
	case p[1] > a.Top:
		p[1] = a.Bottom + config.WrapEpsilon
	case p[1] < a.Bottom:
		p[1] = a.Top - config.WrapEpsilon
	}
}

// WrapAngle normalizes degrees into [0, 360).
func WrapAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// Facing returns the unit direction for a rotation in degrees.
// Rotation 0 faces +Y and positive angles turn clockwise, matching
// physics.TransformPoint.
func Facing(rotationDeg float64) Vec2 {
	rad := rotationDeg * math.Pi / 180
	return Vec2{math.Sin(rad), math.Cos(rad)}
}

// clampAxis limits v to [-limit, limit].
func clampAxis(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
