package object

import (
	"github.com/tomz197/asteroid-arena/internal/config"
	"github.com/tomz197/asteroid-arena/internal/physics"
)

// Muzzle is the distance from the ship's center to its nose in arena units.
var Muzzle = physics.ShipTriangle[0].Y() * config.ShipScale

// Shot is a ship's single projectile, stored relative to its owner.
//
// Display is in the ship's own frame (the renderer draws it with the ship's
// rotation), so it only ever moves along +Y. Sim is the same offset in arena
// orientation along the direction the ship faced when it fired; collision
// uses Sim with a zero rotation.
type Shot struct {
	Display Vec2
	Sim     Vec2
	Dir     Vec2
	Active  bool
}

// Rest puts the shot back at the muzzle.
func (s *Shot) Rest() {
	*s = Shot{Display: Vec2{0, Muzzle}}
}

// Distance returns how far the shot has travelled from the muzzle.
func (s *Shot) Distance() float64 {
	return s.Display.Y() - Muzzle
}

// Advance moves the shot k reference steps while shoot is held and it is
// within range; otherwise the shot returns to rest. A rested shot fires
// along facing on the next advance with shoot held.
func (s *Shot) Advance(shoot bool, facing Vec2, k float64) {
	if !shoot || s.Distance() >= config.ShotRange {
		s.Rest()
		return
	}
	if !s.Active {
		s.Active = true
		s.Dir = facing
		s.Display = Vec2{0, Muzzle}
		s.Sim = facing.Mul(Muzzle)
	}
	s.Display = s.Display.Add(Vec2{0, config.ShotSpeed * k})
	s.Sim = s.Sim.Add(s.Dir.Mul(config.ShotSpeed * k))
}

// WorldPosition returns the projectile in arena coordinates for an owner at ownerPos.
func (s *Shot) WorldPosition(ownerPos Vec2) Vec2 {
	return physics.TransformPoint(s.Sim, ownerPos, 1, 0)
}
