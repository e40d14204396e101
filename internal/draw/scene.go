package draw

import (
	"github.com/tomz197/asteroid-arena/internal/object"
	"github.com/tomz197/asteroid-arena/internal/physics"
	"github.com/tomz197/asteroid-arena/internal/sim"
)

// Scene draws every visible entity of a snapshot onto the canvas.
func (c *Canvas) Scene(s *sim.Snapshot) {
	var outline [len(physics.AsteroidVertices)]physics.Vec2
	for _, a := range s.Asteroids {
		if !a.Visible {
			continue
		}
		for i, v := range physics.AsteroidVertices {
			outline[i] = physics.TransformPoint(v, a.Position, a.Scale, a.RotationDeg)
		}
		c.Polygon(outline[:], false)
	}

	for _, p := range s.Players {
		c.Player(p)
	}
}

// Player draws a ship with its shot, or its blast while it is dying.
func (c *Canvas) Player(p sim.PlayerPose) {
	switch p.State {
	case object.PlayerAlive:
		hull := physics.TransformTriangle(physics.ShipTriangle, p.Position, p.Scale, p.RotationDeg)
		c.Polygon(hull[:], p.ID == 0)
		if p.ShotVisible {
			// The display offset is in the ship's frame, so it turns with the ship.
			c.Dot(physics.TransformPoint(p.ShotDisplay, p.Position, 1, p.RotationDeg))
		}
	case object.PlayerDying:
		c.Circle(p.Position, p.BlastScale*p.Scale)
	}
}
