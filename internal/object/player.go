package object

import (
	"github.com/tomz197/asteroid-arena/internal/config"
	"github.com/tomz197/asteroid-arena/internal/physics"
)

// PlayerState is the life cycle of a ship within a round.
type PlayerState int

const (
	PlayerAlive PlayerState = iota // Flying
	PlayerDying                    // Blast animation running
	PlayerDead                     // Waiting for the round to reset
)

func (s PlayerState) String() string {
	switch s {
	case PlayerAlive:
		return "alive"
	case PlayerDying:
		return "dying"
	case PlayerDead:
		return "dead"
	}
	return "unknown"
}

// Player is a ship slot. Players are created once and reset between rounds.
type Player struct {
	ID         int
	State      PlayerState
	BlastScale float64 // Growing blast circle while Dying
	Intents    Intents // Snapshot for the current frame

	Score    uint
	TopScore uint

	Position    Vec2
	Velocity    Vec2 // Arena units per reference step
	RotationDeg float64

	Bounds physics.Triangle // World-space hull for the current sub-step
	Shot   Shot
}

// NewPlayer creates a living ship at the given pose.
func NewPlayer(id int, pos Vec2, rotationDeg float64) *Player {
	p := &Player{ID: id}
	p.Reset(pos, rotationDeg)
	return p
}

// Alive reports whether the ship is flying.
func (p *Player) Alive() bool { return p.State == PlayerAlive }

// Died reports whether the ship has been hit this round.
func (p *Player) Died() bool { return p.State != PlayerAlive }

// BlastActive reports whether the death animation is still running.
func (p *Player) BlastActive() bool { return p.State == PlayerDying }

// Kill starts the blast animation. Ships that are already down are unaffected.
func (p *Player) Kill() bool {
	if p.State != PlayerAlive {
		return false
	}
	p.State = PlayerDying
	p.BlastScale = 0
	p.Shot.Rest()
	return true
}

// AnimateBlast grows the blast by k reference steps and finishes it at
// config.BlastFinished.
func (p *Player) AnimateBlast(k float64) {
	if p.State != PlayerDying {
		return
	}
	if p.BlastScale < config.BlastFinished {
		p.BlastScale += config.BlastGrowth * k
	}
	if p.BlastScale >= config.BlastFinished {
		p.State = PlayerDead
	}
}

// Reset puts the ship back at a start pose for a new round. Scores are
// handled by the scoreboard.
func (p *Player) Reset(pos Vec2, rotationDeg float64) {
	p.State = PlayerAlive
	p.BlastScale = 0
	p.Intents = Intents{}
	p.Position = pos
	p.Velocity = Vec2{}
	p.RotationDeg = WrapAngle(rotationDeg)
	p.Shot.Rest()
	p.RefreshBounds()
}

// Integrate applies the frame's intents for k reference steps: thrust along
// the facing direction with a per-axis speed cap, drift, turning, wrap, and
// the shot.
func (p *Player) Integrate(k float64, arena config.Arena) {
	if p.State != PlayerAlive {
		return
	}

	dir := Facing(p.RotationDeg)
	if p.Intents.Forward {
		p.Velocity = p.Velocity.Add(dir.Mul(config.PlayerThrust * k))
	}
	if p.Intents.Backward {
		p.Velocity = p.Velocity.Sub(dir.Mul(config.PlayerThrust * k))
	}
	p.Velocity[0] = clampAxis(p.Velocity[0], config.PlayerMaxSpeed)
	p.Velocity[1] = clampAxis(p.Velocity[1], config.PlayerMaxSpeed)

	p.Position = p.Position.Add(p.Velocity.Mul(k))

	if p.Intents.Left {
		p.RotationDeg -= config.PlayerTurnRate * k
	}
	if p.Intents.Right {
		p.RotationDeg += config.PlayerTurnRate * k
	}

	WrapPosition(arena, &p.Position)
	p.RotationDeg = WrapAngle(p.RotationDeg)

	p.Shot.Advance(p.Intents.Shoot, Facing(p.RotationDeg), k)
}

// RefreshBounds recomputes the world-space hull from the pose.
func (p *Player) RefreshBounds() {
	p.Bounds = physics.TransformTriangle(physics.ShipTriangle, p.Position, config.ShipScale, p.RotationDeg)
}

// ShotInFlight reports whether the ship has a live projectile this sub-step.
func (p *Player) ShotInFlight() bool {
	return p.State == PlayerAlive && p.Intents.Shoot && p.Shot.Active
}
