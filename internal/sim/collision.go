package sim

import (
	"github.com/tomz197/asteroid-arena/internal/object"
	"github.com/tomz197/asteroid-arena/internal/physics"
)

// EventKind classifies a collision event.
type EventKind int

const (
	PlayerPlayer EventKind = iota
	AsteroidPlayer
	ProjectileAsteroid
	ProjectilePlayer
	AsteroidAsteroid
)

func (k EventKind) String() string {
	switch k {
	case PlayerPlayer:
		return "player-player"
	case AsteroidPlayer:
		return "asteroid-player"
	case ProjectileAsteroid:
		return "projectile-asteroid"
	case ProjectilePlayer:
		return "projectile-player"
	case AsteroidAsteroid:
		return "asteroid-asteroid"
	}
	return "unknown"
}

// CollisionEvent is one resolved overlap of the current sub-step.
//
// A and B are pool indices: players for PlayerPlayer, asteroid then player for
// AsteroidPlayer, shooter then target for the projectile kinds, and both
// asteroids for AsteroidAsteroid. VelA and VelB carry the pre-collision
// velocities of an AsteroidAsteroid pair.
type CollisionEvent struct {
	Kind EventKind
	A, B int
	VelA object.Vec2
	VelB object.Vec2
}

// collide runs every pair test against the bounds built this sub-step.
func (w *World) collide() {
	w.collidePlayers()
	w.collideAsteroidsWithPlayers()
	w.collideShots()
	if w.cfg.Physics {
		w.collideAsteroids()
	}
}

func (w *World) emit(ev CollisionEvent) {
	w.events = append(w.events, ev)
}

// collidePlayers kills both ships when any hull vertex of one lies inside the other.
func (w *World) collidePlayers() {
	if !w.cfg.FriendlyFire || w.PlayersAlive() < 2 {
		return
	}

	for l, pl := range w.players {
		for i, pi := range w.players {
			if l == i || !pl.Alive() || !pi.Alive() {
				continue
			}
			hit := physics.AnyPointInTriangles(pl.Bounds[:], []physics.Triangle{pi.Bounds}) ||
				physics.AnyPointInTriangles(pi.Bounds[:], []physics.Triangle{pl.Bounds})
			if !hit {
				continue
			}
			pl.Kill()
			pi.Kill()
			w.audio.Raise(playerHitCue())
			w.emit(CollisionEvent{Kind: PlayerPlayer, A: l, B: i})
		}
	}
}

// collideAsteroidsWithPlayers tests asteroid spikes against the ship hull and
// the ship's vertices against the asteroid body.
func (w *World) collideAsteroidsWithPlayers() {
	for pid, p := range w.players {
		if !p.Alive() {
			continue
		}
		hull := []physics.Triangle{p.Bounds}
		for aid := range w.asteroids {
			a := &w.asteroids[aid]
			if !a.Spawned {
				continue
			}
			tips := a.Tips()
			if !physics.AnyPointInTriangles(tips[:], hull) &&
				!physics.AnyPointInTriangles(p.Bounds[:], a.Bounds[:]) {
				continue
			}
			p.Kill()
			w.audio.Raise(playerHitCue())
			w.emit(CollisionEvent{Kind: AsteroidPlayer, A: aid, B: pid})
			break
		}
	}
}

// collideShots tests every projectile in flight against other ships and the
// asteroid field. A shot stops at its first hit.
func (w *World) collideShots() {
	for sid, shooter := range w.players {
		if !shooter.ShotInFlight() {
			continue
		}
		pos := []physics.Vec2{shooter.Shot.WorldPosition(shooter.Position)}

		if w.shotHitsPlayer(sid, pos) {
			continue
		}

		for aid := range w.asteroids {
			a := &w.asteroids[aid]
			if !a.Spawned || !physics.AnyPointInTriangles(pos, a.Bounds[:]) {
				continue
			}
			shooter.Shot.Rest()
			w.audio.Raise(asteroidHitCue())
			w.award(shooter, object.ClassifyScale(a.Scale, w.cfg.AsteroidScale))
			w.emit(CollisionEvent{Kind: ProjectileAsteroid, A: sid, B: aid})
			w.fragment(aid)
			break
		}
	}
}

func (w *World) shotHitsPlayer(sid int, pos []physics.Vec2) bool {
	if !w.cfg.FriendlyFire {
		return false
	}
	shooter := w.players[sid]
	for tid, target := range w.players {
		if tid == sid || !target.Alive() {
			continue
		}
		if !physics.AnyPointInTriangles(pos, []physics.Triangle{target.Bounds}) {
			continue
		}
		shooter.Shot.Rest()
		target.Kill()
		w.audio.Raise(playerHitCue())
		w.emit(CollisionEvent{Kind: ProjectilePlayer, A: sid, B: tid})
		return true
	}
	return false
}

// collideAsteroids bounces overlapping asteroid pairs once per contact.
func (w *World) collideAsteroids() {
	for i := range w.asteroids {
		ai := &w.asteroids[i]
		for k := 0; k < i; k++ {
			ak := &w.asteroids[k]
			if !ai.Spawned || !ak.Spawned {
				continue
			}

			if !asteroidsOverlap(ak, ai) {
				if ak.CollidingWith.Is(i) {
					w.unlatch(k, i)
				}
				continue
			}
			if ak.CollidingWith.Is(i) {
				continue
			}

			w.latch(k, i)
			vk, vi := ak.Velocity, ai.Velocity
			ak.Velocity, ai.Velocity = bounce(ak.Mass, vk, ai.Mass, vi)
			w.emit(CollisionEvent{Kind: AsteroidAsteroid, A: k, B: i, VelA: vk, VelB: vi})
		}
	}
}

// asteroidsOverlap reports whether any outline vertex of a lies inside b's
// body. Only a's vertices are tested.
func asteroidsOverlap(a, b *object.Asteroid) bool {
	return physics.AnyPointInTriangles(a.Vertices[:], b.Bounds[:])
}

// bounce applies the one-dimensional elastic collision formula to each axis
// independently, from the pre-collision velocities.
func bounce(m1 float64, v1 object.Vec2, m2 float64, v2 object.Vec2) (object.Vec2, object.Vec2) {
	var out1, out2 object.Vec2
	sum := m1 + m2
	for axis := range 2 {
		out1[axis] = ((m1-m2)*v1[axis] + 2*m2*v2[axis]) / sum
		out2[axis] = ((m2-m1)*v2[axis] + 2*m1*v1[axis]) / sum
	}
	return out1, out2
}

// latch pairs k and i, first releasing any partner either side still points at.
func (w *World) latch(k, i int) {
	w.release(k)
	w.release(i)
	w.asteroids[k].CollidingWith = object.With(i)
	w.asteroids[i].CollidingWith = object.With(k)
}

func (w *World) unlatch(k, i int) {
	w.asteroids[k].CollidingWith = object.Latch{}
	w.asteroids[i].CollidingWith = object.Latch{}
}

// release clears id's latch and its partner's back-pointer.
func (w *World) release(id int) {
	l := w.asteroids[id].CollidingWith
	if !l.Set {
		return
	}
	if p := &w.asteroids[l.Partner]; p.CollidingWith.Is(id) {
		p.CollidingWith = object.Latch{}
	}
	w.asteroids[id].CollidingWith = object.Latch{}
}
