package sim

import (
	"github.com/tomz197/asteroid-arena/internal/config"
	"github.com/tomz197/asteroid-arena/internal/object"
)

const (
	spawnHeadingMin = 30.0  // Timed spawns enter from the left edge
	spawnHeadingMax = 150.0 // heading somewhere to the right
)

// updateLifecycle runs the spawn timer and the round-reset check.
func (w *World) updateLifecycle(stepMs float64) {
	if w.spawner.Tick(stepMs) {
		w.spawnTimed()
	}
	if w.roundOver() {
		w.resetRound()
	}
}

// fragment resolves a projectile hit on asteroid id: small asteroids are
// destroyed, larger ones drop one class with fresh motion and may split.
func (w *World) fragment(id int) {
	a := &w.asteroids[id]
	size := object.ClassifyScale(a.Scale, w.cfg.AsteroidScale)
	if size == object.AsteroidSmall {
		w.despawn(id)
		return
	}

	next := size - 1
	w.release(id)
	a.Shrink(next, w.cfg.AsteroidScale, w.cfg.AsteroidMass)
	a.Redirect(w.randomMotion())
	a.RefreshBounds()

	if !chance(w.rng, 0.5) {
		return
	}
	slot := w.freeSlot()
	if slot < 0 {
		return
	}
	w.spawnAsteroid(slot, a.Position, next, w.randomMotion())
}

// spawnTimed drops a Medium or Large asteroid in at the left edge.
func (w *World) spawnTimed() {
	slot := w.freeSlot()
	if slot < 0 {
		return
	}

	size := object.AsteroidMedium
	if chance(w.rng, 0.5) {
		size = object.AsteroidLarge
	}
	arena := w.cfg.Arena
	pos := object.Vec2{arena.Left, between(w.rng, arena.Bottom, arena.Top)}
	m := w.randomMotion()
	m.HeadingDeg = between(w.rng, spawnHeadingMin, spawnHeadingMax)
	w.spawnAsteroid(slot, pos, size, m)
}

// startRound fills the first AsteroidInitial slots with a fresh field.
func (w *World) startRound() {
	arena := w.cfg.Arena
	for i := range w.asteroids {
		if i >= w.cfg.AsteroidInitial {
			w.despawn(i)
			continue
		}
		pos := object.Vec2{
			between(w.rng, arena.Left, arena.Right),
			between(w.rng, arena.Bottom, arena.Top),
		}
		w.spawnAsteroid(i, pos, w.randomSize(), w.randomMotion())
	}
	w.spawner.Reset()
}

// roundOver reports whether every ship is down with its blast finished.
func (w *World) roundOver() bool {
	for _, p := range w.players {
		if p.Alive() || p.BlastActive() {
			return false
		}
	}
	return true
}

// resetRound folds scores, puts ships back on their marks and respawns the field.
func (w *World) resetRound() {
	w.foldScores()
	for i, p := range w.players {
		pos, rot := startPose(i, len(w.players), w.cfg.Arena)
		p.Reset(pos, rot)
	}
	w.startRound()
	w.round++
}

func (w *World) spawnAsteroid(slot int, pos object.Vec2, size object.AsteroidSize, m object.Motion) {
	w.release(slot)
	a := &w.asteroids[slot]
	a.Spawn(pos, size, m, w.cfg.AsteroidScale, w.cfg.AsteroidMass)
	a.RefreshBounds()
}

// despawn frees a slot and clears any latch pointing at it.
func (w *World) despawn(id int) {
	w.release(id)
	w.asteroids[id].Despawn()
}

// freeSlot returns the first unspawned pool index or -1 when the pool is full.
func (w *World) freeSlot() int {
	for i := range w.asteroids {
		if !w.asteroids[i].Spawned {
			return i
		}
	}
	return -1
}

// randomSize draws a round-start class: half Small, a quarter each Medium and Large.
func (w *World) randomSize() object.AsteroidSize {
	r := w.rng.Float64()
	switch {
	case r < 0.5:
		return object.AsteroidSmall
	case r < 0.75:
		return object.AsteroidMedium
	default:
		return object.AsteroidLarge
	}
}

func (w *World) randomMotion() object.Motion {
	return object.Motion{
		HeadingDeg:    between(w.rng, 0, 360),
		Speed:         between(w.rng, config.AsteroidMinSpeed, config.AsteroidMaxSpeed),
		RotationDeg:   between(w.rng, 0, 360),
		RotationSpeed: between(w.rng, -config.AsteroidMaxSpin, config.AsteroidMaxSpin),
	}
}
