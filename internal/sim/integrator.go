package sim

import (
	"math"

	"github.com/tomz197/asteroid-arena/internal/config"
)

// Advance runs the simulation for frameMs of real time in fixed sub-steps of
// at most config.TargetStepMs and returns the number of sub-steps taken.
//
// A trailing remainder shorter than half a step is dropped when it follows a
// full step. Every sub-step sees the same intents.
func (w *World) Advance(frameMs float64) int {
	if !(frameMs > 0) {
		return 0
	}

	steps := 0
	fullStep := false
	for frameMs > 0 {
		step := math.Min(frameMs, config.TargetStepMs)
		if fullStep && step < config.TargetStepMs/2 {
			break
		}
		fullStep = step >= config.TargetStepMs
		frameMs -= step

		w.subStep(step)
		steps++
	}
	return steps
}

// subStep is one integrate → bounds → collide → lifecycle pass.
func (w *World) subStep(stepMs float64) {
	k := stepMs / config.TargetStepMs
	w.simTimeMs += stepMs
	w.events = w.events[:0]

	w.integrate(k)
	w.buildBounds()
	if w.PlayersAlive() > 0 {
		w.collide()
	}
	w.updateLifecycle(stepMs)
}

// integrate advances every entity by k reference steps. Ships that are down
// only advance their blast animation.
func (w *World) integrate(k float64) {
	for _, p := range w.players {
		if p.Alive() {
			p.Integrate(k, w.cfg.Arena)
		} else {
			p.AnimateBlast(k)
		}
	}

	for i := range w.asteroids {
		a := &w.asteroids[i]
		if a.Spawned {
			a.Integrate(k, w.cfg.Arena)
		}
	}
}
