package sim

// buildBounds refreshes world-space triangles for every spawned asteroid and
// living ship. Collision tests always read the current sub-step's bounds.
func (w *World) buildBounds() {
	for i := range w.asteroids {
		if w.asteroids[i].Spawned {
			w.asteroids[i].RefreshBounds()
		}
	}
	for _, p := range w.players {
		if p.Alive() {
			p.RefreshBounds()
		}
	}
}
