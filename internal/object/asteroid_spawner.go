package object

// AsteroidSpawner is the periodic spawn timer. It counts simulated
// milliseconds and fires once each time the interval is exceeded.
type AsteroidSpawner struct {
	interval float64
	elapsed  float64
}

// NewAsteroidSpawner creates a timer with the given interval in milliseconds.
// A zero interval disables it.
func NewAsteroidSpawner(intervalMs float64) *AsteroidSpawner {
	if intervalMs < 0 {
		intervalMs = 0
	}
	return &AsteroidSpawner{interval: intervalMs}
}

// Enabled reports whether the timer ever fires.
func (s *AsteroidSpawner) Enabled() bool {
	return s.interval > 0
}

// Tick adds stepMs of simulated time and reports whether a spawn is due.
func (s *AsteroidSpawner) Tick(stepMs float64) bool {
	if !s.Enabled() {
		return false
	}
	s.elapsed += stepMs
	if s.elapsed > s.interval {
		s.elapsed = 0
		return true
	}
	return false
}

// Reset restarts the interval, e.g. at a round boundary.
func (s *AsteroidSpawner) Reset() {
	s.elapsed = 0
}
