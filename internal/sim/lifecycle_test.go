package sim

import (
	"testing"

	"github.com/tomz197/asteroid-arena/internal/config"
	"github.com/tomz197/asteroid-arena/internal/object"
)

func TestFragmentationShrinksUntilGone(t *testing.T) {
	// 0.9 never wins the split roll.
	rng := &scriptedRandom{values: []float64{0.9}}
	w := newTestWorld(t, testConfig(), WithRandom(rng))
	a := place(w, 0, object.Vec2{0.5, 0.5}, object.AsteroidLarge)

	want := []object.AsteroidSize{object.AsteroidMedium, object.AsteroidSmall}
	prev := a.Scale
	for _, size := range want {
		w.fragment(0)
		if !a.Spawned {
			t.Fatalf("despawned early, want %v", size)
		}
		if got := object.ClassifyScale(a.Scale, w.cfg.AsteroidScale); got != size {
			t.Errorf("class = %v, want %v", got, size)
		}
		if a.Scale >= prev {
			t.Errorf("scale grew from %v to %v", prev, a.Scale)
		}
		prev = a.Scale
	}

	w.fragment(0)
	if a.Spawned {
		t.Error("small asteroid should despawn")
	}
	if w.AsteroidsSpawned() != 0 {
		t.Errorf("%d asteroids left, want 0", w.AsteroidsSpawned())
	}
}

func TestFragmentationSplit(t *testing.T) {
	// 0.1 always wins the split roll.
	rng := &scriptedRandom{values: []float64{0.1}}
	w := newTestWorld(t, testConfig(), WithRandom(rng))
	place(w, 0, object.Vec2{0.5, 0.5}, object.AsteroidLarge)

	w.fragment(0)

	if w.AsteroidsSpawned() != 2 {
		t.Fatalf("spawned = %d, want 2", w.AsteroidsSpawned())
	}
	child := &w.asteroids[1]
	if got := object.ClassifyScale(child.Scale, w.cfg.AsteroidScale); got != object.AsteroidMedium {
		t.Errorf("child class = %v, want medium", got)
	}
	if !near(child.Position, w.asteroids[0].Position) {
		t.Errorf("child at %v, parent at %v", child.Position, w.asteroids[0].Position)
	}
}

func TestFragmentationSplitWithFullPool(t *testing.T) {
	rng := &scriptedRandom{values: []float64{0.1}}
	cfg := testConfig()
	cfg.AsteroidMax = 1
	w := newTestWorld(t, cfg, WithRandom(rng))
	place(w, 0, object.Vec2{0.5, 0.5}, object.AsteroidMedium)

	w.fragment(0)
	if w.AsteroidsSpawned() != 1 {
		t.Errorf("spawned = %d, want 1", w.AsteroidsSpawned())
	}
}

func TestFragmentationClearsLatch(t *testing.T) {
	rng := &scriptedRandom{values: []float64{0.9}}
	w := newTestWorld(t, testConfig(), WithRandom(rng))
	place(w, 0, object.Vec2{0.5, 0.5}, object.AsteroidLarge)
	place(w, 1, object.Vec2{0.6, 0.5}, object.AsteroidLarge)
	w.latch(0, 1)

	w.fragment(0)
	if w.asteroids[0].CollidingWith.Set || w.asteroids[1].CollidingWith.Set {
		t.Error("fragmentation should clear the latch on both sides")
	}
}

func TestTimedSpawn(t *testing.T) {
	rng := &scriptedRandom{values: []float64{0.9}}
	cfg := testConfig()
	cfg.SpawnInterval = 110
	w := newTestWorld(t, cfg, WithRandom(rng))

	for i := 0; i < 6; i++ {
		w.Advance(config.TargetStepMs)
	}
	if w.AsteroidsSpawned() != 0 {
		t.Fatal("spawned before the interval elapsed")
	}
	w.Advance(config.TargetStepMs)
	if w.AsteroidsSpawned() != 1 {
		t.Fatalf("spawned = %d, want 1", w.AsteroidsSpawned())
	}

	a := &w.asteroids[0]
	if a.Position.X() != cfg.Arena.Left {
		t.Errorf("x = %v, want the left edge", a.Position.X())
	}
	if a.HeadingDeg < spawnHeadingMin || a.HeadingDeg > spawnHeadingMax {
		t.Errorf("heading = %v", a.HeadingDeg)
	}
	if size := object.ClassifyScale(a.Scale, cfg.AsteroidScale); size == object.AsteroidSmall {
		t.Error("timed spawns are never small")
	}
}

func TestTimedSpawnFullPoolIsNoop(t *testing.T) {
	cfg := testConfig()
	cfg.AsteroidMax = 2
	cfg.SpawnInterval = 10
	w := newTestWorld(t, cfg)
	place(w, 0, object.Vec2{0.8, 0.8}, object.AsteroidSmall)
	place(w, 1, object.Vec2{-0.8, 0.8}, object.AsteroidSmall)

	for i := 0; i < 5; i++ {
		w.spawnTimed()
	}
	if w.AsteroidsSpawned() != 2 {
		t.Errorf("spawned = %d, want 2", w.AsteroidsSpawned())
	}
}

func TestRandomSizeDistribution(t *testing.T) {
	tests := []struct {
		draw float64
		want object.AsteroidSize
	}{
		{0, object.AsteroidSmall},
		{0.49, object.AsteroidSmall},
		{0.5, object.AsteroidMedium},
		{0.74, object.AsteroidMedium},
		{0.75, object.AsteroidLarge},
		{0.99, object.AsteroidLarge},
	}
	for _, tc := range tests {
		w := newTestWorld(t, testConfig(), WithRandom(&scriptedRandom{values: []float64{tc.draw}}))
		if got := w.randomSize(); got != tc.want {
			t.Errorf("randomSize with %v = %v, want %v", tc.draw, got, tc.want)
		}
	}
}

func TestRoundReset(t *testing.T) {
	cfg := testConfig()
	cfg.AsteroidInitial = 3
	// Keep asteroids far from the ship's start pose at the center.
	rng := &scriptedRandom{values: []float64{0.95, 0.05, 0.9, 0.1}}
	w := newTestWorld(t, cfg, WithRandom(rng))
	for i := 3; i < 6; i++ {
		place(w, i, object.Vec2{0.9, -0.9}, object.AsteroidSmall)
	}

	p := w.players[0]
	start := p.Position
	p.Score, p.TopScore = 7, 3
	p.Position = object.Vec2{0.3, 0.3}
	p.Kill()

	for i := 0; i < 100 && w.Round() == 1; i++ {
		w.Advance(config.TargetStepMs)
		if w.Round() == 1 && !p.Died() {
			t.Fatal("ship revived before the round reset")
		}
	}
	if w.Round() != 2 {
		t.Fatal("round never reset")
	}

	if got := w.AsteroidsSpawned(); got != cfg.AsteroidInitial {
		t.Errorf("spawned = %d, want %d", got, cfg.AsteroidInitial)
	}
	if p.TopScore != 7 || p.Score != 0 {
		t.Errorf("score = %d, top = %d; want 0, 7", p.Score, p.TopScore)
	}
	if !p.Alive() || !near(p.Position, start) {
		t.Errorf("player %v at %v, want alive at %v", p.State, p.Position, start)
	}

	// A worse round never lowers the best score.
	p.Score = 2
	p.Kill()
	for i := 0; i < 100 && w.Round() == 2; i++ {
		w.Advance(config.TargetStepMs)
	}
	if p.TopScore != 7 {
		t.Errorf("top score = %d, want 7", p.TopScore)
	}
}

func TestAsteroidScore(t *testing.T) {
	tests := []struct {
		size object.AsteroidSize
		want uint
	}{
		{object.AsteroidLarge, 1},
		{object.AsteroidMedium, 5},
		{object.AsteroidSmall, 10},
	}
	for _, tc := range tests {
		if got := asteroidScore(tc.size); got != tc.want {
			t.Errorf("asteroidScore(%v) = %d, want %d", tc.size, got, tc.want)
		}
	}
}

func TestScoreboard(t *testing.T) {
	cfg := testConfig()
	cfg.Players = 2
	w := newTestWorld(t, cfg)
	w.players[1].Score = 15
	w.players[1].TopScore = 20

	lines := w.Scoreboard()
	if len(lines) != 2 {
		t.Fatalf("lines = %d", len(lines))
	}
	if lines[1] != (ScoreLine{Player: 1, Score: 15, TopScore: 20}) {
		t.Errorf("line = %+v", lines[1])
	}
}
