package config

import "time"

// Game constants. Tunable values that are not part of the per-session
// Simulation block live here.

// Timing
const (
	// TargetStepMs is the reference sub-step; every per-step rate below is
	// expressed per TargetStepMs of simulated time.
	TargetStepMs = 1000.0 / 60.0

	ServerTickRate = 60
	ServerTickTime = time.Second / ServerTickRate

	// MaxFrameMs caps the real time a single server frame may simulate.
	MaxFrameMs = 4 * TargetStepMs

	ClientTargetFPS       = 30
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Player ship
const (
	ShipScale      = 0.05   // Hull size in arena units
	PlayerThrust   = 0.0004 // Acceleration per step²
	PlayerMaxSpeed = 0.015  // Per-axis velocity cap per step
	PlayerTurnRate = 4.0    // Degrees per step
	WrapEpsilon    = 0.01   // Re-entry offset after crossing an arena edge
)

// Projectile
const (
	ShotSpeed = 0.03 // Arena units per step
	ShotRange = 0.3  // Display distance at which the shot resets to the muzzle
)

// Blast animation
const (
	BlastGrowth   = 0.2
	BlastFinished = 6.0
)

// Asteroid classes. Scales and masses are multiplied by the session's
// AsteroidScale and AsteroidMass.
const (
	AsteroidScaleLarge  = 0.12
	AsteroidScaleMedium = 0.07
	AsteroidScaleSmall  = 0.035

	AsteroidMassLarge  = 5.0
	AsteroidMassMedium = 3.0
	AsteroidMassSmall  = 1.0

	AsteroidMinSpeed = 0.001 // Arena units per step
	AsteroidMaxSpeed = 0.006
	AsteroidMaxSpin  = 3.0 // Degrees per step, either direction
)

// Scoring. The largest class is worth the least.
const (
	ScoreLargeAsteroid  = 1
	ScoreMediumAsteroid = 5
	ScoreSmallAsteroid  = 10
)

// Audio
const (
	AudioChannels = 8

	PlayerHitAmplitude   = 1.0
	PlayerHitDecay       = 400 * time.Millisecond
	AsteroidHitAmplitude = 0.6
	AsteroidHitDecay     = 120 * time.Millisecond
)

// Client screens
const (
	ShutdownDisplaySeconds = 5.0 // Seconds to show shutdown message before auto-disconnect
	RoundBannerSeconds     = 2.0
)
