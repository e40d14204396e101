package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Validation errors.
var (
	ErrPlayers        = errors.New("players must be 1 or 2")
	ErrAsteroidCounts = errors.New("asteroid counts out of range")
	ErrSpawnInterval  = errors.New("spawn interval must not be negative")
	ErrMultiplier     = errors.New("asteroid scale and mass multipliers must be positive")
	ErrArena          = errors.New("arena bounds must have left < right and bottom < top")
)

// Simulation is the read-only parameter block for one arena session.
type Simulation struct {
	Players         int     `yaml:"players"`
	FriendlyFire    bool    `yaml:"friendly_fire"`
	Physics         bool    `yaml:"physics"`          // Asteroid-asteroid bounces
	AsteroidMax     int     `yaml:"asteroid_max"`     // Pool capacity
	AsteroidInitial int     `yaml:"asteroid_initial"` // Spawned at each round start
	SpawnInterval   float64 `yaml:"spawn_interval"`   // Milliseconds between timed spawns, 0 = off
	AsteroidScale   float64 `yaml:"asteroid_scale"`
	AsteroidMass    float64 `yaml:"asteroid_mass"`
	Arena           Arena   `yaml:"arena"`
	Seed            uint64  `yaml:"seed"` // 0 = seed from the clock
}

// Arena holds the clip bounds of the playfield. Top is greater than Bottom.
type Arena struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// Width returns Right - Left.
func (a Arena) Width() float64 { return a.Right - a.Left }

// Height returns Top - Bottom.
func (a Arena) Height() float64 { return a.Top - a.Bottom }

// Default returns the embedded default configuration.
func Default() Simulation {
	var cfg Simulation
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		// Embedded at build time; a parse failure is a programming error.
		panic(fmt.Sprintf("config: parse defaults.yaml: %v", err))
	}
	return cfg
}

// Load reads a YAML file on top of the defaults. An empty path returns the defaults.
func Load(path string) (Simulation, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from ARENA_* environment variables.
func (c *Simulation) ApplyEnv() {
	c.Players = GetEnvInt("ARENA_PLAYERS", c.Players)
	c.FriendlyFire = GetEnvBool("ARENA_FRIENDLY_FIRE", c.FriendlyFire)
	c.Physics = GetEnvBool("ARENA_PHYSICS", c.Physics)
	c.AsteroidMax = GetEnvInt("ARENA_ASTEROID_MAX", c.AsteroidMax)
	c.AsteroidInitial = GetEnvInt("ARENA_ASTEROID_INITIAL", c.AsteroidInitial)
	c.SpawnInterval = GetEnvFloat("ARENA_SPAWN_INTERVAL", c.SpawnInterval)
	c.AsteroidScale = GetEnvFloat("ARENA_ASTEROID_SCALE", c.AsteroidScale)
	c.AsteroidMass = GetEnvFloat("ARENA_ASTEROID_MASS", c.AsteroidMass)
	c.Seed = uint64(GetEnvInt("ARENA_SEED", int(c.Seed)))
}

// Validate range-checks the block. The simulation core assumes a validated config.
func (c Simulation) Validate() error {
	if c.Players < 1 || c.Players > 2 {
		return fmt.Errorf("%w: got %d", ErrPlayers, c.Players)
	}
	if c.AsteroidMax < 1 || c.AsteroidInitial < 0 || c.AsteroidInitial > c.AsteroidMax {
		return fmt.Errorf("%w: max=%d initial=%d", ErrAsteroidCounts, c.AsteroidMax, c.AsteroidInitial)
	}
	if c.SpawnInterval < 0 {
		return fmt.Errorf("%w: got %v", ErrSpawnInterval, c.SpawnInterval)
	}
	if c.AsteroidScale <= 0 || c.AsteroidMass <= 0 {
		return fmt.Errorf("%w: scale=%v mass=%v", ErrMultiplier, c.AsteroidScale, c.AsteroidMass)
	}
	if c.Arena.Left >= c.Arena.Right || c.Arena.Bottom >= c.Arena.Top {
		return fmt.Errorf("%w: %+v", ErrArena, c.Arena)
	}
	return nil
}
