package client

import (
	"time"

	"github.com/tomz197/asteroid-arena/internal/input"
)

// GameState represents the current phase of a client.
type GameState int

const (
	GameStatePlaying  GameState = iota // Flying in the arena
	GameStateShutdown                  // Server is shutting down
)

// ClientState holds per-connection state.
type ClientState struct {
	Input         input.Input
	GameState     GameState
	Round         int
	Running       bool
	delta         time.Duration
	shutdownTimer float64 // Seconds left on the shutdown screen
	bannerTimer   float64 // Seconds left on the round banner
	prevGameState GameState
}

// NewClientState creates a running client state.
func NewClientState() *ClientState {
	return &ClientState{
		GameState: GameStatePlaying,
		Round:     1,
		Running:   true,
	}
}
