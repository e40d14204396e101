package sim

import (
	"github.com/tomz197/asteroid-arena/internal/config"
	"github.com/tomz197/asteroid-arena/internal/object"
)

// ScoreLine is one player's row on the scoreboard.
type ScoreLine struct {
	Player   int
	Score    uint
	TopScore uint
}

// Scoreboard returns the current and best score of every player.
func (w *World) Scoreboard() []ScoreLine {
	lines := make([]ScoreLine, len(w.players))
	for i, p := range w.players {
		lines[i] = ScoreLine{Player: i, Score: p.Score, TopScore: p.TopScore}
	}
	return lines
}

// asteroidScore is the reward for shooting an asteroid of the given class.
// Smaller targets are worth more.
func asteroidScore(size object.AsteroidSize) uint {
	switch size {
	case object.AsteroidLarge:
		return config.ScoreLargeAsteroid
	case object.AsteroidMedium:
		return config.ScoreMediumAsteroid
	default:
		return config.ScoreSmallAsteroid
	}
}

func (w *World) award(p *object.Player, size object.AsteroidSize) {
	p.Score += asteroidScore(size)
}

// foldScores keeps the best score of each player and starts a new tally.
func (w *World) foldScores() {
	for _, p := range w.players {
		if p.Score > p.TopScore {
			p.TopScore = p.Score
		}
		p.Score = 0
	}
}
