package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

type Difficulty string

const (
	LowDifficulty    Difficulty = "low"
	MediumDifficulty Difficulty = "medium"
	HighDifficulty   Difficulty = "high"
)

// Probability - chance that the bot plays the searched move instead of a random one.
func (that Difficulty) Probability() float64 {
	switch that {
	case HighDifficulty:
		return 1.0
	case MediumDifficulty:
		return 0.7
	default:
		return 0.3
	}
}

// ParseDifficulty accepts the level names and the easy/medium/hard aliases.
func ParseDifficulty(value string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "low", "easy":
		return LowDifficulty, nil
	case "medium":
		return MediumDifficulty, nil
	case "high", "hard":
		return HighDifficulty, nil
	default:
		return LowDifficulty, fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, value)
	}
}
