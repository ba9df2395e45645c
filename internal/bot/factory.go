package bot

import (
	"fmt"
	"math/rand/v2"
)

// NewStrategy creates the strategy that plays at the given difficulty.
// A nil rng seeds a private generator.
func NewStrategy(level Difficulty, rng *rand.Rand) (Strategy, error) {
	switch level {
	case Easy:
		return NewRandomStrategy(rng), nil
	case Hard:
		return NewHeuristicStrategy(rng), nil
	case Pain:
		return NewMinimaxStrategy(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidDifficulty, int(level))
	}
}
