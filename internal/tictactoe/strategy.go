package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// RandomStrategy is the easy bot: any empty square.
type RandomStrategy struct {
	rnd Rand
}

func NewRandomStrategy(rnd Rand) *RandomStrategy {
	return &RandomStrategy{rnd: rnd}
}

func (that *RandomStrategy) SelectSquare(board entity.Board, _, _ entity.Marker) (int, error) {
	empty := board.EmptyIndices()
	if len(empty) == 0 {
		return 0, apperror.ErrNoLegalMove
	}

	return pick(that.rnd, empty), nil
}

// NewStrategy returns the bot for a difficulty level.
func NewStrategy(difficulty string, rnd Rand) (Strategy, error) {
	switch difficulty {
	case entity.EasyDifficulty:
		return NewRandomStrategy(rnd), nil
	case entity.HardDifficulty:
		return NewSelector(rnd), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, difficulty)
	}
}
