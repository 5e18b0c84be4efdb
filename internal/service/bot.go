package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type BotService interface {
	PickMarker(human entity.Marker) (entity.Marker, error)
	MakeTurn(match *entity.Match) (int, tictactoe.Outcome, error)
}

type botService struct {
	rnd tictactoe.Rand
}

func NewBotService(rnd tictactoe.Rand) BotService {
	return &botService{rnd: rnd}
}

// PickMarker chooses the bot's marker at random among the ones the human did not take.
func (that *botService) PickMarker(human entity.Marker) (entity.Marker, error) {
	if !human.IsPlayer() {
		return entity.Empty, fmt.Errorf("%w: %q", apperror.ErrInvalidMarker, human)
	}

	available := make([]entity.Marker, 0, len(entity.Markers)-1)
	for _, marker := range entity.Markers {
		if marker != human {
			available = append(available, marker)
		}
	}

	return available[that.rnd.Intn(len(available))], nil
}

func (that *botService) MakeTurn(match *entity.Match) (int, tictactoe.Outcome, error) {
	strategy, err := tictactoe.NewStrategy(match.Difficulty, that.rnd)
	if err != nil {
		return 0, tictactoe.Outcome{}, fmt.Errorf("failed to build bot strategy: %w", err)
	}

	cell, outcome, err := tictactoe.MakeBotTurn(match, strategy)
	if err != nil {
		return 0, tictactoe.Outcome{}, err
	}

	return cell, outcome, nil
}
