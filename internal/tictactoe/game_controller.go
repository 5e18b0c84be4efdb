package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// MakeTurn places marker on cell and settles the round if it is decided.
func MakeTurn(match *entity.Match, marker entity.Marker, cell int) (Outcome, error) {
	if err := match.ConfirmOngoingState(); err != nil {
		return Outcome{}, err
	}

	if err := match.Board.Place(cell, marker); err != nil {
		return Outcome{}, fmt.Errorf("invalid turn: %w", err)
	}

	return updateMatchStatus(match), nil
}

// MakeBotTurn asks strategy for the bot's square and plays it.
func MakeBotTurn(match *entity.Match, strategy Strategy) (int, Outcome, error) {
	if err := match.ConfirmOngoingState(); err != nil {
		return 0, Outcome{}, err
	}

	cell, err := strategy.SelectSquare(match.Board, match.BotMarker, match.HumanMarker)
	if err != nil {
		return 0, Outcome{}, fmt.Errorf("bot failed to select square: %w", err)
	}

	outcome, err := MakeTurn(match, match.BotMarker, cell)
	if err != nil {
		return 0, Outcome{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return cell, outcome, nil
}

// updateMatchStatus - checks the round outcome after a move.
func updateMatchStatus(match *entity.Match) Outcome {
	outcome := GetOutcome(match.Board, match.HumanMarker, match.BotMarker)

	switch outcome.Status {
	case OutcomeWon:
		if outcome.Winner == match.HumanMarker {
			match.FinishRound(entity.ResultHuman)
		} else {
			match.FinishRound(entity.ResultBot)
		}
	case OutcomeTie:
		match.FinishRound(entity.ResultTie)
	}

	return outcome
}
