package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func TestHasWon(t *testing.T) {
	t.Run("Every canonical line wins", func(t *testing.T) {
		for _, line := range Lines {
			// Given: a board where only this line is filled with O
			var board entity.Board
			for _, cell := range line {
				board[cell] = entity.O
			}

			// Then: O has won and the outcome names O
			assert.True(t, HasWon(board, entity.O), "line %v", line)
			assert.False(t, HasWon(board, entity.X), "line %v", line)
			assert.Equal(t, Outcome{Status: OutcomeWon, Winner: entity.O}, GetOutcome(board, entity.X, entity.O), "line %v", line)
		}
	})

	t.Run("Two in a line is not a win", func(t *testing.T) {
		board := entity.Board{entity.X, entity.X, entity.Empty}

		assert.False(t, HasWon(board, entity.X))
	})

	t.Run("Empty marker never wins", func(t *testing.T) {
		var board entity.Board

		assert.False(t, HasWon(board, entity.Empty))
	})
}

func TestIsTie(t *testing.T) {
	t.Run("Full board without a line is a tie", func(t *testing.T) {
		// Given: X O X / X O O / O X X
		board := entity.Board{
			entity.X, entity.O, entity.X,
			entity.X, entity.O, entity.O,
			entity.O, entity.X, entity.X,
		}

		// Then: nobody won and the round is a tie
		assert.True(t, board.IsFull())
		assert.True(t, IsTie(board, entity.X, entity.O))
		assert.Equal(t, Outcome{Status: OutcomeTie}, GetOutcome(board, entity.X, entity.O))
	})

	t.Run("Full board with a line is a win, not a tie", func(t *testing.T) {
		board := entity.Board{
			entity.X, entity.O, entity.X,
			entity.O, entity.X, entity.O,
			entity.O, entity.X, entity.X,
		}

		assert.False(t, IsTie(board, entity.X, entity.O))
		assert.Equal(t, Outcome{Status: OutcomeWon, Winner: entity.X}, GetOutcome(board, entity.X, entity.O))
	})

	t.Run("Board with empty cells is not a tie", func(t *testing.T) {
		board := entity.Board{entity.X, entity.O}

		assert.False(t, IsTie(board, entity.X, entity.O))
	})
}

func TestGetOutcome(t *testing.T) {
	t.Run("Ongoing board", func(t *testing.T) {
		board := entity.Board{
			entity.X, entity.O, entity.Empty,
			entity.Empty, entity.X, entity.Empty,
			entity.Empty, entity.Empty, entity.O,
		}

		outcome := GetOutcome(board, entity.X, entity.O)

		assert.True(t, outcome.IsOngoing())
		assert.Empty(t, outcome.Winner)
	})

	t.Run("Same board gives the same outcome twice", func(t *testing.T) {
		board := entity.Board{
			entity.Diagonals, entity.Minimalist, entity.Empty,
			entity.Empty, entity.Diagonals, entity.Empty,
			entity.Minimalist, entity.Empty, entity.Diagonals,
		}

		first := GetOutcome(board, entity.Diagonals, entity.Minimalist)
		second := GetOutcome(board, entity.Diagonals, entity.Minimalist)

		assert.Equal(t, first, second)
		assert.Equal(t, Outcome{Status: OutcomeWon, Winner: entity.Diagonals}, first)
	})
}
