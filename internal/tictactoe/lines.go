package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// Line is a winning triple of board cells.
type Line [3]int

// Lines are ordered rows, columns, diagonals.
var Lines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

const (
	OutcomeOngoing = "ongoing"
	OutcomeWon     = "won"
	OutcomeTie     = "tie"
)

type Outcome struct {
	Status string        `json:"status"`
	Winner entity.Marker `json:"winner,omitempty"`
}

func (that Outcome) IsOngoing() bool {
	return that.Status == OutcomeOngoing
}

// count returns how many cells of the line hold marker.
func (that Line) count(board entity.Board, marker entity.Marker) int {
	n := 0
	for _, cell := range that {
		if board[cell] == marker {
			n++
		}
	}

	return n
}

func HasWon(board entity.Board, marker entity.Marker) bool {
	if marker == entity.Empty {
		return false
	}

	for _, line := range Lines {
		if line.count(board, marker) == len(line) {
			return true
		}
	}

	return false
}

func IsTie(board entity.Board, a, b entity.Marker) bool {
	return board.IsFull() && !HasWon(board, a) && !HasWon(board, b)
}

// GetOutcome reports the state of a round. A completed line wins even on a full board.
func GetOutcome(board entity.Board, a, b entity.Marker) Outcome {
	switch {
	case HasWon(board, a):
		return Outcome{Status: OutcomeWon, Winner: a}
	case HasWon(board, b):
		return Outcome{Status: OutcomeWon, Winner: b}
	case board.IsFull():
		return Outcome{Status: OutcomeTie}
	default:
		return Outcome{Status: OutcomeOngoing}
	}
}
