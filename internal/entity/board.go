package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Marker identifies who owns a cell.
type Marker string

const (
	Empty      Marker = ""
	X          Marker = "X"
	O          Marker = "O"
	Diagonals  Marker = "diagonals"
	Minimalist Marker = "minimalist"
)

const (
	BoardSize = 9
	Center    = 4
)

// Markers lists every player identity a match may be played with.
var Markers = []Marker{X, O, Diagonals, Minimalist}

func (that Marker) IsPlayer() bool {
	switch that {
	case X, O, Diagonals, Minimalist:
		return true
	default:
		return false
	}
}

// Board is a flat row-major 3x3 grid; cell i sits at row i/3, column i%3.
// It is a value type, so passing it around hands out a snapshot.
type Board [BoardSize]Marker

func (that *Board) Place(cell int, marker Marker) error {
	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: cell %d is out of range", apperror.ErrInvalidMove, cell)
	}

	if !marker.IsPlayer() {
		return fmt.Errorf("%w: marker %q can't be placed", apperror.ErrInvalidMove, marker)
	}

	if that[cell] != Empty {
		return fmt.Errorf("%w: cell %d is already occupied", apperror.ErrInvalidMove, cell)
	}

	that[cell] = marker

	return nil
}

// OccupantsOf returns the cells held by marker in ascending order.
func (that Board) OccupantsOf(marker Marker) []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == marker {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) EmptyIndices() []int {
	return that.OccupantsOf(Empty)
}

func (that Board) IsEmpty(cell int) bool {
	return cell >= 0 && cell < BoardSize && that[cell] == Empty
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}
