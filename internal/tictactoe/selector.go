package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var corners = []int{0, 2, 6, 8}

// Strategy picks the square the bot plays next.
type Strategy interface {
	SelectSquare(board entity.Board, self, other entity.Marker) (int, error)
}

// Selector is the hard bot. It walks a fixed list of tiers and plays the
// first one that yields a square: win, block, fork, fork block, center,
// corner, anything.
type Selector struct {
	rnd Rand
}

func NewSelector(rnd Rand) *Selector {
	return &Selector{rnd: rnd}
}

func (that *Selector) SelectSquare(board entity.Board, self, other entity.Marker) (int, error) {
	empty := board.EmptyIndices()
	if len(empty) == 0 {
		return 0, apperror.ErrNoLegalMove
	}

	if cell, ok := winningSquare(board, self); ok {
		return cell, nil
	}

	if cell, ok := winningSquare(board, other); ok {
		return cell, nil
	}

	if forks := forkSquares(board, self); len(forks) > 0 {
		return pick(that.rnd, forks), nil
	}

	if forks := forkSquares(board, other); len(forks) > 0 {
		return that.blockFork(board, self, forks), nil
	}

	if board[entity.Center] == entity.Empty {
		return entity.Center, nil
	}

	if free := emptyOf(board, corners); len(free) > 0 {
		return pick(that.rnd, free), nil
	}

	return pick(that.rnd, empty), nil
}

// blockFork answers an opponent that could fork on its next move. A lone fork
// square is taken directly. With several, the bot prefers to make a threat of
// its own whose forced reply is not a fork square, then a fork square on one
// of its open lines, then any fork square.
func (that *Selector) blockFork(board entity.Board, self entity.Marker, forks []int) int {
	if len(forks) == 1 {
		return forks[0]
	}

	var isFork [entity.BoardSize]bool
	for _, cell := range forks {
		isFork[cell] = true
	}

	var threat [entity.BoardSize]bool
	for _, line := range Lines {
		if !line.isThreatFor(board, self) {
			continue
		}

		for _, cell := range line {
			if board[cell] != entity.Empty || isFork[cell] {
				continue
			}

			if reply := line.otherEmpty(board, cell); !isFork[reply] {
				threat[cell] = true
			}
		}
	}

	if candidates := marked(threat); len(candidates) > 0 {
		return pick(that.rnd, candidates)
	}

	var onOpenLine [entity.BoardSize]bool
	for _, line := range Lines {
		if !line.isOpenFor(board, self) {
			continue
		}

		for _, cell := range line {
			if isFork[cell] {
				onOpenLine[cell] = true
			}
		}
	}

	if candidates := marked(onOpenLine); len(candidates) > 0 {
		return pick(that.rnd, candidates)
	}

	return pick(that.rnd, forks)
}

// winningSquare returns the empty cell completing a line where marker already
// holds two cells, scanning lines in their canonical order.
func winningSquare(board entity.Board, marker entity.Marker) (int, bool) {
	for _, line := range Lines {
		if line.count(board, marker) != 2 {
			continue
		}

		for _, cell := range line {
			if board[cell] == entity.Empty {
				return cell, true
			}
		}
	}

	return 0, false
}

// forkSquares returns the empty cells that would give marker two or more
// lines one move from completion.
func forkSquares(board entity.Board, marker entity.Marker) []int {
	var threats [entity.BoardSize]int
	for _, line := range Lines {
		if !line.isThreatFor(board, marker) {
			continue
		}

		for _, cell := range line {
			if board[cell] == entity.Empty {
				threats[cell]++
			}
		}
	}

	forks := make([]int, 0, entity.BoardSize)
	for cell, n := range threats {
		if n >= 2 {
			forks = append(forks, cell)
		}
	}

	return forks
}

// isThreatFor reports whether marker holds exactly one cell of the line and
// the other two are empty.
func (that Line) isThreatFor(board entity.Board, marker entity.Marker) bool {
	return that.count(board, marker) == 1 && that.count(board, entity.Empty) == 2
}

// isOpenFor reports whether marker holds at least one cell of the line and
// nobody else holds any.
func (that Line) isOpenFor(board entity.Board, marker entity.Marker) bool {
	own := that.count(board, marker)
	return own > 0 && own+that.count(board, entity.Empty) == len(that)
}

func (that Line) otherEmpty(board entity.Board, cell int) int {
	for _, c := range that {
		if c != cell && board[c] == entity.Empty {
			return c
		}
	}

	return cell
}

func emptyOf(board entity.Board, cells []int) []int {
	free := make([]int, 0, len(cells))
	for _, cell := range cells {
		if board[cell] == entity.Empty {
			free = append(free, cell)
		}
	}

	return free
}

func marked(set [entity.BoardSize]bool) []int {
	cells := make([]int, 0, entity.BoardSize)
	for cell, ok := range set {
		if ok {
			cells = append(cells, cell)
		}
	}

	return cells
}
