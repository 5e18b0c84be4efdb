package apperror

import "errors"

var (
	ErrInvalidMove       = errors.New("invalid move")
	ErrNoLegalMove       = errors.New("no legal move left on the board")
	ErrMatchNotFound     = errors.New("match not found")
	ErrMatchFinished     = errors.New("match is already finished")
	ErrRoundOver         = errors.New("round is over, start the next round")
	ErrRoundInProgress   = errors.New("round is still in progress")
	ErrInvalidMarker     = errors.New("invalid marker")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)
