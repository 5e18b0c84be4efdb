package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StatusOngoing   = "ongoing"
	StatusRoundOver = "round_over"
	StatusFinished  = "finished"
)

const (
	EasyDifficulty = "easy"
	HardDifficulty = "hard"
)

const (
	ResultHuman = "human"
	ResultBot   = "bot"
	ResultTie   = "tie"
)

const DefaultWinningScore = 3

var ErrUnknownMatchStatus = errors.New("unknown match status")

type Score struct {
	Human int `json:"human"`
	Bot   int `json:"bot"`
	Ties  int `json:"ties"`
}

// Match is one series of rounds between a human and the bot. The human
// always opens a round.
type Match struct {
	ID           string `json:"id"`
	Board        Board  `json:"board"`
	HumanMarker  Marker `json:"human_marker"`
	BotMarker    Marker `json:"bot_marker"`
	Difficulty   string `json:"difficulty"`
	Status       string `json:"status"`
	Round        int    `json:"round"`
	RoundResult  string `json:"round_result,omitempty"`
	Score        Score  `json:"score"`
	WinningScore int    `json:"winning_score"`
}

func NewMatch(id string, human, bot Marker, difficulty string, winningScore int) *Match {
	if winningScore <= 0 {
		winningScore = DefaultWinningScore
	}

	return &Match{
		ID:           id,
		HumanMarker:  human,
		BotMarker:    bot,
		Difficulty:   difficulty,
		Status:       StatusOngoing,
		Round:        1,
		WinningScore: winningScore,
	}
}

func IsValidDifficulty(difficulty string) bool {
	return difficulty == EasyDifficulty || difficulty == HardDifficulty
}

// FinishRound records the result of the current round and moves the match to
// round_over, or to finished once either side reaches the winning score.
func (that *Match) FinishRound(result string) {
	switch result {
	case ResultHuman:
		that.Score.Human++
	case ResultBot:
		that.Score.Bot++
	default:
		result = ResultTie
		that.Score.Ties++
	}

	that.RoundResult = result

	if that.Score.Human >= that.WinningScore || that.Score.Bot >= that.WinningScore {
		that.Status = StatusFinished
		return
	}

	that.Status = StatusRoundOver
}

func (that *Match) NextRound() error {
	switch {
	case that.IsFinished():
		return apperror.ErrMatchFinished
	case that.IsOngoing():
		return apperror.ErrRoundInProgress
	}

	that.Board = Board{}
	that.Round++
	that.RoundResult = ""
	that.Status = StatusOngoing

	return nil
}

// SeriesWinner returns ResultHuman or ResultBot once the match is finished.
func (that *Match) SeriesWinner() string {
	if !that.IsFinished() {
		return ""
	}

	if that.Score.Human > that.Score.Bot {
		return ResultHuman
	}

	return ResultBot
}

func (that *Match) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Match) IsRoundOver() bool {
	return that.Status == StatusRoundOver
}

func (that *Match) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Match) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrMatchFinished
	case that.IsRoundOver():
		return apperror.ErrRoundOver
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMatchStatus, that.Status)
	}
}
