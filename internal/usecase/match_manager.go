package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error
}

type botService interface {
	PickMarker(human entity.Marker) (entity.Marker, error)
	MakeTurn(match *entity.Match) (int, tictactoe.Outcome, error)
}

// TurnResult is what a human turn produced: the match after both moves and
// the square the bot answered with, if it got to move.
type TurnResult struct {
	Match   *entity.Match     `json:"match"`
	BotCell *int              `json:"bot_cell,omitempty"`
	Outcome tictactoe.Outcome `json:"outcome"`
}

// MatchManager runs matches between a human and the bot. Operations on the
// same match are serialized.
type MatchManager struct {
	logger       *slog.Logger
	matchRepo    matchRepo
	bot          botService
	winningScore int
	locks        *keyedMutex
}

func NewMatchManager(logger *slog.Logger, matchRepo matchRepo, bot botService, winningScore int) *MatchManager {
	return &MatchManager{
		logger: logger.With("component", "match_manager"),

		matchRepo:    matchRepo,
		bot:          bot,
		winningScore: winningScore,
		locks:        newKeyedMutex(),
	}
}

func (that *MatchManager) CreateMatch(ctx context.Context, human entity.Marker, difficulty string) (*entity.Match, error) {
	if !entity.IsValidDifficulty(difficulty) {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, difficulty)
	}

	botMarker, err := that.bot.PickMarker(human)
	if err != nil {
		return nil, fmt.Errorf("failed to pick bot marker: %w", err)
	}

	match := entity.NewMatch(pkg.GenerateMatchID(), human, botMarker, difficulty, that.winningScore)

	if err = that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	that.logger.Info("match created", "matchID", match.ID, "difficulty", difficulty, "human", human, "bot", botMarker)

	return match, nil
}

func (that *MatchManager) GetMatch(ctx context.Context, id string) (*entity.Match, error) {
	match, err := that.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return match, nil
}

// MakeTurn plays the human's cell and, if the round is still open, the bot's reply.
func (that *MatchManager) MakeTurn(ctx context.Context, id string, cell int) (*TurnResult, error) {
	log := that.logger.With("method", "MakeTurn", "matchID", id)

	unlock := that.locks.lock(id)
	defer unlock()

	match, err := that.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	outcome, err := tictactoe.MakeTurn(match, match.HumanMarker, cell)
	if err != nil {
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	result := &TurnResult{Match: match, Outcome: outcome}

	if outcome.IsOngoing() {
		botCell, botOutcome, botErr := that.bot.MakeTurn(match)
		if botErr != nil {
			return nil, fmt.Errorf("failed make bot turn: %w", botErr)
		}

		result.BotCell = &botCell
		result.Outcome = botOutcome
	}

	if match.IsFinished() {
		log.Info("match finished", "winner", match.SeriesWinner(), "score", match.Score)
		that.deleteMatch(ctx, match)

		return result, nil
	}

	if !result.Outcome.IsOngoing() {
		log.Info("round over", "round", match.Round, "result", match.RoundResult)
	}

	if err = that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return nil, fmt.Errorf("failed update match: %w", err)
	}

	return result, nil
}

// NextRound clears the board after a decided round. The score is kept.
func (that *MatchManager) NextRound(ctx context.Context, id string) (*entity.Match, error) {
	unlock := that.locks.lock(id)
	defer unlock()

	match, err := that.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = match.NextRound(); err != nil {
		return nil, fmt.Errorf("failed start next round: %w", err)
	}

	if err = that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return nil, fmt.Errorf("failed update match: %w", err)
	}

	return match, nil
}

func (that *MatchManager) AbandonMatch(ctx context.Context, id string) error {
	unlock := that.locks.lock(id)
	defer unlock()

	if err := that.matchRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	that.logger.Info("match abandoned", "matchID", id)

	return nil
}

func (that *MatchManager) deleteMatch(ctx context.Context, match *entity.Match) {
	log := that.logger.With("method", "deleteMatch")

	err := that.matchRepo.DeleteByID(ctx, match.ID)
	if err != nil && !errors.Is(err, apperror.ErrMatchNotFound) {
		log.Error("failed to delete match", "matchID", match.ID, "error", err)
	}
}
