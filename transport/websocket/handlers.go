package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	actionNewMatch = "match:new"
	actionGetMatch = "match:get"
	actionTurn     = "match:turn"
	actionRound    = "match:round"
	actionLeave    = "match:leave"
)

var (
	errMatchIDRequired = errors.New("match_id is required")
	errCellRequired    = errors.New("cell is required")
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Response struct {
	Action  string `json:"action"`
	Payload any    `json:"payload,omitempty"`
	Error   string `json:"error,omitempty"`
}

type Payload struct {
	MatchID    string        `json:"match_id,omitempty"`
	Marker     entity.Marker `json:"marker,omitempty"`
	Difficulty string        `json:"difficulty,omitempty"`
	Cell       *int          `json:"cell,omitempty"`
}

func (that *Server) handleNewMatch(ctx context.Context, msg *Message) (any, error) {
	payload, err := decodePayload(msg)
	if err != nil {
		return nil, err
	}

	if payload.Difficulty == "" {
		payload.Difficulty = entity.HardDifficulty
	}

	match, err := that.matches.CreateMatch(ctx, payload.Marker, payload.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	return match, nil
}

func (that *Server) handleGetMatch(ctx context.Context, msg *Message) (any, error) {
	payload, err := decodeMatchPayload(msg)
	if err != nil {
		return nil, err
	}

	return that.matches.GetMatch(ctx, payload.MatchID)
}

func (that *Server) handleTurn(ctx context.Context, msg *Message) (any, error) {
	payload, err := decodeMatchPayload(msg)
	if err != nil {
		return nil, err
	}

	if payload.Cell == nil {
		return nil, errCellRequired
	}

	return that.matches.MakeTurn(ctx, payload.MatchID, *payload.Cell)
}

func (that *Server) handleRound(ctx context.Context, msg *Message) (any, error) {
	payload, err := decodeMatchPayload(msg)
	if err != nil {
		return nil, err
	}

	return that.matches.NextRound(ctx, payload.MatchID)
}

func (that *Server) handleLeave(ctx context.Context, msg *Message) (any, error) {
	payload, err := decodeMatchPayload(msg)
	if err != nil {
		return nil, err
	}

	if err = that.matches.AbandonMatch(ctx, payload.MatchID); err != nil {
		return nil, err
	}

	return Payload{MatchID: payload.MatchID}, nil
}

func decodePayload(msg *Message) (*Payload, error) {
	var payload Payload
	if len(msg.Payload) == 0 {
		return &payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return &payload, nil
}

func decodeMatchPayload(msg *Message) (*Payload, error) {
	payload, err := decodePayload(msg)
	if err != nil {
		return nil, err
	}

	if payload.MatchID == "" {
		return nil, errMatchIDRequired
	}

	return payload, nil
}

// errorText keeps client mistakes readable and hides internal failures.
func errorText(err error) string {
	for _, known := range []error{
		apperror.ErrInvalidMove,
		apperror.ErrMatchNotFound,
		apperror.ErrMatchFinished,
		apperror.ErrRoundOver,
		apperror.ErrRoundInProgress,
		apperror.ErrInvalidMarker,
		apperror.ErrInvalidDifficulty,
		errMatchIDRequired,
		errCellRequired,
	} {
		if errors.Is(err, known) {
			return err.Error()
		}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return "invalid payload"
	}

	return "internal error"
}
