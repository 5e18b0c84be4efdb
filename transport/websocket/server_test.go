package websocket

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

type testResponse struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload"`
	Error   string          `json:"error"`
}

func dialTestServer(t *testing.T) (context.Context, *websocket.Conn) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	bot := service.NewBotService(rand.New(rand.NewSource(1))) //nolint: gosec // test
	matches := usecase.NewMatchManager(logger, repository.NewMemoryMatchRepository(), bot, entity.DefaultWinningScore)

	ts := httptest.NewServer(New(logger, matches))
	t.Cleanup(ts.Close)

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "bye") })

	return ctx, conn
}

func request(ctx context.Context, t *testing.T, conn *websocket.Conn, action string, payload any) testResponse {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, wsjson.Write(ctx, conn, Message{Action: action, Payload: raw}))

	var response testResponse
	require.NoError(t, wsjson.Read(ctx, conn, &response))
	require.Equal(t, action, response.Action)

	return response
}

func TestServer_PlaysAMatch(t *testing.T) {
	ctx, conn := dialTestServer(t)

	// Given: a new hard match as X
	created := request(ctx, t, conn, actionNewMatch, Payload{Marker: entity.X})
	require.Empty(t, created.Error)

	var match entity.Match
	require.NoError(t, json.Unmarshal(created.Payload, &match))
	require.NotEmpty(t, match.ID)
	assert.Equal(t, entity.HardDifficulty, match.Difficulty)

	// When: the human takes a corner
	cell := 0
	turned := request(ctx, t, conn, actionTurn, Payload{MatchID: match.ID, Cell: &cell})
	require.Empty(t, turned.Error)

	// Then: the bot answers in the center
	var result usecase.TurnResult
	require.NoError(t, json.Unmarshal(turned.Payload, &result))
	require.NotNil(t, result.BotCell)
	assert.Equal(t, entity.Center, *result.BotCell)

	// And: replaying the same cell is rejected without closing the connection
	rejected := request(ctx, t, conn, actionTurn, Payload{MatchID: match.ID, Cell: &cell})
	assert.Contains(t, rejected.Error, "invalid move")

	// And: the match can be fetched and abandoned
	fetched := request(ctx, t, conn, actionGetMatch, Payload{MatchID: match.ID})
	require.Empty(t, fetched.Error)

	left := request(ctx, t, conn, actionLeave, Payload{MatchID: match.ID})
	require.Empty(t, left.Error)

	gone := request(ctx, t, conn, actionGetMatch, Payload{MatchID: match.ID})
	assert.Contains(t, gone.Error, "match not found")
}

func TestServer_RejectsBadRequests(t *testing.T) {
	ctx, conn := dialTestServer(t)

	t.Run("Unknown action", func(t *testing.T) {
		response := request(ctx, t, conn, "match:dance", Payload{})

		assert.Equal(t, "unknown action", response.Error)
	})

	t.Run("Missing match id", func(t *testing.T) {
		response := request(ctx, t, conn, actionRound, Payload{})

		assert.Equal(t, errMatchIDRequired.Error(), response.Error)
	})

	t.Run("Missing cell", func(t *testing.T) {
		response := request(ctx, t, conn, actionTurn, Payload{MatchID: "m1"})

		assert.Equal(t, errCellRequired.Error(), response.Error)
	})

	t.Run("Invalid marker", func(t *testing.T) {
		response := request(ctx, t, conn, actionNewMatch, Payload{Marker: "blank"})

		assert.Contains(t, response.Error, "invalid marker")
	})

	t.Run("Next round while the round is in progress", func(t *testing.T) {
		created := request(ctx, t, conn, actionNewMatch, Payload{Marker: entity.O, Difficulty: entity.EasyDifficulty})
		require.Empty(t, created.Error)

		var match entity.Match
		require.NoError(t, json.Unmarshal(created.Payload, &match))

		response := request(ctx, t, conn, actionRound, Payload{MatchID: match.ID})

		assert.Contains(t, response.Error, "round is still in progress")
	})

	t.Run("Malformed message", func(t *testing.T) {
		require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte("{")))

		var response testResponse
		require.NoError(t, wsjson.Read(ctx, conn, &response))

		assert.Equal(t, "invalid message", response.Error)
	})
}
