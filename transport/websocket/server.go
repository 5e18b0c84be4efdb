package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

type matchUseCase interface {
	CreateMatch(ctx context.Context, human entity.Marker, difficulty string) (*entity.Match, error)
	GetMatch(ctx context.Context, id string) (*entity.Match, error)
	MakeTurn(ctx context.Context, id string, cell int) (*usecase.TurnResult, error)
	NextRound(ctx context.Context, id string) (*entity.Match, error)
	AbandonMatch(ctx context.Context, id string) error
}

type handlerFunc func(ctx context.Context, msg *Message) (any, error)

type Server struct {
	logger  *slog.Logger
	matches matchUseCase

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, matches matchUseCase) *Server {
	server := &Server{
		logger:  logger.With("component", "websocket"),
		matches: matches,
	}

	server.handlers = map[string]handlerFunc{
		actionNewMatch: server.handleNewMatch,
		actionGetMatch: server.handleGetMatch,
		actionTurn:     server.handleTurn,
		actionRound:    server.handleRound,
		actionLeave:    server.handleLeave,
	}

	return server
}

// Start - starts WebSocket server on /ws until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", that)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx) //nolint: contextcheck // parent is already canceled
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// ServeHTTP upgrades the request and serves messages until the client leaves.
func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Error("failed to accept websocket connection", "error", err)
		return
	}
	defer conn.CloseNow()

	log.Info("WebSocket connection established")

	err = that.handleMessages(r.Context(), conn)

	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		log.Info("WebSocket connection closed")
	default:
		if !errors.Is(err, context.Canceled) {
			log.Error("error handling messages", "error", err)
		}
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return err
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Debug("failed to unmarshal message", "error", err)

			if err = that.send(ctx, conn, Response{Error: "invalid message"}); err != nil {
				return err
			}

			continue
		}

		response := that.dispatch(ctx, &message)
		if err = that.send(ctx, conn, response); err != nil {
			return err
		}
	}
}

func (that *Server) dispatch(ctx context.Context, message *Message) Response {
	log := that.logger.With("method", "dispatch", "action", message.Action)

	handler, ok := that.handlers[message.Action]
	if !ok {
		return Response{Action: message.Action, Error: "unknown action"}
	}

	payload, err := handler(ctx, message)
	if err != nil {
		log.Debug("error processing message", "error", err)
		return Response{Action: message.Action, Error: errorText(err)}
	}

	return Response{Action: message.Action, Payload: payload}
}

func (that *Server) send(ctx context.Context, conn *websocket.Conn, response Response) error {
	if err := wsjson.Write(ctx, conn, response); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}
