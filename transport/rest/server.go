package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

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

// NewRouter wires routes and returns an http.Handler.
func NewRouter(logger *slog.Logger, matches matchUseCase) http.Handler {
	h := &handlers{
		logger:  logger.With("component", "rest"),
		matches: matches,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/ping", pingHandler)

	r.Post("/matches", h.createMatch)
	r.Route("/matches/{id}", func(r chi.Router) {
		r.Get("/", h.getMatch)
		r.Delete("/", h.abandonMatch)
		r.Post("/turns", h.makeTurn)
		r.Post("/rounds", h.nextRound)
	})

	return r
}

// Start - serves handler on port until ctx is canceled.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
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
