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
)

const shutdownTimeout = 5 * time.Second

type gameUseCase interface {
	CreateGame(ctx context.Context, mode entity.Mode, difficulty entity.Difficulty) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error)
	ResetGame(ctx context.Context, id string) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

// Defaults - settings for games created without an explicit mode or difficulty.
type Defaults struct {
	Mode       entity.Mode
	Difficulty entity.Difficulty
}

type Server struct {
	logger   *slog.Logger
	games    gameUseCase
	defaults Defaults
}

func New(logger *slog.Logger, games gameUseCase, defaults Defaults) *Server {
	return &Server{
		logger:   logger.With("component", "rest"),
		games:    games,
		defaults: defaults,
	}
}

func (that *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Get("/ping", that.ping)

	router.Route("/games", func(r chi.Router) {
		r.Post("/", that.createGame)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", that.getGame)
			r.Delete("/", that.deleteGame)
			r.Post("/turns", that.makeTurn)
			r.Post("/reset", that.resetGame)
		})
	})

	return router
}

// Start - serves HTTP until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
