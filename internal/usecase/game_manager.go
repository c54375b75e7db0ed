package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager - runs sessions on behalf of the transport layer. Operations on one game are serialized.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	rng      minimax.Rand

	locks *xsync.MapOf[string, *sync.Mutex]
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, rng minimax.Rand) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		rng:      rng,
		locks:    xsync.NewMapOf[string, *sync.Mutex](),
	}
}

func (that *GameManager) CreateGame(ctx context.Context, mode entity.Mode, difficulty entity.Difficulty) (*entity.Game, error) {
	game := tictactoe.NewSession(uuid.NewString(), mode, difficulty)

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "mode", mode, "difficulty", difficulty)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn - applies the human move and, in single player mode, the bot's reply.
func (that *GameManager) MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error) {
	unlock := that.lock(id)
	defer unlock()

	log := that.logger.With("method", "MakeTurn", "gameID", id)

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err = tictactoe.ApplyHumanMove(game, cell); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsBotTurn() {
		move, status, err := tictactoe.RequestPolicyMove(game, game.Difficulty, that.rng)
		if err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}

		log.Debug("bot moved", "cell", move, "status", status.Status)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner)
	}

	return game, nil
}

func (that *GameManager) ResetGame(ctx context.Context, id string) (*entity.Game, error) {
	unlock := that.lock(id)
	defer unlock()

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	tictactoe.ResetSession(game)

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	unlock := that.lock(id)
	defer func() {
		unlock()
		that.locks.Delete(id)
	}()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

func (that *GameManager) lock(id string) func() {
	mu, _ := that.locks.LoadOrCompute(id, func() *sync.Mutex {
		return &sync.Mutex{}
	})

	mu.Lock()

	return mu.Unlock
}
