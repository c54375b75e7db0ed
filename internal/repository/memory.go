package repository

import (
	"context"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type memoryGame struct {
	games *xsync.MapOf[string, entity.Game]
}

// NewMemoryGameRepository - process-local storage, used when redis is not configured.
func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		games: xsync.NewMapOf[string, entity.Game](),
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.games.Store(game.ID, *game)

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	game, ok := that.games.Load(id)
	if !ok {
		return &entity.Game{}, ErrGameNotFound
	}

	return &game, nil
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	if _, ok := that.games.LoadAndDelete(id); !ok {
		return ErrGameNotFound
	}

	return nil
}
