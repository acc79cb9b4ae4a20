package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/game"
)

var ErrGameNotFound = apperror.ErrGameNotFound

// GameRepository keeps games for the lifetime of the process.
type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *game.Game) error
	GetByID(ctx context.Context, id string) (*game.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type memGame struct {
	mu    sync.RWMutex
	games map[string]*game.Game
}

func NewGameRepository() GameRepository {
	return &memGame{
		games: make(map[string]*game.Game),
	}
}

func (that *memGame) CreateOrUpdate(ctx context.Context, g *game.Game) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	if g == nil || g.ID == "" {
		return fmt.Errorf("failed to set game: %w", apperror.ErrGameNotFound)
	}

	that.mu.Lock()
	that.games[g.ID] = g
	that.mu.Unlock()

	return nil
}

func (that *memGame) GetByID(ctx context.Context, id string) (*game.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	that.mu.RLock()
	existingGame, ok := that.games[id]
	that.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: id %s", ErrGameNotFound, id)
	}

	return existingGame, nil
}

func (that *memGame) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return fmt.Errorf("%w: id %s", ErrGameNotFound, id)
	}

	delete(that.games, id)

	return nil
}
