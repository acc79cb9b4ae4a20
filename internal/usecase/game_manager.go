package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/game"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *game.Game) error
	GetByID(ctx context.Context, id string) (*game.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager drives the games on behalf of a view layer. Calls are serialized.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo

	order entity.DisplayOrder

	mu sync.Mutex
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, order entity.DisplayOrder) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		order:    order,
	}
}

func (that *GameManager) NewGame(ctx context.Context) (*View, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	gameID := uuid.NewString()

	newGame := game.NewGame(gameID,
		game.WithDisplayOrder(that.order),
		game.WithListener(that.logChange(gameID)),
	)

	if err := that.gameRepo.CreateOrUpdate(ctx, newGame); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", gameID)

	return newView(newGame), nil
}

func (that *GameManager) GetView(ctx context.Context, id string) (*View, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	existingGame, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return newView(existingGame), nil
}

// Click plays the current mark on cell. Clicks on a won game or an occupied cell are ignored:
// the unchanged view is returned along with an error wrapping ErrInvalidMove.
func (that *GameManager) Click(ctx context.Context, id string, cell int) (*View, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	existingGame, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = existingGame.History.PlayCell(cell); err != nil {
		if errors.Is(err, apperror.ErrInvalidMove) {
			that.logger.Debug("move ignored", "gameID", id, "cell", cell, "reason", err)
			return newView(existingGame), err
		}

		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.updateGame(ctx, existingGame); err != nil {
		return nil, err
	}

	return newView(existingGame), nil
}

func (that *GameManager) JumpTo(ctx context.Context, id string, move int) (*View, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	existingGame, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = existingGame.History.JumpTo(move); err != nil {
		return nil, fmt.Errorf("failed to jump: %w", err)
	}

	if err = that.updateGame(ctx, existingGame); err != nil {
		return nil, err
	}

	return newView(existingGame), nil
}

func (that *GameManager) ToggleOrder(ctx context.Context, id string) (*View, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	existingGame, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existingGame.History.ToggleDisplayOrder()

	if err = that.updateGame(ctx, existingGame); err != nil {
		return nil, err
	}

	return newView(existingGame), nil
}

func (that *GameManager) EndGame(ctx context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", id)

	return nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*game.Game, error) {
	existingGame, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return existingGame, nil
}

func (that *GameManager) updateGame(ctx context.Context, g *game.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, g); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameManager) logChange(gameID string) game.Listener {
	log := that.logger.With("method", "logChange", "gameID", gameID)

	return func(event game.Event) {
		log.Debug("game changed",
			"kind", event.Kind,
			"cursor", event.Cursor,
			"length", event.Length,
			"order", event.Order,
		)
	}
}
