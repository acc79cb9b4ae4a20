package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/game"
	"github.com/rocketscienceinc/tictactoe/internal/repository"
	"github.com/rocketscienceinc/tictactoe/testing/suite"
)

var errStorageIsFull = errors.New("storage is full")

type mockGameRepo struct {
	mock.Mock
}

func (that *mockGameRepo) CreateOrUpdate(ctx context.Context, g *game.Game) error {
	args := that.Called(ctx, g)
	return args.Error(0)
}

func (that *mockGameRepo) GetByID(ctx context.Context, id string) (*game.Game, error) {
	args := that.Called(ctx, id)
	g, _ := args.Get(0).(*game.Game)
	return g, args.Error(1)
}

func (that *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}

func newManager(t *testing.T) (context.Context, *GameManager, *suite.Suite) {
	t.Helper()

	ctx, st := suite.New(t)

	return ctx, NewGameManager(st.Logger, repository.NewGameRepository(), entity.Ascending), st
}

func clickAll(ctx context.Context, t *testing.T, manager *GameManager, id string, cells ...int) *View {
	t.Helper()

	var view *View
	for _, cell := range cells {
		var err error
		view, err = manager.Click(ctx, id, cell)
		require.NoError(t, err, "cell %d", cell)
	}

	return view
}

func TestGameManager_NewGame(t *testing.T) {
	t.Run("Creates an empty game", func(t *testing.T) {
		ctx, manager, _ := newManager(t)

		// When: a new game is requested
		view, err := manager.NewGame(ctx)

		// Then: the view describes the initial board
		require.NoError(t, err)
		assert.NotEmpty(t, view.ID)
		assert.True(t, view.Board.IsEmpty())
		assert.Equal(t, "Next player: X", view.Status)
		assert.Equal(t, 0, view.Cursor)
		assert.Equal(t, 1, view.Length)
		assert.False(t, view.Finished)
		assert.Equal(t, []MoveItem{{Move: 0, Description: "You are at move 0", Current: true}}, view.Moves)
	})

	t.Run("Each game gets its own ID", func(t *testing.T) {
		ctx, manager, _ := newManager(t)

		first, err := manager.NewGame(ctx)
		require.NoError(t, err)
		second, err := manager.NewGame(ctx)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("Returns error if gameRepo.CreateOrUpdate fails", func(t *testing.T) {
		// Given: a repository that refuses to store games
		ctx, st := suite.New(t)
		mockRepo := &mockGameRepo{}
		manager := NewGameManager(st.Logger, mockRepo, entity.Ascending)

		mockRepo.On("CreateOrUpdate", ctx, mock.AnythingOfType("*game.Game")).
			Return(errStorageIsFull).
			Once()

		// When: creating a game
		view, err := manager.NewGame(ctx)

		// Then: the error is returned and no view is produced
		require.ErrorIs(t, err, errStorageIsFull)
		assert.Nil(t, view)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Uses the configured display order", func(t *testing.T) {
		ctx, st := suite.New(t)
		manager := NewGameManager(st.Logger, repository.NewGameRepository(), entity.Descending)

		view, err := manager.NewGame(ctx)
		require.NoError(t, err)

		assert.Equal(t, entity.Descending, view.Order)
	})
}

func TestGameManager_Click(t *testing.T) {
	t.Run("Successful click", func(t *testing.T) {
		ctx, manager, _ := newManager(t)
		created, err := manager.NewGame(ctx)
		require.NoError(t, err)

		// When: X clicks the center
		view, err := manager.Click(ctx, created.ID, 4)

		// Then: the board and the status reflect the move
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, view.Board[4])
		assert.Equal(t, "Next player: O", view.Status)
		assert.Equal(t, 2, view.Length)
		assert.Equal(t, []MoveItem{
			{Move: 0, Description: "Go to game start"},
			{Move: 1, Description: "You are at move 1", Current: true},
		}, view.Moves)
	})

	t.Run("Click on occupied cell is ignored", func(t *testing.T) {
		ctx, manager, _ := newManager(t)
		created, err := manager.NewGame(ctx)
		require.NoError(t, err)
		before := clickAll(ctx, t, manager, created.ID, 4)

		// When: O clicks the same cell
		view, err := manager.Click(ctx, created.ID, 4)

		// Then: the move is rejected and the view is unchanged
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, view)
	})

	t.Run("Click after a win is ignored", func(t *testing.T) {
		ctx, manager, _ := newManager(t)
		created, err := manager.NewGame(ctx)
		require.NoError(t, err)
		won := clickAll(ctx, t, manager, created.ID, 0, 3, 1, 4, 2)

		require.True(t, won.Finished)
		assert.Equal(t, "Winner: X", won.Status)
		assert.True(t, won.IsWinningCell(1))
		assert.False(t, won.IsWinningCell(3))

		view, err := manager.Click(ctx, created.ID, 8)

		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, won, view)
	})

	t.Run("Draw status", func(t *testing.T) {
		ctx, manager, _ := newManager(t)
		created, err := manager.NewGame(ctx)
		require.NoError(t, err)

		// X O X / X O O / O X X
		view := clickAll(ctx, t, manager, created.ID, 0, 1, 2, 4, 3, 5, 7, 6, 8)

		assert.Equal(t, "Draw", view.Status)
		assert.True(t, view.Finished)
		assert.Nil(t, view.Winner)
	})

	t.Run("Error if game not found", func(t *testing.T) {
		ctx, manager, _ := newManager(t)

		view, err := manager.Click(ctx, "missing", 0)

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, view)
	})

	t.Run("Returns error if gameRepo.CreateOrUpdate fails after a move", func(t *testing.T) {
		ctx, st := suite.New(t)
		mockRepo := &mockGameRepo{}
		manager := NewGameManager(st.Logger, mockRepo, entity.Ascending)

		existingGame := game.NewGame("g1")
		mockRepo.On("GetByID", ctx, "g1").Return(existingGame, nil).Once()
		mockRepo.On("CreateOrUpdate", ctx, existingGame).Return(errStorageIsFull).Once()

		view, err := manager.Click(ctx, "g1", 0)

		require.ErrorIs(t, err, errStorageIsFull)
		assert.Nil(t, view)
		mockRepo.AssertExpectations(t)
	})
}

func TestGameManager_JumpTo(t *testing.T) {
	t.Run("Time travel then a new move drops the future", func(t *testing.T) {
		ctx, manager, _ := newManager(t)
		created, err := manager.NewGame(ctx)
		require.NoError(t, err)
		clickAll(ctx, t, manager, created.ID, 0, 4, 8, 2)

		// When: jumping back to move 2
		view, err := manager.JumpTo(ctx, created.ID, 2)

		// Then: the board of move 2 is current and X is to move
		require.NoError(t, err)
		assert.Equal(t, 2, view.Cursor)
		assert.Equal(t, 5, view.Length)
		assert.Equal(t, "Next player: X", view.Status)
		assert.Equal(t, "You are at move 2", view.Moves[2].Description)
		assert.Equal(t, "Go to move #4", view.Moves[4].Description)

		// When: a new move is played from move 2
		view = clickAll(ctx, t, manager, created.ID, 6)

		// Then: moves 3 and 4 are replaced by the new move
		assert.Equal(t, 4, view.Length)
		assert.Equal(t, 3, view.Cursor)
	})

	t.Run("Error on Index Out Of Range", func(t *testing.T) {
		ctx, manager, _ := newManager(t)
		created, err := manager.NewGame(ctx)
		require.NoError(t, err)

		view, err := manager.JumpTo(ctx, created.ID, 1)

		require.ErrorIs(t, err, apperror.ErrIndexOutOfRange)
		assert.Nil(t, view)
	})
}

func TestGameManager_ToggleOrder(t *testing.T) {
	ctx, manager, _ := newManager(t)
	created, err := manager.NewGame(ctx)
	require.NoError(t, err)
	original := clickAll(ctx, t, manager, created.ID, 0, 4)

	// When: toggling once
	view, err := manager.ToggleOrder(ctx, created.ID)
	require.NoError(t, err)

	// Then: rows are reversed but keep their move numbers
	assert.Equal(t, entity.Descending, view.Order)
	assert.Equal(t, []MoveItem{
		{Move: 2, Description: "You are at move 2", Current: true},
		{Move: 1, Description: "Go to move #1"},
		{Move: 0, Description: "Go to game start"},
	}, view.Moves)
	assert.Equal(t, original.Board, view.Board)
	assert.Equal(t, original.Status, view.Status)

	// When: toggling again
	view, err = manager.ToggleOrder(ctx, created.ID)
	require.NoError(t, err)

	// Then: the original list is restored
	assert.Equal(t, original, view)
}

func TestGameManager_EndGame(t *testing.T) {
	ctx, manager, st := newManager(t)
	created, err := manager.NewGame(ctx)
	require.NoError(t, err)
	clickAll(ctx, t, manager, created.ID, 4)

	// When: the game is ended
	err = manager.EndGame(ctx, created.ID)

	// Then: it can no longer be found
	require.NoError(t, err)
	_, err = manager.GetView(ctx, created.ID)
	require.ErrorIs(t, err, apperror.ErrGameNotFound)

	require.ErrorIs(t, manager.EndGame(ctx, created.ID), apperror.ErrGameNotFound)

	// And: the change hook logged the move
	assert.Contains(t, st.Logs.String(), `"msg":"game changed"`)
	assert.Contains(t, st.Logs.String(), `"msg":"game deleted"`)
}
