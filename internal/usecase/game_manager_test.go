package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/repository"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errRedisDown = errors.New("redis down")

type mockGameRepo struct {
	mock.Mock
}

func (that *mockGameRepo) CreateOrUpdate(ctx context.Context, id string, state tictactoe.GameState) error {
	args := that.Called(ctx, id, state)
	return args.Error(0)
}

func (that *mockGameRepo) GetByID(ctx context.Context, id string) (tictactoe.GameState, error) {
	args := that.Called(ctx, id)
	return args.Get(0).(tictactoe.GameState), args.Error(1)
}

func (that *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}

func newTestManager(t *testing.T) *GameManager {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewGameManager(logger, repository.NewMemoryGameRepository(0), metrics.New())
}

func TestGameManager_CreateGame(t *testing.T) {
	ctx := context.Background()
	manager := newTestManager(t)

	// When: creating two games
	first, err := manager.CreateGame(ctx)
	require.NoError(t, err)
	second, err := manager.CreateGame(ctx)
	require.NoError(t, err)

	// Then: both start empty with distinct IDs
	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, entity.EmptyGrid(), first.View.Grid)
	require.Len(t, first.Moves, 1)
	assert.Equal(t, "Go to game start", first.Moves[0].Description)
	assert.True(t, first.Moves[0].IsActive)
}

func TestGameManager_Play(t *testing.T) {
	ctx := context.Background()
	manager := newTestManager(t)

	game, err := manager.CreateGame(ctx)
	require.NoError(t, err)

	t.Run("Moves are stored between calls", func(t *testing.T) {
		for _, cell := range []int{0, 4, 1, 3, 2} {
			game, err = manager.MakeTurn(ctx, game.ID, cell)
			require.NoError(t, err)
		}

		stored, err := manager.GetGame(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.Win(entity.PlayerX, [3]int{0, 1, 2}), stored.View.Outcome)
		assert.Len(t, stored.Moves, 6)
	})

	t.Run("Invalid move is not an error", func(t *testing.T) {
		before, err := manager.GetGame(ctx, game.ID)
		require.NoError(t, err)

		after, err := manager.MakeTurn(ctx, game.ID, 8)

		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("Jump and branch", func(t *testing.T) {
		_, err := manager.JumpTo(ctx, game.ID, 1)
		require.NoError(t, err)

		after, err := manager.MakeTurn(ctx, game.ID, 8)

		require.NoError(t, err)
		assert.Equal(t, 2, after.View.ActiveStep)
		assert.Len(t, after.Moves, 3)
		assert.Equal(t, entity.PlayerO, after.View.Grid[8])
	})

	t.Run("Jump out of range is not an error", func(t *testing.T) {
		before, err := manager.GetGame(ctx, game.ID)
		require.NoError(t, err)

		after, err := manager.JumpTo(ctx, game.ID, 99)

		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("Toggle move order", func(t *testing.T) {
		after, err := manager.ToggleMoveOrder(ctx, game.ID)

		require.NoError(t, err)
		assert.False(t, after.View.MoveOrderAscending)
		assert.Equal(t, 2, after.Moves[0].Move)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, manager.DeleteGame(ctx, game.ID))

		_, err := manager.GetGame(ctx, game.ID)
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)

		_, err = manager.MakeTurn(ctx, game.ID, 0)
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)

		require.ErrorIs(t, manager.DeleteGame(ctx, game.ID), apperror.ErrSessionNotFound)
	})
}

func TestGameManager_StorageErrors(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Load failure", func(t *testing.T) {
		// Given: a store that cannot be read
		repo := &mockGameRepo{}
		repo.On("GetByID", ctx, "id").Return(tictactoe.GameState{}, errRedisDown)
		manager := NewGameManager(logger, repo, nil)

		// When: playing a move
		_, err := manager.MakeTurn(ctx, "id", 0)

		// Then: the error surfaces and nothing is written back
		require.ErrorIs(t, err, errRedisDown)
		repo.AssertExpectations(t)
		repo.AssertNotCalled(t, "CreateOrUpdate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Save failure", func(t *testing.T) {
		// Given: a store that reads but cannot write
		repo := &mockGameRepo{}
		repo.On("GetByID", ctx, "id").Return(tictactoe.NewGameState(), nil)
		repo.On("CreateOrUpdate", ctx, mock.Anything, mock.Anything).Return(errRedisDown)
		manager := NewGameManager(logger, repo, nil)

		// When: playing a move and creating a game
		_, err := manager.MakeTurn(ctx, "id", 0)
		require.ErrorIs(t, err, errRedisDown)

		_, err = manager.CreateGame(ctx)
		require.ErrorIs(t, err, errRedisDown)

		// Then: the move was attempted on top of the loaded state
		repo.AssertCalled(t, "CreateOrUpdate", ctx, "id", mock.MatchedBy(func(state tictactoe.GameState) bool {
			return state.ActiveStep == 1 && state.Current()[0] == entity.PlayerX
		}))
	})

	t.Run("Delete failure", func(t *testing.T) {
		repo := &mockGameRepo{}
		repo.On("DeleteByID", ctx, "id").Return(errRedisDown)
		manager := NewGameManager(logger, repo, nil)

		require.ErrorIs(t, manager.DeleteGame(ctx, "id"), errRedisDown)
		repo.AssertExpectations(t)
	})
}

func TestGameManager_SerializesSessionCalls(t *testing.T) {
	ctx := context.Background()
	manager := newTestManager(t)

	game, err := manager.CreateGame(ctx)
	require.NoError(t, err)

	// When: every cell is clicked at the same time
	var wg sync.WaitGroup
	for cell := range entity.GridSize {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := manager.MakeTurn(ctx, game.ID, cell)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Then: the stored history is still a valid sequence of single moves
	state, err := manager.gameRepo.GetByID(ctx, game.ID)
	require.NoError(t, err)
	require.NoError(t, state.Validate())
	assert.Equal(t, len(state.History)-1, state.ActiveStep)
	assert.GreaterOrEqual(t, len(state.History), 6)
	assert.Equal(t, 0, manager.locks.len())
}
