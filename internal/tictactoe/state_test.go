package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playMoves(t *testing.T, cells ...int) GameState {
	t.Helper()

	state := NewGameState()
	for _, cell := range cells {
		var err error
		state, err = state.ApplyMove(cell)
		require.NoError(t, err, "cell %d", cell)
	}

	return state
}

func TestNewGameState(t *testing.T) {
	state := NewGameState()

	assert.Equal(t, NewHistory(), state.History)
	assert.Equal(t, 0, state.ActiveStep)
	assert.True(t, state.MoveOrderAscending)
	assert.True(t, state.XIsNext())
	require.NoError(t, state.Validate())
}

func TestGameState_ApplyMove(t *testing.T) {
	t.Run("Alternates players", func(t *testing.T) {
		// Given: two moves played
		state := playMoves(t, 0, 4)

		// Then: X played first, O second and X is next
		assert.Equal(t, x, state.Current()[0])
		assert.Equal(t, o, state.Current()[4])
		assert.Equal(t, 2, state.ActiveStep)
		assert.True(t, state.XIsNext())
	})

	t.Run("Receiver is unchanged", func(t *testing.T) {
		state := playMoves(t, 0)

		_, err := state.ApplyMove(1)

		require.NoError(t, err)
		assert.Len(t, state.History, 2)
		assert.Equal(t, 1, state.ActiveStep)
	})

	t.Run("Error on occupied cell", func(t *testing.T) {
		state := playMoves(t, 0)

		next, err := state.ApplyMove(0)

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, state, next)
	})

	t.Run("Error after the game is decided", func(t *testing.T) {
		// Given: X completed the top row
		state := playMoves(t, 0, 4, 1, 3, 2)

		// When: O tries to play
		next, err := state.ApplyMove(8)

		// Then: ErrGameDecided is returned and the state is unchanged
		require.ErrorIs(t, err, apperror.ErrGameDecided)
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, state, next)
	})
}

func TestGameState_JumpTo(t *testing.T) {
	state := playMoves(t, 0, 4, 8)

	t.Run("Keeps the history", func(t *testing.T) {
		next, err := state.JumpTo(1)

		require.NoError(t, err)
		assert.Equal(t, 1, next.ActiveStep)
		assert.False(t, next.XIsNext())
		assert.Equal(t, state.History, next.History)
	})

	t.Run("Out of range", func(t *testing.T) {
		next, err := state.JumpTo(4)

		require.ErrorIs(t, err, apperror.ErrOutOfRange)
		assert.Equal(t, state, next)
	})
}

func TestGameState_Validate(t *testing.T) {
	t.Run("Played game is valid", func(t *testing.T) {
		state := playMoves(t, 0, 4, 1, 3, 2)
		state, err := state.JumpTo(2)
		require.NoError(t, err)

		assert.NoError(t, state.Validate())
	})

	cases := []struct {
		name  string
		state GameState
	}{
		{
			name:  "Empty history",
			state: GameState{},
		},
		{
			name:  "Active step out of range",
			state: GameState{History: NewHistory(), ActiveStep: 1},
		},
		{
			name:  "Does not start empty",
			state: GameState{History: History{{x}}},
		},
		{
			name:  "Two cells changed",
			state: GameState{History: History{entity.EmptyGrid(), {x, o}}},
		},
		{
			name:  "Wrong player",
			state: GameState{History: History{entity.EmptyGrid(), {o}}},
		},
		{
			name:  "Unknown mark",
			state: GameState{History: History{entity.EmptyGrid(), {"Z"}}},
		},
		{
			name: "Move after a win",
			state: GameState{History: append(
				playMoves(t, 0, 3, 1, 4, 2).History,
				entity.Grid{x, x, x, o, o, o},
			)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.state.Validate(), apperror.ErrCorruptState)
		})
	}
}
