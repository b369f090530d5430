package terminal

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame() *tictactoe.Controller {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return tictactoe.NewGameController(logger, tictactoe.NewGameState())
}

func TestRenderer_Render(t *testing.T) {
	// Given: X in the center
	game := newGame()
	game.ApplyMove(4)

	renderer := NewRenderer(io.Discard, termenv.WithProfile(termenv.Ascii))

	// When: rendering
	out := renderer.Render(game.CurrentView(), game.MoveList())

	// Then: the board, status and moves are shown without colors
	expected := strings.Join([]string{
		" 1 | 2 | 3 ",
		"---+---+---",
		" 4 | X | 6 ",
		"---+---+---",
		" 7 | 8 | 9 ",
		"",
		"Next player: O  (order: asc)",
		"   0. Go to game start",
		">  1. Go to move #1 (row, col) = (2, 2)",
		"",
	}, "\n")
	assert.Equal(t, expected, out)
}

func TestPlay(t *testing.T) {
	t.Run("Hotseat game to a win", func(t *testing.T) {
		// Given: commands for a top row win, a bad command and a jump
		in := strings.NewReader("1\n5\n2\n4\n3\nfoo\nj 1\no\nq\n")
		var out bytes.Buffer
		game := newGame()

		// When: playing
		err := Play(context.Background(), in, &out, game, NewRenderer(&out, termenv.WithProfile(termenv.Ascii)))

		// Then: the game was won, then rewound to move 1 in descending order
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Winner: X")
		assert.Contains(t, out.String(), help)

		view := game.CurrentView()
		assert.Equal(t, 1, view.ActiveStep)
		assert.Equal(t, "desc", view.OrderLabel())
		assert.Len(t, game.MoveList(), 6)
	})

	t.Run("Stops at EOF", func(t *testing.T) {
		game := newGame()

		err := Play(context.Background(), strings.NewReader("5\n"), io.Discard, game, NewRenderer(io.Discard))

		require.NoError(t, err)
		assert.Equal(t, 1, game.CurrentView().ActiveStep)
	})

	t.Run("Stops when the context is done", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := Play(ctx, strings.NewReader("5\n"), io.Discard, newGame(), NewRenderer(io.Discard))

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestDispatch(t *testing.T) {
	cases := []struct {
		line     string
		quit, ok bool
	}{
		{"", false, false},
		{"q", true, true},
		{"9", false, true},
		{"j", false, false},
		{"j x", false, false},
		{"j 0", false, true},
		{"1 2", false, false},
		{"order", false, true},
	}

	for _, tc := range cases {
		quit, ok := dispatch(newGame(), tc.line)
		assert.Equal(t, tc.quit, quit, "line %q", tc.line)
		assert.Equal(t, tc.ok, ok, "line %q", tc.line)
	}
}
