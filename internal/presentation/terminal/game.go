package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

const help = "commands: 1-9 place a mark, j N jump to move N, o toggle order, q quit"

type controller interface {
	ApplyMove(cellIndex int)
	JumpTo(step int)
	ToggleMoveOrder()
	CurrentView() tictactoe.View
	MoveList() []tictactoe.MoveEntry
}

// Play - runs a hotseat game reading one command per line until quit, EOF or ctx is done.
func Play(ctx context.Context, in io.Reader, out io.Writer, game controller, renderer *Renderer) error {
	scanner := bufio.NewScanner(in)

	if err := draw(out, game, renderer); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := fmt.Fprint(out, "> "); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read command: %w", err)
			}
			return nil
		}

		quit, ok := dispatch(game, scanner.Text())
		if quit {
			return nil
		}

		if !ok {
			if _, err := fmt.Fprintln(out, help); err != nil {
				return fmt.Errorf("failed to write help: %w", err)
			}
			continue
		}

		if err := draw(out, game, renderer); err != nil {
			return err
		}
	}
}

// dispatch - maps one input line to a controller call.
func dispatch(game controller, line string) (bool, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, false
	}

	switch fields[0] {
	case "q", "quit":
		return true, true
	case "o", "order":
		game.ToggleMoveOrder()
		return false, true
	case "j", "jump":
		if len(fields) != 2 {
			return false, false
		}
		step, err := strconv.Atoi(fields[1])
		if err != nil {
			return false, false
		}
		game.JumpTo(step)
		return false, true
	}

	cell, err := strconv.Atoi(fields[0])
	if err != nil || len(fields) != 1 {
		return false, false
	}

	game.ApplyMove(cell - 1)

	return false, true
}

func draw(out io.Writer, game controller, renderer *Renderer) error {
	if _, err := fmt.Fprintln(out, renderer.Render(game.CurrentView(), game.MoveList())); err != nil {
		return fmt.Errorf("failed to draw board: %w", err)
	}

	return nil
}
