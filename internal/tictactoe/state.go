package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

// GameState is the whole state of one game. Transitions never modify the
// receiver: each returns a new value, which the Controller swaps in wholesale.
type GameState struct {
	History            History `json:"history"`
	ActiveStep         int     `json:"active_step"`
	MoveOrderAscending bool    `json:"move_order_ascending"`
}

func NewGameState() GameState {
	return GameState{
		History:            NewHistory(),
		ActiveStep:         0,
		MoveOrderAscending: true,
	}
}

// XIsNext - X plays on even steps.
func (that GameState) XIsNext() bool {
	return that.ActiveStep%2 == 0
}

func (that GameState) NextPlayer() entity.Cell {
	if that.XIsNext() {
		return entity.PlayerX
	}
	return entity.PlayerO
}

// Current - returns the grid at the active step.
func (that GameState) Current() entity.Grid {
	return that.History[that.ActiveStep]
}

func (that GameState) Outcome() entity.Outcome {
	return Evaluate(that.Current())
}

// ApplyMove - places the next player's mark on cell and branches the history.
// On error the returned state is the receiver unchanged.
func (that GameState) ApplyMove(cell int) (GameState, error) {
	grid := that.Current()

	if Evaluate(grid).IsDecided() {
		return that, apperror.ErrGameDecided
	}

	newGrid, err := grid.WithMove(cell, that.NextPlayer())
	if err != nil {
		return that, fmt.Errorf("failed to apply move: %w", err)
	}

	history, step := that.History.Append(that.ActiveStep, newGrid)

	return GameState{
		History:            history,
		ActiveStep:         step,
		MoveOrderAscending: that.MoveOrderAscending,
	}, nil
}

// JumpTo - moves the active step without touching the history.
func (that GameState) JumpTo(step int) (GameState, error) {
	step, err := that.History.JumpTo(step)
	if err != nil {
		return that, err
	}

	that.ActiveStep = step

	return that, nil
}

func (that GameState) ToggleMoveOrder() GameState {
	that.MoveOrderAscending = !that.MoveOrderAscending
	return that
}

// Clone - returns a deep copy, safe to hand out to callers.
func (that GameState) Clone() GameState {
	that.History = that.History.Clone()
	return that
}

// Validate - checks that the state could have been produced by play from an
// empty grid. Used on snapshots coming from storage.
func (that GameState) Validate() error {
	if len(that.History) == 0 {
		return fmt.Errorf("%w: empty history", apperror.ErrCorruptState)
	}

	if that.ActiveStep < 0 || that.ActiveStep >= len(that.History) {
		return fmt.Errorf("%w: active step %d, history length %d", apperror.ErrCorruptState, that.ActiveStep, len(that.History))
	}

	if that.History[0] != entity.EmptyGrid() {
		return fmt.Errorf("%w: history does not start with an empty grid", apperror.ErrCorruptState)
	}

	for move := 1; move < len(that.History); move++ {
		prev, curr := that.History[move-1], that.History[move]

		for i, cell := range curr {
			if !cell.IsValid() {
				return fmt.Errorf("%w: move %d has unknown mark %q at cell %d", apperror.ErrCorruptState, move, cell, i)
			}
		}

		if Evaluate(prev).IsDecided() {
			return fmt.Errorf("%w: move %d played after the game was decided", apperror.ErrCorruptState, move)
		}

		changed := prev.Diff(curr)
		if len(changed) != 1 {
			return fmt.Errorf("%w: move %d changes %d cells", apperror.ErrCorruptState, move, len(changed))
		}

		player := entity.PlayerX
		if (move-1)%2 == 1 {
			player = entity.PlayerO
		}

		index := changed[0]
		if prev[index] != entity.EmptyCell || curr[index] != player {
			return fmt.Errorf("%w: move %d is not a %s mark on an empty cell", apperror.ErrCorruptState, move, player)
		}
	}

	return nil
}
