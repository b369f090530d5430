package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

// History is the ordered list of grids from game start to the furthest move
// of the current branch. Entry 0 is always the empty grid.
type History []entity.Grid

func NewHistory() History {
	return History{entity.EmptyGrid()}
}

// Append - branches the history at activeStep: entries after activeStep are
// discarded for good and grid becomes the new last entry.
// The receiver is never modified; a fresh slice is returned with the new active step.
func (that History) Append(activeStep int, grid entity.Grid) (History, int) {
	keep := activeStep + 1
	if keep > len(that) {
		keep = len(that)
	}
	if keep < 0 {
		keep = 0
	}

	next := make(History, keep, keep+1)
	copy(next, that[:keep])
	next = append(next, grid)

	return next, len(next) - 1
}

// JumpTo - validates step against the history bounds and returns it.
func (that History) JumpTo(step int) (int, error) {
	if step < 0 || step >= len(that) {
		return 0, fmt.Errorf("%w: step %d, history length %d", apperror.ErrOutOfRange, step, len(that))
	}

	return step, nil
}

// Clone - returns a copy that shares no memory with the receiver.
func (that History) Clone() History {
	clone := make(History, len(that))
	copy(clone, that)

	return clone
}
