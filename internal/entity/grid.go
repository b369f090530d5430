package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
)

// Cell is the content of one board square.
type Cell string

const (
	EmptyCell Cell = ""
	PlayerX   Cell = "X"
	PlayerO   Cell = "O"
)

const (
	GridSide = 3
	GridSize = GridSide * GridSide
)

// Grid is one board snapshot in row-major order (index = row*3 + col).
// Grid is an array, so assigning or passing it copies the cells.
type Grid [GridSize]Cell

// EmptyGrid - returns the board of a fresh game.
func EmptyGrid() Grid {
	return Grid{}
}

// WithMove - returns a copy of the grid with player placed at index.
func (that Grid) WithMove(index int, player Cell) (Grid, error) {
	if index < 0 || index >= GridSize {
		return that, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	if player != PlayerX && player != PlayerO {
		return that, fmt.Errorf("%w: player %q", apperror.ErrInvalidMove, player)
	}

	if that[index] != EmptyCell {
		return that, fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, index)
	}

	that[index] = player

	return that, nil
}

// IsFull - reports whether no empty cell is left.
func (that Grid) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// Diff - returns the indices where the two grids differ.
func (that Grid) Diff(other Grid) []int {
	var changed []int
	for i := range that {
		if that[i] != other[i] {
			changed = append(changed, i)
		}
	}

	return changed
}

// Position - converts a cell index to a 1-based row and column.
func Position(index int) (int, int) {
	return index/GridSide + 1, index%GridSide + 1
}

// IsValid - reports whether the cell holds a known value.
func (that Cell) IsValid() bool {
	return that == EmptyCell || that == PlayerX || that == PlayerO
}

// Opponent - returns the other player's mark.
func (that Cell) Opponent() Cell {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}
