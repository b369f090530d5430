package tictactoe

import "github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"

// WinLines - rows top-to-bottom, then columns left-to-right, then both diagonals.
// The order decides which line is reported when more than one is complete.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Evaluate - returns the outcome of the grid. It is pure and recomputed on every read.
func Evaluate(grid entity.Grid) entity.Outcome {
	for _, line := range WinLines {
		a, b, c := grid[line[0]], grid[line[1]], grid[line[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return entity.Win(a, line)
		}
	}

	// the game continues until all the squares are full
	if !grid.IsFull() {
		return entity.NoOutcome()
	}

	return entity.Draw()
}
