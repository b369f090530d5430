package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

// View is what the presentation layer reads after every operation.
type View struct {
	Grid               entity.Grid    `json:"grid"`
	Outcome            entity.Outcome `json:"outcome"`
	ActiveStep         int            `json:"active_step"`
	MoveOrderAscending bool           `json:"move_order_ascending"`
}

func NewView(state GameState) View {
	grid := state.Current()

	return View{
		Grid:               grid,
		Outcome:            Evaluate(grid),
		ActiveStep:         state.ActiveStep,
		MoveOrderAscending: state.MoveOrderAscending,
	}
}

func (that View) XIsNext() bool {
	return that.ActiveStep%2 == 0
}

func (that View) NextPlayer() entity.Cell {
	if that.XIsNext() {
		return entity.PlayerX
	}
	return entity.PlayerO
}

// Status - the status line shown above the move list.
func (that View) Status() string {
	switch that.Outcome.Kind {
	case entity.OutcomeWin:
		return fmt.Sprintf("Winner: %s", that.Outcome.Winner)
	case entity.OutcomeDraw:
		return "Draw"
	default:
		return fmt.Sprintf("Next player: %s", that.NextPlayer())
	}
}

// OrderLabel - label of the move order toggle.
func (that View) OrderLabel() string {
	if that.MoveOrderAscending {
		return "asc"
	}
	return "desc"
}

// IsHighlighted - reports whether the cell is part of the winning line.
func (that View) IsHighlighted(index int) bool {
	return that.Outcome.InLine(index)
}
