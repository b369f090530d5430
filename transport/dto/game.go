package dto

import (
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

// Game is the JSON shape of a session sent to clients.
type Game struct {
	ID         string                `json:"id"`
	Grid       entity.Grid           `json:"grid"`
	Outcome    entity.Outcome        `json:"outcome"`
	Status     string                `json:"status"`
	NextPlayer entity.Cell           `json:"next_player"`
	ActiveStep int                   `json:"active_step"`
	MoveOrder  string                `json:"move_order"`
	Moves      []tictactoe.MoveEntry `json:"moves"`
}

func NewGame(game *usecase.Game) *Game {
	return &Game{
		ID:         game.ID,
		Grid:       game.View.Grid,
		Outcome:    game.View.Outcome,
		Status:     game.View.Status(),
		NextPlayer: game.View.NextPlayer(),
		ActiveStep: game.View.ActiveStep,
		MoveOrder:  game.View.OrderLabel(),
		Moves:      game.Moves,
	}
}
