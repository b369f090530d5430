package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

const gameStartDescription = "Go to game start"

// MoveDescription describes what a single history entry changed.
// Cell, Row and Col are zero-valued for the game start entry.
type MoveDescription struct {
	Move        int
	Cell        int
	Row         int
	Col         int
	Description string
}

// MoveEntry is the read model of one line of the move list.
type MoveEntry struct {
	Move        int    `json:"move"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
	Row         int    `json:"row,omitempty"`
	Col         int    `json:"col,omitempty"`
}

// ChangedCell - returns the index changed by history[move] relative to the previous entry.
func ChangedCell(history History, move int) (int, bool) {
	if move < 1 || move >= len(history) {
		return 0, false
	}

	changed := history[move-1].Diff(history[move])
	if len(changed) != 1 {
		return 0, false
	}

	return changed[0], true
}

// Describe - annotates one history entry.
func Describe(history History, move int) MoveDescription {
	if move == 0 {
		return MoveDescription{Move: 0, Description: gameStartDescription}
	}

	cell, ok := ChangedCell(history, move)
	if !ok {
		return MoveDescription{Move: move, Description: fmt.Sprintf("Go to move #%d", move)}
	}

	row, col := entity.Position(cell)

	return MoveDescription{
		Move:        move,
		Cell:        cell,
		Row:         row,
		Col:         col,
		Description: fmt.Sprintf("Go to move #%d (row, col) = (%d, %d)", move, row, col),
	}
}

// MoveList - annotates the whole history, ordered by the state's move order.
// It is derived from scratch on every call since branching replaces the tail.
func MoveList(state GameState) []MoveEntry {
	entries := make([]MoveEntry, len(state.History))

	for move := range state.History {
		description := Describe(state.History, move)
		entry := MoveEntry{
			Move:        move,
			Description: description.Description,
			IsActive:    move == state.ActiveStep,
			Row:         description.Row,
			Col:         description.Col,
		}

		if state.MoveOrderAscending {
			entries[move] = entry
		} else {
			entries[len(entries)-1-move] = entry
		}
	}

	return entries
}
