package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

const rowSeparator = "---+---+---"

// Renderer draws the board, status and move list. Empty cells show the
// number that places a mark on them.
type Renderer struct {
	output *termenv.Output
}

func NewRenderer(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{output: termenv.NewOutput(w, opts...)}
}

func (that *Renderer) Render(view tictactoe.View, moves []tictactoe.MoveEntry) string {
	var b strings.Builder

	for row := 0; row < entity.GridSide; row++ {
		cells := make([]string, entity.GridSide)
		for col := 0; col < entity.GridSide; col++ {
			index := row*entity.GridSide + col
			cells[col] = " " + that.cell(view, index) + " "
		}

		b.WriteString(strings.Join(cells, "|"))
		b.WriteString("\n")

		if row < entity.GridSide-1 {
			b.WriteString(rowSeparator)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(that.output.String(view.Status()).Bold().String())
	fmt.Fprintf(&b, "  (order: %s)\n", view.OrderLabel())

	for _, move := range moves {
		line := fmt.Sprintf("%2d. %s", move.Move, move.Description)
		if move.IsActive {
			b.WriteString("> ")
			b.WriteString(that.output.String(line).Bold().String())
		} else {
			b.WriteString("  ")
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (that *Renderer) cell(view tictactoe.View, index int) string {
	value := view.Grid[index]

	if value == entity.EmptyCell {
		return that.output.String(strconv.Itoa(index + 1)).Faint().String()
	}

	style := that.output.String(string(value))
	if view.IsHighlighted(index) {
		style = style.Foreground(that.output.Color("1")).Bold()
	}

	return style.String()
}
