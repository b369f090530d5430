package entity

// OutcomeKind tags the variant held by an Outcome.
type OutcomeKind string

const (
	OutcomeNone OutcomeKind = "none"
	OutcomeWin  OutcomeKind = "win"
	OutcomeDraw OutcomeKind = "draw"
)

// Outcome is the decided/undecided status of a Grid.
// Winner and Line are set only when Kind is OutcomeWin.
type Outcome struct {
	Kind   OutcomeKind `json:"kind"`
	Winner Cell        `json:"winner,omitempty"`
	Line   []int       `json:"line,omitempty"`
}

func NoOutcome() Outcome {
	return Outcome{Kind: OutcomeNone}
}

func Draw() Outcome {
	return Outcome{Kind: OutcomeDraw}
}

func Win(player Cell, line [3]int) Outcome {
	return Outcome{Kind: OutcomeWin, Winner: player, Line: []int{line[0], line[1], line[2]}}
}

// IsDecided - reports whether the game can no longer accept moves.
func (that Outcome) IsDecided() bool {
	return that.Kind == OutcomeWin || that.Kind == OutcomeDraw
}

func (that Outcome) IsWin() bool {
	return that.Kind == OutcomeWin
}

func (that Outcome) IsDraw() bool {
	return that.Kind == OutcomeDraw
}

// InLine - reports whether the cell index belongs to the winning line.
func (that Outcome) InLine(index int) bool {
	for _, i := range that.Line {
		if i == index {
			return true
		}
	}

	return false
}
