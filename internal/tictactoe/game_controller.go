package tictactoe

import (
	"errors"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

const (
	RejectDecided     = "decided"
	RejectOccupied    = "occupied"
	RejectInvalidCell = "invalid_cell"
	RejectOther       = "other"
)

// Recorder receives controller events, e.g. for metrics.
type Recorder interface {
	MoveApplied(player entity.Cell)
	MoveRejected(reason string)
	Jumped(ok bool)
	GameDecided(outcome entity.Outcome)
}

type nopRecorder struct{}

func (nopRecorder) MoveApplied(entity.Cell)    {}
func (nopRecorder) MoveRejected(string)        {}
func (nopRecorder) Jumped(bool)                {}
func (nopRecorder) GameDecided(entity.Outcome) {}

type Option func(*Controller)

func WithRecorder(recorder Recorder) Option {
	return func(c *Controller) {
		if recorder != nil {
			c.recorder = recorder
		}
	}
}

// Controller owns one GameState and is the only thing that replaces it.
// Invalid input leaves the state untouched and is never reported to the caller.
// A Controller is not safe for concurrent use.
type Controller struct {
	logger   *slog.Logger
	recorder Recorder

	state GameState
}

func NewGameController(logger *slog.Logger, state GameState, opts ...Option) *Controller {
	controller := &Controller{
		logger:   logger.With("component", "game_controller"),
		recorder: nopRecorder{},
		state:    state.Clone(),
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// ApplyMove - plays the next player's mark on cellIndex. Occupied cells,
// invalid indices and decided games are silent no-ops.
func (that *Controller) ApplyMove(cellIndex int) {
	log := that.logger.With("method", "ApplyMove", "cell", cellIndex, "step", that.state.ActiveStep)

	player := that.state.NextPlayer()

	next, err := that.state.ApplyMove(cellIndex)
	if err != nil {
		reason := rejectReason(err)
		log.Debug("move ignored", "reason", reason, "error", err)
		that.recorder.MoveRejected(reason)
		return
	}

	that.state = next
	that.recorder.MoveApplied(player)

	if outcome := next.Outcome(); outcome.IsDecided() {
		log.Debug("game decided", "outcome", outcome.Kind, "winner", outcome.Winner)
		that.recorder.GameDecided(outcome)
	}
}

// JumpTo - makes step the active step. Steps outside the history are ignored.
func (that *Controller) JumpTo(step int) {
	next, err := that.state.JumpTo(step)
	if err != nil {
		that.logger.Debug("jump ignored", "method", "JumpTo", "step", step, "error", err)
		that.recorder.Jumped(false)
		return
	}

	that.state = next
	that.recorder.Jumped(true)
}

// ToggleMoveOrder - flips the display order of the move list.
func (that *Controller) ToggleMoveOrder() {
	that.state = that.state.ToggleMoveOrder()
}

// CurrentView - read-only projection of the active step.
func (that *Controller) CurrentView() View {
	return NewView(that.state)
}

// MoveList - annotated history entries in display order.
func (that *Controller) MoveList() []MoveEntry {
	return MoveList(that.state)
}

// State - a deep copy of the current state.
func (that *Controller) State() GameState {
	return that.state.Clone()
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, apperror.ErrGameDecided):
		return RejectDecided
	case errors.Is(err, apperror.ErrCellOccupied):
		return RejectOccupied
	case errors.Is(err, apperror.ErrInvalidCell):
		return RejectInvalidCell
	default:
		return RejectOther
	}
}
