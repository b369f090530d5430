package apperror

import "errors"

var (
	ErrInvalidMove      = errors.New("invalid move")
	ErrOutOfRange       = errors.New("step is out of range")
	ErrCorruptState     = errors.New("game state is corrupt")
	ErrSessionNotFound  = errors.New("game session not found")
	ErrUnknownStoreType = errors.New("unknown session store type")

	// ErrCellOccupied and ErrGameDecided both match ErrInvalidMove with errors.Is.
	ErrCellOccupied = invalidMove("cell is already occupied")
	ErrGameDecided  = invalidMove("game is already decided")
	ErrInvalidCell  = invalidMove("invalid cell index")
)

type invalidMoveError struct {
	msg string
}

func invalidMove(msg string) error {
	return &invalidMoveError{msg: msg}
}

func (that *invalidMoveError) Error() string {
	return that.msg
}

func (that *invalidMoveError) Unwrap() error {
	return ErrInvalidMove
}
