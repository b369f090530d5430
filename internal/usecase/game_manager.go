package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, id string, state tictactoe.GameState) error
	GetByID(ctx context.Context, id string) (tictactoe.GameState, error)
	DeleteByID(ctx context.Context, id string) error
}

// Recorder receives controller and session events.
type Recorder interface {
	tictactoe.Recorder
	SessionCreated()
	SessionDeleted()
}

// Game is the snapshot of one session handed to transports.
type Game struct {
	ID    string                `json:"id"`
	View  tictactoe.View        `json:"view"`
	Moves []tictactoe.MoveEntry `json:"moves"`
}

// GameManager hosts many game sessions. Every call loads the session, runs
// one controller operation to completion and stores the result; calls on the
// same session are serialized.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	recorder Recorder

	locks *sessionLocks
	newID func() string
}

type nopRecorder struct{}

func (nopRecorder) MoveApplied(entity.Cell)    {}
func (nopRecorder) MoveRejected(string)        {}
func (nopRecorder) Jumped(bool)                {}
func (nopRecorder) GameDecided(entity.Outcome) {}
func (nopRecorder) SessionCreated()            {}
func (nopRecorder) SessionDeleted()            {}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, recorder Recorder) *GameManager {
	if recorder == nil {
		recorder = nopRecorder{}
	}

	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		recorder: recorder,

		locks: newSessionLocks(),
		newID: uuid.NewString,
	}
}

func (that *GameManager) CreateGame(ctx context.Context) (*Game, error) {
	id := that.newID()
	state := tictactoe.NewGameState()

	if err := that.gameRepo.CreateOrUpdate(ctx, id, state); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.recorder.SessionCreated()
	that.logger.Info("game created", "method", "CreateGame", "gameID", id)

	return newGame(id, state), nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*Game, error) {
	state, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return newGame(id, state), nil
}

// MakeTurn - plays cell for the next player. Invalid moves leave the game unchanged without an error.
func (that *GameManager) MakeTurn(ctx context.Context, id string, cell int) (*Game, error) {
	return that.run(ctx, id, func(controller *tictactoe.Controller) {
		controller.ApplyMove(cell)
	})
}

// JumpTo - time-travels to step. Steps outside the history leave the game unchanged without an error.
func (that *GameManager) JumpTo(ctx context.Context, id string, step int) (*Game, error) {
	return that.run(ctx, id, func(controller *tictactoe.Controller) {
		controller.JumpTo(step)
	})
}

func (that *GameManager) ToggleMoveOrder(ctx context.Context, id string) (*Game, error) {
	return that.run(ctx, id, func(controller *tictactoe.Controller) {
		controller.ToggleMoveOrder()
	})
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	unlock := that.locks.lock(id)
	defer unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.recorder.SessionDeleted()
	that.logger.Info("game deleted", "method", "DeleteGame", "gameID", id)

	return nil
}

func (that *GameManager) run(ctx context.Context, id string, operation func(*tictactoe.Controller)) (*Game, error) {
	unlock := that.locks.lock(id)
	defer unlock()

	state, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	controller := tictactoe.NewGameController(that.logger.With("gameID", id), state, tictactoe.WithRecorder(that.recorder))
	operation(controller)

	state = controller.State()
	if err = that.gameRepo.CreateOrUpdate(ctx, id, state); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return newGame(id, state), nil
}

func newGame(id string, state tictactoe.GameState) *Game {
	return &Game{
		ID:    id,
		View:  tictactoe.NewView(state),
		Moves: tictactoe.MoveList(state),
	}
}
