package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, id string, state tictactoe.GameState) error
	GetByID(ctx context.Context, id string) (tictactoe.GameState, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbGame struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewGameRepository - stores game snapshots in redis under prefix with the given TTL.
// The prefix should carry a per-process instance ID so that games never outlive the process.
func NewGameRepository(client *redis.Client, prefix string, ttl time.Duration) GameRepository {
	return &dbGame{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (that *dbGame) key(id string) string {
	return that.prefix + "game:" + id
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, id string, state tictactoe.GameState) error {
	gameJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	err = that.client.Set(ctx, that.key(id), gameJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (tictactoe.GameState, error) {
	response, err := that.client.Get(ctx, that.key(id)).Result()

	if errors.Is(err, redis.Nil) {
		return tictactoe.GameState{}, apperror.ErrSessionNotFound
	}

	if err != nil {
		return tictactoe.GameState{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	var state tictactoe.GameState
	if err = json.Unmarshal([]byte(response), &state); err != nil {
		return tictactoe.GameState{}, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	if err = state.Validate(); err != nil {
		return tictactoe.GameState{}, fmt.Errorf("stored game %s: %w", id, err)
	}

	return state, nil
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, that.key(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrSessionNotFound
	}

	return nil
}
