package repository

import (
	"context"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

type memoryEntry struct {
	state     tictactoe.GameState
	expiresAt time.Time
}

// MemoryGameRepository keeps game snapshots in the process. Expired games are
// dropped when read and by Sweep.
type MemoryGameRepository struct {
	mu    sync.RWMutex
	games map[string]memoryEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryGameRepository - process-local store. A zero ttl never expires games.
func NewMemoryGameRepository(ttl time.Duration) *MemoryGameRepository {
	return newMemoryGameRepository(ttl, time.Now)
}

func newMemoryGameRepository(ttl time.Duration, now func() time.Time) *MemoryGameRepository {
	return &MemoryGameRepository{
		games: make(map[string]memoryEntry),
		ttl:   ttl,
		now:   now,
	}
}

func (that *MemoryGameRepository) CreateOrUpdate(_ context.Context, id string, state tictactoe.GameState) error {
	entry := memoryEntry{state: state.Clone()}
	if that.ttl > 0 {
		entry.expiresAt = that.now().Add(that.ttl)
	}

	that.mu.Lock()
	that.games[id] = entry
	that.mu.Unlock()

	return nil
}

func (that *MemoryGameRepository) GetByID(_ context.Context, id string) (tictactoe.GameState, error) {
	that.mu.RLock()
	entry, ok := that.games[id]
	that.mu.RUnlock()

	if !ok {
		return tictactoe.GameState{}, apperror.ErrSessionNotFound
	}

	if that.expired(entry) {
		that.mu.Lock()
		// the entry may have been refreshed since the read lock was released
		if current, ok := that.games[id]; ok && that.expired(current) {
			delete(that.games, id)
		}
		that.mu.Unlock()

		return tictactoe.GameState{}, apperror.ErrSessionNotFound
	}

	return entry.state.Clone(), nil
}

func (that *MemoryGameRepository) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	entry, ok := that.games[id]
	if !ok {
		return apperror.ErrSessionNotFound
	}

	delete(that.games, id)

	if that.expired(entry) {
		return apperror.ErrSessionNotFound
	}

	return nil
}

// Sweep - drops every expired game and returns how many were dropped.
func (that *MemoryGameRepository) Sweep() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	swept := 0
	for id, entry := range that.games {
		if that.expired(entry) {
			delete(that.games, id)
			swept++
		}
	}

	return swept
}

// RunSweeper - calls Sweep every interval until ctx is canceled.
func (that *MemoryGameRepository) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			that.Sweep()
		}
	}
}

func (that *MemoryGameRepository) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !that.now().Before(entry.expiresAt)
}
