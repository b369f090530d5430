package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/repository"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-timetravel/transport/rest"
	"github.com/rocketscienceinc/tictactoe-timetravel/transport/websocket"
)

const (
	shutdownTimeout = 5 * time.Second
	sweepInterval   = time.Minute
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the HTTP and WebSocket server until ctx is canceled.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	gameRepo, closeRepo, err := newGameRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	appMetrics := metrics.New()
	gameManager := usecase.NewGameManager(logger, gameRepo, appMetrics)
	wsServer := websocket.New(logger, gameManager)

	srv := rest.NewServer(conf.HTTPPort, rest.NewRouter(logger, gameManager, wsServer, appMetrics.Handler()))

	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort, "store", conf.SessionStore)
		if httpErr := srv.ListenAndServe(); httpErr != nil && !errors.Is(httpErr, http.ErrServerClosed) {
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}

	return nil
}

func newGameRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	switch conf.SessionStore {
	case config.StoreMemory, "":
		return newMemoryGameRepository(ctx, conf.SessionTTL)
	case config.StoreRedis:
	default:
		return nil, nil, fmt.Errorf("%w: %s", apperror.ErrUnknownStoreType, conf.SessionStore)
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString, conf.Redis.Password, conf.Redis.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	// games of a previous process are never picked up again
	prefix := conf.Redis.Prefix + uuid.NewString() + ":"

	closeFn := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewGameRepository(redisStorage.Connection, prefix, conf.SessionTTL), closeFn, nil
}

// newMemoryGameRepository - memory store with a background sweep of expired games.
func newMemoryGameRepository(ctx context.Context, ttl time.Duration) (repository.GameRepository, func(), error) {
	gameRepo := repository.NewMemoryGameRepository(ttl)
	if ttl <= 0 {
		return gameRepo, func() {}, nil
	}

	interval := sweepInterval
	if ttl < interval {
		interval = ttl
	}

	sweepCtx, stop := context.WithCancel(ctx)
	go gameRepo.RunSweeper(sweepCtx, interval)

	return gameRepo, stop, nil
}
