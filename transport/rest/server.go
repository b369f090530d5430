package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

type gameUseCase interface {
	CreateGame(ctx context.Context) (*usecase.Game, error)
	GetGame(ctx context.Context, id string) (*usecase.Game, error)
	MakeTurn(ctx context.Context, id string, cell int) (*usecase.Game, error)
	JumpTo(ctx context.Context, id string, step int) (*usecase.Game, error)
	ToggleMoveOrder(ctx context.Context, id string) (*usecase.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

// NewRouter - builds the HTTP API. ws and metrics are mounted when not nil.
func NewRouter(logger *slog.Logger, games gameUseCase, ws, metrics http.Handler) http.Handler {
	h := newHandlers(logger, games)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Get("/ping", pingHandler)

	router.Route("/games", func(r chi.Router) {
		r.Post("/", h.createGame)
		r.Route("/{gameID}", func(r chi.Router) {
			r.Get("/", h.getGame)
			r.Delete("/", h.deleteGame)
			r.Post("/moves", h.makeTurn)
			r.Post("/jump", h.jumpTo)
			r.Post("/order", h.toggleMoveOrder)
		})
	})

	if ws != nil {
		router.Handle("/ws", ws)
	}

	if metrics != nil {
		router.Handle("/metrics", metrics)
	}

	return router
}

func NewServer(port string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}
}
