package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

const namespace = "tictactoe"

// Metrics holds the game counters on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	movesApplied    *prometheus.CounterVec
	movesRejected   *prometheus.CounterVec
	jumps           *prometheus.CounterVec
	gamesDecided    *prometheus.CounterVec
	sessionsCreated prometheus.Counter
	sessionsDeleted prometheus.Counter
}

func New() *Metrics {
	that := &Metrics{
		registry: prometheus.NewRegistry(),

		movesApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_applied_total",
			Help:      "Moves placed on the board, by player.",
		}, []string{"player"}),
		movesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_rejected_total",
			Help:      "Moves ignored by the controller, by reason.",
		}, []string{"reason"}),
		jumps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jumps_total",
			Help:      "Time-travel requests, by result.",
		}, []string{"result"}),
		gamesDecided: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_decided_total",
			Help:      "Moves that decided a game, by outcome.",
		}, []string{"outcome"}),
		sessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_created_total",
			Help:      "Game sessions created.",
		}),
		sessionsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_deleted_total",
			Help:      "Game sessions deleted.",
		}),
	}

	that.registry.MustRegister(
		that.movesApplied,
		that.movesRejected,
		that.jumps,
		that.gamesDecided,
		that.sessionsCreated,
		that.sessionsDeleted,
	)

	return that
}

// Handler - exposes the registry in the prometheus text format.
func (that *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(that.registry, promhttp.HandlerOpts{})
}

func (that *Metrics) MoveApplied(player entity.Cell) {
	that.movesApplied.WithLabelValues(string(player)).Inc()
}

func (that *Metrics) MoveRejected(reason string) {
	that.movesRejected.WithLabelValues(reason).Inc()
}

func (that *Metrics) Jumped(ok bool) {
	result := "ok"
	if !ok {
		result = "out_of_range"
	}
	that.jumps.WithLabelValues(result).Inc()
}

func (that *Metrics) GameDecided(outcome entity.Outcome) {
	that.gamesDecided.WithLabelValues(string(outcome.Kind)).Inc()
}

func (that *Metrics) SessionCreated() {
	that.sessionsCreated.Inc()
}

func (that *Metrics) SessionDeleted() {
	that.sessionsDeleted.Inc()
}
