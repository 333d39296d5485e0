package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tictactoe"

var (
	ActiveConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_connections",
		Help:      "Websocket connections currently open.",
	})

	RoomsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rooms_created_total",
		Help:      "Rooms created on first reference.",
	})

	MovesApplied = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "moves_applied_total",
		Help:      "Moves accepted and written to a board.",
	})

	MovesRejected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "moves_rejected_total",
		Help:      "Moves dropped by the legality checks.",
	})

	GamesCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "games_completed_total",
		Help:      "Games that reached a terminal state.",
	}, []string{"outcome"})

	PlayersPruned = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "players_pruned_total",
		Help:      "Player seats reclaimed after the disconnect grace period.",
	})
)
