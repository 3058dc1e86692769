package social

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/socialgraph/core"
)

const metricsNamespace = "socialgraph"

// Operation labels.
const (
	OpAddUser        = "add_user"
	OpAddFriendship  = "add_friendship"
	OpFriends        = "friends"
	OpMutualFriends  = "mutual_friends"
	OpSuggestFriends = "suggest_friends"
	OpPathBFS        = "path_bfs"
	OpPathDijkstra   = "path_dijkstra"
	OpReach          = "reach"
	OpComponents     = "components"
	OpSuggestAll     = "suggest_all"
)

// Result labels.
const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// Metrics holds the collectors of one Network.
type Metrics struct {
	// OperationsTotal counts calls. Labels: op, result.
	OperationsTotal *prometheus.CounterVec

	// OperationDuration measures call latency. Labels: op.
	OperationDuration *prometheus.HistogramVec

	// Users and Friendships mirror the graph size after every mutation.
	Users       prometheus.Gauge
	Friendships prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
// Panics if they are already registered there.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		OperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "operations_total",
				Help:      "Total social graph operations by operation and result",
			},
			[]string{"op", "result"},
		),
		OperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "operation_duration_seconds",
				Help:      "Social graph operation duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
			},
			[]string{"op"},
		),
		Users: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "users",
			Help:      "Number of registered users",
		}),
		Friendships: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "friendships",
			Help:      "Number of undirected friendships",
		}),
	}
}

// resultOf classifies err into a result label.
func resultOf(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, core.ErrUserNotFound):
		return ResultNotFound
	case errors.Is(err, core.ErrSelfFriendship):
		return ResultRejected
	default:
		return ResultError
	}
}
