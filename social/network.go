package social

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/socialgraph/bfs"
	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/dfs"
	"github.com/katalvlaran/socialgraph/dijkstra"
	"github.com/katalvlaran/socialgraph/recommend"
)

// DefaultWorkers bounds SuggestAll when WithWorkers is not given.
const DefaultWorkers = 4

// ErrBadLimit is returned by SuggestAll for a negative limit.
var ErrBadLimit = errors.New("social: suggestion limit must be non-negative")

// Option configures a Network.
type Option func(*options)

type options struct {
	reg     prometheus.Registerer
	logger  *slog.Logger
	workers int
}

// WithRegisterer registers the Network's collectors on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	if reg == nil {
		panic("social: WithRegisterer(nil)")
	}
	return func(o *options) { o.reg = reg }
}

// WithLogger sets the operation logger.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("social: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

// WithWorkers bounds the goroutines used by SuggestAll. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("social: WithWorkers must be at least 1")
	}
	return func(o *options) { o.workers = n }
}

// Network is an instrumented social graph.
type Network struct {
	graph    *core.Graph
	logger   *slog.Logger
	metrics  *Metrics
	gatherer prometheus.Gatherer
	workers  int
}

// New wraps g. A nil g starts an empty network.
// Panics if the collectors are already registered on the chosen Registerer.
func New(g *core.Graph, opts ...Option) *Network {
	o := options{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		g = core.NewGraph()
	}
	if o.reg == nil {
		o.reg = prometheus.NewRegistry()
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	n := &Network{
		graph:   g,
		logger:  o.logger,
		metrics: NewMetrics(o.reg),
		workers: o.workers,
	}
	if gth, ok := o.reg.(prometheus.Gatherer); ok {
		n.gatherer = gth
	}
	n.syncGauges()

	return n
}

// Graph returns the underlying graph.
func (n *Network) Graph() *core.Graph { return n.graph }

// Metrics returns the Network's collectors.
func (n *Network) Metrics() *Metrics { return n.metrics }

// Gatherer returns the registry the collectors live in, or nil when the
// Registerer given to WithRegisterer cannot gather.
func (n *Network) Gatherer() prometheus.Gatherer { return n.gatherer }

// Stats returns a snapshot of the graph's size.
func (n *Network) Stats() core.GraphStats { return n.graph.Stats() }

// AddUser registers id. Registering an existing user is a no-op.
func (n *Network) AddUser(id string) {
	start := time.Now()
	n.graph.AddUser(id)
	n.syncGauges()
	n.track(OpAddUser, start, nil, slog.String("user", id))
}

// AddFriendship links a and b.
func (n *Network) AddFriendship(a, b string) error {
	start := time.Now()
	err := n.graph.AddFriendship(a, b)
	if err == nil {
		n.syncGauges()
	}
	n.track(OpAddFriendship, start, err, slog.String("a", a), slog.String("b", b))

	return err
}

// Friends returns id's friends, ascending.
func (n *Network) Friends(id string) ([]string, error) {
	start := time.Now()
	out, err := n.graph.Friends(id)
	n.track(OpFriends, start, err, slog.String("user", id), slog.Int("count", len(out)))

	return out, err
}

// MutualFriends returns the friends a and b share, ascending.
func (n *Network) MutualFriends(a, b string) ([]string, error) {
	start := time.Now()
	out, err := recommend.MutualFriends(n.graph, a, b)
	n.track(OpMutualFriends, start, err,
		slog.String("a", a), slog.String("b", b), slog.Int("count", len(out)))

	return out, err
}

// SuggestFriends ranks friend-of-friend candidates for id.
func (n *Network) SuggestFriends(id string, opts ...recommend.Option) ([]recommend.Suggestion, error) {
	start := time.Now()
	out, err := recommend.SuggestFriends(n.graph, id, opts...)
	n.track(OpSuggestFriends, start, err, slog.String("user", id), slog.Int("count", len(out)))

	return out, err
}

// ShortestPathUnweighted finds a fewest-hops path with BFS.
func (n *Network) ShortestPathUnweighted(from, to string, opts ...bfs.Option) (core.PathResult, error) {
	start := time.Now()
	res, err := bfs.ShortestPath(n.graph, from, to, opts...)
	n.track(OpPathBFS, start, err,
		slog.String("from", from), slog.String("to", to), slog.Int("distance", res.Distance))

	return res, err
}

// ShortestPathWeighted finds a least-cost path with Dijkstra over unit weights.
func (n *Network) ShortestPathWeighted(from, to string, opts ...dijkstra.Option) (core.PathResult, error) {
	start := time.Now()
	res, err := dijkstra.ShortestPath(n.graph, from, to, opts...)
	n.track(OpPathDijkstra, start, err,
		slog.String("from", from), slog.String("to", to), slog.Int("distance", res.Distance))

	return res, err
}

// Reach returns the hop distance to every user within maxDepth hops of id
// (0 means unlimited), id itself included at 0.
func (n *Network) Reach(id string, maxDepth int) (map[string]int, error) {
	start := time.Now()
	out, err := bfs.Layers(n.graph, id, bfs.WithMaxDepth(maxDepth))
	n.track(OpReach, start, err,
		slog.String("user", id), slog.Int("max_depth", maxDepth), slog.Int("count", len(out)))

	return out, err
}

// Components returns the connected components, each ascending.
func (n *Network) Components() ([][]string, error) {
	start := time.Now()
	out, err := dfs.Components(n.graph)
	n.track(OpComponents, start, err, slog.Int("count", len(out)))

	return out, err
}

// SuggestAll computes up to limit suggestions (0 means all) for every user.
// It works on a snapshot, so concurrent mutations do not affect the result.
// The first failure or ctx cancellation aborts the batch.
func (n *Network) SuggestAll(ctx context.Context, limit int) (map[string][]recommend.Suggestion, error) {
	start := time.Now()
	if limit < 0 {
		n.track(OpSuggestAll, start, ErrBadLimit, slog.Int("limit", limit))
		return nil, ErrBadLimit
	}

	snapshot := n.graph.Clone()
	users := snapshot.Users()
	results := make([][]recommend.Suggestion, len(users))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(n.workers)
	for i, id := range users {
		i, id := i, id
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			s, err := recommend.SuggestFriends(snapshot, id, recommend.WithLimit(limit))
			if err != nil {
				return fmt.Errorf("social: suggest for %q: %w", id, err)
			}
			results[i] = s

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		n.track(OpSuggestAll, start, err, slog.Int("users", len(users)))
		return nil, err
	}

	out := make(map[string][]recommend.Suggestion, len(users))
	for i, id := range users {
		out[id] = results[i]
	}
	n.track(OpSuggestAll, start, nil, slog.Int("users", len(users)), slog.Int("workers", n.workers))

	return out, nil
}

func (n *Network) syncGauges() {
	n.metrics.Users.Set(float64(n.graph.UserCount()))
	n.metrics.Friendships.Set(float64(n.graph.FriendshipCount()))
}

// track records one call in the collectors and the log.
func (n *Network) track(op string, start time.Time, err error, attrs ...slog.Attr) {
	elapsed := time.Since(start)
	result := resultOf(err)
	n.metrics.OperationsTotal.WithLabelValues(op, result).Inc()
	n.metrics.OperationDuration.WithLabelValues(op).Observe(elapsed.Seconds())

	attrs = append(attrs, slog.String("op", op), slog.Duration("elapsed", elapsed))
	switch result {
	case ResultOK:
		n.logger.LogAttrs(context.Background(), slog.LevelDebug, "social graph operation", attrs...)
	case ResultNotFound, ResultRejected:
		attrs = append(attrs, slog.String("error", err.Error()))
		n.logger.LogAttrs(context.Background(), slog.LevelWarn, "social graph operation rejected", attrs...)
	default:
		attrs = append(attrs, slog.String("error", err.Error()))
		n.logger.LogAttrs(context.Background(), slog.LevelError, "social graph operation failed", attrs...)
	}
}
