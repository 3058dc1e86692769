// Package dijkstra implements Dijkstra's shortest path on the social graph.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/socialgraph/core"
)

// ShortestPath returns the cheapest path from start to end, every friendship
// costing UnitWeight.
//
// Returns:
//
//   - start == end: Distance 0, Path [start].
//   - reachable:    Distance = total cost, Path = start … end inclusive.
//   - unreachable:  core.NoPathResult() and a nil error.
//
// Preconditions (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and end must be registered (core.ErrUserNotFound).
func ShortestPath(g *core.Graph, start, end string, opts ...Option) (core.PathResult, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return core.NoPathResult(), ErrNilGraph
	}
	if !g.HasUser(start) {
		return core.NoPathResult(), fmt.Errorf("dijkstra: start %w: %q", core.ErrUserNotFound, start)
	}
	if !g.HasUser(end) {
		return core.NoPathResult(), fmt.Errorf("dijkstra: end %w: %q", core.ErrUserNotFound, end)
	}

	if start == end {
		return core.PathResult{Distance: 0, Path: []string{start}}, nil
	}

	users := g.Users()
	r := &runner{
		g:       g,
		options: cfg,
		start:   start,
		end:     end,
		dist:    make(map[string]int, len(users)),
		prev:    make(map[string]string, len(users)),
		pq:      make(nodePQ, 0, len(users)),
	}
	r.init(users)

	found, err := r.process()
	if err != nil {
		return core.NoPathResult(), err
	}
	if !found {
		return core.NoPathResult(), nil
	}

	return core.PathResult{Distance: r.dist[end], Path: r.path()}, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *core.Graph
	options Options
	start   string
	end     string
	dist    map[string]int    // tentative distance from start
	prev    map[string]string // parent on the best known path
	pq      nodePQ            // lazy min-heap frontier
}

// init sets every distance to +∞ except start, and seeds the heap with (0, start).
func (r *runner) init(users []string) {
	for _, u := range users {
		r.dist[u] = infinity
	}
	r.dist[r.start] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.start, dist: 0})
}

// process pops the closest user until end is settled, the frontier empties,
// or the distance cap is exceeded.
func (r *runner) process() (bool, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// Stale entry: a shorter distance was recorded after this push.
		if d > r.dist[u] {
			continue
		}
		if d > r.options.MaxDistance {
			return false, nil
		}
		if u == r.end {
			return true, nil
		}

		if err := r.relax(u); err != nil {
			return false, err
		}
	}

	return false, nil
}

// relax tries to improve the distance of every friend of u.
func (r *runner) relax(u string) error {
	friends, err := r.g.Friends(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get friends of %q: %w", u, err)
	}

	cand := r.dist[u] + UnitWeight
	for _, v := range friends {
		// Strict "<" keeps the first parent found at a given distance.
		if cand >= r.dist[v] {
			continue
		}
		r.dist[v] = cand
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: cand})
	}

	return nil
}

// path rebuilds start → end from parent links. A missing link before start
// ends the walk early; with a consistent graph it never happens.
func (r *runner) path() []string {
	path := []string{r.end}
	for cur := r.end; cur != r.start; {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem is one frontier entry: a user and the distance it was pushed with.
type nodeItem struct {
	id   string
	dist int
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, breaking ties by ID for determinism.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
