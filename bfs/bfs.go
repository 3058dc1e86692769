// Package bfs provides breadth-first shortest paths over a core.Graph.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/socialgraph/core"
)

// queueItem pairs a user ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph  *core.Graph
	opts   Options
	start  string
	end    string
	hasEnd bool // false when walking every reachable user
	queue  []queueItem
	parent map[string]string // first-discovery parent links
	depth  map[string]int    // doubles as the visited set
}

// ShortestPath returns the fewest-hop path from start to end.
//
// An unreachable end is not an error: the result is core.NoPathResult().
// On any error the result is also core.NoPathResult().
func ShortestPath(g *core.Graph, start, end string, opts ...Option) (core.PathResult, error) {
	o, err := prepare(g, start, opts)
	if err != nil {
		return core.NoPathResult(), err
	}
	if !g.HasUser(end) {
		return core.NoPathResult(), fmt.Errorf("bfs: end %w: %q", core.ErrUserNotFound, end)
	}

	// Path to self needs no traversal
	if start == end {
		return core.PathResult{Distance: 0, Path: []string{start}}, nil
	}

	w := newWalker(g, o, start)
	w.end, w.hasEnd = end, true

	found, err := w.loop()
	if err != nil {
		return core.NoPathResult(), err
	}
	if !found {
		return core.NoPathResult(), nil
	}

	return core.PathResult{Distance: w.depth[end], Path: w.pathTo(end)}, nil
}

// Layers returns the hop distance from start to every user it reaches,
// start itself at 0. WithMaxDepth bounds how far the layers extend.
func Layers(g *core.Graph, start string, opts ...Option) (map[string]int, error) {
	o, err := prepare(g, start, opts)
	if err != nil {
		return nil, err
	}

	w := newWalker(g, o, start)
	if _, err := w.loop(); err != nil {
		return nil, err
	}

	return w.depth, nil
}

// prepare resolves options and validates the graph and start user.
func prepare(g *core.Graph, start string, opts []Option) (Options, error) {
	if g == nil {
		return Options{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if !g.HasUser(start) {
		return o, fmt.Errorf("bfs: start %w: %q", core.ErrUserNotFound, start)
	}

	return o, nil
}

// newWalker returns a walker with start already queued at depth 0.
func newWalker(g *core.Graph, o Options, start string) *walker {
	n := g.UserCount()
	w := &walker{
		graph:  g,
		opts:   o,
		start:  start,
		queue:  make([]queueItem, 0, n),
		parent: make(map[string]string, n),
		depth:  make(map[string]int, n),
	}
	w.depth[start] = 0
	w.queue = append(w.queue, queueItem{id: start, depth: 0})

	return w
}

// enqueue marks id discovered at depth d with the given parent and queues it.
// The start is queued by newWalker and never gets a parent entry.
func (w *walker) enqueue(id string, d int, parent string) {
	w.depth[id] = d
	w.parent[id] = parent
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until the end is discovered, the frontier is
// exhausted, a hook fails or the context is cancelled.
func (w *walker) loop() (bool, error) {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return false, w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return false, fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}

		found, err := w.expand(item)
		if err != nil || found {
			return found, err
		}
	}

	return false, nil
}

// expand discovers every unseen friend of item in ascending order.
// It reports true as soon as the end user is discovered.
func (w *walker) expand(item queueItem) (bool, error) {
	friends, err := w.graph.Friends(item.id)
	if err != nil {
		return false, fmt.Errorf("%w: failed to get friends of %q: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range friends {
		if _, seen := w.depth[nbr]; seen {
			continue
		}
		w.enqueue(nbr, item.depth+1, item.id)
		if w.hasEnd && nbr == w.end {
			return true, nil
		}
	}

	return false, nil
}

// pathTo rebuilds start → dest by following parent links backward.
func (w *walker) pathTo(dest string) []string {
	path := make([]string, 0, w.depth[dest]+1)
	for cur := dest; cur != w.start; cur = w.parent[cur] {
		path = append(path, cur)
	}
	path = append(path, w.start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
