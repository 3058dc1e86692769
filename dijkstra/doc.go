// Package dijkstra computes shortest paths between two users of a core.Graph
// with Dijkstra's priority-queue relaxation.
//
// The social graph carries no per-edge weight, so every friendship costs
// UnitWeight (1). On such a graph the result distance always equals the BFS
// hop count; the package exists as an independent algorithm whose agreement
// with bfs is asserted by the tests, and as the place where a weighted
// relation would plug in.
//
// Algorithm:
//
//   - dist[u] = +∞ for every user, dist[start] = 0.
//   - A min-heap frontier is seeded with (0, start).
//   - Pop the minimum (d, u). If d > dist[u] the entry is stale and is
//     skipped (lazy deletion, no decrease-key). If u == end, stop.
//   - Relax each friend v of u: if dist[u] + 1 < dist[v], record the new
//     distance and parent and push (dist[v], v).
//   - Rebuild the path from parent links, stopping early if a link is
//     missing before start is reached.
//
// Heap ties are broken by user ID ascending, so the returned path is
// deterministic.
//
// Complexity:
//
//   - Time:  O((U + F) log U)
//   - Space: O(U + F) (the heap may hold one entry per relaxation)
//
// Options:
//
//   - WithMaxDistance(x): stop once the popped distance exceeds x (x ≥ 0, panics otherwise).
//
// Errors:
//
//   - ErrNilGraph           if the graph pointer is nil.
//   - core.ErrUserNotFound  if start or end is not registered.
//
// Example:
//
//	res, err := dijkstra.ShortestPath(g, "Alice", "Heidi")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Distance, res.Path)
package dijkstra
