// Package bfs computes unweighted shortest paths between two users of a
// core.Graph with breadth-first search.
//
// What
//
//   - Explores users level by level from the start, treating every
//     friendship as one hop.
//   - Records each user's parent the first time it is discovered; a parent
//     is never overwritten.
//   - Stops as soon as the end user is discovered, then rebuilds the path by
//     walking parent links back from the end.
//
// Determinism
//
//	core.Graph.Friends returns IDs in ascending order and BFS enqueues them
//	in that order, so among several equal-length paths the same one is
//	always returned. The distance never depends on this tie-break.
//
// Layers
//
//	Layers(g, start) runs the same walk without a target and returns the
//	hop distance of every reachable user. WithMaxDepth bounds it, which
//	yields "friends within N hops".
//
// Results
//
//   - start == end:  Distance 0, Path [start], no traversal.
//   - reachable:     Distance = hops, Path = start … end inclusive.
//   - unreachable:   Distance core.NoPath, empty Path, nil error.
//
// Complexity (U = users, F = friendships)
//
//   - Time:   O(U + F·log d)  (Friends sorts each neighbor list)
//   - Memory: O(U)            (queue, parent and depth maps)
//
// Options
//
//   - WithContext(ctx):   cancellation, checked once per dequeued user.
//   - WithMaxDepth(d):    do not expand users at depth ≥ d (d > 0); 0 means no limit.
//   - WithOnVisit(fn):    hook on every dequeued user; an error aborts the search.
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - ErrOptionViolation     if an option is invalid (e.g. negative MaxDepth).
//   - core.ErrUserNotFound   if start or end is not registered.
//   - ctx.Err()              on cancellation.
//   - Wrapped OnVisit errors.
package bfs
