// Package dfs answers connectivity questions over a core.Graph with
// depth-first search.
//
//   - Reachable(g, start): every user connected to start, start included.
//   - Components(g): the connected components of the whole graph.
//
// Both results are deterministic: friends are explored in ascending order,
// every component is sorted ascending, and components are ordered by their
// smallest member.
//
// Complexity:
//
//   - Time:   O(U + F·log d) (Friends sorts each neighbor list)
//   - Memory: O(U) for the visited set and recursion stack.
//
// Errors:
//
//   - ErrGraphNil           if g is nil.
//   - core.ErrUserNotFound  if start is not registered.
package dfs
