// SPDX-License-Identifier: MIT

// Package social is the instrumented entry point to a socialgraph network.
//
// A Network wraps a *core.Graph and exposes every engine operation as a
// method: user and friendship registration, friend lookup, mutual friends,
// friend-of-friend suggestions, unweighted (BFS) and weighted (Dijkstra)
// shortest paths and connected components. Each call is
//
//   - logged through a *slog.Logger (Debug on success, Warn on unknown users
//     or rejected friendships, Error otherwise),
//   - counted and timed in Prometheus collectors.
//
// Collectors register on the prometheus.Registerer passed with WithRegisterer.
// Without one the Network owns a private registry, reachable via Gatherer,
// so several Networks can coexist in one process.
//
// SuggestAll computes suggestions for every user concurrently over a snapshot
// of the graph, bounded by WithWorkers.
//
// Example:
//
//	n := social.New(builder.Demo())
//	res, _ := n.ShortestPathUnweighted("Bob", "Heidi")
//	fmt.Println(res.Distance, res.Path) // 4 [Bob David Eve Frank Heidi]
package social
