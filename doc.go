// Package socialgraph is an in-memory social network: users, undirected
// friendships and the questions people ask about them.
//
// What you get:
//
//   - core/       thread-safe Graph of users and friendships, sorted lookups
//   - recommend/  mutual friends and friend-of-friend suggestions
//   - bfs/        fewest-hop paths and hop layers
//   - dijkstra/   priority-queue shortest paths over unit weights
//   - dfs/        reachability, connected components, connected pairs
//   - builder/    the demo network plus Path, Star, Cycle, Complete and seeded random fixtures
//   - social/     instrumented facade (slog logging, Prometheus metrics, batch suggestions)
//   - config/     YAML configuration with environment overrides and validation
//   - render/     human-readable output with optional terminal styling
//   - cmd/socialgraph  the command-line front end
//
// The reference network used throughout the tests and examples:
//
//	Alice ─── Bob
//	  │        │
//	Charlie ─ David
//	   \      /
//	     Eve ─── Frank ─── Heidi        Grace (no friends)
//
// Quick start:
//
//	g := builder.Demo()
//	mutual, _ := recommend.MutualFriends(g, "Alice", "David") // [Bob Charlie]
//	res, _ := bfs.ShortestPath(g, "Bob", "Heidi")             // 4 [Bob David Eve Frank Heidi]
package socialgraph
