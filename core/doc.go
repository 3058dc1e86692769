// Package core provides the in-memory social graph: users keyed by opaque
// string identifiers and the undirected friendships between them.
//
// The Graph G = (U,F) stores, for every registered user, the set of its
// direct friends:
//
//	adjacency[user] = {friend, friend, ...}
//
// Guarantees:
//
//   - Symmetry: if b ∈ adjacency[a] then a ∈ adjacency[b].
//   - Closed world: every friend is itself a registered user.
//   - No self-friendship: a user never appears in its own friend set.
//   - Deterministic iteration: Users() and Friends() return ascending IDs.
//
// Lifecycle:
//
//	Users and friendships are only ever created. AddUser is idempotent;
//	AddFriendship requires both endpoints to be registered and never
//	creates users implicitly. There is no removal API.
//
// Core Methods:
//
//	// Users
//	AddUser(id string)                     // O(1), idempotent
//	HasUser(id string) bool                // O(1)
//	Users() []string                       // O(U·log U)
//	UserCount() int                        // O(1)
//
//	// Friendships
//	AddFriendship(a, b string) error       // O(1), atomic
//	HasFriendship(a, b string) bool        // O(1)
//	Friends(id string) ([]string, error)   // O(d·log d), fresh sorted copy
//	Degree(id string) (int, error)         // O(1)
//	FriendshipCount() int                  // O(1)
//
//	// Snapshots
//	Clone() *Graph                         // O(U+F)
//	Stats() GraphStats                     // O(U)
//
// Errors:
//
//	ErrUserNotFound    - a referenced user is not registered.
//	ErrSelfFriendship  - AddFriendship(x, x) was requested.
//
// Concurrency:
//
//	A single sync.RWMutex guards the adjacency map. Every method is safe for
//	concurrent use, but algorithms in sibling packages (bfs, dijkstra,
//	recommend, dfs) issue several reads per call and therefore assume the
//	graph is not mutated while they run. Callers that mutate concurrently
//	should run algorithms on a Clone.
//
// Path results:
//
//	PathResult is the shared return type of the shortest-path packages.
//	Distance == NoPath (-1) with an empty Path means the endpoints exist but
//	are disconnected; it is a valid result, not an error.
package core
