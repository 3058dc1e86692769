// Package recommend implements the friend-graph analytics that do not search
// for paths: mutual friends and friend-of-friend suggestions.
//
// MutualFriends(g, a, b)
//
//	The intersection of both friend sets, ascending. a and b need not be
//	friends themselves. The operation is commutative.
//
// SuggestFriends(g, id, opts...)
//
//	For every friend f of id and every friend c of f, c is a candidate
//	unless c == id or c is already a friend of id. A candidate's Score is
//	the number of distinct friends of id through which it is reached, which
//	equals |MutualFriends(id, c)| but is accumulated incrementally.
//	Suggestions are ordered by Score descending, then ID ascending, so the
//	order is total and independent of insertion order.
//
// Options:
//
//   - WithLimit(n):    keep only the first n suggestions (0 = no limit).
//   - WithMinScore(k): drop candidates with Score < k.
//
// Both functions return core.ErrUserNotFound (with an empty result) when a
// referenced user is not registered.
package recommend
