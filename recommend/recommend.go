package recommend

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/socialgraph/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed.
var ErrGraphNil = errors.New("recommend: graph is nil")

// Suggestion is one ranked friend-of-friend candidate.
type Suggestion struct {
	ID    string // candidate user
	Score int    // number of mutual friends
}

// Options tunes SuggestFriends.
type Options struct {
	Limit    int // 0 means no limit
	MinScore int // candidates below this score are dropped
}

// Option is a functional option for SuggestFriends.
type Option func(*Options)

// WithLimit keeps only the top n suggestions. Panics on negative n.
func WithLimit(n int) Option {
	if n < 0 {
		panic("recommend: WithLimit must be non-negative")
	}
	return func(o *Options) { o.Limit = n }
}

// WithMinScore drops candidates with fewer than k mutual friends.
func WithMinScore(k int) Option {
	return func(o *Options) { o.MinScore = k }
}

// MutualFriends returns the friends shared by a and b, ascending.
//
// Complexity: O(da + db) after the two sorted Friends lookups.
func MutualFriends(g *core.Graph, a, b string) ([]string, error) {
	if g == nil {
		return []string{}, ErrGraphNil
	}
	fa, err := g.Friends(a)
	if err != nil {
		return []string{}, fmt.Errorf("recommend: mutual friends: %w", err)
	}
	fb, err := g.Friends(b)
	if err != nil {
		return []string{}, fmt.Errorf("recommend: mutual friends: %w", err)
	}

	// Merge-style intersection of two ascending slices.
	out := make([]string, 0, min(len(fa), len(fb)))
	for i, j := 0, 0; i < len(fa) && j < len(fb); {
		switch {
		case fa[i] == fb[j]:
			out = append(out, fa[i])
			i++
			j++
		case fa[i] < fb[j]:
			i++
		default:
			j++
		}
	}

	return out, nil
}

// SuggestFriends ranks friend-of-friend candidates for id.
//
// Complexity: O(Σ deg(f) · log deg(f)) over the friends f of id, plus
// O(c·log c) to order c candidates.
func SuggestFriends(g *core.Graph, id string, opts ...Option) ([]Suggestion, error) {
	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return []Suggestion{}, ErrGraphNil
	}

	direct, err := g.Friends(id)
	if err != nil {
		return []Suggestion{}, fmt.Errorf("recommend: suggest friends: %w", err)
	}
	isDirect := make(map[string]struct{}, len(direct))
	for _, f := range direct {
		isDirect[f] = struct{}{}
	}

	// Each friend contributes at most one point per candidate: friend sets hold no duplicates.
	scores := make(map[string]int)
	for _, f := range direct {
		fof, err := g.Friends(f)
		if err != nil {
			return []Suggestion{}, fmt.Errorf("recommend: suggest friends via %q: %w", f, err)
		}
		for _, c := range fof {
			if c == id {
				continue
			}
			if _, ok := isDirect[c]; ok {
				continue
			}
			scores[c]++
		}
	}

	out := make([]Suggestion, 0, len(scores))
	for c, s := range scores {
		if s < cfg.MinScore {
			continue
		}
		out = append(out, Suggestion{ID: c, Score: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	if cfg.Limit > 0 && len(out) > cfg.Limit {
		out = out[:cfg.Limit]
	}

	return out, nil
}
