package recommend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialgraph/builder"
	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/recommend"
)

// TestMutualFriends_Demo covers the reference scenarios.
func TestMutualFriends_Demo(t *testing.T) {
	t.Parallel()
	g := builder.Demo()

	got, err := recommend.MutualFriends(g, builder.Alice, builder.David)
	require.NoError(t, err)
	assert.Equal(t, []string{builder.Bob, builder.Charlie}, got)

	got, err = recommend.MutualFriends(g, builder.Bob, builder.Eve)
	require.NoError(t, err)
	assert.Equal(t, []string{builder.David}, got)

	got, err = recommend.MutualFriends(g, builder.Alice, builder.Grace)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestMutualFriends_Unknown verifies the sentinel and the empty result.
func TestMutualFriends_Unknown(t *testing.T) {
	t.Parallel()
	g := builder.Demo()

	got, err := recommend.MutualFriends(g, builder.Alice, "Nobody")
	assert.ErrorIs(t, err, core.ErrUserNotFound)
	assert.Empty(t, got)

	_, err = recommend.MutualFriends(g, "Nobody", builder.Alice)
	assert.ErrorIs(t, err, core.ErrUserNotFound)

	_, err = recommend.MutualFriends(nil, builder.Alice, builder.Bob)
	assert.ErrorIs(t, err, recommend.ErrGraphNil)
}

// TestMutualFriends_Commutative checks every ordered pair of the reference network.
func TestMutualFriends_Commutative(t *testing.T) {
	t.Parallel()
	g := builder.Demo()
	users := g.Users()

	for _, a := range users {
		for _, b := range users {
			ab, err := recommend.MutualFriends(g, a, b)
			require.NoError(t, err)
			ba, err := recommend.MutualFriends(g, b, a)
			require.NoError(t, err)
			assert.Equal(t, ab, ba, "%s/%s", a, b)
		}
	}
}

// TestSuggestFriends_Demo covers the reference scenarios.
func TestSuggestFriends_Demo(t *testing.T) {
	t.Parallel()
	g := builder.Demo()

	cases := map[string][]recommend.Suggestion{
		builder.Alice: {{ID: "David", Score: 2}, {ID: "Eve", Score: 1}},
		builder.Bob:   {{ID: "Charlie", Score: 2}, {ID: "Eve", Score: 1}},
		builder.Frank: {{ID: "Charlie", Score: 1}, {ID: "David", Score: 1}},
		builder.Eve:   {{ID: "Alice", Score: 1}, {ID: "Bob", Score: 1}, {ID: "Heidi", Score: 1}},
		builder.Grace: {},
	}
	for id, want := range cases {
		got, err := recommend.SuggestFriends(g, id)
		require.NoError(t, err, id)
		assert.Equal(t, want, got, id)
	}
}

// TestSuggestFriends_FriendsWithoutOtherFriends covers users whose friends
// know nobody else: a star hub and both ends of a single friendship.
func TestSuggestFriends_FriendsWithoutOtherFriends(t *testing.T) {
	t.Parallel()

	star, err := builder.BuildGraph(nil, builder.Star(5))
	require.NoError(t, err)
	got, err := recommend.SuggestFriends(star, builder.CenterUserID)
	require.NoError(t, err)
	assert.Empty(t, got)

	pair, err := builder.BuildGraph(nil, builder.Path(2))
	require.NoError(t, err)
	for _, id := range pair.Users() {
		got, err := recommend.SuggestFriends(pair, id)
		require.NoError(t, err)
		assert.Empty(t, got, id)
	}
}

// TestSuggestFriends_Unknown verifies the sentinel and the empty result.
func TestSuggestFriends_Unknown(t *testing.T) {
	t.Parallel()
	got, err := recommend.SuggestFriends(builder.Demo(), "Nobody")
	assert.ErrorIs(t, err, core.ErrUserNotFound)
	assert.Empty(t, got)
}

// TestSuggestFriends_Options verifies limit and minimum-score filtering.
func TestSuggestFriends_Options(t *testing.T) {
	t.Parallel()
	g := builder.Demo()

	got, err := recommend.SuggestFriends(g, builder.Eve, recommend.WithLimit(2))
	require.NoError(t, err)
	assert.Equal(t, []recommend.Suggestion{{ID: "Alice", Score: 1}, {ID: "Bob", Score: 1}}, got)

	got, err = recommend.SuggestFriends(g, builder.Alice, recommend.WithMinScore(2))
	require.NoError(t, err)
	assert.Equal(t, []recommend.Suggestion{{ID: "David", Score: 2}}, got)

	assert.Panics(t, func() { recommend.WithLimit(-1) })
}

// TestSuggestFriends_Properties checks exclusion, ordering and score/mutual
// agreement over seeded random graphs.
func TestSuggestFriends_Properties(t *testing.T) {
	t.Parallel()
	for _, seed := range []int64{11, 12, 13} {
		g, err := builder.BuildGraph([]builder.Option{builder.WithSeed(seed)}, builder.RandomSparse(20, 0.2))
		require.NoError(t, err)

		for _, id := range g.Users() {
			got, err := recommend.SuggestFriends(g, id)
			require.NoError(t, err)

			for i, s := range got {
				assert.NotEqual(t, id, s.ID, "self suggested")
				assert.False(t, g.HasFriendship(id, s.ID), "direct friend %s suggested to %s", s.ID, id)

				mutual, err := recommend.MutualFriends(g, id, s.ID)
				require.NoError(t, err)
				assert.Equal(t, len(mutual), s.Score, "%s→%s", id, s.ID)

				if i > 0 {
					prev := got[i-1]
					ordered := prev.Score > s.Score || (prev.Score == s.Score && prev.ID < s.ID)
					assert.True(t, ordered, "order %v before %v", prev, s)
				}
			}
		}
	}
}
