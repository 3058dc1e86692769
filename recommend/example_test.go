package recommend_test

import (
	"fmt"

	"github.com/katalvlaran/socialgraph/builder"
	"github.com/katalvlaran/socialgraph/recommend"
)

// ExampleSuggestFriends ranks friend-of-friend candidates.
func ExampleSuggestFriends() {
	g := builder.Demo()

	sugg, _ := recommend.SuggestFriends(g, "Alice")
	for _, s := range sugg {
		fmt.Printf("%s (via %d connection(s))\n", s.ID, s.Score)
	}

	mutual, _ := recommend.MutualFriends(g, "Alice", "David")
	fmt.Println(mutual)

	// Output:
	// David (via 2 connection(s))
	// Eve (via 1 connection(s))
	// [Bob Charlie]
}
