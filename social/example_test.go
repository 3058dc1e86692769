package social_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/socialgraph/builder"
	"github.com/katalvlaran/socialgraph/social"
)

func ExampleNetwork() {
	n := social.New(builder.Demo())

	mutual, _ := n.MutualFriends("Alice", "David")
	path, _ := n.ShortestPathUnweighted("Bob", "Heidi")
	all, _ := n.SuggestAll(context.Background(), 1)

	fmt.Println("mutual:", mutual)
	fmt.Println("path:", path.Distance, path.Path)
	fmt.Println("top for Bob:", all["Bob"])
	// Output:
	// mutual: [Bob Charlie]
	// path: 4 [Bob David Eve Frank Heidi]
	// top for Bob: [{Charlie 2}]
}
