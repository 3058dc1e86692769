package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/socialgraph/builder"
	"github.com/katalvlaran/socialgraph/dijkstra"
)

// ExampleShortestPath runs the priority-queue search on the reference network.
func ExampleShortestPath() {
	g := builder.Demo()

	res, err := dijkstra.ShortestPath(g, "Alice", "Heidi")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist=%d path=%v\n", res.Distance, res.Path)

	// Output: dist=4 path=[Alice Charlie Eve Frank Heidi]
}
