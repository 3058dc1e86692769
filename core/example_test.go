package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/socialgraph/core"
)

// ExampleGraph demonstrates registration, linking, and queries.
func ExampleGraph() {
	g := core.NewGraph()
	g.AddUser("Alice")
	g.AddUser("Bob")
	g.AddUser("Grace")

	_ = g.AddFriendship("Alice", "Bob")

	friends, _ := g.Friends("Bob")
	fmt.Println("Bob's friends:", friends)

	lonely, err := g.Friends("Grace")
	fmt.Println("Grace's friends:", lonely, err)

	err = g.AddFriendship("Alice", "Nobody")
	fmt.Println("unknown user:", errors.Is(err, core.ErrUserNotFound))

	// Output:
	// Bob's friends: [Alice]
	// Grace's friends: [] <nil>
	// unknown user: true
}
