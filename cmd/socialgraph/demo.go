package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/socialgraph/builder"
	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/render"
)

// missingUser never exists in the demo network.
const missingUser = "Nobody"

func (a *app) quietRenderer() *render.Renderer {
	return render.New(io.Discard, render.ModeNever)
}

// runDemo registers the demo users and friendships one by one, then runs
// every query against them, including lookups of an unknown user.
func (a *app) runDemo(r *render.Renderer) error {
	n := a.network(nil)

	r.Line("--- Social Network Simulation ---")

	r.Section("Adding Users")
	for _, id := range builder.DemoUsers {
		n.AddUser(id)
		r.Line("User '%s' added.", id)
	}

	r.Section("Adding Friendships")
	for _, p := range builder.DemoFriendships {
		if err := n.AddFriendship(p.A, p.B); err != nil {
			return err
		}
		r.Line("Friendship added between '%s' and '%s'.", p.A, p.B)
	}

	if err := r.Graph(n.Graph()); err != nil {
		return err
	}

	r.Section("Testing: Get Friends")
	for _, id := range []string{builder.Charlie, builder.Grace} {
		friends, err := n.Friends(id)
		if err != nil {
			return err
		}
		_ = r.Friends(id, friends)
	}

	r.Section("Testing: Mutual Friends")
	for _, pair := range [][2]string{
		{builder.Alice, builder.David},
		{builder.Bob, builder.Eve},
		{builder.Alice, missingUser},
	} {
		mutual, err := n.MutualFriends(pair[0], pair[1])
		if err != nil {
			if err := expectMissing(r, err); err != nil {
				return err
			}
			continue
		}
		_ = r.Mutual(pair[0], pair[1], mutual)
	}

	r.Section("Testing: Suggest Friends")
	for _, id := range []string{builder.Alice, builder.Bob, builder.Frank} {
		list, err := n.SuggestFriends(id)
		if err != nil {
			return err
		}
		_ = r.Suggestions(id, list)
	}

	r.Section("Testing: Shortest Path (BFS)")
	for _, pair := range [][2]string{
		{builder.Alice, builder.Eve},
		{builder.Bob, builder.Heidi},
		{builder.Alice, builder.Grace},
		{builder.Alice, missingUser},
	} {
		res, err := n.ShortestPathUnweighted(pair[0], pair[1])
		if err := showPath(r, "BFS", pair, res, err); err != nil {
			return err
		}
	}

	r.Section("Testing: Shortest Path (Dijkstra)")
	for _, pair := range [][2]string{
		{builder.Alice, builder.Heidi},
		{builder.Grace, builder.Alice},
		{builder.Bob, missingUser},
	} {
		res, err := n.ShortestPathWeighted(pair[0], pair[1])
		if err := showPath(r, "Dijkstra", pair, res, err); err != nil {
			return err
		}
	}

	r.Section("Testing Complete")

	return r.Err()
}

// expectMissing prints an unknown-user error and swallows it.
// Any other error is returned.
func expectMissing(r *render.Renderer, err error) error {
	if err == nil {
		return nil
	}
	if !errors.Is(err, core.ErrUserNotFound) {
		return err
	}
	r.Error(err)

	return nil
}

func showPath(r *render.Renderer, algo string, pair [2]string, res core.PathResult, err error) error {
	if err != nil {
		if missErr := expectMissing(r, err); missErr != nil {
			return fmt.Errorf("%s %s -> %s: %w", algo, pair[0], pair[1], missErr)
		}
		return nil
	}

	return r.Path(algo, pair[0], pair[1], res)
}
