package main

import (
	"fmt"
	"strings"

	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialgraph/config"
	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/recommend"
)

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print every user with their friends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := a.configured()
			if err != nil {
				return err
			}
			if err := a.render.Graph(n.Graph()); err != nil {
				return err
			}
			st := n.Stats()
			a.render.Line("%d users, %d friendships, %d isolated, max degree %d",
				st.Users, st.Friendships, st.Isolated, st.MaxDegree)

			return a.render.Err()
		},
	}
}

func (a *app) friendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "friends USER",
		Short: "List a user's friends",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.configured()
			if err != nil {
				return err
			}
			friends, err := n.Friends(args[0])
			if err != nil {
				return err
			}

			return a.render.Friends(args[0], friends)
		},
	}
}

func (a *app) mutualCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mutual USER USER",
		Short: "List the friends two users share",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.configured()
			if err != nil {
				return err
			}
			mutual, err := n.MutualFriends(args[0], args[1])
			if err != nil {
				return err
			}

			return a.render.Mutual(args[0], args[1], mutual)
		},
	}
}

func (a *app) suggestCmd() *cobra.Command {
	var limit, minScore int

	cmd := &cobra.Command{
		Use:   "suggest USER",
		Short: "Rank friend-of-friend candidates by mutual friends",
		Long: `Rank users two hops away by how many friends they share with USER.

Ties are broken alphabetically. --limit defaults to suggest_limit from the
configuration (0 means unlimited).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.SuggestLimit
			}
			if limit < 0 {
				return fmt.Errorf("--limit must be non-negative, got %d", limit)
			}
			n, err := a.configured()
			if err != nil {
				return err
			}
			list, err := n.SuggestFriends(args[0],
				recommend.WithLimit(limit), recommend.WithMinScore(minScore))
			if err != nil {
				return err
			}

			return a.render.Suggestions(args[0], list)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of suggestions (0 = all)")
	cmd.Flags().IntVar(&minScore, "min-score", 0, "minimum number of mutual friends")

	return cmd
}

func (a *app) suggestAllCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "suggest-all",
		Short: "Rank suggestions for every user in parallel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.SuggestLimit
			}
			n, err := a.configured()
			if err != nil {
				return err
			}
			all, err := n.SuggestAll(cmd.Context(), limit)
			if err != nil {
				return err
			}
			for _, id := range n.Graph().Users() {
				if err := a.render.Suggestions(id, all[id]); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum suggestions per user (0 = all)")

	return cmd
}

func (a *app) pathCmd() *cobra.Command {
	var algo string

	cmd := &cobra.Command{
		Use:   "path FROM TO",
		Short: "Find a shortest chain of friendships between two users",
		Long: `Find a shortest chain of friendships between FROM and TO.

--algo selects breadth-first search ("bfs") or Dijkstra over unit
weights ("dijkstra"); both return the same distance. The default comes
from the configuration.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("algo") {
				algo = a.cfg.Algorithm
			}
			n, err := a.configured()
			if err != nil {
				return err
			}

			var (
				res   core.PathResult
				label string
			)
			switch strings.ToLower(algo) {
			case config.AlgorithmBFS:
				label = "BFS"
				res, err = n.ShortestPathUnweighted(args[0], args[1])
			case config.AlgorithmDijkstra:
				label = "Dijkstra"
				res, err = n.ShortestPathWeighted(args[0], args[1])
			default:
				return fmt.Errorf("unknown algorithm %q (want bfs or dijkstra)", algo)
			}
			if err != nil {
				return err
			}

			return a.render.Path(label, args[0], args[1], res)
		},
	}
	cmd.Flags().StringVar(&algo, "algo", "", "bfs or dijkstra")

	return cmd
}

func (a *app) reachCmd() *cobra.Command {
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "reach USER",
		Short: "List users within a number of hops, grouped by distance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.configured()
			if err != nil {
				return err
			}
			layers, err := n.Reach(args[0], maxDepth)
			if err != nil {
				return err
			}

			return a.render.Reach(args[0], layers)
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 2, "maximum hops (0 = whole component)")

	return cmd
}

func (a *app) componentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List groups of users connected through friendships",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := a.configured()
			if err != nil {
				return err
			}
			comps, err := n.Components()
			if err != nil {
				return err
			}

			return a.render.Components(comps)
		},
	}
}

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build the demo network step by step and exercise every query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runDemo(a.render)
		},
	}
}

func (a *app) metricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Run the demo silently and print the collected Prometheus metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.runDemo(a.quietRenderer()); err != nil {
				return err
			}
			families, err := a.registry.Gather()
			if err != nil {
				return fmt.Errorf("gather metrics: %w", err)
			}
			for _, mf := range families {
				if _, err := expfmt.MetricFamilyToText(a.out, mf); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
