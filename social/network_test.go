package social_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/socialgraph/builder"
	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/recommend"
	"github.com/katalvlaran/socialgraph/social"
)

// NetworkSuite runs every facade operation against a fresh demo network.
type NetworkSuite struct {
	suite.Suite
	logs *bytes.Buffer
	net  *social.Network
}

func (s *NetworkSuite) SetupTest() {
	s.logs = &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(s.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s.net = social.New(builder.Demo(), social.WithLogger(logger), social.WithWorkers(3))
}

func (s *NetworkSuite) count(op, result string) float64 {
	return testutil.ToFloat64(s.net.Metrics().OperationsTotal.WithLabelValues(op, result))
}

// TestGaugesFollowMutations checks the size gauges after each mutation.
func (s *NetworkSuite) TestGaugesFollowMutations() {
	m := s.net.Metrics()
	require.Equal(s.T(), 8.0, testutil.ToFloat64(m.Users))
	require.Equal(s.T(), 8.0, testutil.ToFloat64(m.Friendships))

	s.net.AddUser("Ivan")
	require.Equal(s.T(), 9.0, testutil.ToFloat64(m.Users))

	require.NoError(s.T(), s.net.AddFriendship("Ivan", builder.Grace))
	require.NoError(s.T(), s.net.AddFriendship(builder.Grace, "Ivan"))
	require.Equal(s.T(), 9.0, testutil.ToFloat64(m.Friendships))
	require.Equal(s.T(), 2.0, s.count(social.OpAddFriendship, social.ResultOK))
}

// TestResultLabels checks ok, not_found and rejected classification.
func (s *NetworkSuite) TestResultLabels() {
	friends, err := s.net.Friends(builder.Bob)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{builder.Alice, builder.David}, friends)

	_, err = s.net.Friends("Zed")
	require.ErrorIs(s.T(), err, core.ErrUserNotFound)

	err = s.net.AddFriendship(builder.Alice, builder.Alice)
	require.ErrorIs(s.T(), err, core.ErrSelfFriendship)

	require.Equal(s.T(), 1.0, s.count(social.OpFriends, social.ResultOK))
	require.Equal(s.T(), 1.0, s.count(social.OpFriends, social.ResultNotFound))
	require.Equal(s.T(), 1.0, s.count(social.OpAddFriendship, social.ResultRejected))
	require.Equal(s.T(), 8.0, testutil.ToFloat64(s.net.Metrics().Friendships))
}

// TestLogging checks levels and attributes written per call.
func (s *NetworkSuite) TestLogging() {
	_, _ = s.net.MutualFriends(builder.Alice, builder.David)
	require.Contains(s.T(), s.logs.String(), "level=DEBUG")
	require.Contains(s.T(), s.logs.String(), "op=mutual_friends")

	s.logs.Reset()
	_, _ = s.net.SuggestFriends("Zed")
	require.Contains(s.T(), s.logs.String(), "level=WARN")
	require.Contains(s.T(), s.logs.String(), "op=suggest_friends")
	require.Contains(s.T(), s.logs.String(), "user not found")
}

// TestPaths compares the two path algorithms through the facade.
func (s *NetworkSuite) TestPaths() {
	u, err := s.net.ShortestPathUnweighted(builder.Bob, builder.Heidi)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, u.Distance)
	require.Equal(s.T(), []string{builder.Bob, builder.David, builder.Eve, builder.Frank, builder.Heidi}, u.Path)

	w, err := s.net.ShortestPathWeighted(builder.Bob, builder.Heidi)
	require.NoError(s.T(), err)
	require.Equal(s.T(), u.Distance, w.Distance)

	none, err := s.net.ShortestPathWeighted(builder.Alice, builder.Grace)
	require.NoError(s.T(), err)
	require.False(s.T(), none.Found())
	require.Empty(s.T(), none.Path)

	require.Equal(s.T(), 1.0, s.count(social.OpPathBFS, social.ResultOK))
	require.Equal(s.T(), 2.0, s.count(social.OpPathDijkstra, social.ResultOK))
	require.Equal(s.T(), 2, testutil.CollectAndCount(s.net.Metrics().OperationDuration))
}

// TestComponents checks the isolated demo user forms its own component.
func (s *NetworkSuite) TestComponents() {
	comps, err := s.net.Components()
	require.NoError(s.T(), err)
	require.Equal(s.T(), [][]string{
		{builder.Alice, builder.Bob, builder.Charlie, builder.David, builder.Eve, builder.Frank, builder.Heidi},
		{builder.Grace},
	}, comps)
}

// TestSuggestAll checks the batch against per-user calls.
func (s *NetworkSuite) TestSuggestAll() {
	all, err := s.net.SuggestAll(context.Background(), 0)
	require.NoError(s.T(), err)
	require.Len(s.T(), all, 8)
	for _, id := range builder.DemoUsers {
		want, err := recommend.SuggestFriends(s.net.Graph(), id)
		require.NoError(s.T(), err)
		require.Equal(s.T(), want, all[id], id)
	}

	top, err := s.net.SuggestAll(context.Background(), 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []recommend.Suggestion{{ID: builder.David, Score: 2}}, top[builder.Alice])
	require.Empty(s.T(), top[builder.Grace])
	require.Equal(s.T(), 2.0, s.count(social.OpSuggestAll, social.ResultOK))
}

// TestSuggestAllErrors checks cancellation and argument validation.
func (s *NetworkSuite) TestSuggestAllErrors() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.net.SuggestAll(ctx, 0)
	require.ErrorIs(s.T(), err, context.Canceled)

	_, err = s.net.SuggestAll(context.Background(), -1)
	require.ErrorIs(s.T(), err, social.ErrBadLimit)
	require.Equal(s.T(), 2.0, s.count(social.OpSuggestAll, social.ResultError))
}

// TestGatherer checks the private registry exposes every family.
func (s *NetworkSuite) TestGatherer() {
	_, _ = s.net.Friends(builder.Alice)

	families, err := s.net.Gatherer().Gather()
	require.NoError(s.T(), err)
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{
		"socialgraph_operations_total",
		"socialgraph_operation_duration_seconds",
		"socialgraph_users",
		"socialgraph_friendships",
	} {
		require.True(s.T(), names[want], want)
	}
}

func TestNetworkSuite(t *testing.T) {
	suite.Run(t, new(NetworkSuite))
}

func TestNew_SharedRegisterer(t *testing.T) {
	reg := prometheus.NewRegistry()
	n := social.New(nil, social.WithRegisterer(reg))
	require.Equal(t, 0, n.Stats().Users)
	require.NotNil(t, n.Gatherer())

	require.Panics(t, func() { social.New(nil, social.WithRegisterer(reg)) })
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { social.WithWorkers(0) })
	require.Panics(t, func() { social.WithLogger(nil) })
	require.Panics(t, func() { social.WithRegisterer(nil) })
}

func TestNew_IndependentRegistries(t *testing.T) {
	a := social.New(builder.Demo())
	b := social.New(builder.Demo())
	_, _ = a.Friends(builder.Alice)

	require.Equal(t, 1.0, testutil.ToFloat64(a.Metrics().OperationsTotal.WithLabelValues(social.OpFriends, social.ResultOK)))
	require.Equal(t, 0.0, testutil.ToFloat64(b.Metrics().OperationsTotal.WithLabelValues(social.OpFriends, social.ResultOK)))
}

func TestReach(t *testing.T) {
	n := social.New(builder.Demo())

	within, err := n.Reach(builder.Frank, 1)
	require.NoError(t, err)
	require.Equal(t, map[string]int{builder.Frank: 0, builder.Eve: 1, builder.Heidi: 1}, within)

	_, err = n.Reach("Nobody", 0)
	require.ErrorIs(t, err, core.ErrUserNotFound)
	require.Equal(t, 1.0, testutil.ToFloat64(n.Metrics().OperationsTotal.WithLabelValues(social.OpReach, social.ResultNotFound)))
}
