package track_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/trackswitch/track"
)

// NetworkSuite covers cell bookkeeping of the connectivity model.
type NetworkSuite struct {
	suite.Suite
	nw *track.Network
}

// SetupTest creates a fresh five-switch network for every test.
func (s *NetworkSuite) SetupTest() {
	nw, err := track.NewNetwork(5)
	require.NoError(s.T(), err)
	s.nw = nw
}

func (s *NetworkSuite) TestNewNetworkRejectsEmpty() {
	_, err := track.NewNetwork(0)
	require.ErrorIs(s.T(), err, track.ErrBadSize)
}

func (s *NetworkSuite) TestEmptyCellsAreNone() {
	require.Equal(s.T(), 5, s.nw.Size())
	require.Equal(s.T(), track.None, s.nw.At(1, 2))
	require.Equal(s.T(), 0, s.nw.OutDegree(1))
	require.Equal(s.T(), 0, s.nw.DefaultOf(1))
}

func (s *NetworkSuite) TestDeclareEdgeBounds() {
	require.ErrorIs(s.T(), s.nw.DeclareEdge(0, 1), track.ErrSwitchOutOfRange)
	require.ErrorIs(s.T(), s.nw.DeclareEdge(1, 6), track.ErrSwitchOutOfRange)
	require.ErrorIs(s.T(), s.nw.DeclareEdge(3, 3), track.ErrSelfLoop)
}

func (s *NetworkSuite) TestDefaultOverEdgeBecomesDefaultManual() {
	require.NoError(s.T(), s.nw.DeclareEdge(1, 2))
	require.NoError(s.T(), s.nw.DeclareEdge(1, 3))
	require.NoError(s.T(), s.nw.DeclareDefault(1, 2))

	require.Equal(s.T(), track.DefaultManual, s.nw.At(1, 2))
	require.Equal(s.T(), track.Manual, s.nw.At(1, 3))
	require.Equal(s.T(), 2, s.nw.OutDegree(1))
	require.Equal(s.T(), 2, s.nw.DefaultOf(1))
}

func (s *NetworkSuite) TestDefaultWithoutEdgeIsBackward() {
	require.NoError(s.T(), s.nw.DeclareEdge(4, 5))
	require.NoError(s.T(), s.nw.DeclareDefault(4, 2))

	require.Equal(s.T(), track.Default, s.nw.At(4, 2))
	require.Equal(s.T(), 1, s.nw.OutDegree(4), "a backward rest position is not a track")
}

func (s *NetworkSuite) TestEdgeAfterDefaultStillCombines() {
	require.NoError(s.T(), s.nw.DeclareDefault(1, 2))
	require.NoError(s.T(), s.nw.DeclareEdge(1, 2))
	require.NoError(s.T(), s.nw.DeclareEdge(1, 2))

	require.Equal(s.T(), track.DefaultManual, s.nw.At(1, 2))
	require.Equal(s.T(), 1, s.nw.OutDegree(1))
}

func (s *NetworkSuite) TestDeclareDefaultRules() {
	require.NoError(s.T(), s.nw.DeclareDefault(5, 0), "zero means no rest position")
	require.Equal(s.T(), 0, s.nw.DefaultOf(5))

	require.ErrorIs(s.T(), s.nw.DeclareDefault(6, 1), track.ErrSwitchOutOfRange)
	require.ErrorIs(s.T(), s.nw.DeclareDefault(1, 9), track.ErrSwitchOutOfRange)

	require.NoError(s.T(), s.nw.DeclareDefault(1, 2))
	require.ErrorIs(s.T(), s.nw.DeclareDefault(1, 3), track.ErrDuplicateDefault)
}

func (s *NetworkSuite) TestSuccessorsAscending() {
	require.NoError(s.T(), s.nw.DeclareEdge(1, 5))
	require.NoError(s.T(), s.nw.DeclareEdge(1, 3))
	require.NoError(s.T(), s.nw.DeclareDefault(1, 4)) // backward, not a successor

	require.Equal(s.T(), []int{3, 5}, s.nw.Successors(1))
	require.Empty(s.T(), s.nw.Successors(2))
	require.Nil(s.T(), s.nw.Successors(42))
}

func (s *NetworkSuite) TestArrivalThrow() {
	// 4 converges from 2 and 3 and rests toward 2.
	require.NoError(s.T(), s.nw.DeclareEdge(2, 4))
	require.NoError(s.T(), s.nw.DeclareEdge(3, 4))
	require.NoError(s.T(), s.nw.DeclareEdge(4, 5))
	require.NoError(s.T(), s.nw.DeclareDefault(4, 2))
	// 5 rests nowhere.

	require.False(s.T(), s.nw.ArrivalThrow(4, 2))
	require.True(s.T(), s.nw.ArrivalThrow(4, 3))
	require.False(s.T(), s.nw.ArrivalThrow(5, 4))
}

func (s *NetworkSuite) TestArrivalThrowForwardRest() {
	// 2 rests on its own forward track: arriving never needs a throw.
	require.NoError(s.T(), s.nw.DeclareEdge(1, 2))
	require.NoError(s.T(), s.nw.DeclareEdge(2, 3))
	require.NoError(s.T(), s.nw.DeclareDefault(2, 3))

	require.False(s.T(), s.nw.ArrivalThrow(2, 1))
}

func (s *NetworkSuite) TestOutOfRangeQueries() {
	require.Equal(s.T(), track.None, s.nw.At(0, 1))
	require.Equal(s.T(), 0, s.nw.OutDegree(99))
	require.Equal(s.T(), 0, s.nw.DefaultOf(-1))
}

func TestNetworkSuite(t *testing.T) {
	suite.Run(t, new(NetworkSuite))
}

func TestConnectionQueries(t *testing.T) {
	cases := []struct {
		c           track.Connection
		traversable bool
		isDefault   bool
		name        string
	}{
		{track.None, false, false, "none"},
		{track.Default, false, true, "default"},
		{track.Manual, true, false, "manual"},
		{track.DefaultManual, true, true, "default+manual"},
		{track.Connection(9), false, false, "unknown"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.traversable, tc.c.IsTraversable())
			require.Equal(t, tc.isDefault, tc.c.IsDefault())
			require.Equal(t, tc.name, tc.c.String())
		})
	}
}
