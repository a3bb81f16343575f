package chain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sssp-lab/chain"
	"github.com/katalvlaran/sssp-lab/csrview"
	"github.com/katalvlaran/sssp-lab/internal/testgraph"
	"github.com/katalvlaran/sssp-lab/refengine"
)

func TestRun_Triangle_SingleSegmentCoversAll(t *testing.T) {
	v := testgraph.Triangle()
	dist := make([]float64, v.N)
	pred := make([]int32, v.N)

	res, status := chain.Run(v, 0, dist, pred)
	require.Equal(t, csrview.StatusOK, status)
	require.True(t, res.Monotonic)
	require.Equal(t, 1, res.ErrorCode) // §7: 1 means monotonicity held
	require.EqualValues(t, v.N, res.TotalCollected)
	require.Equal(t, []float64{0, 1.0, 1.25}, dist)
}

func TestRun_Path_MultipleSegmentsStrictlyIncreasingBounds(t *testing.T) {
	v := testgraph.Path(64)
	dist := make([]float64, v.N)
	pred := make([]int32, v.N)

	res, status := chain.Run(v, 0, dist, pred)
	require.Equal(t, csrview.StatusOK, status)
	require.True(t, res.Monotonic)
	for i := 1; i < len(res.Bounds); i++ {
		require.Greater(t, res.Bounds[i], res.Bounds[i-1])
	}
}

func TestRun_MatchesReferenceDistances(t *testing.T) {
	v := testgraph.TwoCliques()

	refDist := make([]float64, v.N)
	require.Equal(t, csrview.StatusOK, refengine.Run(v, 0, refDist, make([]int32, v.N), nil))

	dist := make([]float64, v.N)
	pred := make([]int32, v.N)
	res, status := chain.Run(v, 0, dist, pred)
	require.Equal(t, csrview.StatusOK, status)
	require.EqualValues(t, v.N, res.TotalCollected)
	for i := range refDist {
		require.InDelta(t, refDist[i], dist[i], 1e-9, "vertex %d", i)
	}
}

func TestRun_SegmentsDisjoint(t *testing.T) {
	v := testgraph.Path(64)
	dist := make([]float64, v.N)
	pred := make([]int32, v.N)

	res, status := chain.Run(v, 0, dist, pred)
	require.Equal(t, csrview.StatusOK, status)
	require.LessOrEqual(t, res.TotalCollected, uint32(v.N))
}

func TestRun_SourceOutOfRange(t *testing.T) {
	v := testgraph.Triangle()
	dist := make([]float64, v.N)
	pred := make([]int32, v.N)
	_, status := chain.Run(v, 99, dist, pred)
	require.Equal(t, csrview.StatusSourceOutOfRange, status)
}
