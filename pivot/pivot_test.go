package pivot_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sssp-lab/csrview"
	"github.com/katalvlaran/sssp-lab/internal/testgraph"
	"github.com/katalvlaran/sssp-lab/pivot"
)

func TestRun_SmallGraphSucceedsFirstAttempt(t *testing.T) {
	v := testgraph.Triangle()
	dist := make([]float64, v.N)
	pred := make([]int32, v.N)

	res, status := pivot.Run(v, 0, dist, pred)
	require.Equal(t, csrview.StatusOK, status)
	require.True(t, res.Success)
	require.Equal(t, 1, res.Attempts)
	require.EqualValues(t, v.N, res.Collected)
}

func TestRun_CoversWholeGraph(t *testing.T) {
	v := testgraph.Path(256)
	dist := make([]float64, v.N)
	pred := make([]int32, v.N)

	res, status := pivot.Run(v, 0, dist, pred)
	require.Equal(t, csrview.StatusOK, status)
	require.True(t, res.Success)
	require.EqualValues(t, v.N, res.Collected)
	for i := 0; i < v.N; i++ {
		require.Equal(t, float64(i), dist[i])
	}
}

func TestRun_SourceOutOfRange(t *testing.T) {
	v := testgraph.Triangle()
	dist := make([]float64, v.N)
	pred := make([]int32, v.N)
	_, status := pivot.Run(v, 99, dist, pred)
	require.Equal(t, csrview.StatusSourceOutOfRange, status)
}

func TestRun_AttemptsNeverExceedsConfiguredCap(t *testing.T) {
	v := testgraph.Star(20000)
	dist := make([]float64, v.N)
	pred := make([]int32, v.N)

	res, status := pivot.Run(v, 0, dist, pred)
	require.Equal(t, csrview.StatusOK, status)
	require.LessOrEqual(t, res.Attempts, 8) // default PIVOT_MAX_ATTEMPTS
}
