package snapshot_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sssp-lab/snapshot"
)

func TestHeapStats_RoundTrip(t *testing.T) {
	snapshot.SetHeapStats(snapshot.HeapStats{Pushes: 3, Pops: 2, MaxSize: 2})
	require.Equal(t, snapshot.HeapStats{Pushes: 3, Pops: 2, MaxSize: 2}, snapshot.HeapSnapshot())
}

func TestFrameTable_ResetAndAppend(t *testing.T) {
	snapshot.ResetFrameTable()
	require.Equal(t, 0, snapshot.FrameCount())

	id := snapshot.AppendFrame(snapshot.Frame{ID: 0, Bound: 1.5, K: 4})
	require.Equal(t, 0, id)
	require.Equal(t, 1, snapshot.FrameCount())

	f, ok := snapshot.FrameAt(0)
	require.True(t, ok)
	require.Equal(t, 1.5, f.Bound)

	_, ok = snapshot.FrameAt(5)
	require.False(t, ok)

	snapshot.ResetFrameTable()
	require.Equal(t, 0, snapshot.FrameCount())
}

func TestBasecaseOutcome_String(t *testing.T) {
	require.Equal(t, "success", snapshot.BasecaseSuccess.String())
	require.Equal(t, "truncated", snapshot.BasecaseTruncated.String())
}
