package dqueue_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sssp-lab/dqueue"
)

func TestD_IsEmptyInitially(t *testing.T) {
	var d dqueue.D
	require.True(t, d.IsEmpty())
}

func TestD_PushThenPullDrainsSpill(t *testing.T) {
	var d dqueue.D
	d.Push(1)
	d.Push(2)
	d.Push(3)

	var out []int32
	d.Pull(func(v int32) { out = append(out, v) })
	require.Equal(t, []int32{3, 2, 1}, out) // LIFO relative to push order
	require.True(t, d.IsEmpty())
}

func TestD_BatchPrependOrderedBeforeSpill(t *testing.T) {
	var d dqueue.D
	d.Push(100) // goes to spill

	d.BatchPrepend([]int32{1, 2, 3}) // B1
	d.BatchPrepend([]int32{4, 5})    // B2, prepended after B1

	var out []int32
	d.Pull(func(v int32) { out = append(out, v) })

	// B2 fully delivered before any of B1, which is fully delivered before spill.
	require.Equal(t, []int32{5, 4, 3, 2, 1, 100}, out)
	require.True(t, d.IsEmpty())
}

func TestD_EmptyBatchPrependIsNoop(t *testing.T) {
	var d dqueue.D
	d.BatchPrepend(nil)
	require.True(t, d.IsEmpty())
}

func TestD_PushDuringPullIsDrained(t *testing.T) {
	var d dqueue.D
	d.Push(1)
	d.Push(2)

	fed := false
	var out []int32
	d.Pull(func(v int32) {
		out = append(out, v)
		if !fed && v == 1 {
			fed = true
			d.Push(99)
		}
	})
	require.Equal(t, []int32{2, 1, 99}, out)
}
