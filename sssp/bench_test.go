package sssp_test

import (
	"testing"

	"github.com/katalvlaran/sssp-lab/csrview"
	"github.com/katalvlaran/sssp-lab/internal/testgraph"
	"github.com/katalvlaran/sssp-lab/sssp"
)

func BenchmarkRunDeltaStepping_Path(b *testing.B) {
	v := testgraph.Path(2048)
	dist := make([]float64, v.N)
	pred := make([]int32, v.N)
	var info csrview.Result

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sssp.RunDeltaStepping(v, 0, dist, pred, &info)
	}
}
