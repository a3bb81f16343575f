package refengine_test

import (
	"testing"

	"github.com/katalvlaran/sssp-lab/csrview"
	"github.com/katalvlaran/sssp-lab/internal/testgraph"
	"github.com/katalvlaran/sssp-lab/refengine"
)

func BenchmarkRun_Path(b *testing.B) {
	v := testgraph.Path(2048)
	dist := make([]float64, v.N)
	pred := make([]int32, v.N)
	var result csrview.Result

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		refengine.Run(v, 0, dist, pred, &result)
	}
}
