package deltastep_test

import (
	"testing"

	"github.com/katalvlaran/sssp-lab/csrview"
	"github.com/katalvlaran/sssp-lab/deltastep"
	"github.com/katalvlaran/sssp-lab/internal/testgraph"
)

func BenchmarkRun_Path(b *testing.B) {
	v := testgraph.Path(2048)
	dist := make([]float64, v.N)
	pred := make([]int32, v.N)
	var result csrview.Result

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		deltastep.Run(v, 0, dist, pred, &result)
	}
}

func BenchmarkRunAutotuned_Path(b *testing.B) {
	v := testgraph.Path(512)
	dist := make([]float64, v.N)
	pred := make([]int32, v.N)
	var result csrview.Result

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		deltastep.RunAutotuned(v, 0, dist, pred, &result)
	}
}
