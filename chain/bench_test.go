package chain_test

import (
	"testing"

	"github.com/katalvlaran/sssp-lab/chain"
	"github.com/katalvlaran/sssp-lab/internal/testgraph"
)

func BenchmarkRun_Path(b *testing.B) {
	v := testgraph.Path(2048)
	dist := make([]float64, v.N)
	pred := make([]int32, v.N)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		chain.Run(v, 0, dist, pred)
	}
}
