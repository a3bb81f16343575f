package basecase_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sssp-lab/basecase"
	"github.com/katalvlaran/sssp-lab/internal/testgraph"
)

// ExampleRun truncates a 32-vertex path after 5 non-stale pops (k=4).
func ExampleRun() {
	v := testgraph.Path(32)
	dist := make([]float64, v.N)
	pred := make([]int32, v.N)

	res, _ := basecase.Run(v, 0, 4, math.Inf(1), dist, pred, nil)
	fmt.Printf("outcome=%s newBound=%v collected=%d\n", res.Outcome, res.NewBound, res.Collected)
	// Output: outcome=truncated newBound=4 collected=4
}
