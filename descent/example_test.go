package descent_test

import (
	"fmt"

	"github.com/katalvlaran/sssp-lab/descent"
	"github.com/katalvlaran/sssp-lab/internal/testgraph"
)

// ExampleRun descends the triangle fixture in one depth-0 frame plus a
// synthesized depth-1 child, then overwrites dist/pred with the reference
// engine's output.
func ExampleRun() {
	v := testgraph.Triangle()
	dist := make([]float64, v.N)
	pred := make([]int32, v.N)

	res, _ := descent.Run(v, 0, dist, pred)
	fmt.Printf("frames=%d dist=%v\n", res.Frames, dist)
	// Output: frames=2 dist=[0 1 1.25]
}
