package pivot_test

import (
	"fmt"

	"github.com/katalvlaran/sssp-lab/internal/testgraph"
	"github.com/katalvlaran/sssp-lab/pivot"
)

// ExampleRun grows a pivot set over the triangle fixture, succeeding on the
// first attempt since the whole graph fits within the default k.
func ExampleRun() {
	v := testgraph.Triangle()
	dist := make([]float64, v.N)
	pred := make([]int32, v.N)

	res, _ := pivot.Run(v, 0, dist, pred)
	fmt.Printf("success=%v attempts=%d collected=%d\n", res.Success, res.Attempts, res.Collected)
	// Output: success=true attempts=1 collected=3
}
