package refengine_test

import (
	"fmt"

	"github.com/katalvlaran/sssp-lab/csrview"
	"github.com/katalvlaran/sssp-lab/internal/testgraph"
	"github.com/katalvlaran/sssp-lab/refengine"
)

// ExampleRun demonstrates computing shortest distances on the triangle
// fixture: 0→1 w=1.0, 0→2 w=2.0, 1→2 w=0.25.
func ExampleRun() {
	v := testgraph.Triangle()
	dist := make([]float64, v.N)
	pred := make([]int32, v.N)
	var result csrview.Result

	status := refengine.Run(v, 0, dist, pred, &result)
	if status != csrview.StatusOK {
		fmt.Println("error:", status)
		return
	}

	fmt.Printf("dist=%v pred[2]=%d relaxations=%d\n", dist, pred[2], result.Relaxations)
	// Output: dist=[0 1 1.25] pred[2]=1 relaxations=3
}
