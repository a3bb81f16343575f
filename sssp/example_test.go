package sssp_test

import (
	"fmt"

	"github.com/katalvlaran/sssp-lab/csrview"
	"github.com/katalvlaran/sssp-lab/internal/testgraph"
	"github.com/katalvlaran/sssp-lab/sssp"
)

// ExampleRunReference computes shortest distances through the public
// facade instead of importing refengine directly.
func ExampleRunReference() {
	v := testgraph.Triangle()
	dist := make([]float64, v.N)
	pred := make([]int32, v.N)
	var info csrview.Result

	status := sssp.RunReference(v, 0, dist, pred, &info)
	if status != csrview.StatusOK {
		fmt.Println("error:", status)
		return
	}
	fmt.Printf("dist=%v relaxations=%d\n", dist, info.Relaxations)
	// Output: dist=[0 1 1.25] relaxations=3
}
