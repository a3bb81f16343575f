package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sssp-lab/csrview"
	"github.com/katalvlaran/sssp-lab/internal/testgraph"
	"github.com/katalvlaran/sssp-lab/sssp"
)

type opts struct {
	engine  string
	fixture string
	source  int
	k       int
	bound   float64
	verbose bool
}

var engines = map[string]func(csrview.View, int, []float64, []int32, *csrview.Result) int{
	"reference":                         sssp.RunReference,
	"delta-stepping":                    sssp.RunDeltaStepping,
	"delta-stepping-autotuned":          sssp.RunDeltaSteppingAutotuned,
	"delta-stepping-autotuned-adaptive": sssp.RunDeltaSteppingAutotunedAdaptive,
	"pivot-growth":                      sssp.RunPivotGrowth,
	"bucket-with-d":                     sssp.RunBucketWithD,
	"boundary-chain":                    sssp.RunBoundaryChain,
	"segment-descent":                   sssp.RunSegmentDescent,
}

var fixtures = map[string]func() csrview.View{
	"triangle":     testgraph.Triangle,
	"two-cliques":  testgraph.TwoCliques,
	"disconnected": testgraph.Disconnected,
}

func fixtureGraph(name string) (csrview.View, error) {
	if f, ok := fixtures[name]; ok {
		return f(), nil
	}
	switch name {
	case "path-64":
		return testgraph.Path(64), nil
	case "star-16":
		return testgraph.Star(16), nil
	}
	return csrview.View{}, fmt.Errorf("unknown fixture %q", name)
}

func run(o *opts) error {
	v, err := fixtureGraph(o.fixture)
	if err != nil {
		return err
	}

	dist := make([]float64, v.N)
	pred := make([]int32, v.N)
	var info csrview.Result

	var status int
	if o.engine == "basecase-probe" {
		status = sssp.RunBasecaseProbe(v, o.source, o.k, o.bound, dist, pred, &info)
	} else {
		fn, ok := engines[o.engine]
		if !ok {
			return fmt.Errorf("unknown engine %q", o.engine)
		}
		status = fn(v, o.source, dist, pred, &info)
	}
	if status != csrview.StatusOK {
		return fmt.Errorf("engine returned status %d", status)
	}

	fmt.Printf("engine=%s fixture=%s source=%d\n", o.engine, o.fixture, o.source)
	fmt.Printf("relaxations=%d settled=%d error_code=%d\n", info.Relaxations, info.Settled, info.ErrorCode)
	for i, d := range dist {
		if o.verbose || !math.IsInf(d, 1) {
			fmt.Printf("  vertex %d: dist=%v pred=%d\n", i, d, pred[i])
		}
	}

	printSnapshot(o.engine)
	return nil
}

func printSnapshot(engine string) {
	switch engine {
	case "reference":
		fmt.Printf("heap: %+v\n", sssp.GetHeapStats())
	case "delta-stepping", "delta-stepping-autotuned", "delta-stepping-autotuned-adaptive":
		fmt.Printf("bucket: %+v\n", sssp.GetBucketStats())
	case "basecase-probe":
		fmt.Printf("basecase: %+v\n", sssp.GetBasecaseStats())
	case "pivot-growth":
		fmt.Printf("pivot: %+v\n", sssp.GetPivotStats())
	case "bucket-with-d":
		fmt.Printf("bucketd: %+v\n", sssp.GetBucketDStats())
	case "boundary-chain":
		fmt.Printf("chain: %+v\n", sssp.GetChainStats())
	case "segment-descent":
		stats := sssp.GetRecursionStats()
		fmt.Printf("recursion: %+v\n", stats)
		for i := 0; i < sssp.GetFrameCount(); i++ {
			f, _ := sssp.GetFrame(i)
			fmt.Printf("  frame %d: %+v\n", i, f)
		}
	}
}

func newRootCmd() *cobra.Command {
	o := &opts{}
	root := &cobra.Command{
		Use:   "ssspbench",
		Short: "Run a single SSSP engine against a named fixture graph",
		Long: "ssspbench runs one of the library's nine entry points against a small\n" +
			"built-in fixture graph and prints the resulting distances, predecessors,\n" +
			"and instrumentation snapshot. It is a manual-run aid, not a benchmark\n" +
			"harness: it does not load graphs from disk or emit JSON.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o)
		},
	}

	root.Flags().StringVar(&o.engine, "engine", "reference",
		"engine to run: reference, delta-stepping, delta-stepping-autotuned, "+
			"delta-stepping-autotuned-adaptive, basecase-probe, pivot-growth, "+
			"bucket-with-d, boundary-chain, segment-descent")
	root.Flags().StringVar(&o.fixture, "fixture", "triangle",
		"fixture graph: triangle, two-cliques, disconnected, path-64, star-16")
	root.Flags().IntVar(&o.source, "source", 0, "source vertex index")
	root.Flags().IntVar(&o.k, "k", 4, "prefix size for --engine=basecase-probe")
	root.Flags().Float64Var(&o.bound, "bound", math.Inf(1), "distance bound for --engine=basecase-probe")
	root.Flags().BoolVar(&o.verbose, "verbose", false, "print unreachable vertices too")

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ssspbench:", err)
		os.Exit(1)
	}
}
