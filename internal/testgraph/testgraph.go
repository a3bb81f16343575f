// Package testgraph builds the small literal CSR fixtures used by every
// engine package's tests — the §8 seeded end-to-end scenarios. It is not
// the CSR-building CLI the spec places out of scope (§1); it only
// constructs fixed literal graphs for test parity, grounded on the
// teacher's builder package (builder/impl_star.go, impl_path.go): one
// constructor per topology, deterministic edge emission order.
package testgraph

import "github.com/katalvlaran/sssp-lab/csrview"

// builder accumulates edges and produces a csrview.View sorted by source.
type builder struct {
	n     int
	edges [][3]float64 // from, to, weight (from/to stored as float64 for convenience)
}

func newBuilder(n int) *builder {
	return &builder{n: n}
}

func (b *builder) addEdge(from, to int, weight float64) {
	b.edges = append(b.edges, [3]float64{float64(from), float64(to), weight})
}

func (b *builder) build() csrview.View {
	counts := make([]int, b.n)
	for _, e := range b.edges {
		counts[int(e[0])]++
	}
	offsets := make([]uint32, b.n+1)
	for i := 0; i < b.n; i++ {
		offsets[i+1] = offsets[i] + uint32(counts[i])
	}
	targets := make([]uint32, len(b.edges))
	weights := make([]float64, len(b.edges))
	cursor := make([]uint32, b.n)
	copy(cursor, offsets[:b.n])
	for _, e := range b.edges {
		from := int(e[0])
		idx := cursor[from]
		targets[idx] = uint32(e[1])
		weights[idx] = e[2]
		cursor[from]++
	}
	return csrview.View{N: b.n, Offsets: offsets, Targets: targets, Weights: weights}
}

// Triangle is §8 scenario 1: n=3, 0→1 w=1.0, 0→2 w=2.0, 1→2 w=0.25.
func Triangle() csrview.View {
	b := newBuilder(3)
	b.addEdge(0, 1, 1.0)
	b.addEdge(0, 2, 2.0)
	b.addEdge(1, 2, 0.25)
	return b.build()
}

// Path is §8 scenario 2 generalized: a chain 0→1→...→(n-1), each edge
// weight 1.
func Path(n int) csrview.View {
	b := newBuilder(n)
	for i := 0; i < n-1; i++ {
		b.addEdge(i, i+1, 1.0)
	}
	return b.build()
}

// Star is §8 scenario 3: center 0 with k unit edges to 1..k.
func Star(k int) csrview.View {
	b := newBuilder(k + 1)
	for i := 1; i <= k; i++ {
		b.addEdge(0, i, 1.0)
	}
	return b.build()
}

// TwoCliques is §8 scenario 5: two 4-cliques, all internal edges weight 1
// in both directions, bridged by one directed unit edge from clique A's
// last vertex to clique B's first.
func TwoCliques() csrview.View {
	const size = 4
	n := size * 2
	b := newBuilder(n)
	addClique := func(base int) {
		for i := 0; i < size; i++ {
			for j := 0; j < size; j++ {
				if i == j {
					continue
				}
				b.addEdge(base+i, base+j, 1.0)
			}
		}
	}
	addClique(0)
	addClique(size)
	b.addEdge(size-1, size, 1.0) // bridge: A's last vertex -> B's first
	return b.build()
}

// Disconnected returns a graph with an isolated vertex unreachable from the
// source, used to exercise the +∞/unreached path.
func Disconnected() csrview.View {
	b := newBuilder(3)
	b.addEdge(0, 1, 1.0)
	// vertex 2 has no incoming edge from 0 or 1.
	return b.build()
}
