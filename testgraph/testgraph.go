package testgraph

import "github.com/arbortree/higra/graph"

// Cycle builds the n-vertex simple cycle C_n: edges i -> (i+1)%n for
// i in [0, n), emitted in ascending i order. Panics if n < 3 — a
// malformed test fixture is a programmer error, not a runtime one.
func Cycle(n int) *graph.ExplicitGraph {
	if n < 3 {
		panic("testgraph.Cycle: n must be >= 3")
	}

	g := graph.NewExplicit()
	for i := 0; i < n; i++ {
		g.AddVertex()
	}
	for i := 0; i < n; i++ {
		mustAddEdge(g, i, (i+1)%n)
	}

	return g
}

// Path builds the n-vertex simple path P_n: edges (i-1) -> i for
// i in [1, n), emitted in ascending i order.
func Path(n int) *graph.ExplicitGraph {
	if n < 2 {
		panic("testgraph.Path: n must be >= 2")
	}

	g := graph.NewExplicit()
	for i := 0; i < n; i++ {
		g.AddVertex()
	}
	for i := 1; i < n; i++ {
		mustAddEdge(g, i-1, i)
	}

	return g
}

// Star builds a star with n vertices: hub 0 and n-1 leaves 1..n-1,
// spokes emitted in ascending leaf order.
func Star(n int) *graph.ExplicitGraph {
	if n < 2 {
		panic("testgraph.Star: n must be >= 2")
	}

	g := graph.NewExplicit()
	for i := 0; i < n; i++ {
		g.AddVertex()
	}
	for leaf := 1; leaf < n; leaf++ {
		mustAddEdge(g, 0, leaf)
	}

	return g
}

// Wheel builds W_n = C_(n-1) plus a hub vertex n-1 connected by a
// spoke to every rim vertex, spokes emitted in ascending rim order.
func Wheel(n int) *graph.ExplicitGraph {
	if n < 4 {
		panic("testgraph.Wheel: n must be >= 4")
	}

	g := Cycle(n - 1)
	hub := g.AddVertex()
	for rim := 0; rim < n-1; rim++ {
		mustAddEdge(g, hub, rim)
	}

	return g
}

// Complete builds the complete graph K_n: every unordered pair {i,j}
// with i<j, emitted in lexicographic (i,j) order.
func Complete(n int) *graph.ExplicitGraph {
	if n < 1 {
		panic("testgraph.Complete: n must be >= 1")
	}

	g := graph.NewExplicit()
	for i := 0; i < n; i++ {
		g.AddVertex()
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			mustAddEdge(g, i, j)
		}
	}

	return g
}

// CompleteBipartite builds K_(n1,n2): left vertices 0..n1-1, right
// vertices n1..n1+n2-1, every cross pair (left i, right j) emitted
// with i ascending outer, j ascending inner — the layout
// bipartite.MinWeightPerfectMatching requires (every edge left half
// to right half).
func CompleteBipartite(n1, n2 int) *graph.ExplicitGraph {
	if n1 < 1 || n2 < 1 {
		panic("testgraph.CompleteBipartite: n1 and n2 must be >= 1")
	}

	g := graph.NewExplicit()
	for i := 0; i < n1+n2; i++ {
		g.AddVertex()
	}
	for i := 0; i < n1; i++ {
		for j := 0; j < n2; j++ {
			mustAddEdge(g, i, n1+j)
		}
	}

	return g
}

func mustAddEdge(g *graph.ExplicitGraph, u, v int) {
	if _, err := g.AddEdge(u, v); err != nil {
		panic(err)
	}
}
