package componenttree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arbortree/higra/componenttree"
	"github.com/arbortree/higra/graph"
	"github.com/arbortree/higra/tree"
)

// pathGraph builds the 3-vertex path 0-1-2.
func pathGraph(t *testing.T) *graph.ExplicitGraph {
	t.Helper()
	g := graph.NewExplicit()
	g.AddVertex()
	g.AddVertex()
	g.AddVertex()
	_, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2)
	require.NoError(t, err)

	return g
}

func TestMaxTreePathGraph(t *testing.T) {
	g := pathGraph(t)
	w := []float64{3, 1, 2}
	tr, altitude, err := componenttree.MaxTree(g, w)
	require.NoError(t, err)

	// Neither {0} nor {2} ever merges with anything until lambda drops
	// to the global minimum (1): vertex 0 is its own component down to
	// lambda=3, vertex 2 down to lambda=2, and only at lambda=1 does
	// the path connect all three. Expanding the canonized parent
	// relation allocates one node per vertex whose own weight differs
	// from its canonical parent's, so 0 and 2 each get a node at their
	// own altitude before finally attaching to the root.
	require.Equal(t, 6, tr.NumVertices())
	require.Equal(t, 3, tr.NumLeaves())
	require.Equal(t, []float64{3, 1, 2, 3, 2, 1}, altitude)
	root := tr.Root()
	require.Equal(t, 5, root)

	p0, err := tr.Parent(0)
	require.NoError(t, err)
	require.Equal(t, 3, p0)
	p3, err := tr.Parent(3)
	require.NoError(t, err)
	require.Equal(t, root, p3)

	p1, err := tr.Parent(1)
	require.NoError(t, err)
	require.Equal(t, root, p1)

	p2, err := tr.Parent(2)
	require.NoError(t, err)
	require.Equal(t, 4, p2)
	p4, err := tr.Parent(4)
	require.NoError(t, err)
	require.Equal(t, root, p4)
}

func TestMinTreePathGraph(t *testing.T) {
	g := pathGraph(t)
	w := []float64{3, 1, 2}
	tr, altitude, err := componenttree.MinTree(g, w)
	require.NoError(t, err)

	// Min-tree roots at the global maximum instead.
	require.Equal(t, 3, tr.NumLeaves())
	require.Equal(t, altitude[tr.Root()], 3.0)
	require.Equal(t, []float64{3, 1, 2}, altitude[:3])
}

func TestMaxTreeRejectsDisconnectedGraph(t *testing.T) {
	g := graph.NewExplicit()
	g.AddVertex()
	g.AddVertex()
	_, _, err := componenttree.MaxTree(g, []float64{1, 2})
	require.Error(t, err)
}

func TestMaxTreeRejectsWrongWeightLength(t *testing.T) {
	g := pathGraph(t)
	_, _, err := componenttree.MaxTree(g, []float64{1, 2})
	require.Error(t, err)
}

func TestMaxTreeSingleVertex(t *testing.T) {
	g := graph.NewExplicit()
	g.AddVertex()
	tr, altitude, err := componenttree.MaxTree(g, []float64{5})
	require.NoError(t, err)
	require.Equal(t, 2, tr.NumVertices())
	require.Equal(t, 1, tr.NumLeaves())
	require.Equal(t, tree.ComponentTree, tr.Category())
	require.Equal(t, []float64{5, 5}, altitude)
}

func TestMaxTreeFourCycleUniformWeight(t *testing.T) {
	// A 4-cycle with uniform weight collapses to a single internal
	// node directly above all four leaves: every vertex enters the
	// level set simultaneously.
	g := graph.NewExplicit()
	for i := 0; i < 4; i++ {
		g.AddVertex()
	}
	_, _ = g.AddEdge(0, 1)
	_, _ = g.AddEdge(1, 2)
	_, _ = g.AddEdge(2, 3)
	_, _ = g.AddEdge(3, 0)
	w := []float64{1, 1, 1, 1}
	tr, altitude, err := componenttree.MaxTree(g, w)
	require.NoError(t, err)
	require.Equal(t, 5, tr.NumVertices())
	require.Equal(t, 4, tr.NumLeaves())
	root := tr.Root()
	for leaf := 0; leaf < 4; leaf++ {
		p, err := tr.Parent(leaf)
		require.NoError(t, err)
		require.Equal(t, root, p)
	}
	require.Equal(t, 1.0, altitude[root])
}

// grid4x4 builds a 4-adjacency graph over a 4x4 image in row-major
// vertex order.
func grid4x4(t *testing.T) *graph.ExplicitGraph {
	t.Helper()
	const side = 4
	g := graph.NewExplicit()
	for i := 0; i < side*side; i++ {
		g.AddVertex()
	}
	idx := func(row, col int) int { return row*side + col }
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			if col+1 < side {
				_, err := g.AddEdge(idx(row, col), idx(row, col+1))
				require.NoError(t, err)
			}
			if row+1 < side {
				_, err := g.AddEdge(idx(row, col), idx(row+1, col))
				require.NoError(t, err)
			}
		}
	}

	return g
}

func TestMaxTreeWorkedExampleS3(t *testing.T) {
	g := grid4x4(t)
	w := []float64{
		0, 1, 4, 4,
		7, 5, 6, 8,
		2, 3, 4, 1,
		9, 8, 6, 7,
	}
	tr, altitude, err := componenttree.MaxTree(g, w)
	require.NoError(t, err)

	require.Equal(t, 29, tr.NumVertices())
	require.Equal(t, 16, tr.NumLeaves())
	require.Equal(t, []float64{
		0, 1, 4, 4, 7, 5, 6, 8, 2, 3, 4, 1, 9, 8, 6, 7,
		9, 8, 8, 7, 7, 6, 6, 5, 4, 3, 2, 1, 0,
	}, altitude)

	root := tr.Root()
	require.Equal(t, 28, root)
	require.Equal(t, root, tr.NumVertices()-1)

	wantParent := []int{
		28, 27, 24, 24, 20, 23, 22, 18, 26, 25, 24, 27, 16, 17, 21, 19,
		17, 21, 22, 21, 23, 24, 23, 24, 25, 26, 27, 28, 28,
	}
	for v, want := range wantParent {
		p, err := tr.Parent(v)
		require.NoErrorf(t, err, "vertex %d", v)
		require.Equalf(t, want, p, "parent of vertex %d", v)
	}
}
