package tree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arbortree/higra/higraerr"
	"github.com/arbortree/higra/tree"
)

// buildSample returns the 7-vertex binary tree:
//
//	     6
//	   /   \
//	  4     5
//	 / \   / \
//	0   1 2   3
func buildSample(t *testing.T) *tree.Tree {
	t.Helper()
	tr, err := tree.New([]int{4, 4, 5, 5, 6, 6, 6}, tree.ComponentTree)
	require.NoError(t, err)

	return tr
}

func TestNewRejectsBadRoot(t *testing.T) {
	_, err := tree.New([]int{1, 0}, tree.ComponentTree)
	require.Error(t, err)
	kind, ok := higraerr.KindOf(err)
	require.True(t, ok)
	require.Equal(t, higraerr.InvalidArgument, kind)
}

func TestNewRejectsNonMonotonic(t *testing.T) {
	_, err := tree.New([]int{2, 0, 2}, tree.ComponentTree)
	require.Error(t, err)
}

func TestNewRejectsNonPrefixLeaves(t *testing.T) {
	// vertex 3 has no children of its own yet sits past the leaf prefix
	// implied by vertex 2 already having one (vertex 0).
	_, err := tree.New([]int{2, 4, 4, 4, 4}, tree.ComponentTree)
	require.Error(t, err)
}

func TestNewSingleNode(t *testing.T) {
	tr, err := tree.New([]int{0}, tree.ComponentTree)
	require.NoError(t, err)
	require.Equal(t, 0, tr.Root())
	require.Equal(t, 1, tr.NumLeaves())
	require.Equal(t, 0, tr.NumEdges())
}

func TestTreeBasics(t *testing.T) {
	tr := buildSample(t)
	require.Equal(t, 7, tr.NumVertices())
	require.Equal(t, 6, tr.Root())
	require.Equal(t, 4, tr.NumLeaves())
	require.Equal(t, 6, tr.NumEdges())

	for v := 0; v < 4; v++ {
		require.True(t, tr.IsLeaf(v))
	}
	require.False(t, tr.IsLeaf(4))
	require.False(t, tr.IsLeaf(6))

	p, err := tr.Parent(0)
	require.NoError(t, err)
	require.Equal(t, 4, p)

	children, err := tr.Children(4)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, children)

	n, err := tr.NumChildren(6)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	c, err := tr.Child(1, 6)
	require.NoError(t, err)
	require.Equal(t, 5, c)
}

func TestTreeOutOfRange(t *testing.T) {
	tr := buildSample(t)
	_, err := tr.Parent(99)
	require.Error(t, err)
	kind, ok := higraerr.KindOf(err)
	require.True(t, ok)
	require.Equal(t, higraerr.OutOfRange, kind)
}

func TestLeavesToRoot(t *testing.T) {
	tr := buildSample(t)
	all := tr.LeavesToRoot(true, true)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, all)

	internalOnly := tr.LeavesToRoot(false, true)
	require.Equal(t, []int{4, 5, 6}, internalOnly)

	noRoot := tr.LeavesToRoot(true, false)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, noRoot)
}

func TestRootToLeaves(t *testing.T) {
	tr := buildSample(t)
	all := tr.RootToLeaves(true, true)
	require.Equal(t, []int{6, 5, 4, 3, 2, 1, 0}, all)
}

func TestLeaves(t *testing.T) {
	tr := buildSample(t)
	require.Equal(t, []int{0, 1, 2, 3}, tr.Leaves())
}

func TestTreeAsGraph(t *testing.T) {
	tr := buildSample(t)
	require.Equal(t, 7, tr.NumVertices())
	require.Equal(t, 6, tr.NumEdges())

	total := 0
	for _, v := range tr.Vertices() {
		d, err := tr.Degree(v)
		require.NoError(t, err)
		total += d
	}
	require.Equal(t, 2*tr.NumEdges(), total)

	s, p, err := tr.EdgeFromID(0)
	require.NoError(t, err)
	require.Equal(t, 0, s)
	require.Equal(t, 4, p)
}
