package attribute_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arbortree/higra/attribute"
	"github.com/arbortree/higra/tree"
)

// sampleTree mirrors accumulate's spec-S1/S2 fixture: leaves 0-4,
// internal 5 (children 0,1), 6 (children 2,3,4), root 7.
func sampleTree(t *testing.T) *tree.Tree {
	t.Helper()
	tr, err := tree.New([]int{5, 5, 6, 6, 6, 7, 7, 7}, tree.ComponentTree)
	require.NoError(t, err)

	return tr
}

func TestArea(t *testing.T) {
	tr := sampleTree(t)
	area, err := attribute.Area(tr, nil)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1, 1, 1, 1, 2, 3, 5}, area)
}

func TestDepth(t *testing.T) {
	tr := sampleTree(t)
	depth, err := attribute.Depth(tr)
	require.NoError(t, err)
	require.Equal(t, []int{2, 2, 2, 2, 2, 1, 1, 0}, depth)
}

func TestChildNumberAndSibling(t *testing.T) {
	tr := sampleTree(t)
	cn, err := attribute.ChildNumber(tr)
	require.NoError(t, err)
	require.Equal(t, 0, cn[0])
	require.Equal(t, 1, cn[1])
	require.Equal(t, -1, cn[tr.Root()])

	sib, err := attribute.Sibling(tr, 1)
	require.NoError(t, err)
	require.Equal(t, 1, sib[0])
	require.Equal(t, 0, sib[1])
	require.Equal(t, tr.Root(), sib[tr.Root()])
}

func TestVolume(t *testing.T) {
	tr := sampleTree(t)
	area, err := attribute.Area(tr, nil)
	require.NoError(t, err)

	altitude := []float64{0, 0, 0, 0, 0, 1, 2, 3}
	volume, err := attribute.Volume(tr, altitude, area)
	require.NoError(t, err)

	// leaves contribute 0, node 5: |1-3|*2=4, node 6: |2-3|*3=3,
	// root: |3-3|*5=0 + sum of children volumes (4+3)=7
	require.Equal(t, 0.0, volume[0])
	require.Equal(t, 4.0, volume[5])
	require.Equal(t, 3.0, volume[6])
	require.Equal(t, 7.0, volume[tr.Root()])
}

func TestExtremaUniformSubtree(t *testing.T) {
	tr := sampleTree(t)
	// node 6's children (2,3,4) are all leaves, so it's trivially
	// uniform; parent 7 has a different altitude, so node 6 is an
	// extremum.
	altitude := []float64{0, 0, 0, 0, 0, 1, 2, 3}
	extrema, err := attribute.Extrema(tr, altitude)
	require.NoError(t, err)
	require.True(t, extrema[6])
	require.True(t, extrema[5])
	require.False(t, extrema[tr.Root()])
}

func TestChildrenPairSumProduct(t *testing.T) {
	tr := sampleTree(t)
	w := []float64{1, 2, 3, 4, 5, 0, 0, 0}
	res, err := attribute.ChildrenPairSumProduct(tr, w)
	require.NoError(t, err)
	// node 5 children {0,1}: 1*2=2
	require.Equal(t, 2.0, res[5])
	// node 6 children {2,3,4}: 3*4+3*5+4*5 = 12+15+20=47
	require.Equal(t, 47.0, res[6])
}

func TestSmallestEnclosingShapeIdentity(t *testing.T) {
	tr := sampleTree(t)
	l, err := tree.NewLCA(tr)
	require.NoError(t, err)
	ses, err := attribute.SmallestEnclosingShape(tr, l)
	require.NoError(t, err)
	for leaf := 0; leaf < tr.NumLeaves(); leaf++ {
		require.Equal(t, leaf, ses[leaf])
	}
	require.Equal(t, tr.Root(), ses[tr.Root()])
}
