package tree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arbortree/higra/tree"
)

func TestLCAUniversalInvariants(t *testing.T) {
	tr := buildSample(t)
	l, err := tree.NewLCA(tr)
	require.NoError(t, err)

	for v := 0; v < tr.NumVertices(); v++ {
		got, err := l.Query(v, v)
		require.NoError(t, err)
		require.Equal(t, v, got)

		got, err = l.Query(v, tr.Root())
		require.NoError(t, err)
		require.Equal(t, tr.Root(), got)
	}

	for u := 0; u < tr.NumVertices(); u++ {
		for v := 0; v < tr.NumVertices(); v++ {
			a, err := l.Query(u, v)
			require.NoError(t, err)
			b, err := l.Query(v, u)
			require.NoError(t, err)
			require.Equal(t, a, b)
		}
	}
}

func TestLCAKnownAncestors(t *testing.T) {
	tr := buildSample(t)
	l, err := tree.NewLCA(tr)
	require.NoError(t, err)

	cases := []struct {
		u, v, want int
	}{
		{0, 1, 4},
		{2, 3, 5},
		{0, 2, 6},
		{0, 4, 4},
		{1, 5, 6},
	}
	for _, c := range cases {
		got, err := l.Query(c.u, c.v)
		require.NoError(t, err)
		require.Equal(t, c.want, got)
	}
}

func TestLCADepth(t *testing.T) {
	tr := buildSample(t)
	l, err := tree.NewLCA(tr)
	require.NoError(t, err)

	d, err := l.Depth(tr.Root())
	require.NoError(t, err)
	require.Equal(t, 0, d)

	d, err = l.Depth(0)
	require.NoError(t, err)
	require.Equal(t, 2, d)
}

func TestLCABatchQuery(t *testing.T) {
	tr := buildSample(t)
	l, err := tree.NewLCA(tr)
	require.NoError(t, err)

	got, err := l.BatchQuery([][2]int{{0, 1}, {2, 3}, {0, 3}})
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6}, got)
}

func TestLCAOutOfRange(t *testing.T) {
	tr := buildSample(t)
	l, err := tree.NewLCA(tr)
	require.NoError(t, err)
	_, err = l.Query(-1, 0)
	require.Error(t, err)
}
