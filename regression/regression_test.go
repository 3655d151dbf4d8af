package regression_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arbortree/higra/regression"
	"github.com/arbortree/higra/tree"
)

// s4Tree mirrors spec scenario S4: leaves 0-4, node5={0,1}, node6={2,3},
// root7={4,5,6}.
func s4Tree(t *testing.T) *tree.Tree {
	t.Helper()
	tr, err := tree.New([]int{5, 5, 6, 6, 7, 7, 7, 7}, tree.PartitionTree)
	require.NoError(t, err)

	return tr
}

func TestLeastSquaresScenarioS4Uniform(t *testing.T) {
	tr := s4Tree(t)
	altitude := []float64{13, 14, 6, 8, 7, 11, 5, 10}
	out, err := regression.Regress(tr, regression.LeastSquares, altitude, nil)
	require.NoError(t, err)
	require.Equal(t, []float64{12, 12, 6, 6.5, 7, 12, 6.5, 12}, out)
}

func TestLeastSquaresScenarioS4Weighted(t *testing.T) {
	tr := s4Tree(t)
	altitude := []float64{13, 14, 6, 8, 7, 11, 5, 10}
	weights := []float64{1, 1, 1, 1, 1, 1, 2, 1}
	out, err := regression.Regress(tr, regression.LeastSquares, altitude, weights)
	require.NoError(t, err)
	require.Equal(t, []float64{12, 12, 6, 6, 7, 12, 6, 12}, out)
}

func TestLeastSquaresOutputIsMonotonic(t *testing.T) {
	tr := s4Tree(t)
	altitude := []float64{13, 14, 6, 8, 7, 11, 5, 10}
	out, err := regression.Regress(tr, regression.LeastSquares, altitude, nil)
	require.NoError(t, err)
	for v := 0; v < tr.NumVertices(); v++ {
		if v == tr.Root() {
			continue
		}
		p, err := tr.Parent(v)
		require.NoError(t, err)
		require.LessOrEqual(t, out[v], out[p])
	}
}

func TestMaxModeIgnoresWeights(t *testing.T) {
	tr := s4Tree(t)
	altitude := []float64{13, 14, 6, 8, 7, 11, 5, 10}
	out, err := regression.Regress(tr, regression.Max, altitude, []float64{1, 1, 1, 1, 1, 1, 1, 1})
	require.NoError(t, err)
	// node5 = max(11,13,14)=14, node6=max(5,6,8)=8, root=max(10,7,14,8)=14.
	require.Equal(t, 14.0, out[5])
	require.Equal(t, 8.0, out[6])
	require.Equal(t, 14.0, out[tr.Root()])
}

func TestMinModeTopDown(t *testing.T) {
	tr := s4Tree(t)
	altitude := []float64{13, 14, 6, 8, 7, 11, 5, 10}
	out, err := regression.Regress(tr, regression.Min, altitude, nil)
	require.NoError(t, err)
	// root keeps its own altitude 10; node5=min(10,11)=10; leaf0=min(10,13)=10.
	require.Equal(t, 10.0, out[tr.Root()])
	require.Equal(t, 10.0, out[5])
	require.Equal(t, 10.0, out[0])
	// node6=min(10,5)=5; leaf2=min(5,6)=5; leaf3=min(5,8)=5.
	require.Equal(t, 5.0, out[6])
	require.Equal(t, 5.0, out[2])
	require.Equal(t, 5.0, out[3])
}

func TestRegressRejectsWrongAltitudeLength(t *testing.T) {
	tr := s4Tree(t)
	_, err := regression.Regress(tr, regression.LeastSquares, []float64{1, 2}, nil)
	require.Error(t, err)
}
