package ndarray_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arbortree/higra/ndarray"
)

func TestNewAndAtSet(t *testing.T) {
	a, err := ndarray.New[float64](3, 2)
	require.NoError(t, err)
	require.NoError(t, a.Set(4.5, 1, 0))
	v, err := a.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)
}

func TestBadShape(t *testing.T) {
	_, err := ndarray.New[int](0, 3)
	require.ErrorIs(t, err, ndarray.ErrBadShape)
}

func TestOutOfRange(t *testing.T) {
	a, _ := ndarray.New[int](2, 2)
	_, err := a.At(2, 0)
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)
}

func TestRowAliasesBackingStore(t *testing.T) {
	a, _ := ndarray.New[int](3, 4)
	row, err := a.Row(1)
	require.NoError(t, err)
	row[0] = 99
	v, _ := a.At(1, 0)
	require.Equal(t, 99, v)
}

func TestCloneIsIndependent(t *testing.T) {
	a, _ := ndarray.New[int](2, 2)
	_ = a.Set(7, 0, 0)
	b := a.Clone()
	_ = a.Set(8, 0, 0)
	v, _ := b.At(0, 0)
	require.Equal(t, 7, v)
}

func TestVector1D(t *testing.T) {
	v := ndarray.Vector1D([]float64{1, 2, 3})
	require.Equal(t, 3, v.Size())
	x, err := v.At(2)
	require.NoError(t, err)
	require.Equal(t, 3.0, x)
}

func TestCheckLeadingDim(t *testing.T) {
	a, _ := ndarray.New[float64](5, 3)
	require.NoError(t, a.CheckLeadingDim(5))
	require.ErrorIs(t, a.CheckLeadingDim(4), ndarray.ErrLeadingDim)
}
