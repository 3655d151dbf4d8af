package higraerr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arbortree/higra/higraerr"
)

func TestNewAndKindOf(t *testing.T) {
	err := higraerr.New(higraerr.OutOfRange, "graph.Degree", "vertex 7 out of range")
	kind, ok := higraerr.KindOf(err)
	require.True(t, ok)
	require.Equal(t, higraerr.OutOfRange, kind)
	require.Contains(t, err.Error(), "out of range")
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := higraerr.Wrap(higraerr.Unsupported, "graph.AddEdge", cause)
	require.ErrorIs(t, err, cause)
}

func TestIsComparesKind(t *testing.T) {
	a := higraerr.New(higraerr.InvalidArgument, "tree.New", "bad parents")
	b := higraerr.New(higraerr.InvalidArgument, "tree.New", "different message")
	require.True(t, a.Is(b))

	c := higraerr.New(higraerr.OutOfRange, "tree.New", "bad parents")
	require.False(t, a.Is(c))
}
