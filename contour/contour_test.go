package contour_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arbortree/higra/contour"
	"github.com/arbortree/higra/graph"
)

// grid2x2 builds a 2x2 regular grid (4 vertices, 4 edges: top-horizontal,
// left-vertical, right-vertical, bottom-horizontal in that id order —
// edges are numbered by source vertex, then by Conn4Offsets' order).
func grid2x2(t *testing.T) *graph.RegularGrid {
	t.Helper()
	g, err := graph.NewRegularGrid([]int{2, 2}, graph.Conn4Offsets())
	require.NoError(t, err)

	return g
}

func TestFitSingleHorizontalCutLine(t *testing.T) {
	g := grid2x2(t)
	// weights: [top-horizontal, left-vertical, right-vertical, bottom-horizontal]
	weights := []float64{0, 1, 1, 0}

	c, err := contour.Fit(g, weights)
	require.NoError(t, err)
	require.Len(t, c.Polylines, 1)
	require.Len(t, c.Polylines[0].Segments, 1)

	elems := c.Polylines[0].Segments[0].Elements
	require.Equal(t, []contour.ContourElement{
		{EdgeID: 1, Y: 1, X: 0.5},
		{EdgeID: 2, Y: 1, X: 1.5},
	}, elems)
}

func TestFitRejectsWrongWeightLength(t *testing.T) {
	g := grid2x2(t)
	_, err := contour.Fit(g, []float64{1, 2})
	require.Error(t, err)
}

func TestFitRejectsNonRank2Shape(t *testing.T) {
	g, err := graph.NewRegularGrid([]int{2, 2, 2}, [][]int{{-1, 0, 0}, {1, 0, 0}})
	require.NoError(t, err)
	_, err = contour.Fit(g, make([]float64, g.NumEdges()))
	require.Error(t, err)
}

func TestFitNoCutProducesNoPolylines(t *testing.T) {
	g := grid2x2(t)
	c, err := contour.Fit(g, []float64{0, 0, 0, 0})
	require.NoError(t, err)
	require.Empty(t, c.Polylines)
}

func TestSubdivideVerbatimBelowMinSize(t *testing.T) {
	seg := contour.ContourSegment{Elements: []contour.ContourElement{
		{EdgeID: 0, Y: 0, X: 0},
		{EdgeID: 1, Y: 10, X: 0},
		{EdgeID: 2, Y: 1, X: 1},
	}}
	c := &contour.Contour{Polylines: []contour.Polyline{{Segments: []contour.ContourSegment{seg}}}}

	out := c.Subdivide(0.05, false, 2)
	require.Len(t, out.Polylines[0].Segments, 1)
	require.Equal(t, seg.Elements, out.Polylines[0].Segments[0].Elements)
}

func TestSubdivideSplitsOnDeviatingElement(t *testing.T) {
	// Straight line from (0,0) to (0,10) except the middle element
	// jumps far off the line: RDP must split there.
	seg := contour.ContourSegment{Elements: []contour.ContourElement{
		{EdgeID: 0, Y: 0, X: 0},
		{EdgeID: 1, Y: 0, X: 5},
		{EdgeID: 2, Y: 9, X: 5},
		{EdgeID: 3, Y: 0, X: 10},
	}}
	c := &contour.Contour{Polylines: []contour.Polyline{{Segments: []contour.ContourSegment{seg}}}}

	out := c.Subdivide(1.0, false, 0)
	// p1 deviates from the p0-p2 chord enough to force a split there too,
	// so the two split points (indices 1 and 2) collapse into a single
	// boundary at index 2.
	require.Len(t, out.Polylines[0].Segments, 2)
	require.Equal(t, []contour.ContourElement{{EdgeID: 0, Y: 0, X: 0}, {EdgeID: 1, Y: 0, X: 5}}, out.Polylines[0].Segments[0].Elements)
	require.Equal(t, []contour.ContourElement{{EdgeID: 2, Y: 9, X: 5}, {EdgeID: 3, Y: 0, X: 10}}, out.Polylines[0].Segments[1].Elements)
}

func TestSubdivideColinearStaysWhole(t *testing.T) {
	seg := contour.ContourSegment{Elements: []contour.ContourElement{
		{EdgeID: 0, Y: 0, X: 0},
		{EdgeID: 1, Y: 0, X: 5},
		{EdgeID: 2, Y: 0, X: 10},
	}}
	c := &contour.Contour{Polylines: []contour.Polyline{{Segments: []contour.ContourSegment{seg}}}}

	out := c.Subdivide(0.5, false, 0)
	require.Len(t, out.Polylines[0].Segments, 1)
}

func TestSubdivideIsIdempotent(t *testing.T) {
	seg := contour.ContourSegment{Elements: []contour.ContourElement{
		{EdgeID: 0, Y: 0, X: 0},
		{EdgeID: 1, Y: 0, X: 5},
		{EdgeID: 2, Y: 9, X: 5},
		{EdgeID: 3, Y: 0, X: 10},
	}}
	c := &contour.Contour{Polylines: []contour.Polyline{{Segments: []contour.ContourSegment{seg}}}}

	once := c.Subdivide(1.0, false, 0)
	twice := once.Subdivide(1.0, false, 0)
	require.Equal(t, once, twice)
}
