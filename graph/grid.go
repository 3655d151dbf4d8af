package graph

import (
	"sort"

	"github.com/arbortree/higra/embedding"
)

// RegularGrid is the implicit regular-grid graph variant of spec
// §4.1: a vertex is a linear index over a fixed shape, and adjacency
// is the subset of declared neighbor offsets landing inside the
// shape. It is immutable; AddVertex/AddEdge/RemoveEdge all fail with
// Unsupported.
//
// Grounded on gridgraph.GridGraph's precomputed-offset design
// (gridgraph/gridgraph.go), generalized from 2-D (x,y) to an
// arbitrary-rank embedding.Grid and adding the safe-interior fast
// path spec §4.1 requires for grids >= 64^2.
type RegularGrid struct {
	emb     *embedding.Grid
	offsets [][]int // declaration order is preserved (spec §9 open question)
	deltas  []int   // OffsetStrides(offsets), used inside the safe interior
	lo, hi  []int   // safe interior bounds, one pair per axis

	// edgeOffset[v] is the starting edge id for vertex v's row in the
	// (source, neighbor-index) lexicographic ordering (spec §4.1).
	edgeOffset []int
	numEdges   int
}

// NewRegularGrid builds a RegularGrid over the given shape with the
// given neighbor offset vectors (each of length len(shape)). Returns
// InvalidArgument if shape is empty or any offset's rank mismatches.
func NewRegularGrid(shape []int, offsets [][]int) (*RegularGrid, error) {
	emb, err := embedding.New(shape...)
	if err != nil {
		return nil, errInvalidArgument("NewRegularGrid", err.Error())
	}
	for _, off := range offsets {
		if len(off) != len(shape) {
			return nil, errInvalidArgument("NewRegularGrid", "offset rank mismatch")
		}
	}

	lo, hi := emb.SafeInterior(offsets)
	deltas := emb.OffsetStrides(offsets)

	g := &RegularGrid{emb: emb, offsets: offsets, deltas: deltas, lo: lo, hi: hi}
	g.indexEdges()

	return g, nil
}

// inSafeInterior reports whether coord lies within the precomputed
// safe rectangular sub-region.
func (g *RegularGrid) inSafeInterior(coord []int) bool {
	for i, c := range coord {
		if c < g.lo[i] || c >= g.hi[i] {
			return false
		}
	}

	return true
}

// neighborsOf returns the neighbor linear indices of vertex v, in
// declared offset order, using the stride fast path inside the safe
// interior and per-offset bounds checks outside it (spec §4.1).
func (g *RegularGrid) neighborsOf(v int) []int {
	coord := g.emb.Coordinate(v)
	var out []int
	if g.inSafeInterior(coord) {
		for _, d := range g.deltas {
			out = append(out, v+d)
		}

		return out
	}
	for _, off := range g.offsets {
		nc := make([]int, len(coord))
		ok := true
		for i := range coord {
			nc[i] = coord[i] + off[i]
			if nc[i] < 0 || nc[i] >= g.emb.Shape()[i] {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, g.emb.LinearIndex(nc...))
		}
	}

	return out
}

// indexEdges numbers edges in (source, neighbor-index) lexicographic
// order, counting each undirected pair once via s < neighbor; a zero
// offset (neighbor == s) therefore yields no edge.
func (g *RegularGrid) indexEdges() {
	n := g.emb.Size()
	g.edgeOffset = make([]int, n+1)
	count := 0
	for v := 0; v < n; v++ {
		g.edgeOffset[v] = count
		for _, nb := range g.neighborsOf(v) {
			if v < nb {
				count++
			}
		}
	}
	g.edgeOffset[n] = count
	g.numEdges = count
}

// NumVertices returns the product of the grid shape.
func (g *RegularGrid) NumVertices() int { return g.emb.Size() }

// NumEdges returns the number of distinct (s,t) pairs with s<t.
func (g *RegularGrid) NumEdges() int { return g.numEdges }

// Vertices returns [0, n).
func (g *RegularGrid) Vertices() []int {
	out := make([]int, g.emb.Size())
	for i := range out {
		out[i] = i
	}

	return out
}

// Edges returns every (s,t) pair, sources in ascending linear index
// then offsets in declared order (spec §4.1/§5).
func (g *RegularGrid) Edges() []Edge {
	out := make([]Edge, 0, g.numEdges)
	for v := 0; v < g.emb.Size(); v++ {
		for _, nb := range g.neighborsOf(v) {
			if v < nb {
				out = append(out, Edge{S: v, T: nb})
			}
		}
	}

	return out
}

// EdgeIndices returns [0, numEdges) parallel to Edges().
func (g *RegularGrid) EdgeIndices() []int {
	out := make([]int, g.numEdges)
	for i := range out {
		out[i] = i
	}

	return out
}

// OutEdges returns (v, neighbor) for every neighbor of v in declared
// offset order.
func (g *RegularGrid) OutEdges(v int) ([]Edge, error) {
	if v < 0 || v >= g.emb.Size() {
		return nil, errOutOfRange("RegularGrid.OutEdges", v)
	}
	nbs := g.neighborsOf(v)
	out := make([]Edge, len(nbs))
	for i, nb := range nbs {
		out[i] = Edge{S: v, T: nb}
	}

	return out, nil
}

// InEdges is symmetric with OutEdges (grid adjacency is undirected).
func (g *RegularGrid) InEdges(v int) ([]Edge, error) {
	if v < 0 || v >= g.emb.Size() {
		return nil, errOutOfRange("RegularGrid.InEdges", v)
	}
	nbs := g.neighborsOf(v)
	out := make([]Edge, len(nbs))
	for i, nb := range nbs {
		out[i] = Edge{S: nb, T: v}
	}

	return out, nil
}

// AdjacentVertices returns v's neighbors in declared offset order.
func (g *RegularGrid) AdjacentVertices(v int) ([]int, error) {
	if v < 0 || v >= g.emb.Size() {
		return nil, errOutOfRange("RegularGrid.AdjacentVertices", v)
	}

	return g.neighborsOf(v), nil
}

// Degree returns the number of neighbors of v.
func (g *RegularGrid) Degree(v int) (int, error) {
	nbs, err := g.AdjacentVertices(v)
	if err != nil {
		return 0, err
	}

	return len(nbs), nil
}

// EdgeFromID returns the (s,t) pair for edge id e. O(log n) via binary
// search over edgeOffset followed by a scan of the declared offsets.
func (g *RegularGrid) EdgeFromID(e int) (int, int, error) {
	if e < 0 || e >= g.numEdges {
		return INVALID, INVALID, errOutOfRange("RegularGrid.EdgeFromID", e)
	}
	v := sort.Search(len(g.edgeOffset)-1, func(i int) bool { return g.edgeOffset[i+1] > e }) // #nosec: bounded by len-1
	rank := e - g.edgeOffset[v]
	k := 0
	for _, nb := range g.neighborsOf(v) {
		if v < nb {
			if k == rank {
				return v, nb, nil
			}
			k++
		}
	}

	return INVALID, INVALID, errOutOfRange("RegularGrid.EdgeFromID", e)
}

// AddVertex is unsupported: RegularGrid's shape is fixed at
// construction (spec §4.1 failure policy).
func (g *RegularGrid) AddVertex() (int, error) {
	return INVALID, errUnsupported("RegularGrid.AddVertex", "regular-grid graphs have a fixed shape")
}

// AddEdge is unsupported for the same reason.
func (g *RegularGrid) AddEdge(int, int) (int, error) {
	return INVALID, errUnsupported("RegularGrid.AddEdge", "regular-grid graphs are immutable")
}

// RemoveEdge is unsupported for the same reason.
func (g *RegularGrid) RemoveEdge(int) error {
	return errUnsupported("RegularGrid.RemoveEdge", "regular-grid graphs are immutable")
}

// Shape returns the grid's dimension sizes.
func (g *RegularGrid) Shape() []int { return g.emb.Shape() }

// Embedding exposes the coordinate<->index bijection, used directly
// by the 2-D contour extraction package.
func (g *RegularGrid) Embedding() *embedding.Grid { return g.emb }

var _ Graph = (*RegularGrid)(nil)

// Conn4Offsets returns the four orthogonal 2-D neighbor offsets
// (N, E, S, W) in the declaration order used throughout this module's
// image-processing components.
func Conn4Offsets() [][]int {
	return [][]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
}
