package tree

import "github.com/arbortree/higra/graph"

// Vertices returns [0, n).
func (t *Tree) Vertices() []int {
	out := make([]int, len(t.parents))
	for i := range out {
		out[i] = i
	}

	return out
}

// Edges returns (v, parent(v)) for every non-root v, ascending (spec
// §4.1). Edge id v and vertex id v coincide: there is exactly one
// edge per non-root vertex.
func (t *Tree) Edges() []graph.Edge {
	out := make([]graph.Edge, 0, t.NumEdges())
	for v := 0; v < len(t.parents)-1; v++ {
		out = append(out, graph.Edge{S: v, T: t.parents[v]})
	}

	return out
}

// EdgeIndices returns [0, n-1).
func (t *Tree) EdgeIndices() []int {
	out := make([]int, t.NumEdges())
	for i := range out {
		out[i] = i
	}

	return out
}

// OutEdges returns v's child edges followed by its parent edge (if v
// is not the root).
func (t *Tree) OutEdges(v int) ([]graph.Edge, error) {
	children, err := t.Children(v)
	if err != nil {
		return nil, err
	}
	out := make([]graph.Edge, 0, len(children)+1)
	for _, c := range children {
		out = append(out, graph.Edge{S: v, T: c})
	}
	if v != t.Root() {
		out = append(out, graph.Edge{S: v, T: t.parents[v]})
	}

	return out, nil
}

// InEdges is symmetric with OutEdges; tree edges are undirected.
func (t *Tree) InEdges(v int) ([]graph.Edge, error) {
	out, err := t.OutEdges(v)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].S, out[i].T = out[i].T, out[i].S
	}

	return out, nil
}

// AdjacentVertices returns v's children followed by its parent (if v
// is not the root).
func (t *Tree) AdjacentVertices(v int) ([]int, error) {
	children, err := t.Children(v)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(children)+1)
	out = append(out, children...)
	if v != t.Root() {
		out = append(out, t.parents[v])
	}

	return out, nil
}

// Degree returns len(AdjacentVertices(v)).
func (t *Tree) Degree(v int) (int, error) {
	adj, err := t.AdjacentVertices(v)
	if err != nil {
		return 0, err
	}

	return len(adj), nil
}

// EdgeFromID returns (e, parent(e)) for e in [0, n-1).
func (t *Tree) EdgeFromID(e int) (int, int, error) {
	if e < 0 || e >= t.NumEdges() {
		return graph.INVALID, graph.INVALID, errOutOfRange("Tree.EdgeFromID", e)
	}

	return e, t.parents[e], nil
}

var _ graph.Graph = (*Tree)(nil)
