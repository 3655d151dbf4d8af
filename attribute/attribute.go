package attribute

import (
	"github.com/arbortree/higra/accumulate"
	"github.com/arbortree/higra/graph"
	"github.com/arbortree/higra/ndarray"
	"github.com/arbortree/higra/tree"
)

func toColumn(data []float64) *ndarray.Array[float64] {
	return ndarray.Vector1D(append([]float64(nil), data...))
}

func fromColumn(a *ndarray.Array[float64]) []float64 {
	out := make([]float64, a.Shape()[0])
	for i := range out {
		row, _ := a.Row(i)
		out[i] = row[0]
	}

	return out
}

// Area returns, for every node, the number of leaves in its subtree,
// weighted by leafArea (nil defaults to 1 per leaf).
func Area(t *tree.Tree, leafArea []float64) ([]float64, error) {
	if leafArea == nil {
		leafArea = make([]float64, t.NumLeaves())
		for i := range leafArea {
			leafArea[i] = 1
		}
	}
	if len(leafArea) != t.NumLeaves() {
		return nil, errInvalidArgument("attribute.Area", "leafArea length must equal num leaves")
	}
	out, err := accumulate.Sequential(t, toColumn(leafArea), accumulate.Sum())
	if err != nil {
		return nil, err
	}

	return fromColumn(out), nil
}

// Volume returns, for every node, |altitude[n]-altitude[parent[n]]| *
// area[n] + the sum of its children's volumes (leaves are 0).
func Volume(t *tree.Tree, altitude, area []float64) ([]float64, error) {
	n := t.NumVertices()
	if len(altitude) != n || len(area) != n {
		return nil, errInvalidArgument("attribute.Volume", "altitude/area length must equal num vertices")
	}
	nodeInput := make([]float64, n)
	for v := 0; v < n; v++ {
		p, err := t.Parent(v)
		if err != nil {
			return nil, err
		}
		nodeInput[v] = abs(altitude[v]-altitude[p]) * area[v]
	}
	leafInput := make([]float64, t.NumLeaves())
	out, err := accumulate.AndCombineSequential(t, toColumn(nodeInput), toColumn(leafInput), accumulate.Sum(), func(acc, node float64) float64 { return acc + node })
	if err != nil {
		return nil, err
	}

	return fromColumn(out), nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}

// Depth returns, for every node, its distance from the root (root is
// 0, each child is its parent's depth + 1).
func Depth(t *tree.Tree) ([]int, error) {
	n := t.NumVertices()
	depth := make([]int, n)
	for _, v := range t.RootToLeaves(true, false) {
		p, err := t.Parent(v)
		if err != nil {
			return nil, err
		}
		depth[v] = depth[p] + 1
	}

	return depth, nil
}

// Sibling returns, for every node n that is the k-th child of its
// parent, the ((k+skip) mod N)-th child of that same parent, where N
// is the parent's number of children; the root maps to itself.
// Negative skip wraps via Go's floored-modulo adjustment.
func Sibling(t *tree.Tree, skip int) ([]int, error) {
	n := t.NumVertices()
	out := make([]int, n)
	childNum, err := ChildNumber(t)
	if err != nil {
		return nil, err
	}
	for v := 0; v < n; v++ {
		if v == t.Root() {
			out[v] = v

			continue
		}
		p, err := t.Parent(v)
		if err != nil {
			return nil, err
		}
		siblings, err := t.Children(p)
		if err != nil {
			return nil, err
		}
		N := len(siblings)
		k := childNum[v]
		idx := ((k+skip)%N + N) % N
		out[v] = siblings[idx]
	}

	return out, nil
}

// ChildNumber returns, for every node, its rank among its parent's
// children (root maps to graph.INVALID).
func ChildNumber(t *tree.Tree) ([]int, error) {
	n := t.NumVertices()
	out := make([]int, n)
	for v := 0; v < n; v++ {
		if v == t.Root() {
			out[v] = graph.INVALID

			continue
		}
		p, err := t.Parent(v)
		if err != nil {
			return nil, err
		}
		siblings, err := t.Children(p)
		if err != nil {
			return nil, err
		}
		rank := graph.INVALID
		for i, c := range siblings {
			if c == v {
				rank = i

				break
			}
		}
		out[v] = rank
	}

	return out, nil
}

// ChildrenPairSumProduct returns, for every node n, the sum over
// unordered pairs of n's children of the product of their weights:
// Σ_{i<j} w[child(i,n)]·w[child(j,n)]. Used by the dendrogram purity
// package to turn per-class leaf counts into pairwise-same-class
// counts.
func ChildrenPairSumProduct(t *tree.Tree, w []float64) ([]float64, error) {
	if len(w) != t.NumVertices() {
		return nil, errInvalidArgument("attribute.ChildrenPairSumProduct", "w length must equal num vertices")
	}
	out := make([]float64, t.NumVertices())
	for v := 0; v < t.NumVertices(); v++ {
		children, err := t.Children(v)
		if err != nil {
			return nil, err
		}
		var sum, total float64
		for _, c := range children {
			sum += w[c] * total
			total += w[c]
		}
		out[v] = sum
	}

	return out, nil
}

// SmallestEnclosingShape returns, for each node of t1, the index in t2
// of the smallest node of t2 whose leaf set contains n's leaf set,
// using lca2 (t2's LCA preprocessing) to merge candidates bottom-up.
// t1 and t2 must share the same leaves (same leaf index space).
func SmallestEnclosingShape(t1 *tree.Tree, lca2 *tree.LCA) ([]int, error) {
	n := t1.NumVertices()
	out := make([]int, n)
	for i := range out {
		out[i] = graph.INVALID
	}
	for leaf := 0; leaf < t1.NumLeaves(); leaf++ {
		out[leaf] = leaf
	}
	for _, v := range t1.LeavesToRoot(false, true) {
		children, err := t1.Children(v)
		if err != nil {
			return nil, err
		}
		for _, c := range children {
			if out[c] == graph.INVALID {
				continue
			}
			if out[v] == graph.INVALID {
				out[v] = out[c]

				continue
			}
			merged, err := lca2.Query(out[v], out[c])
			if err != nil {
				return nil, err
			}
			out[v] = merged
		}
	}

	return out, nil
}

// PerimeterLength returns, for every node of a component tree, the
// perimeter of the region it represents: leaves start at their base
// graph vertex perimeter; each bottom-up merge subtracts twice the
// length of every base-graph edge that newly becomes internal to the
// merged region. Refuses partition trees.
func PerimeterLength(t *tree.Tree, g graph.Graph, vertexPerimeter []float64, edgeLength []float64) ([]float64, error) {
	if t.Category() != tree.ComponentTree {
		return nil, errUnsupported("attribute.PerimeterLength", "perimeter length is only defined on component trees")
	}
	nLeaves := t.NumLeaves()
	if len(vertexPerimeter) != nLeaves {
		return nil, errInvalidArgument("attribute.PerimeterLength", "vertexPerimeter length must equal num leaves")
	}

	out := make([]float64, t.NumVertices())
	// visitedAt[v] is the tree node at which base-graph vertex v first
	// became part of the region under construction.
	visitedAt := make([]int, nLeaves)
	for i := range visitedAt {
		visitedAt[i] = graph.INVALID
	}

	for leaf := 0; leaf < nLeaves; leaf++ {
		out[leaf] = vertexPerimeter[leaf]
	}

	// region[n] accumulates the base vertices merged at or below n, so
	// that once the subtree at n is fully visited we know which base
	// vertices are "already visited" neighbors.
	region := make([][]int, t.NumVertices())
	for leaf := 0; leaf < nLeaves; leaf++ {
		region[leaf] = []int{leaf}
		visitedAt[leaf] = leaf
	}

	for _, v := range t.LeavesToRoot(false, true) {
		children, err := t.Children(v)
		if err != nil {
			return nil, err
		}
		var sum float64
		var merged []int
		for _, c := range children {
			sum += out[c]
			merged = append(merged, region[c]...)
		}
		for _, c := range children {
			if !t.IsLeaf(c) {
				continue
			}
			outEdges, err := g.OutEdges(c)
			if err != nil {
				return nil, err
			}
			for _, e := range outEdges {
				if e.T < nLeaves && visitedAt[e.T] != graph.INVALID && visitedAt[e.T] != c {
					idx, err := edgeIndexBetween(g, c, e.T)
					if err != nil {
						return nil, err
					}
					sum -= 2 * edgeLength[idx]
				}
			}
		}
		out[v] = sum
		region[v] = merged
		for _, b := range merged {
			visitedAt[b] = v
		}
	}

	return out, nil
}

func edgeIndexBetween(g graph.Graph, u, v int) (int, error) {
	for _, id := range g.EdgeIndices() {
		s, t, err := g.EdgeFromID(id)
		if err != nil {
			return graph.INVALID, err
		}
		if (s == u && t == v) || (s == v && t == u) {
			return id, nil
		}
	}

	return graph.INVALID, errInvalidArgument("attribute.PerimeterLength", "no edge between adjacent base vertices")
}
