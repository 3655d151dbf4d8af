package componenttree

import (
	"sort"

	"github.com/arbortree/higra/graph"
	"github.com/arbortree/higra/tree"
	"github.com/arbortree/higra/unionfind"
)

// invalidNode marks an expand-stage node slot with no id assigned yet.
const invalidNode = -1

// MaxTree builds the max-tree of g for vertex weights w: a node-
// weighted tree whose leaves are g's vertices and whose internal
// nodes are the connected components of {v : w[v] >= lambda}, with
// altitude[n] equal to the threshold lambda at which the component
// represented by n first appears. g must be connected.
func MaxTree(g graph.Graph, w []float64) (*tree.Tree, []float64, error) {
	return build(g, w, "componenttree.MaxTree")
}

// MinTree builds the min-tree of g for vertex weights w: the
// connected components of {v : w[v] <= lambda}. It is computed by
// negating w, building a max-tree, and negating the resulting
// altitudes back — the same trick
// original_source/include/higra/hierarchy/component_tree.hpp uses to
// share one tree_from_sorted_vertices between component_tree_max_tree
// (ascending stable sort) and component_tree_min_tree (descending
// stable sort): negating w turns one sort order into the other, so a
// single ascending-sort build() serves both directions exactly.
func MinTree(g graph.Graph, w []float64) (*tree.Tree, []float64, error) {
	neg := make([]float64, len(w))
	for i, v := range w {
		neg[i] = -v
	}
	t, altitude, err := build(g, neg, "componenttree.MinTree")
	if err != nil {
		return nil, nil, err
	}
	for i := range altitude {
		altitude[i] = -altitude[i]
	}

	return t, altitude, nil
}

// build runs the three-stage max-tree pipeline of spec §4.5, ported
// from component_tree.hpp's pre_tree_construction, canonize_tree and
// expand_canonized_parent_relation — all three driven by the same
// ascending-by-weight stable order array, exactly as the reference
// drives them from its single sorted_vertex_indices.
func build(g graph.Graph, w []float64, op string) (*tree.Tree, []float64, error) {
	n := g.NumVertices()
	if len(w) != n {
		return nil, nil, errInvalidArgument(op, "weight length must equal num vertices")
	}
	if n == 0 {
		return nil, nil, errInvalidArgument(op, "graph must have at least one vertex")
	}

	// Stage 1: order vertex ids by weight ascending, stable
	// (component_tree_max_tree's stable_arg_sort with no comparator;
	// MinTree gets the reference's descending order for free, since it
	// calls build with negated weights).
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return w[order[i]] < w[order[j]] })

	// Stage 2: pre-tree construction. Walk order from its highest
	// (last) position down to its lowest (first) — highest weight
	// first — so a vertex always becomes the parent of any
	// already-processed neighbor's component, building superlevel-set
	// components top-down; the pre-tree root ends up being the
	// globally lowest-weight vertex, matching the threshold at which
	// {v : w[v] >= lambda} first spans the whole graph.
	parent := make([]int, n)
	for v := range parent {
		parent[v] = v
	}
	representing := make([]int, n)
	for i := range representing {
		representing[i] = graph.INVALID
	}
	processed := make([]bool, n)
	uf := unionfind.New(n)

	for i := n - 1; i >= 0; i-- {
		v := order[i]
		processed[v] = true
		representing[uf.Find(v)] = v
		neighbors, err := g.AdjacentVertices(v)
		if err != nil {
			return nil, nil, err
		}
		for _, nb := range neighbors {
			if !processed[nb] {
				continue
			}
			cv, cn := uf.Find(v), uf.Find(nb)
			if cv == cn {
				continue
			}
			parent[representing[cn]] = v
			newRoot := uf.Union(cv, cn)
			representing[newRoot] = v
		}
	}

	// A vertex never absorbed by a later merge keeps parent[v] == v;
	// exactly one must remain (the pre-tree root) for a connected
	// graph.
	pretreeRoot := graph.INVALID
	for v := 0; v < n; v++ {
		if parent[v] == v {
			if pretreeRoot != graph.INVALID {
				return nil, nil, errInvalidArgument(op, "graph must be connected")
			}
			pretreeRoot = v
		}
	}

	// Stage 3: canonize (path-compress same-weight chains). Walk order
	// forward; for a root, parent[root] == root makes the weight
	// comparison trivially true and the reassignment a harmless no-op,
	// so no special case is needed.
	for _, e := range order {
		par := parent[e]
		if w[parent[par]] == w[par] {
			parent[e] = parent[par]
		}
	}

	// Stage 4: expand the canonized parent relation into a regular
	// tree, one fresh internal node per vertex whose own weight
	// differs from its canonical parent's (not merely one per
	// distinct parent target — that undercounts altitude levels).
	// First pass walks order from highest weight to lowest, allocating
	// node ids as new altitude levels are first encountered; the
	// second pass wires each newly allocated node's own parent link,
	// since a node's canonical ancestor may not have its id assigned
	// yet at allocation time.
	newParent := make([]int, n, 2*n)
	for i := range newParent {
		newParent[i] = invalidNode
	}
	altitude := make([]float64, n, 2*n)
	copy(altitude, w)

	nbe := n
	for j := n - 1; j >= 0; j-- {
		i := order[j]
		par := i
		if w[i] == w[parent[i]] {
			par = parent[i]
		}
		if newParent[par] == invalidNode {
			newParent = append(newParent, nbe-1)
			newParent[par] = nbe
			nbe++
			altitude = append(altitude, w[par])
		}
		newParent[i] = newParent[par]
	}

	for j := n - 1; j >= 0; j-- {
		i := order[j]
		if w[i] != w[parent[i]] {
			ppar := parent[i]
			newParent[newParent[i]] = newParent[ppar]
		}
	}
	newParent[len(newParent)-1] = len(newParent) - 1

	t, err := tree.New(newParent, tree.ComponentTree)
	if err != nil {
		return nil, nil, err
	}

	return t, altitude, nil
}
