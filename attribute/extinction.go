package attribute

import (
	"math"
	"sort"

	"github.com/arbortree/higra/tree"
)

// Extrema returns, per node, whether it is the top of a maximal
// uniform-altitude plateau: every non-leaf strict descendant shares
// n's altitude, and n's own parent does not (the root is never
// uniform-with-parent by convention, since parent(root) == root would
// otherwise trivially satisfy the altitude check).
func Extrema(t *tree.Tree, altitude []float64) ([]bool, error) {
	n := t.NumVertices()
	if len(altitude) != n {
		return nil, errInvalidArgument("attribute.Extrema", "altitude length must equal num vertices")
	}
	uniform := make([]bool, n)
	for v := 0; v < n; v++ {
		uniform[v] = true
	}
	for _, v := range t.LeavesToRoot(false, true) {
		children, err := t.Children(v)
		if err != nil {
			return nil, err
		}
		for _, c := range children {
			if t.IsLeaf(c) {
				continue
			}
			if altitude[c] != altitude[v] || !uniform[c] {
				uniform[v] = false
			}
		}
	}

	out := make([]bool, n)
	for v := 0; v < n; v++ {
		if v == t.Root() {
			out[v] = uniform[v]

			continue
		}
		p, err := t.Parent(v)
		if err != nil {
			return nil, err
		}
		out[v] = uniform[v] && altitude[p] != altitude[v]
	}

	return out, nil
}

// Height returns, for every internal node n, the absolute altitude
// difference between n's parent and the most extreme (min if
// increasing, max otherwise) altitude found among n's non-leaf strict
// descendants — or altitude[n] itself if every child of n is a leaf.
// Leaves are reported as 0.
func Height(t *tree.Tree, altitude []float64, increasing bool) ([]float64, error) {
	n := t.NumVertices()
	if len(altitude) != n {
		return nil, errInvalidArgument("attribute.Height", "altitude length must equal num vertices")
	}
	extreme := make([]float64, n)
	for _, v := range t.LeavesToRoot(false, true) {
		children, err := t.Children(v)
		if err != nil {
			return nil, err
		}
		found := false
		var best float64
		for _, c := range children {
			if t.IsLeaf(c) {
				continue
			}
			for _, cand := range []float64{altitude[c], extreme[c]} {
				if !found || (increasing && cand < best) || (!increasing && cand > best) {
					best = cand
					found = true
				}
			}
		}
		if found {
			extreme[v] = best
		} else {
			extreme[v] = altitude[v]
		}
	}

	out := make([]float64, n)
	for v := 0; v < n; v++ {
		if t.IsLeaf(v) {
			continue
		}
		p, err := t.Parent(v)
		if err != nil {
			return nil, err
		}
		out[v] = abs(altitude[p] - extreme[v])
	}

	return out, nil
}

// ExtinctionValue computes, for an increasing attribute on monotonic
// altitudes, the persistence of every extremum: how far the tree must
// be climbed before a stronger extremum (ranked by attribute, ties
// broken by altitude then node index) absorbs it. Internal nodes
// report the maximum extinction among their contained extrema; leaves
// report the extinction of the extremum they descend from (0 if
// none).
func ExtinctionValue(t *tree.Tree, altitude, attrib []float64) ([]float64, error) {
	n := t.NumVertices()
	if len(altitude) != n || len(attrib) != n {
		return nil, errInvalidArgument("attribute.ExtinctionValue", "altitude/attrib length must equal num vertices")
	}
	extrema, err := Extrema(t, altitude)
	if err != nil {
		return nil, err
	}

	const none = -1
	survivor := make([]int, n)
	extinction := make([]float64, n)
	for v := 0; v < n; v++ {
		survivor[v] = none
	}

	rank := func(a, b int) bool { // a stronger than b
		if attrib[a] != attrib[b] {
			return attrib[a] > attrib[b]
		}
		if altitude[a] != altitude[b] {
			return altitude[a] > altitude[b]
		}

		return a > b
	}

	for _, v := range t.LeavesToRoot(true, true) {
		if extrema[v] {
			survivor[v] = v

			continue
		}
		if t.IsLeaf(v) {
			continue
		}
		children, err := t.Children(v)
		if err != nil {
			return nil, err
		}
		var candidates []int
		for _, c := range children {
			if survivor[c] != none {
				candidates = append(candidates, survivor[c])
			}
		}
		if len(candidates) == 0 {
			continue
		}
		sort.Slice(candidates, func(i, j int) bool { return rank(candidates[i], candidates[j]) })
		winner := candidates[0]
		for _, loser := range candidates[1:] {
			extinction[loser] = abs(altitude[v] - altitude[loser])
		}
		survivor[v] = winner
	}
	if w := survivor[t.Root()]; w != none {
		// the single extremum that survived to the root is never
		// absorbed by a stronger one; its extinction is finalized
		// against the root itself.
		extinction[w] = abs(altitude[t.Root()] - altitude[w])
	}

	belongsTo := make([]int, n)
	for v := range belongsTo {
		belongsTo[v] = none
	}
	root := t.Root()
	if extrema[root] {
		belongsTo[root] = root
	}
	for _, v := range t.RootToLeaves(true, false) {
		p, err := t.Parent(v)
		if err != nil {
			return nil, err
		}
		if extrema[v] {
			belongsTo[v] = v
		} else {
			belongsTo[v] = belongsTo[p]
		}
	}

	maxExt := make([]float64, n)
	for v := range maxExt {
		maxExt[v] = math.Inf(-1)
	}
	for _, v := range t.LeavesToRoot(true, true) {
		if extrema[v] {
			maxExt[v] = extinction[v]
		}
		if t.IsLeaf(v) {
			continue
		}
		children, err := t.Children(v)
		if err != nil {
			return nil, err
		}
		for _, c := range children {
			if maxExt[c] > maxExt[v] {
				maxExt[v] = maxExt[c]
			}
		}
	}

	out := make([]float64, n)
	for v := 0; v < n; v++ {
		if t.IsLeaf(v) {
			if belongsTo[v] != none {
				out[v] = extinction[belongsTo[v]]
			}

			continue
		}
		if maxExt[v] > math.Inf(-1) {
			out[v] = maxExt[v]
		}
	}

	return out, nil
}

// Dynamics is the extinction value of the height attribute.
func Dynamics(t *tree.Tree, altitude []float64, increasing bool) ([]float64, error) {
	height, err := Height(t, altitude, increasing)
	if err != nil {
		return nil, err
	}

	return ExtinctionValue(t, altitude, height)
}
