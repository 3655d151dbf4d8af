package treefusion

import (
	"github.com/arbortree/higra/attribute"
	"github.com/arbortree/higra/tree"
)

// DepthMap returns, for every leaf shared by trees, its depth in the
// graph of shapes obtained by inclusion-merging every tree's non-leaf
// nodes. Depths are correct only up to a constant additive shift
// (spec §4.6); compare differences, not absolute values.
func DepthMap(trees []*tree.Tree) ([]int, error) {
	k := len(trees)
	if k == 0 {
		return nil, errInvalidArgument("treefusion.DepthMap", "at least one tree is required")
	}
	numLeaves := trees[0].NumLeaves()
	for _, t := range trees {
		if t.NumLeaves() != numLeaves {
			return nil, errInvalidArgument("treefusion.DepthMap", "all trees must share the same number of leaves")
		}
	}

	area := make([][]float64, k)
	lca := make([]*tree.LCA, k)
	for i, t := range trees {
		a, err := attribute.Area(t, nil)
		if err != nil {
			return nil, err
		}
		area[i] = a
		l, err := tree.NewLCA(t)
		if err != nil {
			return nil, err
		}
		lca[i] = l
	}

	// ses[i][j][v] is the index, in tree j, of the smallest shape of
	// tree j enclosing node v of tree i (valid only for i != j).
	ses := make([][][]int, k)
	for i := 0; i < k; i++ {
		ses[i] = make([][]int, k)
		for j := 0; j < k; j++ {
			if i == j {
				continue
			}
			s, err := attribute.SmallestEnclosingShape(trees[i], lca[j])
			if err != nil {
				return nil, err
			}
			ses[i][j] = s
		}
	}

	nodeMap, gosCount := dedupNodes(trees, area, ses, numLeaves)
	succ := buildEdges(trees, area, ses, nodeMap, gosCount)
	topo := topologicalOrder(succ)
	depth := relaxDepths(succ, topo)

	return depth[:numLeaves], nil
}

// dedupNodes allocates one GOS node per distinct shape: leaves share
// the common leaf index space, and a non-root internal node of tree i
// reuses an earlier tree j<i's node whenever its smallest enclosing
// shape in T_j has the same area (same leaf-set).
func dedupNodes(trees []*tree.Tree, area [][]float64, ses [][][]int, numLeaves int) ([][]int, int) {
	k := len(trees)
	nodeMap := make([][]int, k)
	for i, t := range trees {
		nodeMap[i] = make([]int, t.NumVertices())
		for leaf := 0; leaf < numLeaves; leaf++ {
			nodeMap[i][leaf] = leaf
		}
	}

	gosCount := numLeaves
	for i, t := range trees {
		root := t.Root()
		for v := numLeaves; v < t.NumVertices(); v++ {
			if v == root {
				nodeMap[i][v] = gosCount
				gosCount++

				continue
			}
			dup := -1
			for j := 0; j < i; j++ {
				s := ses[i][j][v]
				if area[j][s] == area[i][v] {
					dup = nodeMap[j][s]

					break
				}
			}
			if dup >= 0 {
				nodeMap[i][v] = dup
			} else {
				nodeMap[i][v] = gosCount
				gosCount++
			}
		}
	}

	return nodeMap, gosCount
}

// buildEdges adds, for every non-root node n of every tree, an edge
// from its in-tree parent's GOS node, plus a cross-tree containment
// edge from node_map[j][s] whenever tree j's enclosing shape s
// strictly contains n (different area).
func buildEdges(trees []*tree.Tree, area [][]float64, ses [][][]int, nodeMap [][]int, gosCount int) [][]int {
	succ := make([][]int, gosCount)
	seen := make([]map[int]bool, gosCount)
	for i := range seen {
		seen[i] = make(map[int]bool)
	}
	addEdge := func(from, to int) {
		if from == to || seen[from][to] {
			return
		}
		seen[from][to] = true
		succ[from] = append(succ[from], to)
	}

	for i, t := range trees {
		root := t.Root()
		for v := 0; v < t.NumVertices(); v++ {
			if v == root {
				continue
			}
			p, _ := t.Parent(v)
			addEdge(nodeMap[i][p], nodeMap[i][v])

			for j := range trees {
				if j == i {
					continue
				}
				s := ses[i][j][v]
				if area[j][s] != area[i][v] {
					addEdge(nodeMap[j][s], nodeMap[i][v])
				}
			}
		}
	}

	return succ
}

// topologicalOrder returns GOS node ids with every containing shape
// before every shape it contains, via an iterative post-order DFS
// (explicit stack, no recursion) over succ followed by a reversal.
func topologicalOrder(succ [][]int) []int {
	const (
		unseen = iota
		active
		done
	)
	n := len(succ)
	state := make([]int, n)
	post := make([]int, 0, n)

	type frame struct{ node, idx int }
	for start := 0; start < n; start++ {
		if state[start] != unseen {
			continue
		}
		stack := []frame{{start, 0}}
		state[start] = active
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.idx < len(succ[top.node]) {
				child := succ[top.node][top.idx]
				top.idx++
				if state[child] == unseen {
					state[child] = active
					stack = append(stack, frame{child, 0})
				}

				continue
			}
			state[top.node] = done
			post = append(post, top.node)
			stack = stack[:len(stack)-1]
		}
	}

	topo := make([]int, n)
	for i, v := range post {
		topo[n-1-i] = v
	}

	return topo
}

// relaxDepths runs a longest-path relaxation over succ in topological
// order: every node starts at depth 0, and each edge n->o proposes
// depth[n]+1 for o, processed only once all of n's own predecessors
// have already been finalized.
func relaxDepths(succ [][]int, topo []int) []int {
	depth := make([]int, len(succ))
	for _, n := range topo {
		for _, o := range succ[n] {
			if cand := depth[n] + 1; cand > depth[o] {
				depth[o] = cand
			}
		}
	}

	return depth
}
