package bipartite

import (
	"github.com/arbortree/higra/graph"
	"github.com/arbortree/higra/unionfind"
)

const unvisited = -1

// IsBipartiteDFS 2-colors g with a depth-first search (spec §4.9): the
// first vertex of each component gets color 0, every neighbor gets the
// opposite color, and a neighbor already colored the same as its
// source is an odd cycle. Returns (false, nil) — not an error — when g
// is not bipartite.
func IsBipartiteDFS(g graph.Graph) (bool, []int, error) {
	n := g.NumVertices()
	color := make([]int, n)
	for i := range color {
		color[i] = unvisited
	}

	for _, root := range g.Vertices() {
		if color[root] != unvisited {
			continue
		}
		color[root] = 0
		stack := []int{root}
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			neighbors, err := g.AdjacentVertices(v)
			if err != nil {
				return false, nil, err
			}
			for _, nb := range neighbors {
				if color[nb] == unvisited {
					color[nb] = 1 - color[v]
					stack = append(stack, nb)
				} else if color[nb] == color[v] {
					return false, nil, nil
				}
			}
		}
	}

	return true, color, nil
}

// IsBipartiteUnionFind 2-colors g with the Union-Find approach (spec
// §4.9): each edge either discovers a fresh cross-color link or merges
// two already-discovered links, failing the moment an edge would join
// a component to itself (an odd cycle). Non-deterministic in which
// side of each component ends up colored 0 versus 1, as spec §5 notes
// for Union-Find colorings generally.
func IsBipartiteUnionFind(g graph.Graph) (bool, []int, error) {
	n := g.NumVertices()
	uf := unionfind.New(n)
	partner := make([]int, n)
	for i := range partner {
		partner[i] = graph.INVALID
	}
	color := make([]int, n)

	for _, e := range g.Edges() {
		s, t := e.S, e.T
		cs := uf.Find(s)
		ct := uf.Find(t)
		if cs == ct {
			return false, nil, nil
		}

		if partner[s] == graph.INVALID {
			partner[s] = ct
		} else {
			ct = uf.Union(uf.Find(partner[s]), ct)
		}
		if partner[t] == graph.INVALID {
			partner[t] = cs
		} else {
			cs = uf.Union(uf.Find(partner[t]), cs)
		}
		color[cs] = 0
		color[ct] = 1
	}

	out := make([]int, n)
	for v := 0; v < n; v++ {
		out[v] = color[uf.Find(v)]
	}

	return true, out, nil
}
