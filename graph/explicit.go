package graph

import "sync"

// incident is one entry of a vertex's incidence list: the edge id and
// the neighbor reached through it.
type incident struct {
	EdgeID   int
	Neighbor int
}

// ExplicitGraph owns an ordered sequence of edges (s,t) with s <= t,
// plus an ordered per-vertex incidence list, exactly as spec §3
// describes. Removing an edge turns its slot into (INVALID, INVALID)
// while preserving every other edge's id (spec §4.1). Parallel edges
// are permitted.
//
// Grounded on core.Graph's mutex-guarded adjacency-list design
// (core/types.go), dropping the directed/multigraph toggles that
// spec's non-goals exclude and switching from string to integer ids.
type ExplicitGraph struct {
	mu        sync.RWMutex
	n         int
	edges     []Edge     // edges[e] == (INVALID, INVALID) once removed
	incidence [][]incident
}

// NewExplicit returns an empty ExplicitGraph with no vertices.
func NewExplicit() *ExplicitGraph {
	return &ExplicitGraph{}
}

// AddVertex appends one new vertex and returns its id.
func (g *ExplicitGraph) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.n
	g.n++
	g.incidence = append(g.incidence, nil)

	return id
}

// AddEdge appends an edge between s and t (stored with S<=T) and
// returns its id. Returns OutOfRange if s or t is not a known vertex.
func (g *ExplicitGraph) AddEdge(s, t int) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if s < 0 || s >= g.n {
		return INVALID, errOutOfRange("ExplicitGraph.AddEdge", s)
	}
	if t < 0 || t >= g.n {
		return INVALID, errOutOfRange("ExplicitGraph.AddEdge", t)
	}
	if s > t {
		s, t = t, s
	}
	id := len(g.edges)
	g.edges = append(g.edges, Edge{S: s, T: t})
	g.incidence[s] = append(g.incidence[s], incident{EdgeID: id, Neighbor: t})
	if s != t {
		g.incidence[t] = append(g.incidence[t], incident{EdgeID: id, Neighbor: s})
	} else {
		// a self-loop contributes a second incidence entry so Degree
		// counts it twice, matching spec §8 property 2 (sum of degrees
		// == 2|E|).
		g.incidence[s] = append(g.incidence[s], incident{EdgeID: id, Neighbor: t})
	}

	return id, nil
}

// RemoveEdge turns edge e's slot into (INVALID, INVALID); e keeps its
// id so NumEdges is unaffected (spec §4.1).
func (g *ExplicitGraph) RemoveEdge(e int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if e < 0 || e >= len(g.edges) {
		return errOutOfRange("ExplicitGraph.RemoveEdge", e)
	}
	old := g.edges[e]
	if old.S == INVALID {
		return nil // already removed
	}
	g.edges[e] = Edge{S: INVALID, T: INVALID}
	g.incidence[old.S] = removeIncident(g.incidence[old.S], e)
	if old.T != old.S {
		g.incidence[old.T] = removeIncident(g.incidence[old.T], e)
	} else {
		g.incidence[old.S] = removeIncident(g.incidence[old.S], e)
	}

	return nil
}

func removeIncident(list []incident, edgeID int) []incident {
	out := list[:0]
	for _, inc := range list {
		if inc.EdgeID != edgeID {
			out = append(out, inc)
		}
	}

	return out
}

// NumVertices returns n.
func (g *ExplicitGraph) NumVertices() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.n
}

// NumEdges returns the number of edge slots, including removed ones.
func (g *ExplicitGraph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Vertices returns [0, n).
func (g *ExplicitGraph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, g.n)
	for i := range out {
		out[i] = i
	}

	return out
}

// Edges returns every (s,t) pair in insertion order, including removed
// slots as (INVALID, INVALID).
func (g *ExplicitGraph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeIndices returns [0, len(edges)) parallel to Edges().
func (g *ExplicitGraph) EdgeIndices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.edges))
	for i := range out {
		out[i] = i
	}

	return out
}

// OutEdges returns (v, neighbor) for every non-removed edge incident
// to v, in incidence-list order.
func (g *ExplicitGraph) OutEdges(v int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= g.n {
		return nil, errOutOfRange("ExplicitGraph.OutEdges", v)
	}
	out := make([]Edge, 0, len(g.incidence[v]))
	for _, inc := range g.incidence[v] {
		out = append(out, Edge{S: v, T: inc.Neighbor})
	}

	return out, nil
}

// InEdges is symmetric with OutEdges for an undirected graph.
func (g *ExplicitGraph) InEdges(v int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= g.n {
		return nil, errOutOfRange("ExplicitGraph.InEdges", v)
	}
	out := make([]Edge, 0, len(g.incidence[v]))
	for _, inc := range g.incidence[v] {
		out = append(out, Edge{S: inc.Neighbor, T: v})
	}

	return out, nil
}

// AdjacentVertices returns v's neighbors in incidence-list order.
func (g *ExplicitGraph) AdjacentVertices(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= g.n {
		return nil, errOutOfRange("ExplicitGraph.AdjacentVertices", v)
	}
	out := make([]int, 0, len(g.incidence[v]))
	for _, inc := range g.incidence[v] {
		out = append(out, inc.Neighbor)
	}

	return out, nil
}

// Degree returns the number of non-removed edges incident to v.
func (g *ExplicitGraph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= g.n {
		return 0, errOutOfRange("ExplicitGraph.Degree", v)
	}

	return len(g.incidence[v]), nil
}

// EdgeFromID returns edge e's (s,t) pair in O(1).
func (g *ExplicitGraph) EdgeFromID(e int) (int, int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if e < 0 || e >= len(g.edges) {
		return INVALID, INVALID, errOutOfRange("ExplicitGraph.EdgeFromID", e)
	}

	return g.edges[e].S, g.edges[e].T, nil
}

var _ Graph = (*ExplicitGraph)(nil)
