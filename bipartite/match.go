package bipartite

import (
	"math"

	"github.com/arbortree/higra/graph"
)

type arc struct {
	edgeID int
	right  int // 0-based index within the right half
	cost   float64
}

// MinWeightPerfectMatching finds a minimum-weight perfect matching on
// a balanced bipartite graph (spec §4.9): g's vertices 0..n/2-1 are the
// left side, n/2..n-1 the right side, and every edge must run from the
// former to the latter. weights is parallel to g.EdgeIndices() and
// must hold integer values. A perfect matching must exist — the caller
// carries that obligation (spec's NonTerminating failure kind) — this
// only pre-checks the case where some left vertex has no incident
// edge at all, which can never be completed.
//
// Returns the edge id matched to each left vertex, indexed by left
// vertex number.
func MinWeightPerfectMatching(g graph.Graph, weights []int) ([]int, error) {
	const op = "bipartite.MinWeightPerfectMatching"

	n := g.NumVertices()
	if len(weights) != g.NumEdges() {
		return nil, errInvalidArgument(op, "weights length must equal num edges")
	}
	if n%2 != 0 {
		return nil, errInvalidArgument(op, "number of vertices must be even")
	}
	half := n / 2
	if half == 0 {
		return []int{}, nil
	}

	adj := make([][]arc, half)
	maxAbs := 1.0
	for id, e := range g.Edges() {
		if e.S >= half || e.T < half {
			return nil, errInvalidArgument(op, "every edge must run from the left half to the right half")
		}
		w := float64(weights[id])
		adj[e.S] = append(adj[e.S], arc{edgeID: id, right: e.T - half, cost: w})
		if m := math.Abs(w); m > maxAbs {
			maxAbs = m
		}
	}
	for i := 0; i < half; i++ {
		if len(adj[i]) == 0 {
			return nil, errNonTerminating(op, "left vertex has no incident edge; no perfect matching can exist")
		}
	}

	price := make([]float64, half)
	owner := make([]int, half)  // left vertex currently holding right vertex j, or -1
	assign := make([]int, half) // edge id currently assigned to left vertex i, or -1

	threshold := 2.0 / (float64(n) + 1)
	for eps := maxAbs; ; eps /= 10 {
		runAuctionPhase(adj, price, owner, assign, eps)
		if eps < threshold {
			break
		}
	}

	return assign, nil
}

// runAuctionPhase re-matches every left vertex from scratch (keeping
// the prices a previous phase settled on) using bids computed at
// precision eps: a Bertsekas epsilon-scaling auction (spec §4.9's
// "refine phase" of double-pushes, realized here as bid-and-displace
// rather than the arc-saturation formulation csa.hpp uses).
func runAuctionPhase(adj [][]arc, price []float64, owner, assign []int, eps float64) {
	half := len(adj)
	for i := range owner {
		owner[i] = -1
	}
	for i := range assign {
		assign[i] = -1
	}

	queue := make([]int, half)
	for i := range queue {
		queue[i] = i
	}

	for len(queue) > 0 {
		i := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		bestVal, secondVal := math.Inf(-1), math.Inf(-1)
		bestJ, bestEdge := -1, -1
		for _, a := range adj[i] {
			val := -a.cost - price[a.right]
			if val > bestVal {
				bestJ, bestEdge = a.right, a.edgeID
				secondVal, bestVal = bestVal, val
			} else if val > secondVal {
				secondVal = val
			}
		}
		if math.IsInf(secondVal, -1) {
			secondVal = bestVal
		}

		price[bestJ] = price[bestJ] + (bestVal - secondVal) + eps
		if prev := owner[bestJ]; prev != -1 {
			assign[prev] = -1
			queue = append(queue, prev)
		}
		owner[bestJ] = i
		assign[i] = bestEdge
	}
}
