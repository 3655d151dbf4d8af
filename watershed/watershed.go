package watershed

import (
	"math"

	"github.com/arbortree/higra/graph"
)

const noLabel = -1

type incidentEdge struct {
	neighbor int
	edgeID   int
}

// Labelisation computes the watershed cut labels of g under
// edgeWeights (spec §4.12). Labels are 1-based and numbered in the
// order their basin is first discovered while scanning vertex ids
// 0..n-1.
func Labelisation(g graph.Graph, edgeWeights []float64) ([]int, error) {
	const op = "watershed.Labelisation"
	if len(edgeWeights) != g.NumEdges() {
		return nil, errInvalidArgument(op, "edge weights length must equal num edges")
	}

	n := g.NumVertices()
	incidence := make([][]incidentEdge, n)
	for id, e := range g.Edges() {
		incidence[e.S] = append(incidence[e.S], incidentEdge{neighbor: e.T, edgeID: id})
		incidence[e.T] = append(incidence[e.T], incidentEdge{neighbor: e.S, edgeID: id})
	}

	fminus := make([]float64, n)
	for v := 0; v < n; v++ {
		min := math.Inf(1)
		for _, inc := range incidence[v] {
			if edgeWeights[inc.edgeID] < min {
				min = edgeWeights[inc.edgeID]
			}
		}
		fminus[v] = min
	}

	labels := make([]int, n)
	for v := range labels {
		labels[v] = noLabel
	}
	notInL := make([]bool, n)
	for v := range notInL {
		notInL[v] = true
	}

	numLabels := 0
	for v := 0; v < n; v++ {
		if labels[v] != noLabel {
			continue
		}

		collected, mergeLabel := stream(v, incidence, edgeWeights, fminus, notInL, labels)
		if mergeLabel == noLabel {
			numLabels++
			mergeLabel = numLabels
		}
		for _, x := range collected {
			labels[x] = mergeLabel
			notInL[x] = true
		}
	}

	return labels, nil
}

// stream grows the basin rooted at seed x: L accumulates every vertex
// pulled in; LL is the steepest-descent / plateau frontier, processed
// depth-first as in the original. Finding an already-labeled neighbor
// short-circuits the growth and returns that label for merging.
func stream(x int, incidence [][]incidentEdge, weights, fminus []float64, notInL []bool, labels []int) ([]int, int) {
	var l []int
	ll := []int{x}
	l = append(l, x)
	notInL[x] = false

	for len(ll) > 0 {
		y := ll[len(ll)-1]
		ll = ll[:len(ll)-1]

		for _, inc := range incidence[y] {
			w := inc.neighbor
			if !notInL[w] || weights[inc.edgeID] != fminus[y] {
				continue
			}

			if labels[w] != noLabel {
				return l, labels[w]
			} else if fminus[w] < fminus[y] {
				l = append(l, w)
				notInL[w] = false
				ll = ll[:0]
				ll = append(ll, w)
				break
			} else {
				l = append(l, w)
				notInL[w] = false
				ll = append(ll, w)
			}
		}
	}

	return l, noLabel
}
