package purity

import (
	"github.com/arbortree/higra/accumulate"
	"github.com/arbortree/higra/attribute"
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

// DendrogramPurity scores how well t groups leaves sharing the same
// label under low common ancestors (spec §4.11). labels must have one
// entry per leaf; a negative label excludes that leaf from sampling.
// Returns 0, not an error, when fewer than two leaves share any label
// (no pair contributes).
func DendrogramPurity(t *tree.Tree, labels []int) (float64, error) {
	numLeaves := t.NumLeaves()
	if len(labels) != numLeaves {
		return 0, errInvalidArgument("purity.DendrogramPurity", "labels length must equal num leaves")
	}

	byClass := make(map[int][]int)
	for leaf, class := range labels {
		if class < 0 {
			continue
		}
		byClass[class] = append(byClass[class], leaf)
	}

	area, err := attribute.Area(t, nil)
	if err != nil {
		return 0, err
	}

	var totalContribution, totalPairs float64
	for _, leaves := range byClass {
		if len(leaves) < 2 {
			continue
		}

		indicator := make([]float64, numLeaves)
		for _, leaf := range leaves {
			indicator[leaf] = 1
		}
		countCol, err := accumulate.Sequential(t, toColumn(indicator), accumulate.Sum())
		if err != nil {
			return 0, err
		}
		count := fromColumn(countCol)

		pairsAtNode, err := attribute.ChildrenPairSumProduct(t, count)
		if err != nil {
			return 0, err
		}

		for n := 0; n < t.NumVertices(); n++ {
			p := pairsAtNode[n]
			if p == 0 {
				continue
			}
			totalPairs += p
			totalContribution += p * (count[n] / area[n])
		}
	}

	if totalPairs == 0 {
		return 0, nil
	}

	return totalContribution / totalPairs, nil
}
