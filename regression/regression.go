package regression

import (
	"github.com/arbortree/higra/accumulate"
	"github.com/arbortree/higra/fibheap"
	"github.com/arbortree/higra/higraerr"
	"github.com/arbortree/higra/hlog"
	"github.com/arbortree/higra/ndarray"
	"github.com/arbortree/higra/tree"
	"github.com/arbortree/higra/unionfind"
)

// Mode selects a monotonic-regression strategy.
type Mode int

const (
	Max Mode = iota
	Min
	LeastSquares
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

// Regress computes out[v] monotonic along every root path (out[v] <=
// out[parent(v)] for non-root v). weights is only consulted by
// LeastSquares; pass nil for uniform unit weights.
func Regress(t *tree.Tree, mode Mode, altitude, weights []float64) ([]float64, error) {
	n := t.NumVertices()
	if len(altitude) != n {
		return nil, errInvalidArgument("regression.Regress", "altitude length must equal num vertices")
	}

	switch mode {
	case Max:
		if weights != nil {
			hlog.Warn("regression.Regress: weights are ignored in max mode")
		}

		return maxMode(t, altitude)
	case Min:
		return minMode(t, altitude)
	case LeastSquares:
		if weights == nil {
			weights = make([]float64, n)
			for i := range weights {
				weights[i] = 1
			}
		}
		if len(weights) != n {
			return nil, errInvalidArgument("regression.Regress", "weights length must equal num vertices")
		}

		return leastSquares(t, altitude, weights)
	default:
		return nil, higraerr.New(higraerr.OutOfRange, "regression.Regress", "unknown mode")
	}
}

func maxMode(t *tree.Tree, altitude []float64) ([]float64, error) {
	leaf := make([]float64, t.NumLeaves())
	for v := 0; v < t.NumLeaves(); v++ {
		leaf[v] = altitude[v]
	}
	out, err := accumulate.AndCombineSequential(t, toColumn(altitude), toColumn(leaf), accumulate.Max(), func(acc, node float64) float64 {
		if acc > node {
			return acc
		}

		return node
	})
	if err != nil {
		return nil, err
	}

	return fromColumn(out), nil
}

func minMode(t *tree.Tree, altitude []float64) ([]float64, error) {
	out, err := accumulate.PropagateSequentialAndAccumulate(t, toColumn(altitude), accumulate.Min())
	if err != nil {
		return nil, err
	}

	return fromColumn(out), nil
}

// leastSquares runs the pool-adjacent-violators sweep of spec §4.7:
// one Union-Find block per maximal tied-output run, each tracking its
// weighted sum/weight and a max-heap over its children's block means.
func leastSquares(t *tree.Tree, altitude, weights []float64) ([]float64, error) {
	n := t.NumVertices()
	uf := unionfind.New(n)
	S := make([]float64, n)
	W := make([]float64, n)
	blockHeap := make([]*fibheap.MaxHeap[int], n)

	for v := 0; v < n; v++ {
		S[v] = weights[v] * altitude[v]
		W[v] = weights[v]
		blockHeap[v] = fibheap.NewMax[int]()
	}

	for _, v := range t.LeavesToRoot(true, true) {
		ic := uf.Find(v)
		children, err := t.Children(v)
		if err != nil {
			return nil, err
		}
		for _, c := range children {
			cc := uf.Find(c)
			blockHeap[ic].Insert(S[cc]/W[cc], c)
		}

		for blockHeap[ic].Len() > 0 {
			_, topKey, topVal, ok := blockHeap[ic].Max()
			if !ok || topKey <= S[ic]/W[ic] {
				break
			}
			blockHeap[ic].ExtractMax()
			kc := uf.Find(topVal)
			if kc == ic {
				continue
			}
			newS := S[ic] + S[kc]
			newW := W[ic] + W[kc]
			newRoot := uf.Union(ic, kc)
			S[newRoot] = newS
			W[newRoot] = newW
			if newRoot == ic {
				blockHeap[ic].Merge(blockHeap[kc])
			} else {
				blockHeap[kc].Merge(blockHeap[ic])
			}
			ic = newRoot
		}
	}

	out := make([]float64, n)
	for v := 0; v < n; v++ {
		r := uf.Find(v)
		out[v] = S[r] / W[r]
	}

	return out, nil
}
