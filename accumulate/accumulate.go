package accumulate

import (
	"github.com/arbortree/higra/internal/parallel"
	"github.com/arbortree/higra/ndarray"
	"github.com/arbortree/higra/tree"
)

func shapeFor(input *ndarray.Array[float64], leadingDim int) []int {
	shape := append([]int(nil), input.Shape()...)
	shape[0] = leadingDim

	return shape
}

// Parallel applies newAcc to the children's input values of every
// non-leaf node; leaves get newAcc's identity (Result of a freshly
// Reset accumulator with nothing accumulated, except Mean which has
// none). input's leading dimension must be t.NumVertices().
func Parallel(t *tree.Tree, input *ndarray.Array[float64], newAcc Factory) (*ndarray.Array[float64], error) {
	n := t.NumVertices()
	if err := input.CheckLeadingDim(n); err != nil {
		return nil, errInvalidArgument("accumulate.Parallel", err.Error())
	}
	out, err := ndarray.New[float64](input.Shape()...)
	if err != nil {
		return nil, err
	}

	err = parallel.ForErr(n, func(v int) error {
		children, err := t.Children(v)
		if err != nil {
			return err
		}
		outRow, err := out.Row(v)
		if err != nil {
			return err
		}
		for j := range outRow {
			acc := newAcc()
			acc.Reset()
			for _, c := range children {
				cRow, err := input.Row(c)
				if err != nil {
					return err
				}
				acc.Accumulate(cRow[j])
			}
			res, err := acc.Result()
			if err != nil {
				return err
			}
			outRow[j] = res
		}

		return nil
	})

	return out, err
}

// Sequential copies leaves from leafInput and, for each internal node
// in ascending-index order, applies newAcc to its children's
// already-computed results. leafInput's leading dimension must be
// t.NumLeaves().
func Sequential(t *tree.Tree, leafInput *ndarray.Array[float64], newAcc Factory) (*ndarray.Array[float64], error) {
	if err := leafInput.CheckLeadingDim(t.NumLeaves()); err != nil {
		return nil, errInvalidArgument("accumulate.Sequential", err.Error())
	}
	out, err := ndarray.New[float64](shapeFor(leafInput, t.NumVertices())...)
	if err != nil {
		return nil, err
	}
	for leaf := 0; leaf < t.NumLeaves(); leaf++ {
		lRow, err := leafInput.Row(leaf)
		if err != nil {
			return nil, err
		}
		oRow, err := out.Row(leaf)
		if err != nil {
			return nil, err
		}
		copy(oRow, lRow)
	}

	for _, v := range t.LeavesToRoot(false, true) {
		children, err := t.Children(v)
		if err != nil {
			return nil, err
		}
		oRow, err := out.Row(v)
		if err != nil {
			return nil, err
		}
		for j := range oRow {
			acc := newAcc()
			acc.Reset()
			for _, c := range children {
				cRow, err := out.Row(c)
				if err != nil {
					return nil, err
				}
				acc.Accumulate(cRow[j])
			}
			res, err := acc.Result()
			if err != nil {
				return nil, err
			}
			oRow[j] = res
		}
	}

	return out, nil
}

// AndCombineSequential is Sequential with each internal node's result
// folded through combine(accumulated, nodeInput[n]) — volume uses "+",
// monotonic max uses binary max. nodeInput's leading dimension must be
// t.NumVertices(); leafInput's must be t.NumLeaves().
func AndCombineSequential(t *tree.Tree, nodeInput, leafInput *ndarray.Array[float64], newAcc Factory, combine func(acc, node float64) float64) (*ndarray.Array[float64], error) {
	if err := nodeInput.CheckLeadingDim(t.NumVertices()); err != nil {
		return nil, errInvalidArgument("accumulate.AndCombineSequential", err.Error())
	}
	if err := leafInput.CheckLeadingDim(t.NumLeaves()); err != nil {
		return nil, errInvalidArgument("accumulate.AndCombineSequential", err.Error())
	}
	out, err := ndarray.New[float64](shapeFor(leafInput, t.NumVertices())...)
	if err != nil {
		return nil, err
	}
	for leaf := 0; leaf < t.NumLeaves(); leaf++ {
		lRow, err := leafInput.Row(leaf)
		if err != nil {
			return nil, err
		}
		oRow, err := out.Row(leaf)
		if err != nil {
			return nil, err
		}
		copy(oRow, lRow)
	}

	for _, v := range t.LeavesToRoot(false, true) {
		children, err := t.Children(v)
		if err != nil {
			return nil, err
		}
		oRow, err := out.Row(v)
		if err != nil {
			return nil, err
		}
		nRow, err := nodeInput.Row(v)
		if err != nil {
			return nil, err
		}
		for j := range oRow {
			acc := newAcc()
			acc.Reset()
			for _, c := range children {
				cRow, err := out.Row(c)
				if err != nil {
					return nil, err
				}
				acc.Accumulate(cRow[j])
			}
			res, err := acc.Result()
			if err != nil {
				return nil, err
			}
			oRow[j] = combine(res, nRow[j])
		}
	}

	return out, nil
}
