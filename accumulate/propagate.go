package accumulate

import (
	"github.com/arbortree/higra/internal/parallel"
	"github.com/arbortree/higra/ndarray"
	"github.com/arbortree/higra/tree"
)

// PropagateParallel reads, for every node, its parent's input value
// (the root reads its own, since parent(root) == root); with a
// non-nil condition, a false entry at n keeps n's own input instead.
// Every node depends only on input, never on another node's output,
// so this sweep is data-parallel.
func PropagateParallel(t *tree.Tree, input *ndarray.Array[float64], condition []bool) (*ndarray.Array[float64], error) {
	n := t.NumVertices()
	if err := input.CheckLeadingDim(n); err != nil {
		return nil, errInvalidArgument("accumulate.PropagateParallel", err.Error())
	}
	if condition != nil && len(condition) != n {
		return nil, errInvalidArgument("accumulate.PropagateParallel", "condition length must equal the number of vertices")
	}
	out, err := ndarray.New[float64](input.Shape()...)
	if err != nil {
		return nil, err
	}

	err = parallel.ForErr(n, func(v int) error {
		src := v
		if condition == nil || condition[v] {
			p, err := t.Parent(v)
			if err != nil {
				return err
			}
			src = p
		}
		srcRow, err := input.Row(src)
		if err != nil {
			return err
		}
		outRow, err := out.Row(v)
		if err != nil {
			return err
		}
		copy(outRow, srcRow)

		return nil
	})

	return out, err
}

// PropagateSequential reads the parent's already-propagated output (not
// the raw input), so a chain of condition-enabled edges carries a
// value arbitrarily far down the tree. Requires descending-index
// (root-to-leaves) order.
func PropagateSequential(t *tree.Tree, input *ndarray.Array[float64], condition []bool) (*ndarray.Array[float64], error) {
	n := t.NumVertices()
	if err := input.CheckLeadingDim(n); err != nil {
		return nil, errInvalidArgument("accumulate.PropagateSequential", err.Error())
	}
	if len(condition) != n {
		return nil, errInvalidArgument("accumulate.PropagateSequential", "condition length must equal the number of vertices")
	}
	out, err := ndarray.New[float64](input.Shape()...)
	if err != nil {
		return nil, err
	}

	rootRow, err := input.Row(t.Root())
	if err != nil {
		return nil, err
	}
	outRootRow, err := out.Row(t.Root())
	if err != nil {
		return nil, err
	}
	copy(outRootRow, rootRow)

	for _, v := range t.RootToLeaves(true, false) {
		p, err := t.Parent(v)
		if err != nil {
			return nil, err
		}
		pRow, err := out.Row(p)
		if err != nil {
			return nil, err
		}
		iRow, err := input.Row(v)
		if err != nil {
			return nil, err
		}
		oRow, err := out.Row(v)
		if err != nil {
			return nil, err
		}
		if condition[v] {
			copy(oRow, pRow)
		} else {
			copy(oRow, iRow)
		}
	}

	return out, nil
}

// PropagateSequentialAndAccumulate builds, for every node, the folded
// accumulation of its own input together with its parent's
// already-folded value — a running reduction over the root path.
// Requires descending-index (root-to-leaves) order since each node's
// fold depends on its parent's.
func PropagateSequentialAndAccumulate(t *tree.Tree, input *ndarray.Array[float64], newAcc Factory) (*ndarray.Array[float64], error) {
	n := t.NumVertices()
	if err := input.CheckLeadingDim(n); err != nil {
		return nil, errInvalidArgument("accumulate.PropagateSequentialAndAccumulate", err.Error())
	}
	out, err := ndarray.New[float64](input.Shape()...)
	if err != nil {
		return nil, err
	}

	rootRow, err := input.Row(t.Root())
	if err != nil {
		return nil, err
	}
	outRootRow, err := out.Row(t.Root())
	if err != nil {
		return nil, err
	}
	copy(outRootRow, rootRow)

	for _, v := range t.RootToLeaves(true, false) {
		p, err := t.Parent(v)
		if err != nil {
			return nil, err
		}
		pRow, err := out.Row(p)
		if err != nil {
			return nil, err
		}
		iRow, err := input.Row(v)
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
			acc.Accumulate(pRow[j])
			acc.Accumulate(iRow[j])
			res, err := acc.Result()
			if err != nil {
				return nil, err
			}
			oRow[j] = res
		}
	}

	return out, nil
}
