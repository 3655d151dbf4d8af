// Package regression implements monotonic regression on trees (spec
// §4.7): given per-node altitudes and optional positive weights,
// produce values that are monotonic along every root path.
//
// Three modes:
//
//   - Max: sequential accumulate-and-combine with a max accumulator —
//     reuses accumulate.AndCombineSequential directly. Weights are
//     ignored (logged via hlog).
//   - Min: top-down propagate-and-accumulate with a min accumulator —
//     reuses accumulate.PropagateSequentialAndAccumulate directly.
//   - LeastSquares: isotonic regression (pool-adjacent-violators
//     generalized to trees), minimizing the weighted sum of squared
//     deviations subject to out[v] <= out[parent(v)]. Maintains one
//     block (a Union-Find class) per maximal run of tied output
//     values, each tracking its weighted sum/weight and a max-heap
//     over its children's current block means; a child whose mean
//     exceeds its parent block's mean is a monotonicity violation and
//     gets merged in.
//
// Grounded on spec §4.7's own algorithm description for LeastSquares;
// Max and Min are thin, direct reuses of the accumulate package's
// primitives (component G), matching spec's explicit phrasing ("is
// simply ..." for those two modes) rather than hand-rolling a parallel
// implementation. LeastSquares reuses unionfind and fibheap.MaxHeap,
// the same mergeable-priority-queue primitive component C names for
// this exact purpose.
package regression
