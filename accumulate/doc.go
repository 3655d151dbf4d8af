// Package accumulate is the tree reduction/scatter engine of spec
// §4.3: every higher-level tree attribute (area, volume, depth,
// extinction, ...) is expressed as one call into this package rather
// than its own bespoke tree walk.
//
// Six operations, all elementwise over a node's trailing payload
// columns (an *ndarray.Array[float64] with a leading vertex- or
// leaf-dimension):
//
//   - Parallel: each non-leaf's result is acc applied to its
//     children's already-given input values; leaves get acc's
//     identity. Every node is independent, so this is a data-parallel
//     sweep over internal/parallel.
//   - Sequential: leaves copy from a leaf-only input; each internal
//     node is acc applied to its children's already-computed results.
//     This is the canonical bottom-up sweep (area, volume, histograms)
//     and must run in ascending-index order since each node depends
//     on its children's output.
//   - AndCombineSequential: Sequential's result at an internal node is
//     additionally folded through combine with that node's own input
//     value (volume's combine is +, monotonic max's is max).
//   - PropagateParallel: each node reads its parent's input value
//     (root reads its own, since it is its own parent); with a
//     condition array, a false entry keeps the node's own input
//     instead. Independent per node, so parallel.
//   - PropagateSequential: the same read-from-parent rule but over the
//     already-propagated output, not the raw input, so the root's
//     propagated value can chain arbitrarily many condition-enabled
//     edges down. Must run in descending-index (root-to-leaves) order.
//   - PropagateSequentialAndAccumulate: each node's output folds its
//     parent's already-folded output together with its own input
//     through acc, building a running accumulation along the root
//     path. Also requires descending-index order.
//
// Grounded on spec's own accumulator contract, implemented with plain
// elementwise loops (no template-expression-tree fusion, per spec's
// redesign note) over ndarray.Array[float64] rows.
package accumulate
