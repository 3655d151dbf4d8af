// Package attribute implements the per-node tree attributes of spec
// §4.4: area, volume, depth, height, extrema, extinction value,
// dynamics, sibling, child-number, smallest-enclosing-shape,
// children-pair-sum-product and perimeter length.
//
// Every attribute here is, per spec, "a straightforward instance of
// §4.3 unless stated otherwise" — area and volume are literally one
// accumulate.Sequential/AndCombineSequential call; depth, height,
// extrema and extinction value need their own small bottom-up/top-down
// sweeps over tree.Tree's traversal orders because they aren't a pure
// reduce (height and extinction value both need to distinguish a
// node's own plateau from its strict descendants').
//
// Attributes here work directly on []float64/[]bool/[]int node arrays
// rather than ndarray.Array, since every one of them is a true scalar
// per node (not a trailing-payload-dimension reduction like
// accumulate's operations), and a plain slice keeps the call sites
// that only care about one tree's worth of values simple.
package attribute
