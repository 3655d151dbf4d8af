// Package ndarray provides a shape-polymorphic, contiguous row-major
// dense buffer used throughout this module for every weighting array
// (leaf weightings, vertex weightings, node weightings, edge
// weightings — spec §3) and for the multi-dimensional grid shapes
// consumed by the graph substrate (§4.1).
//
// What:
//
//   - Array[T] stores n-dimensional data of element type T in a flat
//     []T slice, accessed by either a linear index or a multi-index.
//   - The leading dimension is, by convention, the "count" dimension
//     (num_leaves/num_vertices/num_edges); trailing dimensions are an
//     arbitrary payload shape the algorithms pass through unexamined.
//
// Why:
//
//   - Spec §6 treats dense array storage as an external dependency and
//     specifies only the container shapes required. The example corpus
//     has no standalone N-D array library to import, so this package
//     plays that role, grounded directly on matrix.Dense's row-major,
//     bounds-checked accessor design (matrix/dense.go), generalized
//     from two dimensions to N and parameterized over element type with
//     Go generics instead of being pinned to float64.
//
// Complexity: At/Set are O(dim); Row is O(1) (aliasing view); Clone is
// O(size).
package ndarray
