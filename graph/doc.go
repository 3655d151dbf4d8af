// Package graph defines the uniform substrate of spec §4.1: one trait
// surface (the Graph interface) implemented by three variants —
// ExplicitGraph (owned edge list + incidence lists), RegularGrid
// (implicit grid adjacency with a precomputed safe interior), and
// tree.Tree (implemented in the sibling tree package, which satisfies
// Graph without this package importing it back).
//
// What:
//
//   - Vertices are non-negative integers [0, n); edges are identified
//     by non-negative integers [0, m). INVALID is the sentinel absence
//     value for both spaces.
//   - Algorithms written against Graph never need to know which
//     variant they were handed; per-variant specializations (the grid's
//     safe-interior stride trick) are optimization hints only, never
//     correctness-bearing (spec §9, CRTP replacement).
//
// Why:
//
//   - Grounded on core.Graph's mutex-guarded Vertex/Edge model
//     (core/types.go) for ExplicitGraph, and on gridgraph.GridGraph's
//     implicit-adjacency design (gridgraph/gridgraph.go) for
//     RegularGrid, replacing both packages' string vertex ids with the
//     dense integer ids this spec requires and dropping the directed/
//     multigraph configuration surface that spec's non-goals exclude.
//
// Errors: InvalidArgument for out-of-range construction parameters,
// OutOfRange for vertex/edge ids outside their id space, Unsupported
// for mutation on a non-mutable variant (spec §4.1 failure policy).
package graph
