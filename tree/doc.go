// Package tree implements the rooted, topologically-ordered immutable
// tree of spec §4.2 plus its O(1)-query LCA preprocessing (component
// I), the graph substrate's third variant (spec §4.1).
//
// What:
//
//   - Tree wraps a parent array satisfying: the root is the last index
//     and its own parent; every other node's parent has a strictly
//     larger index; leaves are exactly the prefix [0, num_leaves).
//   - Children are computed lazily on first request and cached,
//     matching spec §3's "computed lazily ... and cached" contract.
//   - LCA answers lowest-common-ancestor queries in O(1) after an
//     O(n log n) Euler-tour + sparse-table build.
//
// Why:
//
//   - The parent-array layout (every node's index exceeds all of its
//     descendants') is what lets every higher component — accumulators,
//     attributes, component-tree construction — sweep the tree with a
//     single ascending or descending scan instead of recursion, which
//     is the property the rest of this module is built around.
//   - There is no tree type in the example corpus (lvlath's own trees
//     are DSU-internal to Kruskal/Prim, not a first-class exported
//     type), so this package is grounded on the corpus's broader
//     conventions instead: core.Graph's immutable-after-construction
//     stance and gridgraph's precomputed-lookup style for the Euler
//     tour / sparse table.
//
// Errors: InvalidArgument on construction from a non-topological,
// multi-root, or self-looping-at-non-root parent array.
package tree
