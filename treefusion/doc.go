// Package treefusion computes the depth map of spec §4.6: given a
// sequence of trees sharing the same leaf set, it merges their
// non-leaf nodes under set inclusion into a single graph of shapes
// (GOS) — a DAG whose edges run from each containing shape to every
// shape it immediately contains, across all input trees — then
// returns each leaf's longest-path depth in that DAG.
//
// Construction follows spec's five-stage pipeline: precompute area
// and smallest_enclosing_shape for every tree pair, deduplicate nodes
// that represent the same leaf-set across trees, build the GOS edge
// set, topologically sort it with an iterative (explicit-stack) DFS,
// and relax depths forward along that order.
//
// Grounded on spec §4.6 directly — no GOS/multi-tree-fusion construct
// exists in the corpus — reusing tree.LCA and attribute.Area/
// SmallestEnclosingShape for the per-tree preprocessing the same way
// the iterative Euler-tour walk in tree.LCA avoids recursion for the
// DFS here.
package treefusion
