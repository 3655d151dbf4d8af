// Package componenttree builds the max-tree/min-tree of spec §4.5 from
// a vertex-weighted graph: a node-weighted tree whose leaves are G's
// vertices and whose internal nodes are the connected components of
// a super- (max-tree) or sub- (min-tree) level set, altitude[n] being
// the threshold at which that component first appears.
//
// Construction follows spec's four-stage pipeline exactly: stable
// sort by weight, a Union-Find pre-tree pass that links each newly
// merged component under the vertex that triggered the merge,
// canonization (collapsing same-altitude parent chains), and expansion
// (materializing one fresh internal tree node per distinct altitude
// step so the final parent array satisfies the rooted-tree invariants
// of spec §3). Min-tree is built by negating weight and running the
// same max-tree pipeline, then negating the resulting altitudes back.
//
// Grounded on spec §4.5's own worked algorithm; no max-tree/min-tree
// construction exists anywhere in the corpus, so this is a direct
// translation rather than an adaptation of existing corpus code,
// reusing unionfind for the merge bookkeeping the same way the
// teacher's Kruskal implementation uses its own inline version.
package componenttree
