// Package purity computes dendrogram purity (spec §4.11): given a
// tree whose leaves carry ground-truth class labels, score how well
// the tree groups same-class leaves under low common ancestors.
//
// For every unordered pair of distinct labeled leaves (u, v) sharing a
// class, let a = lca(u, v); the pair's contribution is
// count(label[u], leaves(a)) / |leaves(a)|. The result is the mean
// contribution over every such pair.
//
// Grounded on
// original_source/include/higra/assessment/dendrogram_purity.hpp for
// the definition; computed via the same children-pairwise-product
// trick attribute.ChildrenPairSumProduct already exists to serve (its
// doc comment names this exact use): for each class, accumulate a
// per-node leaf count with accumulate.Sequential+Sum (component G),
// then ChildrenPairSumProduct turns that count into, for every node,
// how many same-class pairs have that node as their LCA — avoiding an
// O(p) pass over every pair individually.
package purity
