// Package unionfind implements a disjoint-set forest over the integer
// ids [0, n), with union-by-rank and path compression.
//
// What:
//
//   - New(n) allocates n singleton sets.
//   - Find(x) returns the canonical representative of x's set, in
//     amortized O(α(n)) time, compressing the path as it walks up.
//   - Union(x, y) merges the sets containing x and y by attaching the
//     lower-rank root under the higher-rank one, breaking ties by
//     incrementing the surviving root's rank.
//
// Why:
//
//   - Grounded on the map[string]string union-find inlined in
//     prim_kruskal.Kruskal, generalized to integer ids over a fixed
//     universe and factored into its own reusable package, since every
//     higher component (component-tree construction, bipartiteness by
//     union-find) needs the same primitive.
//
// Complexity: Find/Union are O(α(n)) amortized; New is O(n).
package unionfind
