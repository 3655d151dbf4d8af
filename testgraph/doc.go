// Package testgraph builds small named topologies — cycles, paths,
// stars, wheels, complete and complete-bipartite graphs — as
// graph.ExplicitGraph fixtures shared by this module's test suites.
//
// Adapted from builder's impl_cycle.go/impl_path.go/impl_star.go/
// impl_wheel.go/impl_complete.go/impl_bipartite.go: same constructions
// and vertex/edge emission order, simplified to this module's
// graph.ExplicitGraph (plain int vertex ids, no weight policy or
// directed-mode branching — every graph here is undirected and
// unweighted, weights are supplied separately by callers as the
// spec's parallel weighting arrays require).
package testgraph
