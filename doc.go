// Package higra provides primitives for hierarchical image and graph
// analysis: constructing, attributing, and transforming rooted trees
// that describe nested partitions of a graph's vertex set.
//
// The library is organized as one subpackage per component:
//
//	ndarray/      — dense N-D arrays backing every weighting/attribute
//	unionfind/    — disjoint-set forest
//	fibheap/      — Fibonacci heap (used by regression's PAVA)
//	embedding/    — coordinate <-> linear index mapping for regular grids
//	graph/        — explicit and regular-grid graph substrates
//	tree/         — rooted partition trees, LCA queries
//	accumulate/   — bottom-up and top-down tree accumulators
//	attribute/    — derived per-node tree attributes (area, volume, ...)
//	componenttree/— max-tree / min-tree construction from vertex weights
//	treefusion/   — depth map of the graph of shapes merged from several trees
//	regression/   — monotonic regression of node altitudes along root paths
//	contour/      — 2-D cut contour tracing and polyline subdivision
//	bipartite/    — bipartite testing and minimum-weight perfect matching
//	purity/       — dendrogram purity against ground-truth labels
//	watershed/    — watershed cut vertex labelling
//	testgraph/    — small named-topology fixtures shared by the test suites
//
// Each algorithm's edge/vertex weighting is passed as an explicit
// parallel array rather than stored on the graph, per the data model
// in SPEC_FULL.md §3. Errors use the higraerr taxonomy
// (InvalidArgument, OutOfRange, Unsupported, NonTerminating); warnings
// that don't merit an error go through the hlog hook.
package higra
