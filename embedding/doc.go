// Package embedding provides the bijection between a multidimensional
// grid coordinate and its row-major linear index (spec component D),
// used by the regular-grid graph variant (§4.1) and by the 2-D contour
// extraction's Khalimsky-space addressing (§4.8).
//
// Grounded on gridgraph.GridGraph's index/Coordinate pair
// (gridgraph/gridgraph.go), generalized from the fixed 2-D (x,y) case
// to an arbitrary-rank shape.
package embedding
