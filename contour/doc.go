// Package contour extracts the 2-D contour of a 4-adjacency graph cut
// (spec §4.8): given a shape (H, W) and an edge-weight array marking
// cut edges by nonzero weight, produce a nested Contour of Polylines
// of ContourSegments, each segment an ordered list of 1-face midpoints
// traced along a locally-straight piece of the cut. Contour.Subdivide
// then runs Ramer-Douglas-Peucker independently on every segment.
//
// Construction follows a Khalimsky-space trace: embed the image's
// vertices, edges, and corners as the 2-, 1-, and 0-faces of a
// (2H+1)x(2W+1) grid (1-faces carrying the edge id when its weight is
// nonzero), mark 0-faces touching 3+ nonzero 1-faces (or sitting on
// the image border) as intersections, then walk out from every
// intersection along each unexplored incident direction, alternating
// 1-face/0-face steps until the next intersection is reached.
//
// Grounded directly on original_source's contour_2d.hpp
// (fit_contour_2d, contour2d_2_khalimsky, subdivide_contour) — there is
// no corpus equivalent, so this is a translation of that exact trace
// rather than an adaptation of existing Go code, reusing
// graph.RegularGrid/embedding.Grid for the coordinate bookkeeping the
// same way componenttree and treefusion reuse tree/graph primitives.
package contour
