// Package watershed labels graph vertices by watershed cut (spec
// §4.12): a drop of water placed on any vertex flows along edges of
// locally minimal weight until it cannot descend any further, and all
// vertices whose drops converge to the same basin share a label.
//
// Grounded on original_source/include/higra/algo/watershed.hpp
// (Cousty, Bertrand, Najman, Couprie, "Watershed Cuts: Minimum
// Spanning Forests and the Drop of Water Principle", IEEE TPAMI 2009),
// ported near-verbatim: for every vertex v, f-(v) is the minimum
// weight among v's incident edges. A stream growth from an unlabeled
// seed x repeatedly extends a frontier across edges whose weight
// equals the current vertex's f-, always preferring a neighbor with a
// strictly smaller f- (steeper descent) when one is reachable, and
// falling back to breadth growth across the current plateau otherwise.
// If the stream touches an already-labeled vertex, every vertex
// collected so far merges into that label instead of minting a new
// one. Labels are 1-based, in order of first basin discovered while
// scanning vertices 0..n-1.
package watershed
