package contour

import "github.com/arbortree/higra/graph"

// unset marks a Khalimsky cell with no incident cut edge. Edge ids are
// always >= 0 so they never collide with it.
const unset = -1

// ContourElement is one 1-face midpoint visited along a segment, paired
// with the id of the graph edge it straddles.
type ContourElement struct {
	EdgeID int
	Y, X   float64
}

// ContourSegment is an ordered list of 1-face midpoints forming a
// locally-straight piece of cut between two intersections.
type ContourSegment struct {
	Elements []ContourElement
}

// Polyline is an ordered list of contour segments. This trace
// construction always starts and ends a segment at an intersection, so
// every Polyline produced by Fit holds exactly one segment; Subdivide
// is what turns a segment into several.
type Polyline struct {
	Segments []ContourSegment
}

// Contour is the full set of polylines separating the regions of a cut.
type Contour struct {
	Polylines []Polyline
}

type direction int

const (
	north direction = iota
	east
	south
	west
)

// Fit traces the 2-D contour of a 4-adjacency graph cut (spec §4.8).
// weights must have one entry per g.NumEdges(); g's shape must have
// rank 2. Edges with a nonzero weight are part of the cut.
func Fit(g *graph.RegularGrid, weights []float64) (*Contour, error) {
	shape := g.Shape()
	if len(shape) != 2 {
		return nil, errInvalidArgument("contour.Fit", "graph shape must have rank 2")
	}
	if len(weights) != g.NumEdges() {
		return nil, errInvalidArgument("contour.Fit", "weights length must equal num edges")
	}

	h, w := shape[0], shape[1]
	kh := newGrid(2*h+1, 2*w+1, unset)

	emb := g.Embedding()
	for id, e := range g.Edges() {
		if weights[id] == 0 {
			continue
		}
		sc := emb.Coordinate(e.S)
		tc := emb.Coordinate(e.T)
		y := sc[0] + tc[0] + 1
		x := sc[1] + tc[1] + 1
		kh[y][x] = id
	}

	touches := newGrid(2*h+1, 2*w+1, 0)
	for y := 0; y <= 2*h; y += 2 {
		for x := 0; x <= 2*w; x += 2 {
			best := unset
			if y > 0 && kh[y-1][x] != unset {
				best = kh[y-1][x]
			}
			if y < 2*h && kh[y+1][x] != unset {
				best = kh[y+1][x]
			}
			if x > 0 && kh[y][x-1] != unset {
				best = kh[y][x-1]
			}
			if x < 2*w && kh[y][x+1] != unset {
				best = kh[y][x+1]
			}
			touches[y][x] = best
		}
	}

	b := &builder{kh: kh, processed: newGrid(2*h+1, 2*w+1, 0), h: 2 * h, w: 2 * w}

	result := &Contour{}
	for y := 0; y <= b.h; y += 2 {
		for x := 0; x <= b.w; x += 2 {
			if touches[y][x] == unset || b.processed[y][x] != 0 {
				continue
			}
			if !b.isIntersection(y, x) {
				continue
			}
			b.processed[y][x] = 1
			if x != 0 && kh[y][x-1] != unset && b.processed[y][x-1] == 0 {
				result.Polylines = append(result.Polylines, b.explore(y, x-1, east))
			}
			if x != b.w && kh[y][x+1] != unset && b.processed[y][x+1] == 0 {
				result.Polylines = append(result.Polylines, b.explore(y, x+1, west))
			}
			if y != 0 && kh[y-1][x] != unset && b.processed[y-1][x] == 0 {
				result.Polylines = append(result.Polylines, b.explore(y-1, x, south))
			}
			if y != b.h && kh[y+1][x] != unset && b.processed[y+1][x] == 0 {
				result.Polylines = append(result.Polylines, b.explore(y+1, x, north))
			}
		}
	}

	return result, nil
}

// builder holds the Khalimsky grid and the processed-cell bookkeeping
// shared by isIntersection and explore.
type builder struct {
	kh        [][]int
	processed [][]int
	h, w      int // last valid index along each axis (2H, 2W)
}

func newGrid(rows, cols, fill int) [][]int {
	g := make([][]int, rows)
	for i := range g {
		g[i] = make([]int, cols)
		if fill != 0 {
			for j := range g[i] {
				g[i][j] = fill
			}
		}
	}

	return g
}

// isIntersection reports whether the 0-face at (y, x) is a trace
// branch point: the image border always counts, interior 0-faces count
// when 3 or 4 of their incident 1-faces carry a cut edge.
func (b *builder) isIntersection(y, x int) bool {
	if x == 0 || y == 0 || x == b.w || y == b.h {
		return true
	}
	count := 0
	if b.kh[y][x-1] != unset {
		count++
	}
	if b.kh[y][x+1] != unset {
		count++
	}
	if b.kh[y-1][x] != unset {
		count++
	}
	if b.kh[y+1][x] != unset {
		count++
	}

	return count > 2
}

// explore walks from the 1-face at (y, x) — already known to carry a
// cut edge, with dir the direction we are considered to have arrived
// from — alternating 1-face/0-face moves until the next intersection,
// producing one segment wrapped in its own polyline.
func (b *builder) explore(y, x int, dir direction) Polyline {
	var seg ContourSegment
	previous := dir

	for {
		b.processed[y][x] = 1
		edgeID := b.kh[y][x]
		seg.Elements = append(seg.Elements, ContourElement{EdgeID: edgeID, Y: float64(y) / 2, X: float64(x) / 2})

		if x%2 == 0 { // horizontal edge: 0-face neighbor is above/below
			if previous == north {
				y++
			} else {
				y--
			}
		} else { // vertical edge: 0-face neighbor is left/right
			if previous == west {
				x++
			} else {
				x--
			}
		}

		if b.isIntersection(y, x) {
			break
		}
		b.processed[y][x] = 1

		switch {
		case previous != north && b.kh[y-1][x] != unset:
			previous = south
			y--
		case previous != east && b.kh[y][x+1] != unset:
			previous = west
			x++
		case previous != south && b.kh[y+1][x] != unset:
			previous = north
			y++
		case previous != west && b.kh[y][x-1] != unset:
			previous = east
			x--
		}
	}

	return Polyline{Segments: []ContourSegment{seg}}
}
