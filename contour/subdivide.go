package contour

import "math"

func distance(a, b ContourElement) float64 {
	dy := a.Y - b.Y
	dx := a.X - b.X

	return math.Sqrt(dx*dx + dy*dy)
}

// distanceToLine is the minimum distance between point p and the line
// through v and w (spec §4.8's explicit formula); falls back to the
// point-to-point distance when v == w.
func distanceToLine(v, w, p ContourElement) float64 {
	l2 := distance(v, w)
	if l2 == 0 {
		return distance(p, v)
	}

	num := (w.X-v.X)*p.Y - (w.Y-v.Y)*p.X + w.Y*v.X - w.X*v.Y

	return math.Abs(num) / l2
}

// subdivideSegment runs Ramer-Douglas-Peucker on a single segment,
// splitting at the element furthest from the line joining the current
// span's endpoints whenever that distance reaches or exceeds the
// threshold, until every remaining span is either short enough
// (<= minSize) or has no element at or beyond the threshold.
func subdivideSegment(seg ContourSegment, epsilon float64, relativeEpsilon bool, minSize float64) Polyline {
	n := len(seg.Elements)
	if n == 0 {
		return Polyline{}
	}

	type span struct{ first, last int }
	isSplit := make([]bool, n)
	stack := []span{{0, n - 1}}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		first, last := s.first, s.last
		distFirstLast := distance(seg.Elements[first], seg.Elements[last])
		if distFirstLast <= minSize {
			continue
		}

		threshold := epsilon
		if relativeEpsilon {
			threshold = epsilon * distFirstLast
		}

		maxDist := threshold
		maxIdx := -1
		for i := first + 1; i < last; i++ {
			d := distanceToLine(seg.Elements[first], seg.Elements[last], seg.Elements[i])
			if d >= maxDist {
				maxDist = d
				maxIdx = i
			}
		}

		if maxIdx >= 0 {
			isSplit[maxIdx] = true
			stack = append(stack, span{first, maxIdx})
			stack = append(stack, span{maxIdx + 1, last})
		}
	}

	var result Polyline
	last := 0
	for i := 1; i < n; i++ {
		if isSplit[i] {
			result.Segments = append(result.Segments, ContourSegment{Elements: append([]ContourElement(nil), seg.Elements[last:i+1]...)})
			last = i + 1
			i++
		}
	}
	result.Segments = append(result.Segments, ContourSegment{Elements: append([]ContourElement(nil), seg.Elements[last:]...)})

	return result
}

// Subdivide applies Ramer-Douglas-Peucker to every segment of every
// polyline independently (spec §4.8). threshold is epsilon if
// relativeEpsilon is false, epsilon*||first-last|| if true; a segment
// whose endpoints are within minSize of each other is returned
// unsplit.
func (c *Contour) Subdivide(epsilon float64, relativeEpsilon bool, minSize float64) *Contour {
	result := &Contour{Polylines: make([]Polyline, len(c.Polylines))}
	for i, p := range c.Polylines {
		var merged Polyline
		for _, seg := range p.Segments {
			sub := subdivideSegment(seg, epsilon, relativeEpsilon, minSize)
			merged.Segments = append(merged.Segments, sub.Segments...)
		}
		result.Polylines[i] = merged
	}

	return result
}
