package geometry

import (
	"math"

	"honnef.co/go/curve"
)

// Contains reports whether pt lies inside p under the even-odd rule over all
// rings, so points inside a hole are outside.
// Complexity: O(V).
func (p Polygon) Contains(pt curve.Point) bool {
	inside := false
	p.eachRing(func(ring []curve.Point, _ bool) {
		n := len(ring)
		for i, j := 0, n-1; i < n; j, i = i, i+1 {
			a, b := ring[i], ring[j]
			if (a.Y > pt.Y) != (b.Y > pt.Y) &&
				pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
				inside = !inside
			}
		}
	})

	return inside
}

// BoundaryDistance returns the distance from pt to the nearest ring segment.
// The empty polygon is infinitely far away.
// Complexity: O(V).
func (p Polygon) BoundaryDistance(pt curve.Point) float64 {
	best := math.Inf(1)
	p.eachRing(func(ring []curve.Point, _ bool) {
		n := len(ring)
		for i := 0; i < n; i++ {
			if d := SegmentDistance(pt, ring[i], ring[(i+1)%n]); d < best {
				best = d
			}
		}
	})

	return best
}

// SignedDistance is BoundaryDistance, negated when pt lies outside p.
func (p Polygon) SignedDistance(pt curve.Point) float64 {
	d := p.BoundaryDistance(pt)
	if p.Contains(pt) {
		return d
	}

	return -d
}

// SegmentDistance returns the distance from pt to the segment a-b.
func SegmentDistance(pt, a, b curve.Point) float64 {
	ab := b.Sub(a)
	l2 := ab.Hypot2()
	if l2 == 0 {
		return pt.Distance(a)
	}
	t := pt.Sub(a).Dot(ab) / l2
	t = math.Max(0, math.Min(1, t))

	return pt.Distance(a.Translate(ab.Mul(t)))
}

// orient returns the sign of the cross product (b-a)×(c-a).
func orient(a, b, c curve.Point) int {
	v := b.Sub(a).Cross(c.Sub(a))
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func onSegment(a, b, pt curve.Point) bool {
	return math.Min(a.X, b.X) <= pt.X && pt.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= pt.Y && pt.Y <= math.Max(a.Y, b.Y)
}

// SegmentsIntersect reports whether segments p-q and a-b share a point.
func SegmentsIntersect(p, q, a, b curve.Point) bool {
	o1, o2 := orient(p, q, a), orient(p, q, b)
	o3, o4 := orient(a, b, p), orient(a, b, q)
	if o1 != o2 && o3 != o4 {
		return true
	}
	switch {
	case o1 == 0 && onSegment(p, q, a):
		return true
	case o2 == 0 && onSegment(p, q, b):
		return true
	case o3 == 0 && onSegment(a, b, p):
		return true
	case o4 == 0 && onSegment(a, b, q):
		return true
	}

	return false
}

// SegmentCrossesRing reports whether p-q meets any edge of the closed ring.
func SegmentCrossesRing(p, q curve.Point, ring []curve.Point) bool {
	n := len(ring)
	for i := 0; i < n; i++ {
		if SegmentsIntersect(p, q, ring[i], ring[(i+1)%n]) {
			return true
		}
	}

	return false
}

// SegmentCrosses reports whether p-q meets the boundary of poly.
func SegmentCrosses(p, q curve.Point, poly Polygon) bool {
	hit := false
	poly.eachRing(func(ring []curve.Point, _ bool) {
		if !hit && SegmentCrossesRing(p, q, ring) {
			hit = true
		}
	})

	return hit
}
