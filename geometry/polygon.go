package geometry

import (
	"math"
	"strconv"
	"strings"

	"honnef.co/go/curve"
)

// Ring is one closed boundary of a polygon, stored without the closing vertex.
type Ring struct {
	Points []curve.Point
	Hole   bool
}

// part is a shell with the holes it carries.
type part struct {
	shell []curve.Point
	holes [][]curve.Point
}

// Polygon is an immutable, possibly empty, multi-part polygon with holes.
// The zero value is the empty polygon.
type Polygon struct {
	parts []part
}

// Empty returns the empty polygon.
func Empty() Polygon { return Polygon{} }

// NewPolygon builds a single-part polygon from a shell and its holes.
// Closing duplicates and repeated consecutive vertices are dropped; a shell
// with fewer than 3 distinct vertices yields the empty polygon.
func NewPolygon(shell []curve.Point, holes ...[]curve.Point) Polygon {
	s := cleanRing(shell)
	if s == nil {
		return Polygon{}
	}
	p := part{shell: s}
	for _, h := range holes {
		if ch := cleanRing(h); ch != nil {
			p.holes = append(p.holes, ch)
		}
	}

	return Polygon{parts: []part{p}}
}

// NewRing builds a polygon bounded by one ring.
func NewRing(points []curve.Point) Polygon { return NewPolygon(points) }

// NewRect builds the polygon covering r.
func NewRect(r curve.Rect) Polygon {
	return NewPolygon([]curve.Point{
		curve.Pt(r.MinX(), r.MinY()),
		curve.Pt(r.MaxX(), r.MinY()),
		curve.Pt(r.MaxX(), r.MaxY()),
		curve.Pt(r.MinX(), r.MaxY()),
	})
}

// Merge concatenates the parts of polygons. Overlapping parts are not
// dissolved; use Union for that.
func Merge(ps ...Polygon) Polygon {
	var out Polygon
	for _, p := range ps {
		out.parts = append(out.parts, p.parts...)
	}

	return out
}

// cleanRing drops consecutive duplicates and the closing duplicate.
func cleanRing(pts []curve.Point) []curve.Point {
	out := make([]curve.Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	if len(out) < 3 {
		return nil
	}

	return out
}

// IsEmpty reports whether p has no parts.
func (p Polygon) IsEmpty() bool { return len(p.parts) == 0 }

// NumParts returns the number of shells.
func (p Polygon) NumParts() int { return len(p.parts) }

// Rings returns every ring, shells first within each part.
func (p Polygon) Rings() []Ring {
	var out []Ring
	for _, pt := range p.parts {
		out = append(out, Ring{Points: append([]curve.Point(nil), pt.shell...)})
		for _, h := range pt.holes {
			out = append(out, Ring{Points: append([]curve.Point(nil), h...), Hole: true})
		}
	}

	return out
}

// eachRing calls fn for every ring without copying.
func (p Polygon) eachRing(fn func(ring []curve.Point, hole bool)) {
	for _, pt := range p.parts {
		fn(pt.shell, false)
		for _, h := range pt.holes {
			fn(h, true)
		}
	}
}

// Vertices returns all ring vertices in ring order.
func (p Polygon) Vertices() []curve.Point {
	var out []curve.Point
	p.eachRing(func(ring []curve.Point, _ bool) {
		out = append(out, ring...)
	})

	return out
}

// BoundingBox returns the bounding rectangle, or the zero Rect when empty.
func (p Polygon) BoundingBox() curve.Rect {
	first := true
	var r curve.Rect
	p.eachRing(func(ring []curve.Point, _ bool) {
		for _, v := range ring {
			if first {
				r = curve.Rect{X0: v.X, Y0: v.Y, X1: v.X, Y1: v.Y}
				first = false
				continue
			}
			r = r.UnionPoint(v)
		}
	})

	return r
}

// signedRingArea is the shoelace area, positive for counter-clockwise rings.
func signedRingArea(ring []curve.Point) float64 {
	var sum float64
	n := len(ring)
	for i := 0; i < n; i++ {
		a, b := ring[i], ring[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}

	return sum / 2
}

// Area returns the enclosed area: shells minus holes.
func (p Polygon) Area() float64 {
	var area float64
	p.eachRing(func(ring []curve.Point, hole bool) {
		a := math.Abs(signedRingArea(ring))
		if hole {
			a = -a
		}
		area += a
	})

	return area
}

// Centroid returns the area-weighted centroid. Degenerate polygons fall back
// to the mean of their vertices; the empty polygon yields the origin.
func (p Polygon) Centroid() curve.Point {
	var cx, cy, area float64
	p.eachRing(func(ring []curve.Point, hole bool) {
		sa := signedRingArea(ring)
		sign := 1.0
		if (sa < 0) != hole {
			// normalise orientation: shells count positive, holes negative
			sign = -1.0
		}
		n := len(ring)
		for i := 0; i < n; i++ {
			a, b := ring[i], ring[(i+1)%n]
			cross := a.X*b.Y - b.X*a.Y
			cx += sign * (a.X + b.X) * cross
			cy += sign * (a.Y + b.Y) * cross
		}
		area += sign * sa
	})
	if math.Abs(area) > 1e-12 {
		return curve.Pt(cx/(6*area), cy/(6*area))
	}

	verts := p.Vertices()
	if len(verts) == 0 {
		return curve.Point{}
	}
	var sx, sy float64
	for _, v := range verts {
		sx += v.X
		sy += v.Y
	}

	return curve.Pt(sx/float64(len(verts)), sy/float64(len(verts)))
}

// Translate returns p shifted by (dx, dy).
func (p Polygon) Translate(dx, dy float64) Polygon {
	shift := func(ring []curve.Point) []curve.Point {
		out := make([]curve.Point, len(ring))
		for i, v := range ring {
			out[i] = curve.Pt(v.X+dx, v.Y+dy)
		}

		return out
	}
	out := Polygon{parts: make([]part, len(p.parts))}
	for i, pt := range p.parts {
		np := part{shell: shift(pt.shell)}
		for _, h := range pt.holes {
			np.holes = append(np.holes, shift(h))
		}
		out.parts[i] = np
	}

	return out
}

// WKT renders p as a MULTIPOLYGON in well-known text.
func (p Polygon) WKT() string {
	if p.IsEmpty() {
		return "MULTIPOLYGON EMPTY"
	}
	var sb strings.Builder
	sb.WriteString("MULTIPOLYGON(")
	for i, pt := range p.parts {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('(')
		writeRingWKT(&sb, pt.shell)
		for _, h := range pt.holes {
			sb.WriteByte(',')
			writeRingWKT(&sb, h)
		}
		sb.WriteByte(')')
	}
	sb.WriteByte(')')

	return sb.String()
}

func writeRingWKT(sb *strings.Builder, ring []curve.Point) {
	sb.WriteByte('(')
	for i := 0; i <= len(ring); i++ {
		v := ring[i%len(ring)]
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(v.X, 'f', -1, 64))
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(v.Y, 'f', -1, 64))
	}
	sb.WriteByte(')')
}
