package geometry

import (
	"errors"
	"fmt"

	"github.com/peterstace/simplefeatures/geom"
	"honnef.co/go/curve"
)

// ErrOverlay indicates a failed boolean overlay.
var ErrOverlay = errors.New("geometry: overlay failed")

// overlapEpsilon is the minimal area counted as a real overlap.
const overlapEpsilon = 1e-9

type overlayFunc func(a, b geom.Geometry) (geom.Geometry, error)

// Intersection returns a ∩ b.
func Intersection(a, b Polygon) (Polygon, error) {
	if a.IsEmpty() || b.IsEmpty() {
		return Polygon{}, nil
	}

	return overlay("Intersection", a, b, geom.Intersection)
}

// Difference returns a − b.
func Difference(a, b Polygon) (Polygon, error) {
	if a.IsEmpty() {
		return Polygon{}, nil
	}
	if b.IsEmpty() {
		return a, nil
	}

	return overlay("Difference", a, b, geom.Difference)
}

// Union returns a ∪ b with overlapping parts dissolved.
func Union(a, b Polygon) (Polygon, error) {
	if a.IsEmpty() {
		return b, nil
	}
	if b.IsEmpty() {
		return a, nil
	}

	return overlay("Union", a, b, geom.Union)
}

// Overlaps reports whether a ∩ b has positive area.
func Overlaps(a, b Polygon) (bool, error) {
	if a.IsEmpty() || b.IsEmpty() {
		return false, nil
	}
	// bounding boxes first: most region pairs are far apart
	ra, rb := a.BoundingBox(), b.BoundingBox()
	if ra.MaxX() < rb.MinX() || rb.MaxX() < ra.MinX() || ra.MaxY() < rb.MinY() || rb.MaxY() < ra.MinY() {
		return false, nil
	}
	in, err := Intersection(a, b)
	if err != nil {
		return false, fmt.Errorf("Overlaps: %w", err)
	}

	return in.Area() > overlapEpsilon, nil
}

func overlay(name string, a, b Polygon, fn overlayFunc) (Polygon, error) {
	ga, err := geom.UnmarshalWKT(a.WKT())
	if err != nil {
		return Polygon{}, fmt.Errorf("%s: first operand: %v: %w", name, err, ErrOverlay)
	}
	gb, err := geom.UnmarshalWKT(b.WKT())
	if err != nil {
		return Polygon{}, fmt.Errorf("%s: second operand: %v: %w", name, err, ErrOverlay)
	}
	res, err := fn(ga, gb)
	if err != nil {
		return Polygon{}, fmt.Errorf("%s: %v: %w", name, err, ErrOverlay)
	}

	return fromGeometry(res), nil
}

// fromGeometry keeps the areal parts of g.
func fromGeometry(g geom.Geometry) Polygon {
	var out Polygon
	if g.IsEmpty() {
		return out
	}
	switch g.Type() {
	case geom.TypePolygon:
		if pg, ok := g.AsPolygon(); ok {
			out.addPolygon(pg)
		}
	case geom.TypeMultiPolygon:
		mp, ok := g.AsMultiPolygon()
		if !ok {
			break
		}
		for i := 0; i < mp.NumPolygons(); i++ {
			out.addPolygon(mp.PolygonN(i))
		}
	case geom.TypeGeometryCollection:
		gc, ok := g.AsGeometryCollection()
		if !ok {
			break
		}
		for i := 0; i < gc.NumGeometries(); i++ {
			out = Merge(out, fromGeometry(gc.GeometryN(i)))
		}
	}

	return out
}

func (p *Polygon) addPolygon(sp geom.Polygon) {
	if sp.IsEmpty() {
		return
	}
	shell := cleanRing(ringPoints(sp.ExteriorRing()))
	if shell == nil {
		return
	}
	pt := part{shell: shell}
	for i := 0; i < sp.NumInteriorRings(); i++ {
		if h := cleanRing(ringPoints(sp.InteriorRingN(i))); h != nil {
			pt.holes = append(pt.holes, h)
		}
	}
	p.parts = append(p.parts, pt)
}

func ringPoints(ls geom.LineString) []curve.Point {
	seq := ls.Coordinates()
	n := seq.Length()
	out := make([]curve.Point, 0, n)
	for i := 0; i < n; i++ {
		xy := seq.GetXY(i)
		out = append(out, curve.Pt(xy.X, xy.Y))
	}

	return out
}
