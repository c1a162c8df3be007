package diagram

import (
	"fmt"
	"math"

	"github.com/katalvlaran/icurves/description"
	"github.com/katalvlaran/icurves/geometry"
	"honnef.co/go/curve"
)

// circleTolerance is the accuracy of circle outlines.
const circleTolerance = 0.1

// Curve is a concrete closed curve. The set of cases is closed: Circle and Path.
type Curve interface {
	// Label is the abstract curve this shape draws.
	Label() description.Curve

	// Polygon approximates the enclosed area.
	Polygon() geometry.Polygon

	// Outline is the drawable boundary.
	Outline() curve.BezPath

	sealed()
}

// Circle is a circular curve.
type Circle struct {
	Center curve.Point
	Radius float64

	label description.Curve
	poly  geometry.Polygon
}

// NewCircle builds a circle whose polygon is a regular n-gon with a vertex at
// angle 0. n < 3 means DefaultCircleSegments.
func NewCircle(label description.Curve, center curve.Point, radius float64, n int) *Circle {
	if n < 3 {
		n = DefaultCircleSegments
	}
	pts := make([]curve.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = curve.Pt(center.X+radius*math.Cos(a), center.Y+radius*math.Sin(a))
	}

	return &Circle{Center: center, Radius: radius, label: label, poly: geometry.NewRing(pts)}
}

func (c *Circle) Label() description.Curve   { return c.label }
func (c *Circle) Polygon() geometry.Polygon { return c.poly }
func (c *Circle) sealed()                   {}

// Outline returns the circle as cubic arcs.
func (c *Circle) Outline() curve.BezPath {
	return curve.Circle{Center: c.Center, Radius: c.Radius}.Path(circleTolerance)
}

// String implements fmt.Stringer.
func (c *Circle) String() string {
	return fmt.Sprintf("Circle[%s,(%.1f,%.1f),r=%.1f]", c.label, c.Center.X, c.Center.Y, c.Radius)
}

// Path is a curve with an arbitrary closed outline, typically a smoothed
// cycle of the dual graph.
type Path struct {
	label   description.Curve
	outline curve.BezPath
	poly    geometry.Polygon
}

// NewPath builds a path curve. Its polygon is the first subpath of the
// outline flattened within flatness (non-positive means DefaultFlatness).
func NewPath(label description.Curve, outline curve.BezPath, flatness float64) *Path {
	if flatness <= 0 {
		flatness = DefaultFlatness
	}

	return &Path{label: label, outline: outline, poly: geometry.NewRing(Flatten(outline, flatness))}
}

// Flatten returns the vertices of the first subpath of p within tolerance.
func Flatten(p curve.BezPath, tolerance float64) []curve.Point {
	var pts []curve.Point
	started := false
	for el := range p.Flatten(tolerance) {
		switch el.Kind {
		case curve.MoveToKind:
			if started {
				return pts
			}
			started = true
			pts = append(pts, el.P0)
		case curve.LineToKind:
			pts = append(pts, el.P0)
		case curve.ClosePathKind:
			return pts
		}
	}

	return pts
}

func (p *Path) Label() description.Curve   { return p.label }
func (p *Path) Polygon() geometry.Polygon { return p.poly }
func (p *Path) Outline() curve.BezPath    { return p.outline }
func (p *Path) sealed()                   {}

// String implements fmt.Stringer.
func (p *Path) String() string {
	return fmt.Sprintf("Path[%s,%d elements]", p.label, len(p.outline))
}
