package diagram

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/icurves/description"
	"github.com/katalvlaran/icurves/geometry"
	"go.uber.org/zap"
	"honnef.co/go/curve"
)

// Region is a concrete zone: the part of the bounding box inside every
// containing curve and outside every excluding one.
type Region struct {
	// ID is unique within the arena that built the region.
	ID int

	Zone       description.Region
	Containing []Curve
	Excluding  []Curve

	opts Options

	polyOnce sync.Once
	poly     geometry.Polygon

	centerOnce sync.Once
	center     curve.Point
}

// NewRegion binds zone to curves: curves whose label belongs to zone contain
// it, all others exclude it. Curve order is preserved.
func NewRegion(id int, zone description.Region, curves []Curve, opts Options) *Region {
	r := &Region{ID: id, Zone: zone, opts: opts}
	for _, c := range curves {
		if zone.Contains(c.Label()) {
			r.Containing = append(r.Containing, c)
		} else {
			r.Excluding = append(r.Excluding, c)
		}
	}

	return r
}

// Polygon returns bbox ∩ containing − excluding. An overlay failure keeps
// the last good intermediate polygon and is logged.
func (r *Region) Polygon() geometry.Polygon {
	r.polyOnce.Do(func() {
		shape := geometry.NewRect(r.opts.BBox)
		step := func(op string, c Curve, fn func(a, b geometry.Polygon) (geometry.Polygon, error)) {
			next, err := fn(shape, c.Polygon())
			if err != nil {
				r.opts.logger().Warn("region overlay failed",
					zap.String("zone", r.Zone.String()),
					zap.String("op", op),
					zap.String("curve", string(c.Label())),
					zap.String("fallback", "keep-previous"),
					zap.Error(err))

				return
			}
			shape = next
		}
		for _, c := range r.Containing {
			step("intersection", c, geometry.Intersection)
		}
		for _, c := range r.Excluding {
			step("difference", c, geometry.Difference)
		}
		r.poly = shape
	})

	return r.poly
}

// Center returns the pole of inaccessibility of the region polygon.
func (r *Region) Center() curve.Point {
	r.centerOnce.Do(func() {
		r.center = geometry.Polylabel(r.Polygon(), r.opts.Precision)
	})

	return r.center
}

// Clearance is the signed distance from Center to the region boundary.
func (r *Region) Clearance() float64 {
	return r.Polygon().SignedDistance(r.Center())
}

// IsOutside reports whether r is the region outside every curve.
func (r *Region) IsOutside() bool { return r.Zone.IsOutside() }

// String implements fmt.Stringer.
func (r *Region) String() string {
	return fmt.Sprintf("Region[%d,%s]", r.ID, r.Zone)
}
