package diagram

import (
	"github.com/katalvlaran/icurves/description"
)

// Arena is the concrete state after one recomposition step: the curves
// drawn so far and the regions they produce. It is never mutated; the layout
// builds a new one after each curve addition.
type Arena struct {
	step    int
	curves  []Curve
	byLabel map[description.Curve]Curve
	regions []*Region
	byZone  map[description.Region]*Region
	outside *Region
	opts    Options
}

// NewArena builds the regions of every zone of d. Region ids start at 1 in
// zone order; the outside region has id 0.
// Complexity: O(Z·K) plus lazy overlay work.
func NewArena(step int, d description.Description, curves []Curve, opts Options) *Arena {
	a := &Arena{
		step:    step,
		curves:  append([]Curve(nil), curves...),
		byLabel: make(map[description.Curve]Curve, len(curves)),
		byZone:  make(map[description.Region]*Region, d.NumZones()),
		opts:    opts,
	}
	for _, c := range curves {
		a.byLabel[c.Label()] = c
	}
	a.outside = NewRegion(0, description.Outside, a.curves, opts)
	a.byZone[description.Outside] = a.outside

	id := 1
	for _, z := range d.Zones() {
		if z.IsOutside() {
			continue
		}
		r := NewRegion(id, z, a.curves, opts)
		a.regions = append(a.regions, r)
		a.byZone[z] = r
		id++
	}

	return a
}

// Step returns the recomposition step index the arena belongs to.
func (a *Arena) Step() int { return a.step }

// Curves returns the curves in drawing order.
func (a *Arena) Curves() []Curve { return append([]Curve(nil), a.curves...) }

// Curve looks up a curve by label.
func (a *Arena) Curve(label description.Curve) (Curve, bool) {
	c, ok := a.byLabel[label]

	return c, ok
}

// Regions returns every region except the outside one, in zone order.
func (a *Arena) Regions() []*Region { return append([]*Region(nil), a.regions...) }

// AllRegions returns the outside region followed by Regions.
func (a *Arena) AllRegions() []*Region {
	return append([]*Region{a.outside}, a.regions...)
}

// Outside returns the region outside every curve.
func (a *Arena) Outside() *Region { return a.outside }

// Region looks up the region of zone.
func (a *Arena) Region(zone description.Region) (*Region, bool) {
	r, ok := a.byZone[zone]

	return r, ok
}

// Options returns the geometric settings of the arena.
func (a *Arena) Options() Options { return a.opts }

// Adjacent is the package Adjacent with the arena's probe offset. Overlay
// failures count as not adjacent and are logged.
func (a *Arena) Adjacent(r1, r2 *Region) bool {
	ok, err := Adjacent(r1, r2, a.opts.ProbeOffset)
	if err != nil {
		a.opts.logger().Warn("adjacency test failed",
			errFields(r1, r2, err, "not-adjacent")...)

		return false
	}

	return ok
}
