package diagram

import (
	"go.uber.org/zap"
	"honnef.co/go/curve"
)

// TieBreak selects among equally valid piercing candidates.
type TieBreak int

const (
	// TieBreakClearance prefers the candidate farthest from non-cluster
	// regions (2 regions), or the lowest then leftmost one (4 regions).
	TieBreakClearance TieBreak = iota

	// TieBreakCentroid prefers the candidate nearest the candidates' centroid.
	TieBreakCentroid
)

// String implements fmt.Stringer.
func (t TieBreak) String() string {
	switch t {
	case TieBreakCentroid:
		return "centroid"
	default:
		return "clearance"
	}
}

// Default geometric settings.
const (
	DefaultBBoxExtent     = 10000.0
	DefaultCircleSegments = 64
	DefaultProbeOffset    = 5.0
	DefaultBaseRadius     = 1500.0
	DefaultFlatness       = 1.0
)

// Options configures the concrete geometry of a diagram.
type Options struct {
	// BBox bounds every region, including the outside one.
	BBox curve.Rect

	// Precision is the Polylabel tolerance for region centers.
	Precision float64

	// CircleSegments is the vertex count of circle polygons.
	CircleSegments int

	// Flatness is the tolerance used to flatten Bézier outlines.
	Flatness float64

	// ProbeOffset is the nudge used by the adjacency test.
	ProbeOffset float64

	// BaseRadius sizes the piercing fallback radius.
	BaseRadius float64

	// TieBreak picks among piercing candidates.
	TieBreak TieBreak

	// Logger receives fallback warnings. Never nil after DefaultOptions.
	Logger *zap.Logger
}

// DefaultOptions returns the default settings: bbox [-10000, 10000]², 64-gon
// circles, probe offset 5 and a no-op logger.
func DefaultOptions() Options {
	return Options{
		BBox: curve.Rect{
			X0: -DefaultBBoxExtent, Y0: -DefaultBBoxExtent,
			X1: DefaultBBoxExtent, Y1: DefaultBBoxExtent,
		},
		Precision:      1.0,
		CircleSegments: DefaultCircleSegments,
		Flatness:       DefaultFlatness,
		ProbeOffset:    DefaultProbeOffset,
		BaseRadius:     DefaultBaseRadius,
		TieBreak:       TieBreakClearance,
		Logger:         zap.NewNop(),
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}

	return o.Logger
}
