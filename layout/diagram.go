package layout

import (
	"fmt"
	"time"

	"github.com/katalvlaran/icurves/description"
	"github.com/katalvlaran/icurves/diagram"
	"github.com/katalvlaran/icurves/med"
)

// Method tells how a step placed its curve.
type Method int

const (
	// MethodBase is the first circle.
	MethodBase Method = iota
	// MethodSinglePiercing is a circle through the meeting point of two zones.
	MethodSinglePiercing
	// MethodDoublePiercing is a circle through the meeting point of four zones.
	MethodDoublePiercing
	// MethodNested is a circle inside a single zone.
	MethodNested
	// MethodCycle is a path along a dual cycle.
	MethodCycle
	// MethodCycleSinglePiercing is a dual cycle of two zones re-embedded as a piercing circle.
	MethodCycleSinglePiercing
	// MethodCycleDoublePiercing is a dual cycle of four zones re-embedded as a piercing circle.
	MethodCycleDoublePiercing
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case MethodBase:
		return "base"
	case MethodSinglePiercing:
		return "single-piercing"
	case MethodDoublePiercing:
		return "double-piercing"
	case MethodNested:
		return "nested"
	case MethodCycle:
		return "cycle"
	case MethodCycleSinglePiercing:
		return "cycle/single-piercing"
	case MethodCycleDoublePiercing:
		return "cycle/double-piercing"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// StepReport records how one curve was added.
type StepReport struct {
	Index  int
	Added  description.Curve
	Split  []description.Region
	Method Method

	// CycleLength is the node count of the dual cycle, 0 when none was used.
	CycleLength int

	Duration time.Duration
}

// Diagram is the result of a layout.
type Diagram struct {
	Description description.Description

	// Curves in the order they were added.
	Curves []diagram.Curve

	// Regions maps every zone of Description, the outside included, to its
	// concrete region.
	Regions map[description.Region]*diagram.Region

	// Shaded lists the regions created during embedding that Description
	// does not ask for.
	Shaded []*diagram.Region

	Steps []StepReport

	// Arena is the final set of regions, shaded ones included.
	Arena *diagram.Arena

	// MED is the last dual graph built, when KeepMED is set.
	MED *med.MED
}

// CurveByLabel returns the curve drawn for label.
func (d *Diagram) CurveByLabel(label description.Curve) (diagram.Curve, bool) {
	for _, c := range d.Curves {
		if c.Label() == label {
			return c, true
		}
	}

	return nil, false
}
