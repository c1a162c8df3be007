package recompose

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/icurves/description"
)

var (
	// ErrCurvePresent indicates the added curve already exists before the step.
	ErrCurvePresent = errors.New("recompose: added curve already present")

	// ErrCurveMissing indicates the added curve does not exist after the step.
	ErrCurveMissing = errors.New("recompose: added curve not present in next description")

	// ErrMatchNotFound indicates a moved zone without a recomposed counterpart.
	ErrMatchNotFound = errors.New("recompose: zone match not found")
)

// Data describes a single curve addition.
type Data struct {
	// Added is the curve added at this step.
	Added description.Curve

	// Split are the zones of the "from" description the new curve splits.
	Split []description.Region

	// New are the zones of the "to" description created by the split.
	New []description.Region
}

// IsNested reports whether the curve splits a single zone.
func (d Data) IsNested() bool { return len(d.Split) == 1 }

// IsSinglePiercing reports whether the curve splits two zones.
func (d Data) IsSinglePiercing() bool { return len(d.Split) == 2 }

// IsMaybeDoublePiercing reports whether the curve splits four zones.
func (d Data) IsMaybeDoublePiercing() bool { return len(d.Split) == 4 }

// String implements fmt.Stringer.
func (d Data) String() string {
	return fmt.Sprintf("R_Data[added=%s,split=%v,new=%v]", d.Added, d.Split, d.New)
}

// Step is one recomposition step. It is produced once and consumed once by
// the layout engine.
type Step struct {
	From description.Description
	To   description.Description
	Data Data
}

// NewStep validates the step contract: Data.Added is absent from from and
// present in to.
func NewStep(from, to description.Description, data Data) (Step, error) {
	if from.IncludesCurve(data.Added) {
		return Step{}, fmt.Errorf("NewStep(%s): %w", data.Added, ErrCurvePresent)
	}
	if !to.IncludesCurve(data.Added) {
		return Step{}, fmt.Errorf("NewStep(%s): %w", data.Added, ErrCurveMissing)
	}

	return Step{From: from, To: to, Data: data}, nil
}

// String implements fmt.Stringer.
func (s Step) String() string {
	return fmt.Sprintf("R_Step[Data=%s,From=%s To=%s]", s.Data, s.From, s.To)
}

// DecompositionStep records the removal of one curve.
type DecompositionStep struct {
	From    description.Description
	To      description.Description
	Removed description.Curve

	// ZonesMoved maps each altered zone of From to its image in To.
	ZonesMoved map[description.Region]description.Region
}

// MovedKeys returns the altered zones of From in zone order.
func (s DecompositionStep) MovedKeys() []description.Region {
	keys := make([]description.Region, 0, len(s.ZonesMoved))
	for k := range s.ZonesMoved {
		keys = append(keys, k)
	}
	description.SortRegions(keys)

	return keys
}
