package recompose

import (
	"fmt"

	"github.com/katalvlaran/icurves/description"
)

// Decompose removes curves from d, in the order chosen by strategy, until no
// curve is left. A nil strategy means Innermost.
// Complexity: O(K² · Z · k) for K curves and Z zones.
func Decompose(d description.Description, strategy Strategy) []DecompositionStep {
	if strategy == nil {
		strategy = Innermost
	}
	var result []DecompositionStep
	for {
		toRemove := strategy.CurvesToRemove(d)
		if len(toRemove) == 0 {
			break
		}
		progressed := false
		for _, c := range toRemove {
			if !d.IncludesCurve(c) {
				continue
			}
			step := takeStep(d, c)
			result = append(result, step)
			d = step.To
			progressed = true
		}
		if !progressed {
			break
		}
	}

	return result
}

// takeStep moves every zone of d outside c.
func takeStep(d description.Description, c description.Curve) DecompositionStep {
	zones := make([]description.Region, 0, d.NumZones())
	moved := make(map[description.Region]description.Region)
	for _, z := range d.Zones() {
		nz := z.MoveOutside(c)
		zones = append(zones, nz)
		if nz != z {
			moved[z] = nz
		}
	}

	return DecompositionStep{
		From:       d,
		To:         description.NewDescription(zones...),
		Removed:    c,
		ZonesMoved: moved,
	}
}

// Recompose reverses a decomposition into curve additions. The first step
// adds the last removed curve by splitting Outside; every later step splits
// the recomposed zones matched to the zones its decomposition step moved.
func Recompose(dsteps []DecompositionStep) ([]Step, error) {
	n := len(dsteps)
	result := make([]Step, 0, n)
	matched := make(map[description.Region]description.Region)

	for i := n - 1; i >= 0; i-- {
		var (
			step Step
			err  error
		)
		if i == n-1 {
			step, err = recomposeFirst(dsteps[i], matched)
		} else {
			step, err = recomposeNext(dsteps[i], result[len(result)-1], matched)
		}
		if err != nil {
			return nil, fmt.Errorf("Recompose: step %d: %w", n-1-i, err)
		}
		result = append(result, step)
	}

	return result, nil
}

func recomposeFirst(ds DecompositionStep, matched map[description.Region]description.Region) (Step, error) {
	added := ds.Removed
	zone := description.NewRegion(added)

	matched[description.Outside] = description.Outside
	matched[zone] = zone

	return NewStep(ds.To, description.NewDescription(zone), Data{
		Added: added,
		Split: []description.Region{description.Outside},
		New:   []description.Region{zone},
	})
}

func recomposeNext(ds DecompositionStep, previous Step, matched map[description.Region]description.Region) (Step, error) {
	// Stage 1: find the recomposed zones matching the zones moved in decomposition
	var toSplit []description.Region
	inverse := make(map[description.Region]description.Region)
	for _, key := range ds.MovedKeys() {
		movedTo := ds.ZonesMoved[key]
		target, ok := matched[movedTo]
		if !ok {
			return Step{}, fmt.Errorf("zone %s: %w", movedTo, ErrMatchNotFound)
		}
		inverse[target] = movedTo
		toSplit = append(toSplit, target)
	}
	toSplit = description.DistinctRegions(toSplit)

	// Stage 2: split them with the re-added curve
	from := previous.To
	zones := from.Zones()
	added := ds.Removed
	var created []description.Region
	for _, z := range toSplit {
		nz := z.MoveInside(added)
		zones = append(zones, nz)
		created = append(created, nz)

		dz, ok := inverse[z]
		if !ok {
			dz = z
		}
		matched[dz.MoveInside(added)] = nz
	}

	return NewStep(from, description.NewDescription(zones...), Data{
		Added: added,
		Split: toSplit,
		New:   created,
	})
}

// Plan decomposes and recomposes d in one call.
func Plan(d description.Description, strategy Strategy) ([]Step, error) {
	return Recompose(Decompose(d, strategy))
}
