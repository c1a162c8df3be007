package recompose

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/icurves/description"
)

// ErrUnknownStrategy is returned by ParseStrategy for an unknown name.
var ErrUnknownStrategy = errors.New("recompose: unknown decomposition strategy")

// Strategy picks the curves to remove next from a description.
// An empty result ends the decomposition.
type Strategy interface {
	CurvesToRemove(d description.Description) []description.Curve
	Name() string
}

// StrategyFunc adapts a function to Strategy.
type StrategyFunc struct {
	Label string
	Fn    func(d description.Description) []description.Curve
}

// CurvesToRemove implements Strategy.
func (s StrategyFunc) CurvesToRemove(d description.Description) []description.Curve { return s.Fn(d) }

// Name implements Strategy.
func (s StrategyFunc) Name() string { return s.Label }

// Innermost removes the single curve with the fewest zones inside.
// Ties keep the earliest curve in label order.
var Innermost Strategy = StrategyFunc{Label: "innermost", Fn: innermost}

// PiercedFirst removes every piercing curve with the minimal zone count,
// falling back to all curves with the minimal zone count.
var PiercedFirst Strategy = StrategyFunc{Label: "pierced-first", Fn: piercedFirst}

// ParseStrategy resolves a strategy by name ("innermost", "pierced-first").
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "innermost":
		return Innermost, nil
	case "pierced-first", "pierced_first", "piercing":
		return PiercedFirst, nil
	default:
		return nil, fmt.Errorf("ParseStrategy(%q): %w", name, ErrUnknownStrategy)
	}
}

func innermost(d description.Description) []description.Curve {
	curves := d.Curves()
	if len(curves) == 0 {
		return nil
	}
	best := curves[0]
	for _, c := range curves[1:] {
		if d.NumZonesIn(c) < d.NumZonesIn(best) {
			best = c
		}
	}

	return []description.Curve{best}
}

func piercedFirst(d description.Description) []description.Curve {
	pick := func(filter func(description.Curve) bool) []description.Curve {
		var (
			result []description.Curve
			bestNZ = int(^uint(0) >> 1)
		)
		for _, c := range d.Curves() {
			if !filter(c) {
				continue
			}
			nz := d.NumZonesIn(c)
			switch {
			case nz < bestNZ:
				result = []description.Curve{c}
				bestNZ = nz
			case nz == bestNZ:
				result = append(result, c)
			}
		}

		return result
	}

	if result := pick(func(c description.Curve) bool { return IsPiercingCurve(c, d) }); len(result) > 0 {
		return result
	}

	return pick(func(description.Curve) bool { return true })
}

// IsPiercingCurve reports whether the zones inside c form a 2^n cluster:
// every zone inside c has a partner across c, all of them are supersets of
// the smallest one and together they use exactly n extra curves.
func IsPiercingCurve(c description.Curve, d description.Description) bool {
	zones := d.Zones()
	var inside []description.Region

	// Stage 1: every zone in c needs a partner zone separated only by c
	for _, z := range zones {
		if !z.Contains(c) {
			continue
		}
		inside = append(inside, z)
		partnered := false
		for _, z2 := range zones {
			if s, ok := z.StraddledContour(z2); ok && s == c {
				partnered = true
				break
			}
		}
		if !partnered {
			return false
		}
	}

	// Stage 2: 2^n zones
	power := powerOfTwo(len(inside))
	if power < 0 {
		return false
	}

	// Stage 3: all zones are supersets of the smallest one
	smallest := inside[0]
	for _, z := range inside[1:] {
		if z.Len() < smallest.Len() {
			smallest = z
		}
	}
	for _, z := range inside {
		for _, l := range smallest.Labels() {
			if !z.Contains(l) {
				return false
			}
		}
	}

	// Stage 4: exactly n curves beyond the smallest zone
	added := make(map[description.Curve]struct{})
	for _, z := range inside {
		for _, l := range z.Labels() {
			if smallest.Contains(l) {
				continue
			}
			added[l] = struct{}{}
			if len(added) > power {
				return false
			}
		}
	}

	return true
}

// powerOfTwo returns log2(n) or -1 when n is not a positive power of two.
func powerOfTwo(n int) int {
	if n <= 0 {
		return -1
	}
	result := 0
	for n%2 == 0 {
		result++
		n /= 2
	}
	if n != 1 {
		return -1
	}

	return result
}
