package description

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// ErrInvalidLabel is returned by Parse for a zone token with a character that
// is neither a letter nor a digit.
var ErrInvalidLabel = errors.New("description: invalid curve label")

// Description is an abstract description D = (K, B): the curves K and the
// zones B a diagram must realize. It is immutable once built.
type Description struct {
	curves []Curve
	zones  []Region
}

// NewDescription builds a description from zones. Outside is always added,
// duplicates are removed and the curve set is derived from the zones.
// Complexity: O(Z·k + Z log Z).
func NewDescription(zones ...Region) Description {
	all := append([]Region{Outside}, zones...)
	all = DistinctRegions(all)
	SortRegions(all)

	set := make(map[Curve]struct{})
	for _, z := range all {
		for _, l := range z.Labels() {
			set[l] = struct{}{}
		}
	}
	curves := make([]Curve, 0, len(set))
	for c := range set {
		curves = append(curves, c)
	}
	sort.Slice(curves, func(i, j int) bool { return curves[i] < curves[j] })

	return Description{curves: curves, zones: all}
}

// Parse reads the informal format "a b ab". Each space separated token is a
// zone and each character of a token is a curve label.
func Parse(informal string) (Description, error) {
	var zones []Region
	for _, token := range strings.Fields(informal) {
		labels := make([]Curve, 0, len(token))
		for _, ch := range token {
			if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) {
				return Description{}, fmt.Errorf("Parse: zone %q: %w", token, ErrInvalidLabel)
			}
			labels = append(labels, Curve(string(ch)))
		}
		zones = append(zones, NewRegion(labels...))
	}

	return NewDescription(zones...), nil
}

// MustParse is like Parse but panics on error. It is meant for literals.
func MustParse(informal string) Description {
	d, err := Parse(informal)
	if err != nil {
		panic(err)
	}

	return d
}

// Curves returns the sorted curve labels of d.
func (d Description) Curves() []Curve {
	return append([]Curve(nil), d.curves...)
}

// Zones returns the sorted zones of d, Outside first.
func (d Description) Zones() []Region {
	return append([]Region(nil), d.zones...)
}

// NumCurves returns |K|.
func (d Description) NumCurves() int { return len(d.curves) }

// NumZones returns |B|, Outside included.
func (d Description) NumZones() int { return len(d.zones) }

// IncludesCurve reports whether c is one of d's curves.
func (d Description) IncludesCurve(c Curve) bool {
	i := sort.Search(len(d.curves), func(i int) bool { return d.curves[i] >= c })

	return i < len(d.curves) && d.curves[i] == c
}

// IncludesZone reports whether z is one of d's zones.
func (d Description) IncludesZone(z Region) bool {
	for _, x := range d.zones {
		if x == z {
			return true
		}
	}

	return false
}

// NumZonesIn counts the zones of d that lie inside c.
func (d Description) NumZonesIn(c Curve) int {
	n := 0
	for _, z := range d.zones {
		if z.Contains(c) {
			n++
		}
	}

	return n
}

// Informal renders d in the informal format, Outside omitted.
func (d Description) Informal() string {
	parts := make([]string, 0, len(d.zones))
	for _, z := range d.zones {
		if z.IsOutside() {
			continue
		}
		parts = append(parts, z.Informal())
	}

	return strings.Join(parts, " ")
}

// Equal reports whether d and other have the same zones.
func (d Description) Equal(other Description) bool {
	if len(d.zones) != len(other.zones) {
		return false
	}
	for i := range d.zones {
		if d.zones[i] != other.zones[i] {
			return false
		}
	}

	return true
}

// String renders d as a comma separated zone list: "{},{a},{a,b}".
func (d Description) String() string {
	parts := make([]string, len(d.zones))
	for i, z := range d.zones {
		parts[i] = z.String()
	}

	return strings.Join(parts, ",")
}
