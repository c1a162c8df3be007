package description

import (
	"sort"
	"strings"
)

// Curve is an abstract curve label. Labels compare lexicographically.
type Curve string

// labelSep separates labels inside the encoded form of a Region.
// It cannot occur in a label produced by Parse.
const labelSep = "\x1f"

// Region is an abstract basic region (a zone): the set of curves a point
// of the zone lies inside. The zero value is Outside.
//
// Region stores its labels sorted and deduplicated in an encoded string,
// so two Regions are equal (==) iff their label sets are equal.
type Region struct {
	enc string
}

// Outside is the zone that lies outside every curve.
var Outside = Region{}

// NewRegion builds the zone containing exactly the given labels.
// Duplicates are ignored; empty labels are dropped.
// Complexity: O(k log k).
func NewRegion(labels ...Curve) Region {
	if len(labels) == 0 {
		return Outside
	}
	set := make(map[Curve]struct{}, len(labels))
	for _, l := range labels {
		if l == "" {
			continue
		}
		set[l] = struct{}{}
	}

	return regionFromSet(set)
}

// regionFromSet encodes an already deduplicated label set.
func regionFromSet(set map[Curve]struct{}) Region {
	if len(set) == 0 {
		return Outside
	}
	parts := make([]string, 0, len(set))
	for l := range set {
		parts = append(parts, string(l))
	}
	sort.Strings(parts)

	return Region{enc: strings.Join(parts, labelSep)}
}

// Labels returns the sorted labels of r. The slice is a fresh copy.
func (r Region) Labels() []Curve {
	if r.enc == "" {
		return nil
	}
	parts := strings.Split(r.enc, labelSep)
	out := make([]Curve, len(parts))
	for i, p := range parts {
		out[i] = Curve(p)
	}

	return out
}

// Len returns the number of curves r lies inside.
func (r Region) Len() int {
	if r.enc == "" {
		return 0
	}

	return strings.Count(r.enc, labelSep) + 1
}

// IsOutside reports whether r is the empty zone.
func (r Region) IsOutside() bool { return r.enc == "" }

// Contains reports whether c is one of r's labels.
func (r Region) Contains(c Curve) bool {
	for _, l := range r.Labels() {
		if l == c {
			return true
		}
	}

	return false
}

// MoveInside returns r with c added. r itself is unchanged.
func (r Region) MoveInside(c Curve) Region {
	return NewRegion(append(r.Labels(), c)...)
}

// MoveOutside returns r with c removed. r itself is unchanged.
func (r Region) MoveOutside(c Curve) Region {
	labels := r.Labels()
	out := labels[:0]
	for _, l := range labels {
		if l != c {
			out = append(out, l)
		}
	}

	return NewRegion(out...)
}

// StraddledContour returns the single curve that separates r and other.
// It reports false when both zones have the same size or when they differ
// by anything other than exactly one curve.
// Complexity: O(k).
func (r Region) StraddledContour(other Region) (Curve, bool) {
	if r.Len() == other.Len() {
		return "", false
	}
	bigger, smaller := r, other
	if other.Len() > r.Len() {
		bigger, smaller = other, r
	}
	var (
		diff  Curve
		count int
	)
	for _, l := range bigger.Labels() {
		if !smaller.Contains(l) {
			diff = l
			count++
		}
	}
	// smaller must be a subset of bigger for a single-curve crossing
	if count != 1 || bigger.Len()-smaller.Len() != 1 {
		return "", false
	}

	return diff, true
}

// Compare orders zones by cardinality, then lexicographically by their
// sorted labels. It returns -1, 0 or +1.
func (r Region) Compare(other Region) int {
	if r.Len() != other.Len() {
		if r.Len() < other.Len() {
			return -1
		}

		return 1
	}
	a, b := r.Labels(), other.Labels()
	for i := range a {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}

	return 0
}

// Informal renders r as concatenated labels ("ab"); Outside renders as "".
func (r Region) Informal() string {
	return strings.ReplaceAll(r.enc, labelSep, "")
}

// String renders r as "{a,b}".
func (r Region) String() string {
	return "{" + strings.ReplaceAll(r.enc, labelSep, ",") + "}"
}

// SortRegions sorts zones in place by Compare.
func SortRegions(rs []Region) {
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].Compare(rs[j]) < 0 })
}

// DistinctRegions returns rs without duplicates, keeping first occurrences.
func DistinctRegions(rs []Region) []Region {
	seen := make(map[Region]struct{}, len(rs))
	out := make([]Region, 0, len(rs))
	for _, r := range rs {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}

	return out
}
