// Package description implements the zone algebra of an Euler diagram:
// curve labels, abstract basic regions (zones) and abstract descriptions.
//
// What:
//
//   - Curve: an opaque, lexicographically ordered label ("a", "b", ...).
//   - Region: an immutable set of curve labels meaning "inside exactly these
//     curves". The empty region Outside lies outside every curve.
//     Region is a comparable value and can be used directly as a map key.
//   - Description: a deduplicated, sorted set of zones plus the set of curves
//     they use. Outside is always a member.
//
// Why:
//
//   - The layout engine reasons about zones symbolically (which zones a new
//     curve must split, which curve separates two adjacent zones) before any
//     geometry exists.
//   - Deterministic ordering everywhere: Regions sort by cardinality first,
//     then by their sorted label sequence, so every tie in the engine breaks
//     the same way on every run.
//
// Informal format:
//
//	"a b c ab ac bc"
//
// Zones are separated by runs of spaces; every character of a zone token is
// one curve label. Outside is implicit. Labels must be letters or digits.
//
// Errors:
//
//   - ErrInvalidLabel  a zone token contains a character that is not a letter or digit.
//   - ErrUnknownExample  Example was called with a name not in the catalogue.
//
// Complexity:
//
//   - NewRegion:        O(k log k) for k labels.
//   - MoveInside/Out:   O(k).
//   - StraddledContour: O(k).
//   - Parse:            O(n log n) over the input length.
package description
