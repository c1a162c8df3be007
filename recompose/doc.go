// Package recompose turns an abstract description into an ordered plan of
// curve additions.
//
// Decompose repeatedly removes a curve chosen by a Strategy until no curve
// is left; Recompose walks the decomposition backwards and reports, for
// every curve addition, which zones the new curve splits and which zones
// it creates. Plan chains both.
//
// Strategies:
//
//   - Innermost (default): remove the curve with the fewest zones inside.
//   - PiercedFirst: prefer curves that pierce a 2^n cluster of zones.
//
// Errors:
//
//   - ErrCurvePresent   a step adds a curve that the "from" description already has.
//   - ErrCurveMissing   a step adds a curve that the "to" description lacks.
//   - ErrNotCluster     zones passed to NewCluster are not pairwise adjacent.
//   - ErrUnknownStrategy  ParseStrategy got an unknown name.
//   - ErrMatchNotFound  recomposition could not match a moved zone (inconsistent steps).
package recompose
