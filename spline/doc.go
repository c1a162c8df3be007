// Package spline fits a closed, C2-continuous cubic Bézier spline through a
// ring of knots.
//
// ControlPoints solves the cyclic linear system for the first control point
// of every segment and derives the second ones; Smooth turns the result into
// a closed curve.BezPath.
package spline
