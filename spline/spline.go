package spline

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/icurves/matrix"
	"github.com/katalvlaran/icurves/matrix/ops"
	"honnef.co/go/curve"
)

// MinKnots is the smallest ring ControlPoints accepts.
const MinKnots = 3

// ErrTooFewKnots is returned for rings with fewer than MinKnots knots.
var ErrTooFewKnots = errors.New("spline: too few knots")

// ControlPoints computes the Bézier control points of the closed spline
// through knots.
//
// first[i] solves the cyclic system
//
//	P[i-1] + 4·P[i] + P[i+1] = 4·K[i] + 2·K[i+1]   (indices mod n)
//
// once per axis, and second[i] = 2·K[i] − first[i]. Segment i runs from
// K[i] with controls first[i] and second[i+1] to K[i+1].
//
// Complexity: O(n³) for the dense solve.
func ControlPoints(knots []curve.Point) (first, second []curve.Point, err error) {
	n := len(knots)
	if n < MinKnots {
		return nil, nil, fmt.Errorf("ControlPoints: %d knots: %w", n, ErrTooFewKnots)
	}

	a, err := cyclicMatrix(n)
	if err != nil {
		return nil, nil, fmt.Errorf("ControlPoints: %w", err)
	}
	rx := make([]float64, n)
	ry := make([]float64, n)
	for i := 0; i < n; i++ {
		next := knots[(i+1)%n]
		rx[i] = 4*knots[i].X + 2*next.X
		ry[i] = 4*knots[i].Y + 2*next.Y
	}
	xs, err := ops.Solve(a, rx)
	if err != nil {
		return nil, nil, fmt.Errorf("ControlPoints: x: %w", err)
	}
	ys, err := ops.Solve(a, ry)
	if err != nil {
		return nil, nil, fmt.Errorf("ControlPoints: y: %w", err)
	}

	first = make([]curve.Point, n)
	second = make([]curve.Point, n)
	for i := 0; i < n; i++ {
		first[i] = curve.Pt(xs[i], ys[i])
		second[i] = curve.Pt(2*knots[i].X-xs[i], 2*knots[i].Y-ys[i])
	}

	return first, second, nil
}

// cyclicMatrix builds the n×n matrix with 4 on the diagonal and 1 on the
// cyclic off-diagonals.
func cyclicMatrix(n int) (*matrix.Dense, error) {
	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		_ = a.Set(i, i, 4)
		_ = a.Set(i, (i+1)%n, 1)
		_ = a.Set(i, (i+n-1)%n, 1)
	}

	return a, nil
}

// Smooth returns the closed spline through knots:
// MoveTo(K0), one CubicTo per knot, ClosePath.
func Smooth(knots []curve.Point) (curve.BezPath, error) {
	first, second, err := ControlPoints(knots)
	if err != nil {
		return nil, fmt.Errorf("Smooth: %w", err)
	}
	n := len(knots)

	var p curve.BezPath
	p.MoveTo(knots[0])
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		p.CubicTo(first[i], second[j], knots[j])
	}
	p.ClosePath()

	return p, nil
}
