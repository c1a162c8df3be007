package spline_test

import (
	"testing"

	"github.com/katalvlaran/icurves/spline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/curve"
)

var square = []curve.Point{
	curve.Pt(0, 0),
	curve.Pt(100, 0),
	curve.Pt(100, 100),
	curve.Pt(0, 100),
}

func TestControlPoints_SatisfiesSystem(t *testing.T) {
	knots := []curve.Point{
		curve.Pt(0, 0), curve.Pt(120, 10), curve.Pt(150, 90),
		curve.Pt(60, 140), curve.Pt(-20, 70),
	}
	first, second, err := spline.ControlPoints(knots)
	require.NoError(t, err)
	require.Len(t, first, len(knots))
	require.Len(t, second, len(knots))

	n := len(knots)
	for i := 0; i < n; i++ {
		prev, next := first[(i+n-1)%n], first[(i+1)%n]
		k, kn := knots[i], knots[(i+1)%n]
		assert.InDelta(t, 4*k.X+2*kn.X, prev.X+4*first[i].X+next.X, 1e-6, "x row %d", i)
		assert.InDelta(t, 4*k.Y+2*kn.Y, prev.Y+4*first[i].Y+next.Y, 1e-6, "y row %d", i)

		// tangent continuity at every knot
		mid := first[i].Midpoint(second[i])
		assert.InDelta(t, k.X, mid.X, 1e-9)
		assert.InDelta(t, k.Y, mid.Y, 1e-9)
	}
}

func TestControlPoints_TooFewKnots(t *testing.T) {
	_, _, err := spline.ControlPoints(square[:2])
	require.ErrorIs(t, err, spline.ErrTooFewKnots)

	_, err = spline.Smooth(nil)
	require.ErrorIs(t, err, spline.ErrTooFewKnots)
}

func TestSmooth_ClosedThroughKnots(t *testing.T) {
	p, err := spline.Smooth(square)
	require.NoError(t, err)
	require.Len(t, p, len(square)+2)

	assert.Equal(t, curve.MoveToKind, p[0].Kind)
	assert.Equal(t, square[0], p[0].P0)
	for i := 1; i <= len(square); i++ {
		require.Equal(t, curve.CubicToKind, p[i].Kind)
		assert.Equal(t, square[i%len(square)], p[i].P2)
	}
	assert.Equal(t, curve.ClosePathKind, p[len(p)-1].Kind)

	assert.NotZero(t, p.Winding(curve.Pt(50, 50)))
	assert.Zero(t, p.Winding(curve.Pt(500, 50)))
}
