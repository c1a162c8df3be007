package geometry_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/icurves/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/curve"
)

func square(x0, y0, side float64) geometry.Polygon {
	return geometry.NewRect(curve.Rect{X0: x0, Y0: y0, X1: x0 + side, Y1: y0 + side})
}

func TestNewPolygon_Cleaning(t *testing.T) {
	p := geometry.NewRing([]curve.Point{
		curve.Pt(0, 0), curve.Pt(0, 0), curve.Pt(4, 0), curve.Pt(4, 4), curve.Pt(0, 4), curve.Pt(0, 0),
	})
	require.False(t, p.IsEmpty())
	assert.Len(t, p.Vertices(), 4)
	assert.InDelta(t, 16.0, p.Area(), 1e-9)

	degenerate := geometry.NewRing([]curve.Point{curve.Pt(0, 0), curve.Pt(1, 1)})
	assert.True(t, degenerate.IsEmpty())
	assert.Equal(t, "MULTIPOLYGON EMPTY", degenerate.WKT())
}

func TestPolygon_AreaCentroidWithHole(t *testing.T) {
	shell := []curve.Point{curve.Pt(0, 0), curve.Pt(10, 0), curve.Pt(10, 10), curve.Pt(0, 10)}
	hole := []curve.Point{curve.Pt(1, 1), curve.Pt(1, 3), curve.Pt(3, 3), curve.Pt(3, 1)}
	p := geometry.NewPolygon(shell, hole)

	assert.InDelta(t, 96.0, p.Area(), 1e-9)
	c := p.Centroid()
	// the hole pulls the centroid towards (10, 10)
	assert.Greater(t, c.X, 5.0)
	assert.Greater(t, c.Y, 5.0)

	assert.False(t, p.Contains(curve.Pt(2, 2)), "inside hole")
	assert.True(t, p.Contains(curve.Pt(7, 7)))
	assert.InDelta(t, 1.0, p.BoundaryDistance(curve.Pt(2, 2)), 1e-9)
	assert.InDelta(t, -1.0, p.SignedDistance(curve.Pt(2, 2)), 1e-9)
	assert.InDelta(t, 3.0, p.SignedDistance(curve.Pt(7, 7)), 1e-9)
}

func TestPolygon_TranslateAndBox(t *testing.T) {
	p := square(0, 0, 2).Translate(3, -1)
	box := p.BoundingBox()
	assert.Equal(t, 3.0, box.MinX())
	assert.Equal(t, -1.0, box.MinY())
	assert.Equal(t, 5.0, box.MaxX())
	assert.Equal(t, 1.0, box.MaxY())
}

func TestOverlay(t *testing.T) {
	a := square(0, 0, 10)
	b := square(5, 5, 10)

	in, err := geometry.Intersection(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, in.Area(), 1e-6)

	diff, err := geometry.Difference(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 75.0, diff.Area(), 1e-6)

	u, err := geometry.Union(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 175.0, u.Area(), 1e-6)
	assert.Equal(t, 1, u.NumParts())

	// carving a hole keeps it as an interior ring
	holed, err := geometry.Difference(square(0, 0, 10), square(4, 4, 2))
	require.NoError(t, err)
	assert.InDelta(t, 96.0, holed.Area(), 1e-6)
	assert.False(t, holed.Contains(curve.Pt(5, 5)))
	var holes int
	for _, r := range holed.Rings() {
		if r.Hole {
			holes++
		}
	}
	assert.Equal(t, 1, holes)
}

// TestOverlay_MultiPartResults covers multipolygon and non-areal overlay results.
func TestOverlay_MultiPartResults(t *testing.T) {
	u, err := geometry.Union(square(0, 0, 1), square(5, 5, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, u.NumParts())
	assert.InDelta(t, 2.0, u.Area(), 1e-9)

	// a band through the middle cuts the square in two
	band := geometry.NewRect(curve.Rect{X0: -1, Y0: 4, X1: 11, Y1: 6})
	split, err := geometry.Difference(square(0, 0, 10), band)
	require.NoError(t, err)
	assert.Equal(t, 2, split.NumParts())
	assert.InDelta(t, 80.0, split.Area(), 1e-6)

	// a shared edge is not an areal intersection
	edge, err := geometry.Intersection(square(0, 0, 10), square(10, 0, 10))
	require.NoError(t, err)
	assert.True(t, edge.IsEmpty())

	// nor is a single shared corner
	corner, err := geometry.Intersection(square(0, 0, 1), square(1, 1, 1))
	require.NoError(t, err)
	assert.True(t, corner.IsEmpty())
}

func TestOverlay_EmptyOperands(t *testing.T) {
	a := square(0, 0, 1)

	in, err := geometry.Intersection(a, geometry.Empty())
	require.NoError(t, err)
	assert.True(t, in.IsEmpty())

	diff, err := geometry.Difference(a, geometry.Empty())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, diff.Area(), 1e-9)

	u, err := geometry.Union(geometry.Empty(), a)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, u.Area(), 1e-9)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b geometry.Polygon
		want bool
	}{
		{"overlapping", square(0, 0, 10), square(5, 5, 10), true},
		{"touching edge", square(0, 0, 10), square(10, 0, 10), false},
		{"far apart", square(0, 0, 1), square(100, 100, 1), false},
		{"nested", square(0, 0, 10), square(2, 2, 1), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := geometry.Overlaps(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSegmentCrosses(t *testing.T) {
	p := square(0, 0, 10)
	assert.True(t, geometry.SegmentCrosses(curve.Pt(5, 5), curve.Pt(15, 5), p))
	assert.False(t, geometry.SegmentCrosses(curve.Pt(2, 2), curve.Pt(8, 8), p))
	assert.True(t, geometry.SegmentsIntersect(curve.Pt(0, 0), curve.Pt(2, 0), curve.Pt(1, 0), curve.Pt(3, 0)))
	assert.InDelta(t, 5.0, geometry.SegmentDistance(curve.Pt(5, 5), curve.Pt(0, 0), curve.Pt(10, 0)), 1e-9)
}

func TestPolylabel(t *testing.T) {
	// square: the center
	c := geometry.Polylabel(square(0, 0, 100), 0.5)
	assert.InDelta(t, 50.0, c.X, 1.0)
	assert.InDelta(t, 50.0, c.Y, 1.0)

	// L shape: the pole sits in the thick corner, never in the notch
	l := geometry.NewRing([]curve.Point{
		curve.Pt(0, 0), curve.Pt(100, 0), curve.Pt(100, 30), curve.Pt(30, 30), curve.Pt(30, 100), curve.Pt(0, 100),
	})
	pl := geometry.Polylabel(l, 0)
	require.True(t, l.Contains(pl))
	// balanced between both outer walls and the notch vertex (30, 30)
	assert.InDelta(t, 30*math.Sqrt2/(1+math.Sqrt2), l.SignedDistance(pl), 1.5)

	// degenerate box
	flat := geometry.Empty()
	assert.Equal(t, curve.Point{}, geometry.Polylabel(flat, 1))
}

func TestPolylabel_Circleish(t *testing.T) {
	var pts []curve.Point
	for i := 0; i < 64; i++ {
		a := 2 * math.Pi * float64(i) / 64
		pts = append(pts, curve.Pt(300+200*math.Cos(a), 400+200*math.Sin(a)))
	}
	c := geometry.Polylabel(geometry.NewRing(pts), 1)
	assert.InDelta(t, 300.0, c.X, 2)
	assert.InDelta(t, 400.0, c.Y, 2)
}
