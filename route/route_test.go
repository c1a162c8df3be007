package route_test

import (
	"testing"

	"github.com/katalvlaran/icurves/description"
	"github.com/katalvlaran/icurves/diagram"
	"github.com/katalvlaran/icurves/geometry"
	"github.com/katalvlaran/icurves/gridgraph"
	"github.com/katalvlaran/icurves/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/curve"
)

func arena(t *testing.T) *diagram.Arena {
	t.Helper()
	opts := diagram.DefaultOptions()
	a := diagram.NewCircle("a", curve.Pt(0, 0), 100, opts.CircleSegments)
	b := diagram.NewCircle("b", curve.Pt(150, 0), 100, opts.CircleSegments)

	return diagram.NewArena(2, description.MustParse("a b ab"), []diagram.Curve{a, b}, opts)
}

func region(t *testing.T, a *diagram.Arena, labels ...description.Curve) *diagram.Region {
	t.Helper()
	r, ok := a.Region(description.NewRegion(labels...))
	require.True(t, ok)

	return r
}

func TestRoute_EndpointsAndInterior(t *testing.T) {
	ar := arena(t)
	ra, rab := region(t, ar, "a"), region(t, ar, "a", "b")

	opts := route.DefaultOptions()
	opts.Downsample = 2
	pts, err := route.Route(ra, rab, opts)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(pts), 2)

	assert.Equal(t, ra.Center(), pts[0])
	assert.Equal(t, rab.Center(), pts[len(pts)-1])

	union, err := geometry.Union(ra.Polygon(), rab.Polygon())
	require.NoError(t, err)
	for _, p := range pts[1 : len(pts)-1] {
		assert.True(t, union.Contains(p), "interior point %v leaves the union", p)
	}
}

func TestRoute_DisconnectedUnion(t *testing.T) {
	ar := arena(t)
	// the two crescents only touch at the circle intersections
	_, err := route.Route(region(t, ar, "a"), region(t, ar, "b"), route.DefaultOptions())
	require.ErrorIs(t, err, route.ErrRoutingFailed)
	require.ErrorIs(t, err, gridgraph.ErrNoPath)
}

func TestOptions_ZeroValueUsesDefaults(t *testing.T) {
	ar := arena(t)
	pts, err := route.Route(region(t, ar, "a"), region(t, ar, "a", "b"), route.Options{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(pts), 2)
}
