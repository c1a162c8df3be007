package layout_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/icurves/description"
	"github.com/katalvlaran/icurves/diagram"
	"github.com/katalvlaran/icurves/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"honnef.co/go/curve"
)

func create(t *testing.T, informal string, opts ...layout.Option) *layout.Diagram {
	t.Helper()
	out, err := layout.NewCreator(opts...).Create(context.Background(), description.MustParse(informal))
	require.NoError(t, err)

	return out
}

func reportFor(t *testing.T, out *layout.Diagram, label description.Curve) layout.StepReport {
	t.Helper()
	for _, s := range out.Steps {
		if s.Added == label {
			return s
		}
	}
	t.Fatalf("no step adds %s", label)

	return layout.StepReport{}
}

func TestCreate_Venn3(t *testing.T) {
	out := create(t, "a b c ab ac bc abc")

	require.Len(t, out.Curves, 3)
	for _, c := range out.Curves {
		assert.IsType(t, &diagram.Circle{}, c)
	}
	assert.Len(t, out.Regions, 8)
	assert.Empty(t, out.Shaded)
	for z, r := range out.Regions {
		assert.False(t, r.Polygon().IsEmpty(), "zone %s", z)
	}

	methods := map[layout.Method]int{}
	for _, s := range out.Steps {
		methods[s.Method]++
	}
	assert.Equal(t, map[layout.Method]int{
		layout.MethodBase:           1,
		layout.MethodSinglePiercing: 1,
		layout.MethodDoublePiercing: 1,
	}, methods)
}

func TestCreate_TwoOverlapping(t *testing.T) {
	out := create(t, "a b ab")

	require.Len(t, out.Curves, 2)
	require.Len(t, out.Regions, 4)
	for _, labels := range []string{"", "a", "b", "ab"} {
		r, ok := out.Regions[zone(labels)]
		require.True(t, ok, "zone %q", labels)
		assert.Greater(t, r.Polygon().Area(), 0.0, "zone %q", labels)
	}
	a, ok := out.CurveByLabel("a")
	require.True(t, ok)
	b, _ := out.CurveByLabel("b")
	_, ok = out.CurveByLabel("z")
	assert.False(t, ok)

	assert.True(t, a.Polygon().Contains(out.Regions[zone("ab")].Center()))
	assert.True(t, b.Polygon().Contains(out.Regions[zone("ab")].Center()))
}

func TestCreate_Disjoint(t *testing.T) {
	out := create(t, "a b")

	require.Len(t, out.Curves, 2)
	assert.Len(t, out.Regions, 3)
	assert.Empty(t, out.Shaded)
	assert.Equal(t, layout.MethodNested, out.Steps[1].Method)
}

func TestCreate_Nested(t *testing.T) {
	out := create(t, "a ab")

	require.Len(t, out.Curves, 2)
	b := reportFor(t, out, "b")
	assert.Equal(t, layout.MethodNested, b.Method)

	inner, _ := out.CurveByLabel("b")
	outer, _ := out.CurveByLabel("a")
	c := inner.(*diagram.Circle)
	assert.True(t, outer.Polygon().Contains(c.Center))
	assert.Greater(t, out.Regions[zone("a")].Polygon().Area(), 0.0)
}

func TestCreate_SinglePiercing(t *testing.T) {
	out := create(t, "a b c ab ac")

	require.Len(t, out.Curves, 3)
	report := reportFor(t, out, "b")
	require.Equal(t, layout.MethodSinglePiercing, report.Method)
	require.Len(t, report.Split, 2)

	pierced, _ := out.CurveByLabel("b")
	circle, ok := pierced.(*diagram.Circle)
	require.True(t, ok)

	// rebuild the diagram as it was before b was added
	var before []diagram.Curve
	for _, c := range out.Curves {
		if c.Label() != "b" {
			before = append(before, c)
		}
	}
	opts := diagram.DefaultOptions()
	arena := diagram.NewArena(report.Index, description.MustParse("a c ac"), before, opts)

	split := map[description.Region]bool{}
	for _, z := range report.Split {
		split[z] = true
		r, ok := arena.Region(z)
		require.True(t, ok)
		assert.InDelta(t, 0.0, r.Polygon().BoundaryDistance(circle.Center), 1e-6, "center off %s", z)
	}
	for _, r := range arena.Regions() {
		if split[r.Zone] {
			continue
		}
		assert.LessOrEqual(t, 2*circle.Radius, r.Polygon().BoundaryDistance(circle.Center)+1e-6, "radius reaches %s", r.Zone)
	}
}

func TestCreate_CycleReembedding(t *testing.T) {
	out := create(t, "a b c ab ac bc", layout.WithKeepMED())

	require.Len(t, out.Curves, 3)
	a := reportFor(t, out, "a")
	assert.Equal(t, layout.MethodCycleDoublePiercing, a.Method)
	assert.Greater(t, a.CycleLength, 3)
	require.NotNil(t, out.MED)

	assert.Len(t, out.Regions, 7)
	assert.Len(t, out.Regions, 8-len(out.Shaded))
	for _, s := range out.Shaded {
		assert.False(t, out.Description.IncludesZone(s.Zone))
	}
}

// TestCreate_CyclePath adds the fourth Venn curve through all eight zones,
// which no circle can do, so it is routed as a path around the dual cycle.
func TestCreate_CyclePath(t *testing.T) {
	venn4, err := description.Example("Venn-4")
	require.NoError(t, err)

	tests := []struct {
		name   string
		smooth bool
	}{
		{"smoothed", true},
		{"polyline", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			out, err := layout.NewCreator(
				layout.WithSmooth(tc.smooth),
				layout.WithLogger(zap.New(core)),
			).Create(context.Background(), venn4)
			require.NoError(t, err)
			require.Len(t, out.Curves, 4)

			last := out.Steps[len(out.Steps)-1]
			require.Len(t, last.Split, 8)
			assert.Equal(t, layout.MethodCycle, last.Method)
			assert.GreaterOrEqual(t, last.CycleLength, 8)

			c, ok := out.CurveByLabel(last.Added)
			require.True(t, ok)
			path, ok := c.(*diagram.Path)
			require.True(t, ok, "curve %s is %T", last.Added, c)

			var cubics int
			for el := range path.Outline().Elements() {
				if el.Kind == curve.CubicToKind {
					cubics++
				}
			}
			switch {
			case !tc.smooth:
				assert.Zero(t, cubics)
			case logs.FilterMessage("smoothing failed").Len() == 0:
				assert.Positive(t, cubics)
			}

			assert.Empty(t, out.Shaded)
			require.Len(t, out.Regions, venn4.NumZones())
			for _, z := range venn4.Zones() {
				r, ok := out.Regions[z]
				require.True(t, ok, "zone %s", z)
				assert.Greater(t, r.Polygon().Area(), 0.0, "zone %s", z)
			}
		})
	}
}

func TestCreate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := layout.NewCreator().Create(ctx, description.MustParse("a b c ab ac bc"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestCreate_FallbackIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	out := create(t, "a b ab", layout.WithLogger(zap.New(core)))
	require.Len(t, out.Curves, 2)

	entries := logs.FilterField(zap.String("fallback", "base-radius")).All()
	assert.NotEmpty(t, entries)
}

func TestNewCreator_Options(t *testing.T) {
	c := layout.NewCreator(
		layout.WithBaseRadius(10),
		layout.WithRing(8, 50),
		layout.WithParallel(2),
		layout.WithSmooth(false),
		layout.WithTieBreak(diagram.TieBreakCentroid),
		layout.WithStrategy(nil),
		layout.WithLogger(nil),
	)
	cfg := c.Config()
	assert.Equal(t, 10.0, cfg.Geometry.BaseRadius)
	assert.Equal(t, 8, cfg.MED.RingSize)
	assert.Equal(t, 50.0, cfg.MED.RingMargin)
	assert.True(t, cfg.MED.Parallel)
	assert.Equal(t, 2, cfg.MED.Workers)
	assert.False(t, cfg.Smooth)
	assert.Equal(t, diagram.TieBreakCentroid, cfg.Geometry.TieBreak)
	assert.NotNil(t, cfg.Strategy)
	assert.NotNil(t, cfg.Logger)
}

func zone(labels string) description.Region {
	var cs []description.Curve
	for _, ch := range labels {
		cs = append(cs, description.Curve(string(ch)))
	}

	return description.NewRegion(cs...)
}
