package recompose_test

import (
	"testing"

	"github.com/katalvlaran/icurves/description"
	"github.com/katalvlaran/icurves/recompose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zone(labels string) description.Region {
	var cs []description.Curve
	for _, ch := range labels {
		cs = append(cs, description.Curve(string(ch)))
	}

	return description.NewRegion(cs...)
}

// TestDecompose_Innermost removes the curve with the fewest zones first.
func TestDecompose_Innermost(t *testing.T) {
	d := description.MustParse("a b c ab ac bc abc")
	steps := recompose.Decompose(d, recompose.Innermost)
	require.Len(t, steps, 3)

	// all curves have 4 zones; ties keep label order
	assert.Equal(t, description.Curve("a"), steps[0].Removed)
	assert.Equal(t, description.Curve("b"), steps[1].Removed)
	assert.Equal(t, description.Curve("c"), steps[2].Removed)
	assert.Equal(t, 0, steps[2].To.NumCurves())
	assert.Equal(t, zone("bc"), steps[0].ZonesMoved[zone("abc")])
}

// TestPlan_Venn2 checks the contract for every recomposition step.
func TestPlan_Venn2(t *testing.T) {
	d := description.MustParse("a b ab")
	steps, err := recompose.Plan(d, nil)
	require.NoError(t, err)
	require.Len(t, steps, 2)

	first := steps[0].Data
	assert.Equal(t, []description.Region{description.Outside}, first.Split)
	assert.True(t, first.IsNested())

	second := steps[1].Data
	assert.True(t, second.IsSinglePiercing())
	assert.ElementsMatch(t, []description.Region{description.Outside, zone(string(first.Added))}, second.Split)
	assert.True(t, steps[1].To.Equal(d))

	for _, s := range steps {
		assert.False(t, s.From.IncludesCurve(s.Data.Added))
		assert.True(t, s.To.IncludesCurve(s.Data.Added))
		require.Len(t, s.Data.New, len(s.Data.Split))
		for i, z := range s.Data.Split {
			assert.Equal(t, z.MoveInside(s.Data.Added), s.Data.New[i])
		}
	}
}

// TestPlan_ReachesDescription: the last step's target holds every zone of the
// input description. Extra zones may survive recomposition, but only ones some
// step created by moving a split zone inside the added curve.
func TestPlan_ReachesDescription(t *testing.T) {
	for _, e := range description.Examples() {
		d := description.MustParse(e.Informal)
		for _, s := range []recompose.Strategy{recompose.Innermost, recompose.PiercedFirst} {
			name := e.Name + "/" + s.Name()
			steps, err := recompose.Plan(d, s)
			require.NoError(t, err, name)
			require.Len(t, steps, d.NumCurves(), name)

			last := steps[len(steps)-1].To
			assert.Equal(t, d.NumCurves(), last.NumCurves(), name)
			for _, z := range d.Zones() {
				assert.True(t, last.IncludesZone(z), "%s: missing %s", name, z)
			}

			created := make(map[description.Region]bool)
			for _, st := range steps {
				for _, z := range st.Data.New {
					created[z] = true
				}
			}
			for _, z := range last.Zones() {
				if d.IncludesZone(z) {
					continue
				}
				assert.True(t, created[z], "%s: extra zone %s was never split into", name, z)
			}
		}
	}
}

// TestPlan_ExtraZone keeps the zone left behind when a curve is removed from
// a zone whose remainder is not in the description.
func TestPlan_ExtraZone(t *testing.T) {
	d, err := description.Example("Double Piercing 3")
	require.NoError(t, err)

	steps, err := recompose.Plan(d, recompose.Innermost)
	require.NoError(t, err)
	last := steps[len(steps)-1].To
	assert.False(t, d.IncludesZone(zone("abc")))
	assert.True(t, last.IncludesZone(zone("abc")))
	assert.False(t, last.Equal(d))
}

// TestNewStep_Preconditions rejects inconsistent steps.
func TestNewStep_Preconditions(t *testing.T) {
	from := description.MustParse("a")
	to := description.MustParse("a b")

	_, err := recompose.NewStep(from, to, recompose.Data{Added: "a"})
	require.ErrorIs(t, err, recompose.ErrCurvePresent)

	_, err = recompose.NewStep(from, to, recompose.Data{Added: "c"})
	require.ErrorIs(t, err, recompose.ErrCurveMissing)

	_, err = recompose.NewStep(from, to, recompose.Data{Added: "b"})
	require.NoError(t, err)
}

// TestIsPiercingCurve distinguishes piercing and nested curves.
func TestIsPiercingCurve(t *testing.T) {
	d := description.MustParse("a b ab")
	assert.True(t, recompose.IsPiercingCurve("b", d))

	// c sits inside a and b: 1 zone, a cluster of size 2^0 with a partner
	d2 := description.MustParse("a b ab abc")
	assert.True(t, recompose.IsPiercingCurve("c", d2))

	// c straddles three zones: not a power of two
	d3 := description.MustParse("a b ab c ac bc")
	assert.False(t, recompose.IsPiercingCurve("c", d3))
}

// TestParseStrategy resolves names.
func TestParseStrategy(t *testing.T) {
	s, err := recompose.ParseStrategy("Pierced-First")
	require.NoError(t, err)
	assert.Equal(t, "pierced-first", s.Name())

	s, err = recompose.ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, "innermost", s.Name())

	_, err = recompose.ParseStrategy("alphabetical")
	require.ErrorIs(t, err, recompose.ErrUnknownStrategy)
}

// TestNewCluster validates 1, 2 and 4 zone clusters.
func TestNewCluster(t *testing.T) {
	c, err := recompose.NewCluster(zone("ab"), zone("b"), description.Outside, zone("a"))
	require.NoError(t, err)
	assert.Equal(t, 4, c.Size())
	assert.Equal(t, description.Outside, c.Zones()[0])

	_, err = recompose.NewCluster(zone("a"), zone("b"))
	require.ErrorIs(t, err, recompose.ErrNotCluster)

	_, err = recompose.NewCluster(zone("a"), zone("b"), zone("c"))
	require.ErrorIs(t, err, recompose.ErrNotCluster)

	_, err = recompose.NewCluster(zone("a"), zone("ab"), zone("ac"), zone("abd"))
	require.ErrorIs(t, err, recompose.ErrNotCluster)
}
