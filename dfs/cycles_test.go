package dfs_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/icurves/core"
	"github.com/katalvlaran/icurves/dfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func graphOf(t *testing.T, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

func TestCycles_NilGraph(t *testing.T) {
	_, err := dfs.CollectCycles(nil)
	require.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestCycles_Tree(t *testing.T) {
	g := graphOf(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"B", "D"})
	cycles, err := dfs.CollectCycles(g)
	require.NoError(t, err)
	assert.Empty(t, cycles)
}

// TestCycles_K4: the complete graph on 4 vertices has 4 triangles and 3 squares.
func TestCycles_K4(t *testing.T) {
	g := graphOf(t,
		[2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"A", "D"},
		[2]string{"B", "C"}, [2]string{"B", "D"}, [2]string{"C", "D"},
	)
	cycles, err := dfs.CollectCycles(g)
	require.NoError(t, err)
	require.Len(t, cycles, 7)

	assert.Equal(t, [][]string{
		{"A", "B", "C"}, {"A", "B", "D"}, {"A", "C", "D"}, {"B", "C", "D"},
		{"A", "B", "C", "D"}, {"A", "B", "D", "C"}, {"A", "C", "B", "D"},
	}, cycles)

	// every reported cycle is already canonical
	for _, c := range cycles {
		assert.Equal(t, dfs.Canonical(c), c)
	}

	unique, err := dfs.CollectCycles(g, dfs.WithUniqueVertexSets())
	require.NoError(t, err)
	assert.Len(t, unique, 5, "the three squares share one vertex set")
}

func TestCycles_ShortestFirst(t *testing.T) {
	g := graphOf(t,
		[2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"A", "D"},
		[2]string{"B", "C"}, [2]string{"B", "D"}, [2]string{"C", "D"},
	)
	cycles, err := dfs.CollectCycles(g)
	require.NoError(t, err)
	require.Len(t, cycles, 7)
	// shortest first: four triangles, then three squares
	for i, c := range cycles {
		want := 3
		if i >= 4 {
			want = 4
		}
		assert.Len(t, c, want, "cycle %d", i)
	}
}

func TestCycles_StopEarly(t *testing.T) {
	g := graphOf(t,
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"},
		[2]string{"C", "D"}, [2]string{"D", "E"}, [2]string{"E", "C"},
	)
	var seen int
	err := dfs.Cycles(g, func([]string) bool {
		seen++
		return false
	})
	require.NoError(t, err)
	assert.Equal(t, 1, seen)
}

func TestCycles_Prune(t *testing.T) {
	g := graphOf(t,
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"},
		[2]string{"C", "D"}, [2]string{"D", "E"}, [2]string{"E", "C"},
	)
	// only cycles through E survive
	prune := func(path []string, remaining int) bool {
		return remaining == 0 && dfs.IndexOf(path, "E") < 0
	}
	cycles, err := dfs.CollectCycles(g, dfs.WithPrune(prune))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"C", "D", "E"}}, cycles)
}

func TestCycles_Cancelled(t *testing.T) {
	g := graphOf(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.CollectCycles(g, dfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestCycles_RandomSimple checks on random graphs that every reported cycle
// is simple, closed, ascending in length and reported once.
func TestCycles_RandomSimple(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		g := core.NewGraph()
		n := 4 + rng.Intn(4)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() < 0.45 {
					_, err := g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", j))
					require.NoError(t, err)
				}
			}
		}
		cycles, err := dfs.CollectCycles(g)
		require.NoError(t, err)

		seen := make(map[string]bool)
		prev := 0
		for _, c := range cycles {
			require.GreaterOrEqual(t, len(c), 3)
			require.GreaterOrEqual(t, len(c), prev)
			prev = len(c)

			sig := dfs.JoinSig(dfs.Canonical(c))
			require.False(t, seen[sig], "duplicate %v", c)
			seen[sig] = true

			onCycle := make(map[string]bool)
			for i, v := range c {
				require.False(t, onCycle[v], "repeated vertex in %v", c)
				onCycle[v] = true
				require.True(t, g.HasEdge(v, c[(i+1)%len(c)]), "missing edge in %v", c)
			}
		}
	}
}

func TestUtils(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, dfs.MinimalRotation([]string{"b", "c", "a"}))
	assert.Nil(t, dfs.MinimalRotation(nil))
	assert.Equal(t, []string{"a", "b", "c"}, dfs.Canonical([]string{"c", "b", "a"}))
	assert.Equal(t, []string{"c", "b", "a"}, dfs.Reverse([]string{"a", "b", "c"}))
	assert.Equal(t, 1, dfs.IndexOf([]string{"a", "b"}, "b"))
	assert.Equal(t, -1, dfs.IndexOf([]string{"a", "b"}, "z"))
	assert.Equal(t, -1, dfs.Compare([]string{"a", "b"}, []string{"a", "c"}))
	assert.Equal(t, "a,b", dfs.JoinSig([]string{"a", "b"}))
}
