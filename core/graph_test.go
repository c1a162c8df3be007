package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/icurves/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("a"))
	assert.True(t, g.HasVertex("a"))
	assert.False(t, g.HasVertex("z"))
	assert.Equal(t, []string{"a", "b"}, g.Vertices())
	assert.Equal(t, 2, g.VertexCount())
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		second   bool
		wantErr  error
	}{
		{"empty id", "", "a", false, core.ErrEmptyVertexID},
		{"loop rejected", "a", "a", false, core.ErrLoopNotAllowed},
		{"parallel rejected", "a", "b", true, core.ErrMultiEdgeNotAllowed},
		{"distinct pair", "a", "b", false, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph()
			_, err := g.AddEdge(tc.from, tc.to)
			if tc.second && err == nil {
				// mirrored direction counts as the same pair
				_, err = g.AddEdge(tc.to, tc.from)
			}
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestGraph_Queries(t *testing.T) {
	g := core.NewGraph()
	e1, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = g.AddEdge("c", "a")
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c")
	require.NoError(t, err)

	assert.Equal(t, "e1", e1)
	assert.True(t, g.HasEdge("b", "a"))
	assert.False(t, g.HasEdge("a", "d"))
	assert.Equal(t, 3, g.EdgeCount())

	ids, err := g.NeighborIDs("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, ids)

	_, err = g.NeighborIDs("z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	var order []string
	for _, e := range g.Edges() {
		order = append(order, e.ID)
	}
	assert.Equal(t, []string{"e1", "e2", "e3"}, order)
}

func TestGraph_EdgesSortedPastNine(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge(fmt.Sprintf("v%02d", i), fmt.Sprintf("v%02d", i+1))
		require.NoError(t, err)
	}
	edges := g.Edges()
	assert.Equal(t, "e9", edges[8].ID)
	assert.Equal(t, "e10", edges[9].ID)
}

func TestGraph_ConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = g.AddEdge("hub", fmt.Sprintf("n%02d", i))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, g.EdgeCount())
	assert.Equal(t, 51, g.VertexCount())
}
