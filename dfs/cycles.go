package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/icurves/core"
)

// enumerator carries the state of one Cycles call.
type enumerator struct {
	ids   []string // vertex IDs, sorted
	adj   [][]int  // neighbour indices, sorted, loops removed
	opts  CycleOptions
	visit func(cycle []string) bool

	onPath  []bool
	path    []int
	pathIDs []string
	seenSet map[string]struct{}
	stopped bool
}

// Cycles calls visit for every simple cycle of g, shortest first. visit
// receives a fresh slice and returns false to stop the enumeration.
//
// Steps:
//  1. Snapshot vertices and sorted neighbour indices.
//  2. For each length L in [3, |V|]:
//     for each start s, extend paths through vertices greater than s only;
//     close when the path has L vertices and its last one touches s.
//  3. Emit only the orientation whose second vertex is smaller than its last.
//
// Complexity: exponential in the worst case; see package doc.
func Cycles(g *core.Graph, visit func(cycle []string) bool, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Snapshot
	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	adj := make([][]int, len(ids))
	for i, id := range ids {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return fmt.Errorf("dfs: Cycles: NeighborIDs(%q): %w", id, err)
		}
		for _, n := range nbrs {
			if n != id {
				adj[i] = append(adj[i], index[n])
			}
		}
		sort.Ints(adj[i])
	}
	e := &enumerator{
		ids:    ids,
		adj:    adj,
		opts:   cfg,
		visit:  visit,
		onPath: make([]bool, len(ids)),
	}
	if cfg.UniqueVertexSets {
		e.seenSet = make(map[string]struct{})
	}

	// 2) Iterative deepening on the exact length
	for length := MinLength; length <= len(ids); length++ {
		for s := range ids {
			if err := e.extend(s, s, length); err != nil {
				return err
			}
			if e.stopped {
				return nil
			}
		}
	}

	return nil
}

// extend pushes v and explores paths from start of exactly length vertices.
func (e *enumerator) extend(start, v, length int) error {
	if err := e.opts.Ctx.Err(); err != nil {
		return fmt.Errorf("dfs: Cycles: %w", err)
	}
	e.path = append(e.path, v)
	e.pathIDs = append(e.pathIDs, e.ids[v])
	e.onPath[v] = true
	defer func() {
		e.path = e.path[:len(e.path)-1]
		e.pathIDs = e.pathIDs[:len(e.pathIDs)-1]
		e.onPath[v] = false
	}()

	remaining := length - len(e.path)
	if e.opts.Prune != nil && e.opts.Prune(e.pathIDs, remaining) {
		return nil
	}

	if remaining == 0 {
		// close the cycle, one orientation only
		if e.path[1] < v && e.touches(v, start) {
			e.emit()
		}

		return nil
	}

	for _, n := range e.adj[v] {
		if e.stopped {
			return nil
		}
		if n <= start || e.onPath[n] {
			continue
		}
		if err := e.extend(start, n, length); err != nil {
			return err
		}
	}

	return nil
}

// touches reports whether u and w are adjacent.
func (e *enumerator) touches(u, w int) bool {
	nbrs := e.adj[u]
	i := sort.SearchInts(nbrs, w)

	return i < len(nbrs) && nbrs[i] == w
}

func (e *enumerator) emit() {
	cycle := append([]string(nil), e.pathIDs...)
	if e.seenSet != nil {
		key := append([]string(nil), cycle...)
		sort.Strings(key)
		sig := JoinSig(key)
		if _, dup := e.seenSet[sig]; dup {
			return
		}
		e.seenSet[sig] = struct{}{}
	}
	if !e.visit(cycle) {
		e.stopped = true
	}
}

// CollectCycles returns every cycle Cycles would report.
func CollectCycles(g *core.Graph, opts ...Option) ([][]string, error) {
	var out [][]string
	err := Cycles(g, func(c []string) bool {
		out = append(out, c)
		return true
	}, opts...)

	return out, err
}
