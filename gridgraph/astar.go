package gridgraph

import (
	"container/heap"
	"fmt"
	"math"
)

// nodeItem is a heap entry: a cell index with its estimated total cost.
type nodeItem struct {
	idx int
	f   float64 // g + h
	g   float64 // cost from start when pushed
}

// nodePQ is a min-heap on f; ties prefer the larger g (deeper node).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].g > pq[j].g
}
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// ShortestPath finds a least-cost path from start to goal, both included.
//
// Steps:
//  1. Validate bounds and walkability of both endpoints.
//  2. Reject endpoints in different components (ErrNoPath) without searching.
//  3. A* with a lazy decrease-key heap: stale entries are skipped on pop.
//  4. Rebuild the path from predecessor links.
//
// Entering cell v costs step × value(v), with step 1 or √2.
// Complexity: O(W·H·d·log(W·H)) time, O(W·H) memory.
func (gg *GridGraph) ShortestPath(start, goal Cell) ([]Cell, float64, error) {
	// 1) Validation
	for _, c := range [2]Cell{start, goal} {
		if !gg.InBounds(c.X, c.Y) {
			return nil, 0, fmt.Errorf("ShortestPath: %v: %w", c, ErrOutOfBounds)
		}
		if !gg.Walkable(c.X, c.Y) {
			return nil, 0, fmt.Errorf("ShortestPath: %v: %w", c, ErrNotWalkable)
		}
	}
	if start == goal {
		return []Cell{start}, 0, nil
	}

	// 2) Components
	labels, _ := gg.label()
	si, gi := gg.Index(start.X, start.Y), gg.Index(goal.X, goal.Y)
	if labels[si] != labels[gi] {
		return nil, 0, fmt.Errorf("ShortestPath: %v to %v: %w", start, goal, ErrNoPath)
	}

	// 3) A*
	h := func(idx int) float64 {
		x, y := gg.Coordinate(idx)

		return math.Hypot(float64(x-goal.X), float64(y-goal.Y)) * gg.minValue
	}
	total := gg.Width * gg.Height
	dist := make([]float64, total)
	prev := make([]int, total)
	closed := make([]bool, total)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[si] = 0
	pq := make(nodePQ, 0, 64)
	heap.Push(&pq, &nodeItem{idx: si, f: h(si)})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.idx
		if closed[u] {
			continue
		}
		closed[u] = true
		if u == gi {
			break
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.Walkable(vx, vy) {
				continue
			}
			v := gg.Index(vx, vy)
			if closed[v] {
				continue
			}
			step := 1.0
			if d[0] != 0 && d[1] != 0 {
				step = math.Sqrt2
			}
			nd := dist[u] + step*gg.CellValues[vy][vx]
			if nd >= dist[v] {
				continue
			}
			dist[v] = nd
			prev[v] = u
			heap.Push(&pq, &nodeItem{idx: v, f: nd + h(v), g: nd})
		}
	}
	if math.IsInf(dist[gi], 1) {
		return nil, 0, fmt.Errorf("ShortestPath: %v to %v: %w", start, goal, ErrNoPath)
	}

	// 4) Rebuild
	var rev []Cell
	for v := gi; v != -1; v = prev[v] {
		x, y := gg.Coordinate(v)
		rev = append(rev, Cell{X: x, Y: y})
	}
	path := make([]Cell, len(rev))
	for i := range rev {
		path[i] = rev[len(rev)-1-i]
	}

	return path, dist[gi], nil
}
