package geometry

import (
	"container/heap"
	"math"

	"honnef.co/go/curve"
)

// DefaultPrecision is the Polylabel stopping tolerance.
const DefaultPrecision = 1.0

// cell is a square probe of the Polylabel search.
type cell struct {
	center curve.Point
	h      float64 // half size
	d      float64 // signed distance of center
	max    float64 // upper bound of d inside the cell
}

func newCell(p Polygon, c curve.Point, h float64) *cell {
	d := p.SignedDistance(c)

	return &cell{center: c, h: h, d: d, max: d + h*math.Sqrt2}
}

// cellPQ is a max-heap of cells ordered by their potential.
type cellPQ []*cell

func (pq cellPQ) Len() int            { return len(pq) }
func (pq cellPQ) Less(i, j int) bool  { return pq[i].max > pq[j].max }
func (pq cellPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cell)) }
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// Polylabel returns the pole of inaccessibility of p: the interior point
// farthest from its boundary, within precision. A non-positive precision
// means DefaultPrecision. A polygon with a degenerate bounding box yields the
// box origin.
//
// Steps:
//  1. Cover the bounding box with square cells of side min(w, h).
//  2. Seed the best candidate with the centroid, then the box center.
//  3. Pop the cell with the largest potential; stop refining it when its
//     potential cannot beat the best by more than precision.
//  4. Otherwise split it into 4 and queue the children.
//
// Complexity: O(C·V) for C examined cells and V vertices.
func Polylabel(p Polygon, precision float64) curve.Point {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	box := p.BoundingBox()
	minX, minY := box.MinX(), box.MinY()
	w, h := box.Width(), box.Height()
	size := math.Min(w, h)
	if size <= 0 {
		return curve.Pt(minX, minY)
	}
	half := size / 2

	// Stage 1: seed cells
	pq := &cellPQ{}
	for x := minX; x < box.MaxX(); x += size {
		for y := minY; y < box.MaxY(); y += size {
			heap.Push(pq, newCell(p, curve.Pt(x+half, y+half), half))
		}
	}

	// Stage 2: baselines
	best := newCell(p, p.Centroid(), 0)
	if bc := newCell(p, box.Center(), 0); bc.d > best.d {
		best = bc
	}

	// Stage 3: best-first refinement
	for pq.Len() > 0 {
		c := heap.Pop(pq).(*cell)
		if c.d > best.d {
			best = c
		}
		if c.max-best.d <= precision {
			continue
		}
		ch := c.h / 2
		heap.Push(pq, newCell(p, curve.Pt(c.center.X-ch, c.center.Y-ch), ch))
		heap.Push(pq, newCell(p, curve.Pt(c.center.X+ch, c.center.Y-ch), ch))
		heap.Push(pq, newCell(p, curve.Pt(c.center.X-ch, c.center.Y+ch), ch))
		heap.Push(pq, newCell(p, curve.Pt(c.center.X+ch, c.center.Y+ch), ch))
	}

	return best.center
}
