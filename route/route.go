package route

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/icurves/diagram"
	"github.com/katalvlaran/icurves/geometry"
	"github.com/katalvlaran/icurves/gridgraph"
	"go.uber.org/zap"
	"honnef.co/go/curve"
)

// ErrRoutingFailed is returned when no tile path joins the two centers.
var ErrRoutingFailed = errors.New("route: routing failed")

// tiling maps between tile coordinates and the plane.
type tiling struct {
	origin curve.Point
	size   float64
	w, h   int
}

func (t tiling) center(c gridgraph.Cell) curve.Point {
	return curve.Pt(
		t.origin.X+(float64(c.X)+0.5)*t.size,
		t.origin.Y+(float64(c.Y)+0.5)*t.size,
	)
}

func (t tiling) cellOf(pt curve.Point) gridgraph.Cell {
	clamp := func(v, n int) int {
		if v < 0 {
			return 0
		}
		if v >= n {
			return n - 1
		}

		return v
	}
	x := int(math.Floor((pt.X - t.origin.X) / t.size))
	y := int(math.Floor((pt.Y - t.origin.Y) / t.size))

	return gridgraph.Cell{X: clamp(x, t.w), Y: clamp(y, t.h)}
}

// Route returns a polyline from r1.Center() to r2.Center() inside the union
// of both regions. The first and last points are exactly the two centers.
//
// Steps:
//  1. Union the region polygons and tile the union bbox.
//  2. Mark tiles walkable when their center is inside the union at least one
//     tile away from its boundary; cost grows toward the boundary.
//  3. Run A* (8-connected) between the center tiles, forced walkable.
//  4. Thin the tile path and pin the exact endpoints.
//
// Complexity: O(T·V) to build the grid of T tiles over a union of V vertices,
// plus O(T log T) for A*.
func Route(r1, r2 *diagram.Region, opts Options) ([]curve.Point, error) {
	opts = opts.normalized()
	fields := []zap.Field{zap.String("from", r1.Zone.String()), zap.String("to", r2.Zone.String())}

	// 1) Union and tiling
	union, err := geometry.Union(r1.Polygon(), r2.Polygon())
	if err != nil {
		return nil, fmt.Errorf("Route(%s,%s): %w: %w", r1.Zone, r2.Zone, ErrRoutingFailed, err)
	}
	bbox := union.BoundingBox()
	size := math.Min(bbox.Width(), bbox.Height()) / float64(opts.Tiles)
	if union.IsEmpty() || size <= 0 {
		return nil, fmt.Errorf("Route(%s,%s): degenerate union: %w", r1.Zone, r2.Zone, ErrRoutingFailed)
	}
	t := tiling{
		origin: curve.Pt(bbox.X0, bbox.Y0),
		size:   size,
		w:      int(math.Ceil(bbox.Width() / size)),
		h:      int(math.Ceil(bbox.Height() / size)),
	}
	opts.Logger.Debug("route grid", append(fields,
		zap.Int("width", t.w), zap.Int("height", t.h), zap.Float64("tile", size))...)

	// 2) Cost field
	c1, c2 := r1.Center(), r2.Center()
	maxDist := math.Max(union.SignedDistance(c1), union.SignedDistance(c2))
	if maxDist <= 0 || math.IsInf(maxDist, 0) || math.IsNaN(maxDist) {
		opts.Logger.Warn("route clearance unusable",
			append(fields, zap.Float64("clearance", maxDist), zap.String("fallback", "fixed-max-distance"))...)
		maxDist = opts.MaxDistFallback
	}
	values := make([][]float64, t.h)
	for y := 0; y < t.h; y++ {
		values[y] = make([]float64, t.w)
		for x := 0; x < t.w; x++ {
			tc := t.center(gridgraph.Cell{X: x, Y: y})
			if !union.Contains(tc) {
				continue
			}
			d := union.BoundaryDistance(tc)
			if d < size {
				continue
			}
			values[y][x] = math.Max(0, (2-d/maxDist)*costScale) + 1
		}
	}
	start, goal := t.cellOf(c1), t.cellOf(c2)
	for _, c := range [2]gridgraph.Cell{start, goal} {
		if values[c.Y][c.X] < 1 {
			values[c.Y][c.X] = 1
		}
	}

	// 3) A*
	gg, err := gridgraph.NewGridGraph(values, gridgraph.GridOptions{LandThreshold: 1, Conn: gridgraph.Conn8})
	if err != nil {
		return nil, fmt.Errorf("Route(%s,%s): %w: %w", r1.Zone, r2.Zone, ErrRoutingFailed, err)
	}
	cells, _, err := gg.ShortestPath(start, goal)
	if err != nil {
		return nil, fmt.Errorf("Route(%s,%s): %w: %w", r1.Zone, r2.Zone, ErrRoutingFailed, err)
	}
	if len(cells) < 2 {
		return nil, fmt.Errorf("Route(%s,%s): centers share a tile: %w", r1.Zone, r2.Zone, ErrRoutingFailed)
	}

	// 4) Thin and pin
	points := []curve.Point{c1}
	for i := opts.Downsample; i < len(cells)-1; i += opts.Downsample {
		points = append(points, t.center(cells[i]))
	}
	points = append(points, c2)

	return points, nil
}
