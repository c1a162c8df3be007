package med

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/katalvlaran/icurves/diagram"
	"github.com/katalvlaran/icurves/geometry"
	"github.com/katalvlaran/icurves/route"
	"go.uber.org/zap"
	"honnef.co/go/curve"
)

// Build constructs the MED of arena.
//
// Stage 1: one node per region at its center (parallel).
// Stage 2: adjacency of every region pair and of every region with the
// outside (parallel).
// Stage 3: a polyline per adjacent pair, straight when allowed, routed
// otherwise (parallel). Routing failures are fatal.
// Stage 4: insert those edges in sorted pair order, so edge ids do not
// depend on scheduling.
// Stage 5: the outer ring and its links to outside-adjacent regions.
func Build(ctx context.Context, arena *diagram.Arena, opts Options) (*MED, error) {
	m := New(opts)
	opts = m.opts
	log := opts.Logger.With(zap.Int("step", arena.Step()))
	started := time.Now()

	regions := arena.Regions()

	// Stage 1: centers
	t0 := time.Now()
	points := make([]curve.Point, len(regions))
	if err := opts.forEach(ctx, len(regions), func(i int) error {
		points[i] = regions[i].Center()
		return nil
	}); err != nil {
		return nil, fmt.Errorf("Build: centers: %w", err)
	}
	nodes := make([]*Node, len(regions))
	for i, r := range regions {
		nodes[i] = &Node{ID: regionNodeID(r), Region: r, Point: points[i]}
		if err := m.AddNode(nodes[i]); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	log.Debug("med nodes", zap.Int("count", len(nodes)), zap.Duration("took", time.Since(t0)))

	// Stage 2: adjacency
	t0 = time.Now()
	type pair struct{ i, j int }
	var pairs []pair
	for i := range regions {
		for j := i + 1; j < len(regions); j++ {
			pairs = append(pairs, pair{i, j})
		}
	}
	adjacent := make([]bool, len(pairs))
	if err := opts.forEach(ctx, len(pairs), func(k int) error {
		adjacent[k] = arena.Adjacent(regions[pairs[k].i], regions[pairs[k].j])
		return nil
	}); err != nil {
		return nil, fmt.Errorf("Build: adjacency: %w", err)
	}
	outside := arena.Outside()
	touchesOutside := make([]bool, len(regions))
	if err := opts.forEach(ctx, len(regions), func(i int) error {
		touchesOutside[i] = arena.Adjacent(regions[i], outside)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("Build: adjacency: %w", err)
	}
	log.Debug("med adjacency", zap.Int("pairs", len(pairs)), zap.Duration("took", time.Since(t0)))

	// Stage 3: edge geometry
	t0 = time.Now()
	var linked []pair
	for k, p := range pairs {
		if adjacent[k] {
			linked = append(linked, p)
		}
	}
	polylines := make([][]curve.Point, len(linked))
	kinds := make([]EdgeKind, len(linked))
	curves := arena.Curves()
	if err := opts.forEach(ctx, len(linked), func(k int) error {
		a, b := nodes[linked[k].i], nodes[linked[k].j]
		if straightAllowed(a, b, curves) {
			polylines[k] = []curve.Point{a.Point, b.Point}
			kinds[k] = EdgeStraight

			return nil
		}
		pts, err := route.Route(a.Region, b.Region, opts.Route)
		if err != nil {
			return err
		}
		polylines[k] = pts
		kinds[k] = EdgeRouted

		return nil
	}); err != nil {
		return nil, fmt.Errorf("Build: edges: %w", err)
	}

	// Stage 4: pairs are in index order and node ids follow region ids
	for k, p := range linked {
		if _, err := m.AddEdge(nodes[p.i].ID, nodes[p.j].ID, polylines[k], kinds[k]); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	log.Debug("med edges", zap.Int("count", len(linked)), zap.Duration("took", time.Since(t0)))

	// Stage 5: ring
	ring, err := m.addRing(nodes, outside)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	for i, n := range nodes {
		if !touchesOutside[i] {
			continue
		}
		nearest := ring[0]
		for _, o := range ring[1:] {
			if n.Point.DistanceSquared(o.Point) < n.Point.DistanceSquared(nearest.Point) {
				nearest = o
			}
		}
		if _, err := m.AddEdge(n.ID, nearest.ID, nil, EdgeStraight); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	log.Debug("med built",
		zap.Int("nodes", m.graph.VertexCount()),
		zap.Int("edges", m.graph.EdgeCount()),
		zap.Duration("took", time.Since(started)))

	return m, nil
}

// straightAllowed reports whether the segment a-b crosses the outline of
// the curve separating the two zones and no other outline.
func straightAllowed(a, b *Node, curves []diagram.Curve) bool {
	label, ok := a.Zone().StraddledContour(b.Zone())
	if !ok {
		return false
	}
	crossed := 0
	for _, c := range curves {
		if !geometry.SegmentCrosses(a.Point, b.Point, c.Polygon()) {
			continue
		}
		if c.Label() != label {
			return false
		}
		crossed++
	}

	return crossed == 1
}

// addRing places RingSize nodes on a circle around the bbox of the region
// nodes and chains them in polar-angle order.
func (m *MED) addRing(nodes []*Node, outside *diagram.Region) ([]*Node, error) {
	var bbox curve.Rect
	for i, n := range nodes {
		b := n.Region.Polygon().BoundingBox()
		if i == 0 {
			bbox = b
		} else {
			bbox = bbox.Union(b)
		}
	}
	center := bbox.Center()
	radius := math.Hypot(bbox.Width(), bbox.Height())/2 + m.opts.RingMargin
	if radius <= 0 {
		radius = m.opts.RingMargin + 1
	}
	m.center, m.radius = center, radius

	n := m.opts.RingSize
	ring := make([]*Node, n)
	for k := 0; k < n; k++ {
		theta := 2 * math.Pi * float64(k) / float64(n)
		ring[k] = &Node{
			ID:     ringNodeID(k),
			Region: outside,
			Point:  curve.Pt(center.X+radius*math.Cos(theta), center.Y+radius*math.Sin(theta)),
			Ring:   true,
		}
		if err := m.AddNode(ring[k]); err != nil {
			return nil, err
		}
	}

	angle := func(p curve.Point) float64 {
		a := math.Atan2(p.Y-center.Y, p.X-center.X)
		if a < 0 {
			a += 2 * math.Pi
		}

		return a
	}
	sorted := append([]*Node(nil), ring...)
	sort.SliceStable(sorted, func(i, j int) bool {
		ai, aj := angle(sorted[i].Point), angle(sorted[j].Point)
		if ai != aj {
			return ai < aj
		}

		return sorted[i].ID < sorted[j].ID
	})
	for k := range sorted {
		next := sorted[(k+1)%n]
		if _, err := m.AddEdge(sorted[k].ID, next.ID, nil, EdgeRing); err != nil {
			return nil, err
		}
	}

	return ring, nil
}
