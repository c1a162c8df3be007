package med

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/icurves/bfs"
	"github.com/katalvlaran/icurves/description"
	"github.com/katalvlaran/icurves/diagram"
	"go.uber.org/zap"
	"honnef.co/go/curve"
)

// Cycle is a validated closed walk through the MED.
type Cycle struct {
	Nodes []*Node
	Edges []*Edge

	// Path is the stitched closed polyline of all edges.
	Path curve.BezPath

	// SmoothingData lists the vertices of Path without the closing duplicate.
	SmoothingData []curve.Point
}

// Len returns the number of nodes.
func (c *Cycle) Len() int { return len(c.Nodes) }

// UniqueRegions returns the cycle's regions with repeated zones dropped,
// in cycle order.
func (c *Cycle) UniqueRegions() []*diagram.Region {
	seen := make(map[description.Region]bool, len(c.Nodes))
	var out []*diagram.Region
	for _, n := range c.Nodes {
		if seen[n.Zone()] {
			continue
		}
		seen[n.Zone()] = true
		out = append(out, n.Region)
	}

	return out
}

// LengthUnique counts distinct zones on the cycle.
func (c *Cycle) LengthUnique() int { return len(c.UniqueRegions()) }

// Zones returns the distinct zones on the cycle in cycle order.
func (c *Cycle) Zones() []description.Region {
	rs := c.UniqueRegions()
	out := make([]description.Region, len(rs))
	for i, r := range rs {
		out[i] = r.Zone
	}

	return out
}

// FindCycle returns the shortest valid cycle whose zones include every zone
// of split.
//
// Steps:
//  0. Reject at once when some split zone has no node, or the split nodes
//     are not all reachable from each other.
//  1. Enumerate cycles through the configured CycleSource, pruning paths
//     that can no longer collect the missing split zones.
//  2. Skip cycles that miss a split zone.
//  3. Validate: no zone but the outside repeats, edges stitch into one
//     closed path, and no other node lies inside that path.
//
// ErrNoCycle is returned when enumeration ends without a valid cycle; a
// cancelled ctx surfaces as its wrapped error.
func (m *MED) FindCycle(ctx context.Context, split []description.Region) (*Cycle, error) {
	started := time.Now()
	need := make(map[description.Region]bool, len(split))
	for _, z := range split {
		need[z] = true
	}
	if err := m.reachable(ctx, need); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("FindCycle: %w", ctxErr)
		}

		return nil, fmt.Errorf("FindCycle(%v): %v: %w", split, err, ErrNoCycle)
	}

	prune := func(path []string, remaining int) bool {
		missing := len(need)
		seen := make(map[description.Region]bool, len(path))
		for _, id := range path {
			z := m.nodes[id].Zone()
			if need[z] && !seen[z] {
				seen[z] = true
				missing--
			}
		}

		return missing > remaining
	}

	var (
		found   *Cycle
		checked int
		invalid error
	)
	err := m.opts.Source(ctx, m.graph, prune, func(ids []string) bool {
		checked++
		nodes := make([]*Node, len(ids))
		covered := make(map[description.Region]bool, len(ids))
		for i, id := range ids {
			nodes[i] = m.nodes[id]
			covered[nodes[i].Zone()] = true
		}
		for z := range need {
			if !covered[z] {
				return true
			}
		}
		c, err := m.validate(nodes)
		if err != nil {
			invalid = err
			return true
		}
		found = c

		return false
	})
	if err != nil {
		return nil, fmt.Errorf("FindCycle: %w", err)
	}
	m.opts.Logger.Debug("cycle search",
		zap.Int("checked", checked),
		zap.Bool("found", found != nil),
		zap.Duration("took", time.Since(started)))
	if found == nil {
		if invalid != nil {
			return nil, fmt.Errorf("FindCycle(%v): last rejection: %v: %w", split, invalid, ErrNoCycle)
		}

		return nil, fmt.Errorf("FindCycle(%v): %w", split, ErrNoCycle)
	}

	return found, nil
}

// reachable checks by BFS that one connected component holds a node of
// every needed zone.
func (m *MED) reachable(ctx context.Context, need map[description.Region]bool) error {
	var start string
	for _, n := range m.Nodes() {
		if need[n.Zone()] {
			start = n.ID
			break
		}
	}
	if start == "" {
		return errors.New("no node in any split zone")
	}
	res, err := bfs.BFS(m.graph, start, bfs.WithContext(ctx))
	if err != nil {
		return err
	}
	got := make(map[description.Region]bool, len(need))
	for _, id := range res.Order {
		got[m.nodes[id].Zone()] = true
	}
	for z := range need {
		if !got[z] {
			return fmt.Errorf("zone %s unreachable from %s", z, start)
		}
	}

	return nil
}

// validate stitches nodes into a Cycle or explains why it cannot be used.
func (m *MED) validate(nodes []*Node) (*Cycle, error) {
	// 1) zones repeat only on the outside
	zones := make(map[description.Region]bool, len(nodes))
	for _, n := range nodes {
		z := n.Zone()
		if zones[z] && !z.IsOutside() {
			return nil, fmt.Errorf("zone %s repeats", z)
		}
		zones[z] = true
	}

	// 2) stitch
	c := &Cycle{Nodes: nodes, Edges: make([]*Edge, len(nodes))}
	c.SmoothingData = append(c.SmoothingData, nodes[0].Point)
	for i, n := range nodes {
		next := nodes[(i+1)%len(nodes)]
		e, ok := m.edges[keyOf(n.ID, next.ID)]
		if !ok {
			return nil, fmt.Errorf("no edge %s-%s", n.ID, next.ID)
		}
		c.Edges[i] = e
		c.SmoothingData = append(c.SmoothingData, e.pointsFrom(n)[1:]...)
	}
	c.SmoothingData = c.SmoothingData[:len(c.SmoothingData)-1]
	c.Path.MoveTo(c.SmoothingData[0])
	for _, p := range c.SmoothingData[1:] {
		c.Path.LineTo(p)
	}
	c.Path.ClosePath()

	// 3) nothing else inside
	for _, n := range m.nodes {
		if zones[n.Zone()] {
			continue
		}
		if c.Path.Winding(n.Point) != 0 {
			return nil, fmt.Errorf("node %s lies inside", n.ID)
		}
	}

	return c, nil
}
