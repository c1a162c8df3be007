package diagram

import (
	"math"
	"sort"

	"go.uber.org/zap"
	"honnef.co/go/curve"
)

// Piercing is the placement of a circle piercing a cluster of regions.
// The zero value means no piercing point exists.
type Piercing struct {
	Center curve.Point
	Radius float64
	found  bool
}

// IsPiercing reports whether a piercing point was found.
func (p Piercing) IsPiercing() bool { return p.found }

// gridKey groups vertices by integer rounding.
type gridKey struct{ x, y int }

func keyOf(p curve.Point) gridKey {
	return gridKey{int(math.Round(p.X)), int(math.Round(p.Y))}
}

type vertexSum struct {
	x, y float64
	n    int
}

func (s vertexSum) add(p curve.Point) vertexSum {
	return vertexSum{s.x + p.X, s.y + p.Y, s.n + 1}
}

func (s vertexSum) mean() curve.Point {
	return curve.Pt(s.x/float64(s.n), s.y/float64(s.n))
}

// FindPiercing looks for a point on the boundary of every cluster region and
// of no other region in all, and the radius of the largest circle around it
// that stays clear of the other regions.
//
// Steps:
//  1. Group the polygon vertices of each cluster region by integer rounding;
//     keep the groups every cluster region has, located at the mean of the
//     vertices grouped under them.
//  2. Drop the ones any non-cluster region has.
//  3. Pick one by opts.TieBreak.
//  4. Radius = minimal boundary distance to the non-cluster regions, or
//     2 × BaseRadius when there are none.
//
// Complexity: O(V·R) for V candidate vertices and R regions.
func FindPiercing(cluster, all []*Region, opts Options) Piercing {
	if len(cluster) == 0 {
		return Piercing{}
	}
	inCluster := make(map[*Region]bool, len(cluster))
	for _, r := range cluster {
		inCluster[r] = true
	}
	var others []*Region
	for _, r := range all {
		if !inCluster[r] {
			others = append(others, r)
		}
	}

	// Stage 1: vertices shared by every cluster region
	count := make(map[gridKey]int)
	sum := make(map[gridKey]vertexSum)
	for _, r := range cluster {
		seen := make(map[gridKey]bool)
		for _, v := range r.Polygon().Vertices() {
			k := keyOf(v)
			sum[k] = sum[k].add(v)
			if !seen[k] {
				seen[k] = true
				count[k]++
			}
		}
	}

	// Stage 2: minus vertices of other regions
	excluded := make(map[gridKey]bool)
	for _, r := range others {
		for _, v := range r.Polygon().Vertices() {
			excluded[keyOf(v)] = true
		}
	}
	var candidates []curve.Point
	for k, n := range count {
		if n == len(cluster) && !excluded[k] {
			candidates = append(candidates, sum[k].mean())
		}
	}
	if len(candidates) == 0 {
		return Piercing{}
	}
	// map iteration order is random; fix it before choosing
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Y != candidates[j].Y {
			return candidates[i].Y < candidates[j].Y
		}

		return candidates[i].X < candidates[j].X
	})

	clearance := func(p curve.Point) float64 {
		best := math.Inf(1)
		for _, r := range others {
			if d := r.Polygon().BoundaryDistance(p); d < best {
				best = d
			}
		}

		return best
	}

	// Stage 3: choose
	var center curve.Point
	switch {
	case opts.TieBreak == TieBreakCentroid:
		center = nearestToCentroid(candidates)
	case len(cluster) == 4:
		center = candidates[0]
	default:
		center = candidates[0]
		best := clearance(center)
		for _, c := range candidates[1:] {
			d := clearance(c)
			if d > best || (d == best && c.X > center.X) {
				center, best = c, d
			}
		}
	}

	// Stage 4: radius
	radius := clearance(center)
	if math.IsInf(radius, 1) {
		radius = 2 * opts.BaseRadius
		opts.logger().Warn("piercing without neighbouring regions",
			zap.Int("cluster", len(cluster)),
			zap.Float64("radius", radius),
			zap.String("fallback", "base-radius"))
	}

	return Piercing{Center: center, Radius: radius, found: true}
}

func nearestToCentroid(pts []curve.Point) curve.Point {
	var sx, sy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	c := curve.Pt(sx/float64(len(pts)), sy/float64(len(pts)))
	best := pts[0]
	for _, p := range pts[1:] {
		if p.Distance(c) < best.Distance(c) {
			best = p
		}
	}

	return best
}
