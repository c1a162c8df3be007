// Package diagram holds the concrete side of an Euler diagram: curves with a
// shape, the regions those shapes carve out of the bounding box, region
// adjacency and the piercing detector.
//
// What:
//
//   - Curve: a closed variant with two cases, Circle and Path. Each exposes
//     its label, a polygon approximation and a Bézier outline.
//   - Region: an abstract zone bound to the curves containing and excluding
//     it. Its polygon (bbox ∩ containing − excluding) and center (pole of
//     inaccessibility) are computed lazily, once.
//   - Arena: an immutable per-step snapshot assigning ids to curves and
//     regions. A new arena is built after every curve addition.
//   - Adjacent: two regions whose zones differ by one label and whose shapes
//     touch once one is nudged by a probe offset.
//   - FindPiercing: the point and radius where a new circle can pierce a
//     cluster of 2 or 4 regions.
//
// Geometric degeneracies never fail: overlay errors keep the last good
// polygon and are logged at Warn level with a "fallback" field.
package diagram
