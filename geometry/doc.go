// Package geometry provides the planar polygon support of the layout engine:
// multi-part holed polygons, boolean overlay, point-to-boundary distances and
// the pole of inaccessibility of a polygon.
//
// What:
//
//   - Polygon: an immutable set of parts, each a shell ring with optional hole
//     rings. Points are honnef.co/go/curve Points. Rings are stored open (the
//     closing vertex is implicit).
//   - Intersection, Difference, Union: boolean overlay delegated to
//     github.com/peterstace/simplefeatures through WKT. Non-areal parts of an
//     overlay result are dropped.
//   - Contains (even-odd rule), BoundaryDistance (unsigned, holes included)
//     and SignedDistance (positive inside).
//   - Polylabel: the interior point farthest from the boundary, found by a
//     best-first quadtree refinement.
//
// Errors:
//
//   - ErrOverlay  the overlay engine rejected an operand or failed to compute.
//
// Complexity:
//
//   - Contains, BoundaryDistance: O(V) for V vertices.
//   - Overlay: as simplefeatures, roughly O((V₁+V₂) log(V₁+V₂)) plus output.
//   - Polylabel: O(C·V) where C is the number of cells examined.
package geometry
