// Package gridgraph treats a 2D grid of weighted cells as a graph, enabling
// component analysis and least-cost paths.
//
// What:
//
//   - GridGraph wraps a rectangular [][]float64 grid with a tunable LandThreshold.
//     Cells with value ≥ LandThreshold are walkable; the value is their entry cost.
//   - Identifies connected components of walkable cells.
//   - ShortestPath: A* between two cells. Entering a cell costs
//     step × value, where step is 1 orthogonally and √2 diagonally; the
//     heuristic is the Euclidean distance times the least walkable value, so
//     it never overestimates.
//
// Why:
//
//   - Routing a curve between two regions through a rasterised area: the
//     cost field pushes the route away from region boundaries.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8 neighbours).
//   - ShortestPath:        O(W×H×d·log(W×H)), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered walkable.
//   - GridOptions.Conn: Conn4 (4-neighbours) or Conn8 (8-neighbours).
//
// Errors:
//
//   - ErrEmptyGrid:      input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds:    a cell lies outside the grid.
//   - ErrNotWalkable:    an endpoint is below LandThreshold.
//   - ErrNoPath:         the endpoints lie in different components.
package gridgraph
