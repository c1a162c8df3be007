// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances and visit order.
//
// Neighbours are expanded in sorted order (core.NeighborIDs), so the visit
// sequence is reproducible. The context is checked before every dequeue.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d)
//   - Memory: O(V)
package bfs
