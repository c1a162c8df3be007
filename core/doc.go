// Package core provides the thread-safe in-memory graph store used for the
// dual graph of a diagram.
//
// The Graph G = (V,E) is undirected and simple: self-loops and parallel
// edges are rejected.
//
// Storage uses nested maps, adjacencyList[from][to][edgeID] = struct{}{},
// mirrored for both endpoints, and two sync.RWMutex locks: muVert for
// vertices, muEdgeAdj for edges and adjacency. Locks are always taken in that
// order.
//
// Determinism:
//
//   - Vertices() and NeighborIDs() are sorted lexicographically.
//   - Edges() is sorted by creation order ("e1", "e2", ...).
//
// Core Methods:
//
//	AddVertex(id string) error                      // O(1)
//	HasVertex(id string) bool                       // O(1)
//	AddEdge(from, to string) (edgeID string, error) // O(1) amortized
//	HasEdge(from, to string) bool                   // O(1)
//	NeighborIDs(id string) ([]string, error)        // O(d log d)
//	Vertices() []string                             // O(V log V)
//	Edges() []*Edge                                 // O(E log E)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – second edge between the same endpoints
package core
