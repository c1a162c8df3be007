// Package dfs enumerates simple cycles of an undirected core.Graph by
// depth-first search.
//
// What:
//
//   - Cycles: reports every simple cycle of length ≥ 3 exactly once, shortest
//     first. Lengths are explored by iterative deepening, so a caller that
//     stops at the first acceptable cycle never pays for longer ones.
//   - CollectCycles: the same, materialized into a slice.
//   - Canonical, MinimalRotation (Booth), JoinSig, IndexOf, Reverse: helpers
//     for comparing cycles as vertex sequences.
//
// Why:
//
//   - The layout engine searches the dual graph of a diagram for the shortest
//     cycle through a set of regions; that search is exponential in the worst
//     case, so it is cancellable and prunable.
//
// Order:
//
//	Within one length, cycles come out sorted by their smallest vertex, then
//	lexicographically along the cycle. Each cycle starts at its smallest
//	vertex and is oriented so that its second vertex is smaller than its last.
//
// Options:
//
//   - WithContext(ctx)          cancellation and deadlines, checked on every expansion.
//   - WithPrune(fn)             drop partial paths early.
//   - WithUniqueVertexSets()    report a vertex set once, whatever its order.
//
// Complexity:
//
//   - Time:   O(Σ_L paths of length L), exponential in the worst case.
//   - Memory: O(V + E) plus the current path.
//
// Errors:
//
//   - ErrGraphNil        graph pointer is nil.
//   - context errors     wrapped ctx.Err() when the context ends.
package dfs
