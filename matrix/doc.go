// Package matrix provides a small dense float64 matrix used by the linear
// solvers in matrix/ops.
//
// Dense stores its elements row-major in a flat slice. Every indexer checks
// bounds and returns ErrIndexOutOfBounds instead of panicking.
//
// Complexity:
//
//	Rows, Cols, At and Set run in O(1).
//	Clone and NewIdentity run in O(rows*cols).
package matrix
