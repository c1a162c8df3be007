// Package ops provides matrix decompositions and linear solvers on top of
// the matrix package.
//
// LU factors a square matrix with Doolittle's method (no pivoting), which is
// exact for the diagonally dominant systems produced by spline fitting.
// Solve uses that factorisation for a single right-hand side.
package ops
