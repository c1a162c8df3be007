package ops

import (
	"fmt"

	"github.com/katalvlaran/icurves/matrix"
)

// Solve returns x with m·x = b.
//
// Steps:
//  1. Factor m = L·U.
//  2. Forward substitution: L·y = b.
//  3. Backward substitution: U·x = y.
//
// Complexity: O(n³) for the factorisation, O(n²) for the substitutions.
func Solve(m matrix.Matrix, b []float64) ([]float64, error) {
	if len(b) != m.Rows() {
		return nil, fmt.Errorf("Solve: rhs length %d for %d rows: %w", len(b), m.Rows(), matrix.ErrDimensionMismatch)
	}
	L, U, err := LU(m)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	n := len(b)
	var (
		i, k  int
		sum   float64
		aVal  float64
		pivot float64
	)
	// 2) Forward substitution
	y := make([]float64, n)
	for i = 0; i < n; i++ {
		sum = 0
		for k = 0; k < i; k++ {
			aVal, _ = L.At(i, k)
			sum += aVal * y[k]
		}
		y[i] = b[i] - sum
	}

	// 3) Backward substitution
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		sum = 0
		for k = i + 1; k < n; k++ {
			aVal, _ = U.At(i, k)
			sum += aVal * x[k]
		}
		pivot, _ = U.At(i, i)
		x[i] = (y[i] - sum) / pivot
	}

	return x, nil
}
