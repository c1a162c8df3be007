package ops

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/icurves/matrix"
)

// ErrSingular is returned when a zero pivot is encountered.
var ErrSingular = errors.New("ops: matrix is singular")

// LU performs Doolittle LU decomposition on a square matrix m.
// It returns L (unit lower triangular) and U (upper triangular) matrices.
//
// Stage 1: validate m is square.
// Stage 2: allocate L with a unit diagonal and a zero U.
// Stage 3: for each pivot row i fill U's row i, then L's column i.
//
// A zero pivot yields ErrSingular.
// Time Complexity: O(n³); Memory: O(n²) for L and U.
func LU(m matrix.Matrix) (matrix.Matrix, matrix.Matrix, error) {
	// Stage 1: Validate input is square
	rows, cols := m.Rows(), m.Cols()
	if rows != cols {
		return nil, nil, fmt.Errorf("LU: non-square matrix %dx%d: %w", rows, cols, matrix.ErrDimensionMismatch)
	}
	n := rows

	// Stage 2: Prepare L and U matrices
	L, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}
	U, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}

	// Stage 3: Execute decomposition
	var (
		i, j, k    int
		sum        float64
		lVal, uVal float64
		aVal       float64
		uDiag      float64
	)
	for i = 0; i < n; i++ {
		// U's row i for columns j >= i
		for j = i; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				lVal, _ = L.At(i, k)
				uVal, _ = U.At(k, j)
				sum += lVal * uVal
			}
			aVal, err = m.At(i, j)
			if err != nil {
				return nil, nil, fmt.Errorf("LU: %w", err)
			}
			_ = U.Set(i, j, aVal-sum)
		}
		uDiag, _ = U.At(i, i)
		if uDiag == 0 {
			return nil, nil, fmt.Errorf("LU: zero pivot at %d: %w", i, ErrSingular)
		}
		// L's column i for rows j > i
		for j = i + 1; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				lVal, _ = L.At(j, k)
				uVal, _ = U.At(k, i)
				sum += lVal * uVal
			}
			aVal, err = m.At(j, i)
			if err != nil {
				return nil, nil, fmt.Errorf("LU: %w", err)
			}
			_ = L.Set(j, i, (aVal-sum)/uDiag)
		}
	}

	return L, U, nil
}
