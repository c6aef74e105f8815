// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Minor returns the (n-1)×(n-1) submatrix of the square matrix a obtained by
// deleting row skipRow and column skipCol.
//
// Implementation:
//   - Stage 1: validate a is non-nil, square and at least 2×2; validate skip indices.
//   - Stage 2: copy every surviving entry in row-major order (cutMinor).
//
// Behavior highlights:
//   - Surviving rows/cols keep their relative order; entries below/right of the
//     deleted index shift up/left by one.
//   - The result never aliases a.
//
// Errors:
//   - ErrNilMatrix; ErrInvalidDimensions when a is not square or smaller than 2×2;
//     ErrOutOfRange when skipRow/skipCol fall outside [0,n).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Minor(a Matrix, skipRow, skipCol int) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	n := a.Rows()
	if n != a.Cols() || n < 2 {
		return nil, matrixErrorf(opMinor,
			fmt.Errorf("%w (need square n>=2, got %dx%d)", ErrInvalidDimensions, a.Rows(), a.Cols()))
	}
	if skipRow < 0 || skipRow >= n || skipCol < 0 || skipCol >= n {
		return nil, matrixErrorf(opMinor,
			fmt.Errorf("skip (%d,%d) in %dx%d: %w", skipRow, skipCol, n, n, ErrOutOfRange))
	}

	src, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return cutMinor(src, skipRow, skipCol), nil
}

// cutMinor copies m without row skipRow and column skipCol into a new Dense.
// The caller guarantees m is square with n >= 2 and both indices in range.
func cutMinor(m *Dense, skipRow, skipCol int) *Dense {
	n := m.r
	sub := &Dense{
		r:              n - 1,
		c:              n - 1,
		data:           make([]float64, (n-1)*(n-1)),
		validateNaNInf: m.validateNaNInf,
	}

	dst := 0
	var i, j, base int
	for i = 0; i < n; i++ {
		if i == skipRow {
			continue
		}
		base = i * n
		for j = 0; j < n; j++ {
			if j == skipCol {
				continue
			}
			sub.data[dst] = m.data[base+j]
			dst++
		}
	}

	return sub
}
