// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Inverse computes A^{-1} by Gauss-Jordan elimination with partial pivoting.
// The input must be non-nil and square. Produces a new Dense; does not mutate the input.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(a). Build the private n×2n augmented buffer [A | I].
//   - Stage 2: For each pivot column col = 0..n-1:
//   - pivot search over rows col..n-1 for max |aug[r][col]| (strict '>', lowest row wins ties);
//   - singular when |pivot| < tolerance (DefaultPivotTolerance unless WithPivotTolerance);
//   - swap the pivot row into place (physical swap of row contents);
//   - divide the pivot row by the pivot across all 2n columns;
//   - for every other row r, subtract aug[r][col] * (pivot row) across all 2n columns,
//     skipping rows whose factor is exactly zero.
//   - Stage 3: copy the right half into the result.
//
// Behavior highlights:
//   - The right half starts as I and receives every row operation applied to the left,
//     so it ends as A^{-1} rather than the solution of a single system.
//   - On ErrSingular the working buffer is dropped; no partial result is returned.
//   - WithTracer receives EventPivot, EventSwap, EventNormalize and EventEliminate.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrSingular (with the failing column and pivot magnitude).
//
// Complexity:
//   - Time O(n³), Space O(n²) for the augmented buffer.
//
// Notes:
//   - Callers may pre-filter with |Determinant(a)| < tolerance (see InverseChecked);
//     the two checks can disagree on borderline matrices and this function does not
//     rely on the determinant.
func Inverse(a Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	src, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	n := src.r
	w := 2 * n
	aug := make([]float64, n*w)

	var i, j int
	for i = 0; i < n; i++ {
		copy(aug[i*w:i*w+n], src.data[i*n:(i+1)*n])
		aug[i*w+n+i] = 1.0
	}

	var (
		col, r, pivot   int
		maxv, val, piv  float64
		factor          float64
		pivBase, rowOff int
	)
	for col = 0; col < n; col++ {
		// Pivot search.
		pivot = col
		maxv = math.Abs(aug[col*w+col])
		for r = col + 1; r < n; r++ {
			val = math.Abs(aug[r*w+col])
			if val > maxv {
				maxv = val
				pivot = r
			}
		}
		emit(o.tracer, Event{Kind: EventPivot, Row: pivot, Col: col, Value: aug[pivot*w+col]})

		if math.Abs(aug[pivot*w+col]) < o.pivotTol {
			return nil, matrixErrorf(opInverse,
				fmt.Errorf("%w (pivot column %d, |pivot|=%g < %g)", ErrSingular, col, math.Abs(aug[pivot*w+col]), o.pivotTol))
		}

		if pivot != col {
			swapRows(aug, w, pivot, col)
			emit(o.tracer, Event{Kind: EventSwap, Row: col, Other: pivot, Col: col})
		}

		// Normalize the pivot row.
		pivBase = col * w
		piv = aug[pivBase+col]
		for j = 0; j < w; j++ {
			aug[pivBase+j] /= piv
		}
		emit(o.tracer, Event{Kind: EventNormalize, Row: col, Col: col, Value: piv})

		// Eliminate column col from every other row.
		for r = 0; r < n; r++ {
			if r == col {
				continue
			}
			rowOff = r * w
			factor = aug[rowOff+col]
			if !(math.Abs(factor) > 0) {
				continue
			}
			for j = 0; j < w; j++ {
				aug[rowOff+j] -= factor * aug[pivBase+j]
			}
			emit(o.tracer, Event{Kind: EventEliminate, Row: r, Col: col, Value: factor})
		}
	}

	inv, err := newDenseWithPolicy(n, n, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i = 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], aug[i*w+n:(i+1)*w])
	}

	return inv, nil
}

// swapRows exchanges rows a and b of a row-major buffer of width w.
func swapRows(buf []float64, w, a, b int) {
	ra := buf[a*w : (a+1)*w]
	rb := buf[b*w : (b+1)*w]
	for j := 0; j < w; j++ {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

// InverseChecked rejects matrices whose determinant magnitude is below the
// pivot tolerance before running Inverse, mirroring the usual caller-side
// pre-filter. Inverse still applies its own pivot test afterwards.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrSingular ("det=..." when the pre-filter fires).
//
// Complexity:
//   - O(n!) for the determinant plus O(n³) for the inversion.
func InverseChecked(a Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	det, err := Determinant(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverseCheck, err)
	}
	if math.Abs(det) < o.pivotTol {
		return nil, matrixErrorf(opInverseCheck, fmt.Errorf("%w (det=%g)", ErrSingular, det))
	}

	inv, err := Inverse(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverseCheck, err)
	}

	return inv, nil
}
