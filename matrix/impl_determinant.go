// SPDX-License-Identifier: MIT

// Package matrix - recursive Laplace (cofactor) determinant.
//
// Purpose:
//   - Exact reproduction of the cofactor expansion along row 0 with a fixed
//     column order, so two runs (or two implementations following the same
//     order) agree bit-for-bit.
//
// Complexity:
//   - O(n!) time, O(n²) live memory per recursion level, recursion depth n-2.
//     Intended for small matrices; beyond roughly 10×10 prefer not to call it
//     interactively.
package matrix

import "fmt"

// Determinant computes det(a) by recursive Laplace expansion along row 0.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(a).
//   - Stage 2: n=1 → a[0][0]; n=2 → a00*a11 - a01*a10.
//   - Stage 3: n≥3 → for c = 0..n-1: det += sign(c) * a[0][c] * Determinant(Minor(a,0,c)),
//     sign(c) = +1 for even c, −1 for odd c.
//
// Behavior highlights:
//   - Terms are accumulated in increasing column order starting from 0.0.
//   - Every product is rounded before it is added (explicit float64 conversion),
//     so no platform fuses multiply-add and the result bits are portable.
//   - NaN/Inf entries propagate according to IEEE-754.
//   - WithTracer receives EventMinor and EventCofactor at every level.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare (wrapped with opDeterminant and the shape).
func Determinant(a Matrix, opts ...Option) (float64, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	src, err := asDense(a)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	o := gatherOptions(opts...)

	return laplace(src, 0, o.tracer), nil
}

// DeterminantAlongRow expands det(a) along the given row with cofactor signs
// (-1)^(row+col). Sub-determinants are computed by the row-0 engine.
// For row 0 the result is bit-identical to Determinant.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrOutOfRange (row outside [0,n)).
func DeterminantAlongRow(a Matrix, row int, opts ...Option) (float64, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	n := a.Rows()
	if row < 0 || row >= n {
		return 0, matrixErrorf(opDeterminant, fmt.Errorf("row %d of %dx%d: %w", row, n, n, ErrOutOfRange))
	}
	src, err := asDense(a)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if n == 1 {
		return src.data[0], nil
	}

	o := gatherOptions(opts...)
	det := ZeroSum
	var c int
	var sign, term float64
	for c = 0; c < n; c++ {
		sub := cutMinor(src, row, c)
		emit(o.tracer, Event{Kind: EventMinor, Row: row, Col: c, Size: n})
		sign = cofactorSign(row, c)
		term = float64(sign * src.data[row*n+c] * laplace(sub, 1, o.tracer))
		emit(o.tracer, Event{Kind: EventCofactor, Row: row, Col: c, Sign: sign, Value: term})
		det += term
	}

	return det, nil
}

// laplace is the recursive row-0 expansion over a square Dense (n ≥ 1).
func laplace(m *Dense, depth int, t Tracer) float64 {
	n := m.r
	switch n {
	case 1:
		return m.data[0]
	case 2:
		return float64(m.data[0]*m.data[3]) - float64(m.data[1]*m.data[2])
	}

	det := ZeroSum
	var c int
	var sign, term float64
	for c = 0; c < n; c++ {
		sub := cutMinor(m, 0, c)
		emit(t, Event{Kind: EventMinor, Row: 0, Col: c, Size: n, Depth: depth})
		sign = cofactorSign(0, c)
		term = float64(sign * m.data[c] * laplace(sub, depth+1, t))
		emit(t, Event{Kind: EventCofactor, Row: 0, Col: c, Sign: sign, Value: term, Depth: depth})
		det += term
	}

	return det
}

// cofactorSign returns (-1)^(row+col).
func cofactorSign(row, col int) float64 {
	if (row+col)%2 == 0 {
		return 1
	}

	return -1
}
