// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise comparison micro-kernels used by the API facades, tests and
//     the CLI's inverse verification.
//
// Determinism & Performance:
//   - Single row-major pass with early exit on the first violation.
//   - *Dense operands compare flat slices; other implementations go through At.

package matrix

import "math"

const opAllClose = "AllClose"

// closeEnough applies |a-b| ≤ atol + rtol*|b| with IEEE special cases:
// NaN is never close to anything, equal infinities are close.
func closeEnough(av, bv, rtol, atol float64) bool {
	if math.IsNaN(av) || math.IsNaN(bv) {
		return false
	}
	if av == bv {
		return true
	}

	return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - Non-finite tolerances are rejected with ErrNaNInf.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !closeEnough(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// ewEqual reports exact element-wise equality (==) for identical shapes.
// Shape mismatches and nil operands report false.
func ewEqual(a, b Matrix) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	da, errA := asDense(a)
	db, errB := asDense(b)
	if errA != nil || errB != nil {
		return false
	}
	for idx := range da.data {
		if da.data[idx] != db.data[idx] {
			return false
		}
	}

	return true
}
