// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Sparsity classification over the dense model: count near-zero entries
//     and compare their fraction against a threshold.
//
// Exposed API:
//   - ZeroCount(X)    -> int     // entries with |v| < zero tolerance
//   - ZeroFraction(X) -> float64 // ZeroCount / (rows*cols)
//   - IsSparse(X)     -> bool    // ZeroFraction > sparsity threshold
//
// Determinism & Performance:
//   - Single row-major pass; no allocations on the *Dense path.
//   - NaN never counts as zero (|NaN| < tol is false).

package matrix

import "math"

// ZeroCount returns the number of entries with |v| < tolerance
// (DefaultZeroTolerance unless WithZeroTolerance). A nil matrix has no entries.
func ZeroCount(m Matrix, opts ...Option) int {
	if ValidateNotNil(m) != nil {
		return 0
	}
	o := gatherOptions(opts...)

	zeros := 0
	if d, ok := m.(*Dense); ok {
		d.Do(func(_, _ int, v float64) bool {
			if math.Abs(v) < o.zeroTol {
				zeros++
			}

			return true
		})

		return zeros
	}

	// Fallback: generic At loop (bounds are valid by construction).
	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err == nil && math.Abs(v) < o.zeroTol {
				zeros++
			}
		}
	}

	return zeros
}

// ZeroFraction returns ZeroCount(m) / (rows*cols), or 0 for a nil or empty matrix.
func ZeroFraction(m Matrix, opts ...Option) float64 {
	if ValidateNotNil(m) != nil {
		return 0
	}
	total := m.Rows() * m.Cols()
	if total <= 0 {
		return 0
	}

	return float64(ZeroCount(m, opts...)) / float64(total)
}

// IsSparse reports whether the fraction of near-zero entries strictly exceeds
// the sparsity threshold (DefaultSparsityThreshold = 0.6 unless overridden).
// Pure and total: never fails, a nil matrix is not sparse.
//
// Complexity: O(r*c) time, O(1) space.
func IsSparse(m Matrix, opts ...Option) bool {
	o := gatherOptions(opts...)

	return ZeroFraction(m, opts...) > o.sparsity
}
