// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// operation context) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions; panics are reserved for
// programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations wrap these sentinels with the
// operation tag and offending shapes, e.g. "Mul: matrix: dimension mismatch (2x3 * 4x2)".
// Callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> not square -> singular.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive,
	// or that an operation needs a larger shape than it was given (Minor on 1×1).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when the selected pivot magnitude falls below the
	// pivot tolerance during Gauss-Jordan inversion.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value was written while the strict
	// numeric policy (WithValidateNaNInf) was enabled.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// ErrIndexOutOfRange names the same condition as ErrOutOfRange.
// Both spellings match through errors.Is.
var ErrIndexOutOfRange = ErrOutOfRange
