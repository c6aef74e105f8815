// SPDX-License-Identifier: MIT

// Package matrix is a small dense-matrix algebra engine.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and deep Clone.
//   - Pure arithmetic kernels: Add, Sub, Mul, Scale, Transpose.
//   - Minor extraction and a recursive Laplace-expansion Determinant
//     (row 0, columns in increasing order, fixed rounding order).
//   - Inverse by Gauss-Jordan elimination with partial pivoting and a
//     1e-12 singularity bound, plus InverseChecked with a determinant pre-filter.
//   - IsSparse, a zero-fraction classifier (> 60% entries with |v| < 1e-12).
//
// Every kernel returns a new *Dense and leaves its arguments untouched, so
// concurrent calls on disjoint or shared read-only inputs are safe.
// Failures are reported with the sentinels in errors.go (match with errors.Is);
// nothing in this package panics on user input or performs I/O.
//
// Tracing: pass WithTracer to Determinant or Inverse to observe minor
// extraction, cofactor terms, pivot choices, row swaps, normalization and
// elimination steps as they happen.
//
// Determinant is O(n!) by construction. It is meant for the small matrices
// a calculator handles; keep n at or below about 10 in interactive use.
package matrix
