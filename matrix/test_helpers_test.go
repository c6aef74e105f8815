// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Provide a plain [][]float64 reference determinant that follows the same
//     expansion order as the engine, so results can be compared bit-for-bit.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matcalc/matrix"
)

// approxTol is the per-entry tolerance used by identity-product checks.
const approxTol = 1e-9

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// FromRows BUILDS a *Dense from nested rows or fails the test.
func FromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// IdentityDense RETURNS an n×n identity or fails the test.
func IdentityDense(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// RandFilledDense RETURNS a new r×c Dense filled with deterministic U(-1,1).
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1)
		}
	}

	return m
}

// DiagDominant RETURNS a random n×n matrix with n added to the diagonal,
// which keeps it comfortably invertible.
func DiagDominant(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := RandFilledDense(t, n, n, seed)
	for i := 0; i < n; i++ {
		MustSet(t, m, i, i, MustAt(t, m, i, i)+float64(n))
	}

	return m
}

// MustSet WRITES v to m[i,j] or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// rowsOf COPIES any Matrix into nested rows for cmp-based comparison.
func rowsOf(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			out[i][j] = MustAt(t, m, i, j)
		}
	}

	return out
}

// CompareExact FAILS the test when m differs from want anywhere (== per entry).
func CompareExact(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	if diff := cmp.Diff(want, rowsOf(t, m)); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// CompareClose FAILS the test when any entry differs by more than atol.
func CompareClose(t testing.TB, want [][]float64, m matrix.Matrix, atol float64) {
	t.Helper()
	if diff := cmp.Diff(want, rowsOf(t, m), cmpopts.EquateApprox(0, atol)); diff != "" {
		t.Fatalf("matrix mismatch beyond %g (-want +got):\n%s", atol, diff)
	}
}

// AssertErrorIs FAILS unless errors.Is(err, target).
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want error %v, got %v", target, err)
	}
}

// refDet is an independent nested-slice Laplace expansion along row 0 with
// the same column order and the same 1×1/2×2 base cases as the engine.
func refDet(a [][]float64) float64 {
	n := len(a)
	if n == 1 {
		return a[0][0]
	}
	if n == 2 {
		return float64(a[0][0]*a[1][1]) - float64(a[0][1]*a[1][0])
	}
	det := 0.0
	for c := 0; c < n; c++ {
		sub := make([][]float64, 0, n-1)
		for i := 1; i < n; i++ {
			row := make([]float64, 0, n-1)
			for j := 0; j < n; j++ {
				if j != c {
					row = append(row, a[i][j])
				}
			}
			sub = append(sub, row)
		}
		sign := 1.0
		if c%2 == 1 {
			sign = -1.0
		}
		det += float64(sign * a[0][c] * refDet(sub))
	}

	return det
}

// gonumOf COPIES m into a gonum dense matrix for LU-based cross-checks.
func gonumOf(t testing.TB, m matrix.Matrix) *mat.Dense {
	t.Helper()
	data := make([]float64, 0, m.Rows()*m.Cols())
	for _, row := range rowsOf(t, m) {
		data = append(data, row...)
	}

	return mat.NewDense(m.Rows(), m.Cols(), data)
}

// mustDense is the benchmark twin of MustDense.
func mustDense(b *testing.B, r, c int) *matrix.Dense {
	b.Helper()
	return MustDense(b, r, c)
}
