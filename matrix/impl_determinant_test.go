// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matcalc/matrix"
)

func TestDeterminant_Identity(t *testing.T) {
	for n := 1; n <= 7; n++ {
		d, err := matrix.Determinant(IdentityDense(t, n))
		require.NoError(t, err)
		require.Equal(t, 1.0, d, "n=%d", n)
	}
}

func TestDeterminant_KnownValues(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-3}}, -3},
		{"2x2", [][]float64{{3, 8}, {4, 6}}, -14},
		{"diag", [][]float64{{2, 0}, {0, 2}}, 4},
		{"singular", [][]float64{{1, 2}, {2, 4}}, 0},
		{"3x3", [][]float64{{1, 2, 3}, {0, 1, 4}, {5, 6, 0}}, 1},
		{"upper", [][]float64{{2, 3, 1}, {0, 4, 5}, {0, 0, 6}}, 48},
		{"4x4", [][]float64{{1, 0, 2, -1}, {3, 0, 0, 5}, {2, 1, 4, -3}, {1, 0, 5, 0}}, 30},
		{"dup_rows", [][]float64{{1, 2, 3}, {1, 2, 3}, {4, 5, 6}}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			A := FromRows(t, tc.rows)
			got, err := matrix.Determinant(A)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)

			viaFallback, err := matrix.Det(hide{A})
			require.NoError(t, err)
			require.Equal(t, got, viaFallback)
		})
	}
}

// TestDeterminant_MatchesReference compares against an independent
// nested-slice expansion with the same order: results must be identical bits.
func TestDeterminant_MatchesReference(t *testing.T) {
	for n := 1; n <= 6; n++ {
		A := RandFilledDense(t, n, n, int64(100+n))
		got, err := matrix.Determinant(A)
		require.NoError(t, err)
		require.Equal(t, math.Float64bits(refDet(A.Rows2D())), math.Float64bits(got), "n=%d", n)
	}
}

// TestDeterminant_AgreesWithLU compares the cofactor expansion with gonum's
// LU determinant. Rounding differs, so only closeness is required.
func TestDeterminant_AgreesWithLU(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for _, A := range []*matrix.Dense{
			RandFilledDense(t, n, n, int64(300+n)),
			DiagDominant(t, n, int64(400+n)),
		} {
			got, err := matrix.Determinant(A)
			require.NoError(t, err)
			want := mat.Det(gonumOf(t, A))
			require.InDelta(t, want, got, 1e-9*math.Max(1, math.Abs(want)), "n=%d", n)
		}
	}
}

// TestDeterminant_Deterministic repeats the same computation.
func TestDeterminant_Deterministic(t *testing.T) {
	A := RandFilledDense(t, 6, 6, 2024)
	first, err := matrix.Determinant(A)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := matrix.Determinant(A)
		require.NoError(t, err)
		require.Equal(t, math.Float64bits(first), math.Float64bits(again))
	}
}

// TestDeterminantAlongRow_CrossCheck: expanding along any row agrees with row 0.
func TestDeterminantAlongRow_CrossCheck(t *testing.T) {
	for n := 2; n <= 6; n++ {
		A := RandFilledDense(t, n, n, int64(n*31))
		want, err := matrix.Determinant(A)
		require.NoError(t, err)

		row0, err := matrix.DeterminantAlongRow(A, 0)
		require.NoError(t, err)
		require.Equal(t, want, row0, "row 0 must be bit-identical, n=%d", n)

		for r := 1; r < n; r++ {
			got, err := matrix.DeterminantAlongRow(A, r)
			require.NoError(t, err)
			require.InDelta(t, want, got, 1e-12, "n=%d row=%d", n, r)
		}
	}

	A := FromRows(t, [][]float64{{1, 0, 2, -1}, {3, 0, 0, 5}, {2, 1, 4, -3}, {1, 0, 5, 0}})
	for r := 0; r < 4; r++ {
		got, err := matrix.DeterminantAlongRow(A, r)
		require.NoError(t, err)
		require.Equal(t, 30.0, got, "row=%d", r)
	}

	one, err := matrix.DeterminantAlongRow(FromRows(t, [][]float64{{7}}), 0)
	require.NoError(t, err)
	require.Equal(t, 7.0, one)
}

func TestDeterminant_Errors(t *testing.T) {
	_, err := matrix.Determinant(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNotSquare)
	require.Contains(t, err.Error(), "Determinant: ")

	_, err = matrix.Determinant(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.DeterminantAlongRow(MustDense(t, 3, 3), 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.DeterminantAlongRow(MustDense(t, 3, 3), -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.DeterminantAlongRow(MustDense(t, 3, 2), 0)
	require.ErrorIs(t, err, matrix.ErrNotSquare)
}

func TestDeterminant_NaNPropagates(t *testing.T) {
	A := FromRows(t, [][]float64{{1, 2, 3}, {4, math.NaN(), 6}, {7, 8, 9}})
	d, err := matrix.Determinant(A)
	require.NoError(t, err)
	require.True(t, math.IsNaN(d))
}

// TestDeterminant_Trace checks the checkpoint stream of a 3×3 expansion:
// the 2×2 minors hit the closed form, so only the top level reports.
func TestDeterminant_Trace(t *testing.T) {
	var events []matrix.Event
	rec := matrix.TracerFunc(func(e matrix.Event) { events = append(events, e) })

	A := FromRows(t, [][]float64{{1, 2, 3}, {0, 1, 4}, {5, 6, 0}})
	d, err := matrix.Determinant(A, matrix.WithTracer(rec))
	require.NoError(t, err)
	require.Equal(t, 1.0, d)

	require.Len(t, events, 6)
	wantTerms := []float64{-24, 40, -15}
	wantSigns := []float64{1, -1, 1}
	for c := 0; c < 3; c++ {
		minor, term := events[2*c], events[2*c+1]
		require.Equal(t, matrix.EventMinor, minor.Kind)
		require.Equal(t, c, minor.Col)
		require.Equal(t, 3, minor.Size)
		require.Equal(t, matrix.EventCofactor, term.Kind)
		require.Equal(t, wantSigns[c], term.Sign)
		require.Equal(t, wantTerms[c], term.Value)
	}

	// 4×4 recurses once: 4 top-level pairs plus 4×3 pairs at depth 1.
	events = events[:0]
	_, err = matrix.Determinant(RandFilledDense(t, 4, 4, 3), matrix.WithTracer(rec))
	require.NoError(t, err)
	require.Len(t, events, 2*(4+4*3))
	depths := map[int]int{}
	for _, e := range events {
		depths[e.Depth]++
	}
	require.Equal(t, map[int]int{0: 8, 1: 24}, depths)
}
