// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/matrix"
)

func TestMinor_Table(t *testing.T) {
	A := FromRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	cases := []struct {
		name     string
		row, col int
		want     [][]float64
	}{
		{"corner_00", 0, 0, [][]float64{{5, 6}, {8, 9}}},
		{"center_11", 1, 1, [][]float64{{1, 3}, {7, 9}}},
		{"corner_22", 2, 2, [][]float64{{1, 2}, {4, 5}}},
		{"edge_02", 0, 2, [][]float64{{4, 5}, {7, 8}}},
		{"edge_21", 2, 1, [][]float64{{1, 3}, {4, 6}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			M, err := matrix.Minor(A, tc.row, tc.col)
			require.NoError(t, err)
			CompareExact(t, tc.want, M)

			MH, err := matrix.Minor(hide{A}, tc.row, tc.col)
			require.NoError(t, err)
			require.True(t, matrix.Equal(M, MH))
		})
	}
}

func TestMinor_TwoByTwo(t *testing.T) {
	A := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	M, err := matrix.Minor(A, 0, 1)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{3}}, M)
}

func TestMinor_DoesNotAlias(t *testing.T) {
	A := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	M, err := matrix.Minor(A, 1, 1)
	require.NoError(t, err)
	MustSet(t, M, 0, 0, 42)
	require.Equal(t, 1.0, MustAt(t, A, 0, 0))
}

func TestMinor_Errors(t *testing.T) {
	_, err := matrix.Minor(FromRows(t, [][]float64{{5}}), 0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Minor(MustDense(t, 2, 3), 0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	A := MustDense(t, 3, 3)
	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		_, err = matrix.Minor(A, idx[0], idx[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "skip=%v", idx)
	}

	_, err = matrix.Minor(nil, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
