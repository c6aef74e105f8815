// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/matrix"
)

func TestAllClose(t *testing.T) {
	a := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := FromRows(t, [][]float64{{1 + 1e-12, 2}, {3, 4 - 1e-12}})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(hide{a}, hide{b}, 0, 1e-15)
	require.NoError(t, err)
	require.False(t, ok)

	// Relative tolerance scales with |b|.
	big := FromRows(t, [][]float64{{1e6}})
	near := FromRows(t, [][]float64{{1e6 + 1}})
	ok, err = matrix.AllClose(big, near, 1e-5, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAllClose_SpecialValues(t *testing.T) {
	nan := FromRows(t, [][]float64{{math.NaN()}})
	ok, err := matrix.AllClose(nan, nan, 1, 1)
	require.NoError(t, err)
	require.False(t, ok)

	inf := FromRows(t, [][]float64{{math.Inf(1)}})
	ok, err = matrix.AllClose(inf, inf, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)

	negInf := FromRows(t, [][]float64{{math.Inf(-1)}})
	ok, err = matrix.AllClose(inf, negInf, 0, 0)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAllClose_Errors(t *testing.T) {
	a := MustDense(t, 1, 2)
	_, err := matrix.AllClose(a, MustDense(t, 2, 1), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.AllClose(a, a, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.AllClose(nil, a, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestEqualAndIsIdentity(t *testing.T) {
	a := FromRows(t, [][]float64{{1, 2}})
	require.True(t, matrix.Equal(a, hide{a.Clone()}))
	require.False(t, matrix.Equal(a, FromRows(t, [][]float64{{1, 3}})))
	require.False(t, matrix.Equal(a, FromRows(t, [][]float64{{1}, {2}})))
	require.False(t, matrix.Equal(nil, a))

	require.True(t, matrix.IsIdentity(IdentityDense(t, 3), 0))
	almost := IdentityDense(t, 2)
	MustSet(t, almost, 0, 1, 1e-10)
	require.True(t, matrix.IsIdentity(almost, 1e-9))
	require.False(t, matrix.IsIdentity(almost, 0))
	require.False(t, matrix.IsIdentity(MustDense(t, 2, 3), 1))
}

func TestLikeConstructors(t *testing.T) {
	z, err := matrix.ZerosLike(MustDense(t, 2, 5))
	require.NoError(t, err)
	require.Equal(t, 10, matrix.ZeroCount(z))

	I, err := matrix.IdentityLike(MustDense(t, 3, 3))
	require.NoError(t, err)
	require.True(t, matrix.IsIdentity(I, 0))

	_, err = matrix.IdentityLike(MustDense(t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrNotSquare)

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	zz, err := matrix.NewZeros(1, 1)
	require.NoError(t, err)
	require.Equal(t, 0.0, MustAt(t, matrix.CloneMatrix(zz), 0, 0))
}
