// SPDX-License-Identifier: MIT
package matrix_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/matcalc/matrix"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestKernels_ConcurrentSharedInput runs every kernel from many goroutines
// against one shared operand; results must match the sequential ones.
func TestKernels_ConcurrentSharedInput(t *testing.T) {
	A := DiagDominant(t, 6, 77)
	wantDet, err := matrix.Determinant(A)
	require.NoError(t, err)
	wantInv, err := matrix.Inverse(A)
	require.NoError(t, err)
	wantSq, err := matrix.Mul(A, A)
	require.NoError(t, err)

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(8)
	for w := 0; w < 32; w++ {
		g.Go(func() error {
			det, err := matrix.Determinant(A)
			if err != nil {
				return err
			}
			if math.Float64bits(det) != math.Float64bits(wantDet) {
				t.Errorf("determinant drifted: %v vs %v", det, wantDet)
			}
			inv, err := matrix.Inverse(A)
			if err != nil {
				return err
			}
			if !matrix.Equal(inv, wantInv) {
				t.Errorf("inverse drifted")
			}
			sq, err := matrix.Mul(A, A)
			if err != nil {
				return err
			}
			if !matrix.Equal(sq, wantSq) {
				t.Errorf("product drifted")
			}
			_ = matrix.IsSparse(A)

			return nil
		})
	}
	require.NoError(t, g.Wait())
}
