// SPDX-License-Identifier: MIT

// Package matrix_test provides benchmarks for the matrix engine,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
)

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkB bool
	sinkF float64
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{64, 256} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, 1337)
			B := RandFilledDense(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{32, 128} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, 5)
			B := RandFilledDense(b, n, n, 6)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

// BenchmarkDeterminant shows the factorial growth; keep n small.
func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{4, 6, 8} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, int64(n))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Determinant(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{8, 64} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := DiagDominant(b, n, 9)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Inverse(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkIsSparse(b *testing.B) {
	A := mustDense(b, 256, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkB = matrix.IsSparse(A)
	}
}
