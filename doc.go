// SPDX-License-Identifier: MIT

// Package matcalc is a small dense-matrix calculator: an algebra engine,
// file formats, terminal and image rendering, and a CLI on top.
//
// What is in the box?
//
//	matrix/       - Dense row-major matrices; Add, Sub, Mul, Scale, Transpose;
//	                Minor; Laplace-expansion Determinant; Gauss-Jordan Inverse
//	                with partial pivoting; IsSparse; step tracing.
//	codec/        - text ("rows cols" + values) and YAML formats, Load/Save.
//	render/       - %10.4g terminal printing with magnitude colors, heatmaps.
//	cmd/matcalc/  - one-shot subcommands and the interactive A/B menu.
//	examples/     - runnable demos.
//
// Why this shape?
//
//   - Deterministic - fixed loop orders; the determinant is bit-reproducible.
//   - Fail-fast - every misuse is a sentinel error (errors.Is), never a panic.
//   - Pure kernels - operands are never mutated, results never alias inputs,
//     so concurrent calls need no locks.
//
// Quick example:
//
//	A, _ := matrix.NewFromRows([][]float64{{2, 0}, {0, 2}})
//	det, _ := matrix.Determinant(A)  // 4
//	inv, _ := matrix.Inverse(A)      // diag(0.5, 0.5)
//	fmt.Print(render.Terminal(inv))
//
// The determinant is O(n!) by construction; keep n small (about 10 or less).
package matcalc
