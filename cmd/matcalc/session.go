// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/matcalc/codec"
	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/render"
)

const menuText = `
========== Matrix Calculator ==========
1. Add (A + B)
2. Subtract (A - B)
3. Multiply (A * B)
4. Scalar multiply (k * A)
5. Transpose (A^T)
6. Determinant (det(A))
7. Inverse (A^-1)
8. Create / Input a matrix (store as A or B)
9. Print stored matrices
10. Save A or B to a file
11. Load A or B from a file
12. Sparsity of A
0. Exit
Note: Stored matrices: A and B (you can override them).
========================================
`

// Menu messages.
const (
	msgBothDefined   = "Both A and B must be defined."
	msgSameDims      = "Matrices must have same dimensions."
	msgMulDims       = "A's columns must equal B's rows for multiplication."
	msgADefined      = "Matrix A must be defined."
	msgDetSquare     = "Determinant requires a square matrix."
	msgInvSquare     = "Inverse requires a square matrix."
	msgSingularDet   = "Matrix is singular (det=0). No inverse."
	msgInverseFailed = "Inverse computation failed (matrix may be singular)."
	msgInvalidChoice = "Invalid choice."
	msgInvalidDims   = "Invalid dimensions."
	msgBadInput      = "Bad input. Exiting."
	msgGoodbye       = "Goodbye!"
)

// session is one interactive run: the two stored matrices plus the streams.
type session struct {
	in   *codec.Decoder
	out  io.Writer
	a, b *matrix.Dense

	opts    []matrix.Option
	pivot   float64
	display []render.Option
	log     *zap.Logger
}

func newSession(in io.Reader, out io.Writer, cfg *Config, opts []matrix.Option, log *zap.Logger) *session {
	return &session{
		in:      codec.NewDecoder(in),
		out:     out,
		opts:    opts,
		pivot:   cfg.PivotTolerance,
		display: cfg.RenderOptions(),
		log:     log,
	}
}

func (a *app) runMenu(cmd *cobra.Command, args []string) error {
	s := newSession(cmd.InOrStdin(), cmd.OutOrStdout(), a.cfg, a.matrixOptions(), a.logger)

	return s.run()
}

func (s *session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *session) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *session) show(m matrix.Matrix) {
	if err := render.Fprint(s.out, m, s.display...); err != nil {
		s.log.Debug("print failed", zap.Error(err))
	}
}

// run loops until 0, end of input or an unreadable choice.
func (s *session) run() error {
	for {
		fmt.Fprint(s.out, menuText)
		s.printf("Choice: ")
		choice, err := s.in.Int()
		if err != nil {
			s.println(msgBadInput)
			break
		}
		if choice == 0 {
			break
		}
		s.log.Debug("menu choice", zap.Int("choice", choice))
		s.dispatch(choice)
	}
	s.println(msgGoodbye)

	return nil
}

func (s *session) dispatch(choice int) {
	switch choice {
	case 1:
		s.binary("A + B", matrix.Add, msgSameDims)
	case 2:
		s.binary("A - B", matrix.Sub, msgSameDims)
	case 3:
		s.binary("A * B", matrix.Mul, msgMulDims)
	case 4:
		s.scale()
	case 5:
		s.transpose()
	case 6:
		s.determinant()
	case 7:
		s.inverse()
	case 8:
		s.input()
	case 9:
		s.printStored()
	case 10:
		s.save()
	case 11:
		s.load()
	case 12:
		s.sparsity()
	default:
		s.println(msgInvalidChoice)
	}
}

func (s *session) binary(label string, op func(x, y matrix.Matrix) (*matrix.Dense, error), mismatch string) {
	if s.a == nil || s.b == nil {
		s.println(msgBothDefined)
		return
	}
	res, err := op(s.a, s.b)
	if errors.Is(err, matrix.ErrDimensionMismatch) {
		s.println(mismatch)
		return
	}
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	s.printf("Result (%s):\n", label)
	s.show(res)
}

func (s *session) scale() {
	if s.a == nil {
		s.println(msgADefined)
		return
	}
	s.printf("Enter scalar k: ")
	k, err := s.in.Float()
	if err != nil {
		s.printf("Invalid scalar: %v\n", err)
		return
	}
	res, err := matrix.Scale(s.a, k)
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	s.println("Result (k * A):")
	s.show(res)
}

func (s *session) transpose() {
	if s.a == nil {
		s.println(msgADefined)
		return
	}
	res, err := matrix.Transpose(s.a)
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	s.println("Transpose of A:")
	s.show(res)
}

func (s *session) determinant() {
	if s.a == nil {
		s.println(msgADefined)
		return
	}
	det, err := matrix.Determinant(s.a, s.opts...)
	if errors.Is(err, matrix.ErrNotSquare) {
		s.println(msgDetSquare)
		return
	}
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	s.printf("det(A) = %.10g\n", det)
}

// inverse pre-checks the determinant, then runs Gauss-Jordan.
func (s *session) inverse() {
	if s.a == nil {
		s.println(msgADefined)
		return
	}
	if !s.a.IsSquare() {
		s.println(msgInvSquare)
		return
	}
	det, err := matrix.Determinant(s.a, s.opts...)
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	if math.Abs(det) < s.pivot {
		s.println(msgSingularDet)
		return
	}
	inv, err := matrix.Inverse(s.a, s.opts...)
	if err != nil {
		s.log.Debug("inverse failed", zap.Error(err))
		s.println(msgInverseFailed)
		return
	}
	s.println("Inverse of A:")
	s.show(inv)
}

// pick asks which slot to use; ok is false after printing "Invalid choice.".
func (s *session) pick(prompt string) (slot **matrix.Dense, name string, ok bool) {
	s.printf("%s (1 for A, 2 for B): ", prompt)
	which, err := s.in.Int()
	switch {
	case err == nil && which == 1:
		return &s.a, "A", true
	case err == nil && which == 2:
		return &s.b, "B", true
	}
	s.println(msgInvalidChoice)

	return nil, "", false
}

// input replaces a slot with a matrix typed by the user. The slot is cleared
// first, so a failed entry leaves it empty.
func (s *session) input() {
	slot, _, ok := s.pick("Which matrix to input?")
	if !ok {
		return
	}
	*slot = nil

	s.printf("Rows: ")
	rows, err := s.in.Int()
	if err != nil {
		s.println(msgInvalidDims)
		return
	}
	s.printf("Columns: ")
	cols, err := s.in.Int()
	if err != nil || rows <= 0 || cols <= 0 || rows > matrix.MaxElements/cols {
		s.println(msgInvalidDims)
		return
	}
	s.printf("Enter %d x %d elements row-wise:\n", rows, cols)
	m, err := s.in.Body(rows, cols)
	if errors.Is(err, matrix.ErrInvalidDimensions) {
		s.println(msgInvalidDims)
		return
	}
	if err != nil {
		s.printf("Invalid input: %v\n", err)
		return
	}
	*slot = m
}

func (s *session) printStored() {
	for _, e := range []struct {
		name string
		m    *matrix.Dense
	}{{"A", s.a}, {"B", s.b}} {
		rows, cols := 0, 0
		if e.m != nil {
			rows, cols = e.m.Shape()
		}
		s.printf("\nMatrix %s (%d x %d):\n", e.name, rows, cols)
		if e.m == nil {
			s.printf("%s is empty.\n", e.name)
			continue
		}
		s.show(e.m)
	}
}

func (s *session) save() {
	slot, name, ok := s.pick("Which matrix to save?")
	if !ok {
		return
	}
	if *slot == nil {
		s.printf("%s is empty.\n", name)
		return
	}
	s.printf("File name: ")
	path, err := s.in.Token()
	if err != nil {
		s.println(msgInvalidChoice)
		return
	}
	if err = codec.Save(path, *slot); err != nil {
		s.printf("Save failed: %v\n", err)
		return
	}
	s.printf("Saved %s to %s.\n", name, path)
}

func (s *session) load() {
	slot, name, ok := s.pick("Which matrix to load?")
	if !ok {
		return
	}
	s.printf("File name: ")
	path, err := s.in.Token()
	if err != nil {
		s.println(msgInvalidChoice)
		return
	}
	m, err := codec.Load(path)
	if err != nil {
		s.printf("Load failed: %v\n", err)
		return
	}
	*slot = m
	s.printf("Loaded %s (%d x %d) from %s.\n", name, m.Rows(), m.Cols(), path)
}

func (s *session) sparsity() {
	if s.a == nil {
		s.println(msgADefined)
		return
	}
	s.printf("Zero fraction of A: %.4g\n", matrix.ZeroFraction(s.a, s.opts...))
	if matrix.IsSparse(s.a, s.opts...) {
		s.println("A is sparse.")
		return
	}
	s.println("A is not sparse.")
}
