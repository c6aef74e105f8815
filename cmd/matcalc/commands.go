// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/render"
)

// binaryCmd wires a two-operand kernel (add, sub, mul).
func (a *app) binaryCmd(name, what string, op func(x, y matrix.Matrix) (*matrix.Dense, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " A B",
		Short: "Compute " + what,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.load(args[0])
			if err != nil {
				return err
			}
			y, err := a.load(args[1])
			if err != nil {
				return err
			}
			res, err := op(x, y)
			if err != nil {
				return err
			}

			return a.emit(cmd.OutOrStdout(), res)
		},
	}
}

func (a *app) scaleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scale [flags] A k",
		Short: "Compute k * A",
		Long:  "Compute k * A. Flags go before A so a negative k such as -0.5 is read as the scalar.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			k, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("scalar %q: %w", args[1], err)
			}
			res, err := matrix.Scale(m, k)
			if err != nil {
				return err
			}

			return a.emit(cmd.OutOrStdout(), res)
		},
	}
	// Operands end flag parsing; -0.5 is a value, not shorthand -0.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func (a *app) transposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "transpose A",
		Aliases: []string{"t"},
		Short:   "Compute A^T",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			res, err := matrix.Transpose(m)
			if err != nil {
				return err
			}

			return a.emit(cmd.OutOrStdout(), res)
		},
	}
}

func (a *app) detCmd() *cobra.Command {
	var row int
	cmd := &cobra.Command{
		Use:   "det A",
		Short: "Determinant by cofactor expansion",
		Long: `Determinant by recursive cofactor expansion along row 0.
With --row the top level expands along the given row instead, which is
useful to cross-check a result. Cost grows factorially with the order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			var det float64
			if cmd.Flags().Changed("row") {
				det, err = matrix.DeterminantAlongRow(m, row, a.matrixOptions()...)
			} else {
				det, err = matrix.Determinant(m, a.matrixOptions()...)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "det(A) = %.10g\n", det)

			return err
		},
	}
	cmd.Flags().IntVar(&row, "row", 0, "Expand along this row")

	return cmd
}

func (a *app) invCmd() *cobra.Command {
	var skipDet bool
	cmd := &cobra.Command{
		Use:   "inv A",
		Short: "Inverse by Gauss-Jordan elimination",
		Long: `Inverse by Gauss-Jordan elimination with partial pivoting.
By default the determinant is checked first, as the interactive menu does;
--skip-det relies on the pivot test alone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			var inv *matrix.Dense
			if skipDet {
				inv, err = matrix.Inverse(m, a.matrixOptions()...)
			} else {
				inv, err = matrix.InverseChecked(m, a.matrixOptions()...)
			}
			if err != nil {
				return err
			}
			if prod, perr := matrix.Mul(m, inv); perr == nil && !matrix.IsIdentity(prod, 1e-9) {
				a.logger.Warn("inverse is inaccurate: A*inv(A) deviates from I by more than 1e-9",
					zap.String("path", args[0]))
			}

			return a.emit(cmd.OutOrStdout(), inv)
		},
	}
	cmd.Flags().BoolVar(&skipDet, "skip-det", false, "Skip the determinant pre-check")

	return cmd
}

func (a *app) sparseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sparse A",
		Short: "Report the zero fraction and sparsity of A",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			opts := a.matrixOptions()
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "zero fraction: %.4g\nsparse: %t\n",
				matrix.ZeroFraction(m, opts...), matrix.IsSparse(m, opts...))

			return err
		},
	}
}

func (a *app) heatmapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "heatmap A IMAGE",
		Short: "Draw A as a heatmap (.png, .svg, .pdf, ...)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			if err = render.SaveHeatmap(m, args[1]); err != nil {
				return err
			}
			a.logger.Info("heatmap saved", zap.String("path", args[1]))

			return nil
		},
	}
}
