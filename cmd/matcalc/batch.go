// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/render"
)

// errBatchFailed reports that at least one file in a batch failed.
var errBatchFailed = errors.New("batch: some files failed")

// batchOps are the single-operand operations batch can run.
var batchOps = map[string]func(a *app, m *matrix.Dense) (string, error){
	"det": func(a *app, m *matrix.Dense) (string, error) {
		det, err := matrix.Determinant(m, a.matrixOptions()...)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("det = %.10g", det), nil
	},
	"inv": func(a *app, m *matrix.Dense) (string, error) {
		inv, err := matrix.InverseChecked(m, a.matrixOptions()...)
		if err != nil {
			return "", err
		}
		return "\n" + plain(a, inv), nil
	},
	"transpose": func(a *app, m *matrix.Dense) (string, error) {
		t, err := matrix.Transpose(m)
		if err != nil {
			return "", err
		}
		return "\n" + plain(a, t), nil
	},
	"sparse": func(a *app, m *matrix.Dense) (string, error) {
		opts := a.matrixOptions()
		return fmt.Sprintf("zero fraction = %.4g, sparse = %t",
			matrix.ZeroFraction(m, opts...), matrix.IsSparse(m, opts...)), nil
	},
}

// plain renders m without color and without the final newline.
func plain(a *app, m matrix.Matrix) string {
	return strings.TrimSuffix(render.Terminal(m, render.WithColor(false), render.WithPrecision(a.cfg.Precision)), "\n")
}

// batchResult is the outcome for one file.
type batchResult struct {
	path string
	out  string
	err  error
}

func (a *app) batchCmd() *cobra.Command {
	var failFast bool
	names := make([]string, 0, len(batchOps))
	for name := range batchOps {
		names = append(names, name)
	}

	cmd := &cobra.Command{
		Use:   "batch OP FILE...",
		Short: "Run one operation over many files in parallel",
		Long: `Run det, inv, transpose or sparse over every FILE, --jobs at a time.
Each operation stays single-threaded; only independent files run
concurrently. Results are printed in argument order.`,
		Args:      cobra.MinimumNArgs(2),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBatch(cmd.Context(), cmd.OutOrStdout(), args[0], args[1:], failFast)
		},
	}
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop starting new files after the first failure")

	return cmd
}

// runBatch evaluates op on every path with at most cfg.Jobs files in flight.
func (a *app) runBatch(ctx context.Context, w io.Writer, op string, paths []string, failFast bool) error {
	fn, ok := batchOps[strings.ToLower(op)]
	if !ok {
		return fmt.Errorf("batch: unknown operation %q", op)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]batchResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i].path = path
			if err := gctx.Err(); err != nil {
				results[i].err = err
				return nil
			}
			m, err := a.load(path)
			if err == nil {
				results[i].out, err = fn(a, m)
			}
			if err != nil {
				results[i].err = err
				a.logger.Warn("batch item failed", zap.String("path", path), zap.Error(err))
				if failFast {
					return err
				}
			}

			return nil
		})
	}
	groupErr := g.Wait()

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(w, "%s: error: %v\n", r.path, r.err)
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", r.path, r.out)
	}
	if groupErr != nil || failed > 0 {
		return fmt.Errorf("%w: %d of %d", errBatchFailed, failed, len(paths))
	}

	return nil
}
