// SPDX-License-Identifier: MIT

// Command matcalc is a dense-matrix calculator.
//
// Run without arguments (or with "menu") for the interactive A/B session,
// or use the one-shot subcommands on matrix files:
//
//	matcalc det a.txt
//	matcalc mul a.txt b.yaml --out c.yaml
//	matcalc batch det m1.txt m2.txt m3.txt
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/matcalc/codec"
	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/render"
)

// app carries the resolved configuration and logger of one invocation.
type app struct {
	configPath string
	outPath    string
	flags      Config

	cfg    *Config
	logger *zap.Logger
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	def := DefaultConfig()

	root := &cobra.Command{
		Use:   "matcalc",
		Short: "matcalc - dense matrix calculator",
		Long: `matcalc adds, subtracts, multiplies, scales and transposes matrices,
computes determinants by cofactor expansion and inverses by Gauss-Jordan
elimination, and classifies sparsity.

Matrix files use the text format ("rows cols" then the values) or YAML
({rows, cols, data}) when the name ends in .yaml or .yml.

Run without arguments to start the interactive menu.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: a.runMenu,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.BoolVarP(&a.flags.Verbose, "verbose", "v", false, "Enable verbose logging")
	pf.BoolVar(&a.flags.Trace, "trace", false, "Log every determinant/inverse checkpoint")
	pf.BoolVar(&a.flags.Color, "color", def.Color, "Color values by magnitude")
	pf.IntVar(&a.flags.Precision, "precision", def.Precision, "Significant digits per printed value")
	pf.Float64Var(&a.flags.PivotTolerance, "pivot-tolerance", def.PivotTolerance, "Singularity bound for inversion")
	pf.Float64Var(&a.flags.ZeroTolerance, "zero-tolerance", def.ZeroTolerance, "Magnitude counted as zero by sparse")
	pf.Float64Var(&a.flags.SparsityThreshold, "sparsity-threshold", def.SparsityThreshold, "Zero fraction a sparse matrix must exceed")
	pf.IntVar(&a.flags.Jobs, "jobs", def.Jobs, "Parallel files in batch")
	pf.StringVarP(&a.outPath, "out", "o", "", "Write the result matrix to this file instead of stdout")

	root.AddCommand(
		&cobra.Command{Use: "menu", Short: "Interactive A/B calculator", Args: cobra.NoArgs, RunE: a.runMenu},
		a.binaryCmd("add", "A + B", matrix.Add),
		a.binaryCmd("sub", "A - B", matrix.Sub),
		a.binaryCmd("mul", "A * B", matrix.Mul),
		a.scaleCmd(),
		a.transposeCmd(),
		a.detCmd(),
		a.invCmd(),
		a.sparseCmd(),
		a.heatmapCmd(),
		a.batchCmd(),
	)

	return root
}

// setup resolves config file + flags and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}

	pf := cmd.Flags()
	if pf.Changed("verbose") {
		cfg.Verbose = a.flags.Verbose
	}
	if pf.Changed("trace") {
		cfg.Trace = a.flags.Trace
	}
	if pf.Changed("color") {
		cfg.Color = a.flags.Color
	}
	if pf.Changed("precision") {
		cfg.Precision = a.flags.Precision
	}
	if pf.Changed("pivot-tolerance") {
		cfg.PivotTolerance = a.flags.PivotTolerance
	}
	if pf.Changed("zero-tolerance") {
		cfg.ZeroTolerance = a.flags.ZeroTolerance
	}
	if pf.Changed("sparsity-threshold") {
		cfg.SparsityThreshold = a.flags.SparsityThreshold
	}
	if pf.Changed("jobs") {
		cfg.Jobs = a.flags.Jobs
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.Verbose || cfg.Trace {
		if a.logger, err = newLogger(cfg.Verbose); err != nil {
			return err
		}
	}
	a.logger.Debug("configuration resolved",
		zap.String("config", a.configPath),
		zap.Float64("pivot_tolerance", cfg.PivotTolerance),
		zap.Int("precision", cfg.Precision))

	return nil
}

// matrixOptions returns the engine options, including the tracer when enabled.
func (a *app) matrixOptions() []matrix.Option {
	opts := a.cfg.MatrixOptions()
	if a.cfg.Trace {
		opts = append(opts, matrix.WithTracer(zapTracer{log: a.logger}))
	}

	return opts
}

// load reads a matrix file.
func (a *app) load(path string) (*matrix.Dense, error) {
	m, err := codec.Load(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("loaded matrix", zap.String("path", path), zap.Int("rows", m.Rows()), zap.Int("cols", m.Cols()))

	return m, nil
}

// emit writes a result matrix to --out or prints it.
func (a *app) emit(w io.Writer, m matrix.Matrix) error {
	if a.outPath != "" {
		if err := codec.Save(a.outPath, m); err != nil {
			return err
		}
		a.logger.Info("result saved", zap.String("path", a.outPath))

		return nil
	}

	return render.Fprint(w, m, a.cfg.RenderOptions()...)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
