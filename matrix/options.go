// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume a variadic ...Option tail,
//     so calling any kernel without options yields the documented defaults.
//
// Notes:
//   - Tolerances are absolute magnitudes compared with strict '<'.
//   - The tracer is an observer only; it never alters results.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultPivotTolerance is the magnitude below which a selected pivot
	// declares the matrix singular during Gauss-Jordan inversion. The same
	// bound is used by InverseChecked for its determinant pre-filter.
	DefaultPivotTolerance = 1e-12

	// DefaultZeroTolerance is the magnitude below which an entry counts as zero
	// for the sparsity classifier.
	DefaultZeroTolerance = 1e-12

	// DefaultSparsityThreshold is the zero fraction a matrix must strictly
	// exceed to be classified sparse.
	DefaultSparsityThreshold = 0.6

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	// NaN/Inf are legal values by default and propagate through every kernel.
	DefaultValidateNaNInf = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: eps must be finite, non-negative"
	panicZeroToleranceInvalid  = "matrix: WithZeroTolerance: eps must be finite, non-negative"
	panicSparsityInvalid       = "matrix: WithSparsityThreshold: fraction must be within [0,1]"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	// numeric policy
	pivotTol       float64 // >= 0; DefaultPivotTolerance
	zeroTol        float64 // >= 0; DefaultZeroTolerance
	sparsity       float64 // [0,1]; DefaultSparsityThreshold
	validateNaNInf bool    // DefaultValidateNaNInf

	// observation
	tracer Tracer // nil ⇒ no tracing
}

// ---------- Constructors (WithX) ----------

// WithPivotTolerance sets the singularity bound for Gauss-Jordan pivots.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - A pivot p is accepted iff |p| >= eps; eps=0 accepts every non-zero pivot.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithPivotTolerance(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = eps }
}

// WithZeroTolerance sets the magnitude under which IsSparse counts an entry as zero.
// Panics when eps is negative or non-finite.
func WithZeroTolerance(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicZeroToleranceInvalid)
	}

	return func(o *Options) { o.zeroTol = eps }
}

// WithSparsityThreshold sets the zero fraction that IsSparse must strictly exceed.
// Panics when frac is outside [0,1].
func WithSparsityThreshold(frac float64) Option {
	if isNonFinite(frac) || frac < 0 || frac > 1 {
		panic(panicSparsityInvalid)
	}

	return func(o *Options) { o.sparsity = frac }
}

// WithValidateNaNInf toggles the strict finite-value policy for matrices
// created through NewDenseWith / NewFromRows and for the result of Inverse
// (and InverseChecked) when passed to those calls. Add, Sub, Mul, Scale and
// Transpose take no options; their results use the default policy.
//
// Notes:
//   - When enabled, Set rejects NaN/±Inf with ErrNaNInf.
//   - Inverse writes its result directly, so it may still hold propagated NaN;
//     the flag governs later Set calls on that result.
func WithValidateNaNInf(enabled bool) Option {
	return func(o *Options) { o.validateNaNInf = enabled }
}

// WithTracer installs an observer invoked at algorithm checkpoints
// (minor extraction, cofactor accumulation, pivot choice, row swap,
// normalization, row elimination). A nil tracer disables tracing.
func WithTracer(t Tracer) Option {
	return func(o *Options) { o.tracer = t }
}

// --------------------------- Option Resolution ---------------------------

// NewMatrixOptions resolves option setters against documented defaults.
// Pure function; stable for a given sequence of opts.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// PivotTolerance reports the effective pivot tolerance.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// ZeroTolerance reports the effective zero tolerance.
func (o Options) ZeroTolerance() float64 { return o.zeroTol }

// SparsityThreshold reports the effective sparsity threshold.
func (o Options) SparsityThreshold() float64 { return o.sparsity }

// ValidateNaNInf reports whether the strict numeric policy is on.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		pivotTol:       DefaultPivotTolerance,
		zeroTol:        DefaultZeroTolerance,
		sparsity:       DefaultSparsityThreshold,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in api/impl layers.
// Implementation:
//   - Stage 1: start from defaultOptions().
//   - Stage 2: apply setters in order (last-writer-wins); nil setters are skipped.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
