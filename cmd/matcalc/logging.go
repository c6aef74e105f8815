// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/matcalc/matrix"
)

// newLogger builds the production zap logger; verbose lowers the level to debug.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}

// zapTracer logs every engine checkpoint.
type zapTracer struct {
	log *zap.Logger
}

// Trace implements matrix.Tracer.
func (z zapTracer) Trace(e matrix.Event) {
	fields := []zap.Field{zap.Stringer("kind", e.Kind)}
	switch e.Kind {
	case matrix.EventMinor:
		fields = append(fields, zap.Int("row", e.Row), zap.Int("col", e.Col),
			zap.Int("size", e.Size), zap.Int("depth", e.Depth))
	case matrix.EventCofactor:
		fields = append(fields, zap.Int("col", e.Col), zap.Float64("sign", e.Sign),
			zap.Float64("term", e.Value), zap.Int("depth", e.Depth))
	case matrix.EventPivot:
		fields = append(fields, zap.Int("col", e.Col), zap.Int("row", e.Row), zap.Float64("pivot", e.Value))
	case matrix.EventSwap:
		fields = append(fields, zap.Int("row", e.Row), zap.Int("other", e.Other))
	case matrix.EventNormalize:
		fields = append(fields, zap.Int("row", e.Row), zap.Float64("divisor", e.Value))
	case matrix.EventEliminate:
		fields = append(fields, zap.Int("row", e.Row), zap.Int("col", e.Col), zap.Float64("factor", e.Value))
	}
	z.log.Info("checkpoint", fields...)
}
