// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/render"
)

// Config holds calculator settings. Every key can also be set by a flag of
// the same name; flags win over the file.
type Config struct {
	Verbose           bool    `yaml:"verbose"`
	Trace             bool    `yaml:"trace"`
	Color             bool    `yaml:"color"`
	Precision         int     `yaml:"precision"`
	PivotTolerance    float64 `yaml:"pivot_tolerance"`
	ZeroTolerance     float64 `yaml:"zero_tolerance"`
	SparsityThreshold float64 `yaml:"sparsity_threshold"`
	Jobs              int     `yaml:"jobs"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() *Config {
	return &Config{
		Color:             true,
		Precision:         render.DefaultPrecision,
		PivotTolerance:    matrix.DefaultPivotTolerance,
		ZeroTolerance:     matrix.DefaultZeroTolerance,
		SparsityThreshold: matrix.DefaultSparsityThreshold,
		Jobs:              4,
	}
}

// LoadConfig reads a YAML config on top of the defaults.
// An empty path or a missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Validate rejects values the option constructors would panic on.
func (c *Config) Validate() error {
	switch {
	case c.Precision < 1:
		return fmt.Errorf("config: precision must be >= 1, got %d", c.Precision)
	case !finiteNonNegative(c.PivotTolerance):
		return fmt.Errorf("config: pivot_tolerance must be finite and >= 0, got %g", c.PivotTolerance)
	case !finiteNonNegative(c.ZeroTolerance):
		return fmt.Errorf("config: zero_tolerance must be finite and >= 0, got %g", c.ZeroTolerance)
	case !(c.SparsityThreshold >= 0 && c.SparsityThreshold <= 1):
		return fmt.Errorf("config: sparsity_threshold must be within [0,1], got %g", c.SparsityThreshold)
	case c.Jobs < 1:
		return fmt.Errorf("config: jobs must be >= 1, got %d", c.Jobs)
	}

	return nil
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// MatrixOptions translates the numeric settings into engine options.
// The tracer is attached separately by the caller.
func (c *Config) MatrixOptions() []matrix.Option {
	return []matrix.Option{
		matrix.WithPivotTolerance(c.PivotTolerance),
		matrix.WithZeroTolerance(c.ZeroTolerance),
		matrix.WithSparsityThreshold(c.SparsityThreshold),
	}
}

// RenderOptions translates the presentation settings.
func (c *Config) RenderOptions() []render.Option {
	return []render.Option{
		render.WithColor(c.Color),
		render.WithPrecision(c.Precision),
	}
}
