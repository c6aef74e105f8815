// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matcalc/matrix"
)

// document is the YAML shape of a matrix.
type document struct {
	Rows int         `yaml:"rows"`
	Cols int         `yaml:"cols"`
	Data [][]float64 `yaml:"data,flow"`
}

// ReadYAML decodes a {rows, cols, data} document from r.
//
// Errors:
//   - matrix.ErrInvalidDimensions for non-positive rows/cols.
//   - ErrShapeMismatch when data disagrees with rows/cols.
//   - a wrapped yaml error for malformed input.
func ReadYAML(r io.Reader, opts ...matrix.Option) (*matrix.Dense, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("codec: failed to parse matrix YAML: %w", err)
	}
	if doc.Rows <= 0 || doc.Cols <= 0 {
		return nil, fmt.Errorf("codec: %dx%d: %w", doc.Rows, doc.Cols, matrix.ErrInvalidDimensions)
	}
	if len(doc.Data) != doc.Rows {
		return nil, fmt.Errorf("%w: %d rows declared, %d present", ErrShapeMismatch, doc.Rows, len(doc.Data))
	}
	for i, row := range doc.Data {
		if len(row) != doc.Cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrShapeMismatch, i, len(row), doc.Cols)
		}
	}

	return matrix.NewFromRows(doc.Data, opts...)
}

// WriteYAML encodes m as a {rows, cols, data} document; data is written in
// flow style so each row stays on one line.
func WriteYAML(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}
	doc := document{Rows: m.Rows(), Cols: m.Cols(), Data: make([][]float64, m.Rows())}
	var err error
	for i := range doc.Data {
		doc.Data[i] = make([]float64, doc.Cols)
		for j := range doc.Data[i] {
			if doc.Data[i][j], err = m.At(i, j); err != nil {
				return err
			}
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(doc); err != nil {
		return fmt.Errorf("codec: failed to marshal matrix: %w", err)
	}

	return enc.Close()
}
