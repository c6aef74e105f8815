// SPDX-License-Identifier: MIT

package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/matcalc/matrix"
)

// Decoder reads whitespace-separated tokens from a stream.
// It buffers input, so callers must not read the underlying reader directly
// once a Decoder has been attached to it.
type Decoder struct {
	sc *bufio.Scanner
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &Decoder{sc: sc}
}

// Token returns the next whitespace-delimited token, or io.EOF.
func (d *Decoder) Token() (string, error) {
	if d.sc.Scan() {
		return d.sc.Text(), nil
	}
	if err := d.sc.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

// Int reads the next token as a base-10 integer.
func (d *Decoder) Int() (int, error) {
	tok, err := d.Token()
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(tok)
}

// Float reads the next token as a float64. "NaN", "Inf" and "-Inf" are accepted.
func (d *Decoder) Float() (float64, error) {
	tok, err := d.Token()
	if err != nil {
		return 0, err
	}

	return strconv.ParseFloat(tok, 64)
}

// Header reads a "rows cols" pair. Dimensions are not range-checked here.
func (d *Decoder) Header() (rows, cols int, err error) {
	if rows, err = d.Int(); err != nil {
		return 0, 0, fmt.Errorf("%w: rows: %v", ErrMalformedHeader, err)
	}
	if cols, err = d.Int(); err != nil {
		return 0, 0, fmt.Errorf("%w: cols: %v", ErrMalformedHeader, err)
	}

	return rows, cols, nil
}

// Body reads rows*cols values in row-major order into a new Dense.
//
// Errors:
//   - matrix.ErrInvalidDimensions when rows or cols is not positive.
//   - ErrShortData when the stream ends early.
//   - a wrapped *strconv.NumError for an unparsable value.
func (d *Decoder) Body(rows, cols int, opts ...matrix.Option) (*matrix.Dense, error) {
	m, err := matrix.NewDenseWith(rows, cols, opts...)
	if err != nil {
		return nil, err
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = d.Float()
			if err == io.EOF {
				return nil, fmt.Errorf("%w: got %d of %d", ErrShortData, i*cols+j, rows*cols)
			}
			if err != nil {
				return nil, fmt.Errorf("codec: value (%d,%d): %w", i, j, err)
			}
			if err = m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Decode reads one text-format matrix: header then body.
func (d *Decoder) Decode(opts ...matrix.Option) (*matrix.Dense, error) {
	rows, cols, err := d.Header()
	if err != nil {
		return nil, err
	}

	return d.Body(rows, cols, opts...)
}
