// SPDX-License-Identifier: MIT

package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/matcalc/matrix"
)

// valuePrecision is the number of significant digits Write emits (%0.10g).
const valuePrecision = 10

// Read decodes a single text-format matrix from r.
// Tokens after the last value are left unread.
func Read(r io.Reader, opts ...matrix.Option) (*matrix.Dense, error) {
	return NewDecoder(r).Decode(opts...)
}

// Write encodes m in the text format: a "rows cols" line, then one line per
// row with values separated by a single space.
func Write(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	rows, cols := m.Rows(), m.Cols()
	if _, err := fmt.Fprintf(bw, "%d %d\n", rows, cols); err != nil {
		return err
	}

	buf := make([]byte, 0, 32)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendFloat(buf, v, 'g', valuePrecision, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
		buf = buf[:0]
	}

	return bw.Flush()
}
