// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/matcalc/matrix"
)

// DefaultPrecision is the significant-digit count of a printed cell.
const DefaultPrecision = 4

// cellWidth is the minimum width of a printed cell.
const cellWidth = 10

// Option configures terminal output.
type Option func(*config)

type config struct {
	color     bool
	precision int
}

// WithColor toggles magnitude-band coloring.
func WithColor(on bool) Option {
	return func(c *config) { c.color = on }
}

// WithPrecision sets the significant digits per cell. Panics when p < 1.
func WithPrecision(p int) Option {
	if p < 1 {
		panic("render: WithPrecision: precision must be >= 1")
	}

	return func(c *config) { c.precision = p }
}

func gather(opts []Option) config {
	c := config{color: false, precision: DefaultPrecision}
	for _, o := range opts {
		if o != nil {
			o(&c)
		}
	}

	return c
}

// Cell formats one value as a fixed-width %10.<precision>g cell.
func Cell(v float64, precision int) string {
	return fmt.Sprintf("%*.*g", cellWidth, precision, v)
}

// Fprint writes m to w, one row per line, each cell followed by a space.
// A nil matrix prints "NULL matrix". Colors are resolved against w, so they
// disappear automatically when w is not a terminal.
func Fprint(w io.Writer, m matrix.Matrix, opts ...Option) error {
	_, err := io.WriteString(w, render(lipgloss.NewRenderer(w), m, gather(opts)))

	return err
}

// Terminal returns the printed form of m using the default renderer (stdout).
func Terminal(m matrix.Matrix, opts ...Option) string {
	return render(lipgloss.DefaultRenderer(), m, gather(opts))
}

func render(r *lipgloss.Renderer, m matrix.Matrix, c config) string {
	if matrix.ValidateNotNil(m) != nil {
		return "NULL matrix\n"
	}

	st := styles(r)
	var b strings.Builder
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err.Error() + "\n"
			}
			cell := Cell(v, c.precision)
			if c.color {
				cell = st[BandOf(v)].Render(cell)
			}
			b.WriteString(cell)
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}

	return b.String()
}
