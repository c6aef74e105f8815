// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/matcalc/matrix"
)

// heatmapColors is the palette resolution.
const heatmapColors = 12

// heatmapSide is the edge length of the square output image.
const heatmapSide = 5 * vg.Inch

// grid adapts a Dense to plotter.GridXYZ with row 0 drawn at the top.
type grid struct {
	rows [][]float64
}

func (g grid) Dims() (c, r int)   { return len(g.rows[0]), len(g.rows) }
func (g grid) X(c int) float64    { return float64(c) }
func (g grid) Y(r int) float64    { return float64(r) }
func (g grid) Z(c, r int) float64 { return g.rows[len(g.rows)-1-r][c] }

// finiteRange returns min/max over the finite values of rows. A constant or
// all non-finite matrix gets a unit-wide range so the palette is well defined.
func finiteRange(rows [][]float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, row := range rows {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if lo > hi {
		return 0, 1
	}
	if lo == hi {
		return lo - 0.5, hi + 0.5
	}

	return lo, hi
}

// Heatmap builds a plot of m. Values outside the finite range (±Inf) are
// drawn with the extreme palette colors and NaN cells are left blank.
func Heatmap(m matrix.Matrix, title string) (*plot.Plot, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("render: heatmap: %w", err)
	}
	rows := make([][]float64, m.Rows())
	var err error
	for i := range rows {
		rows[i] = make([]float64, m.Cols())
		for j := range rows[i] {
			if rows[i][j], err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("render: heatmap: %w", err)
			}
		}
	}

	pal := palette.Heat(heatmapColors, 1)
	h := plotter.NewHeatMap(grid{rows: rows}, pal)
	h.Min, h.Max = finiteRange(rows)
	colors := pal.Colors()
	h.Underflow = colors[0]
	h.Overflow = colors[len(colors)-1]

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row (0 at top)"
	p.Add(h)

	return p, nil
}

// SaveHeatmap renders m to path; the extension selects the image format
// (.png, .svg, .pdf, .jpg, ...).
func SaveHeatmap(m matrix.Matrix, path string) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("render: heatmap: %w", err)
	}
	p, err := Heatmap(m, fmt.Sprintf("%dx%d matrix", m.Rows(), m.Cols()))
	if err != nil {
		return err
	}
	if err = p.Save(heatmapSide, heatmapSide, path); err != nil {
		return fmt.Errorf("render: save heatmap: %w", err)
	}

	return nil
}
