// SPDX-License-Identifier: MIT

package render

import "github.com/charmbracelet/lipgloss"

// Band classifies a value for coloring.
type Band int

const (
	BandBase   Band = iota // |v| <= 1, NaN
	BandLow                // v > 1
	BandMedium             // v > 10
	BandHigh               // v > 100
)

// Band thresholds (strict '>').
const (
	thresholdHigh   = 100.0
	thresholdMedium = 10.0
	thresholdLow    = 1.0
)

var bandNames = [...]string{"base", "low", "medium", "high"}

// String returns the band name.
func (b Band) String() string {
	if b < BandBase || b > BandHigh {
		return "unknown"
	}

	return bandNames[b]
}

// BandOf returns the band of v. Comparison is on the signed value, so
// negative numbers always fall in BandBase.
func BandOf(v float64) Band {
	switch {
	case v > thresholdHigh:
		return BandHigh
	case v > thresholdMedium:
		return BandMedium
	case v > thresholdLow:
		return BandLow
	}

	return BandBase
}

// Palette colors per band.
var (
	colorHigh   = lipgloss.Color("#e53935") // red
	colorMedium = lipgloss.Color("#FFC107") // yellow
	colorLow    = lipgloss.Color("#8BC34A") // lime green
)

// styles builds one lipgloss style per band from r.
func styles(r *lipgloss.Renderer) [4]lipgloss.Style {
	return [4]lipgloss.Style{
		BandBase:   r.NewStyle(),
		BandLow:    r.NewStyle().Foreground(colorLow),
		BandMedium: r.NewStyle().Foreground(colorMedium),
		BandHigh:   r.NewStyle().Foreground(colorHigh).Bold(true),
	}
}
