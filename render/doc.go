// SPDX-License-Identifier: MIT

// Package render presents matrices to people.
//
// Terminal/Fprint print one row per line with every value in a fixed-width
// %10.4g cell, optionally colored by magnitude band with lipgloss.
// SaveHeatmap draws a gonum/plot heatmap (row 0 at the top) and writes it in
// whatever image format the file extension names.
//
// Coloring is purely cosmetic; the printed digits never depend on it.
package render
