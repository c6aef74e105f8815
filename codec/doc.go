// SPDX-License-Identifier: MIT

// Package codec reads and writes matrices for the calculator.
//
// Two formats are supported:
//
//   - Text: a "rows cols" header followed by rows*cols numbers, separated by
//     any mix of spaces and newlines. Write emits one row per line with
//     values formatted %0.10g.
//   - YAML: {rows: R, cols: C, data: [[...], ...]}.
//
// Load and Save pick the format from the file extension (.yaml / .yml for
// YAML, anything else for text).
//
// Decoder is a whitespace token reader shared by the text format and the
// interactive calculator, so a single stream can carry menu choices and
// matrix bodies back to back.
package codec
