// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/matcalc/matrix"
)

// Format names a serialization.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "txt", "":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFor picks the format for a path by extension.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}

	return FormatText
}

// Decode reads one matrix from r in the given format.
func Decode(r io.Reader, f Format, opts ...matrix.Option) (*matrix.Dense, error) {
	switch f {
	case FormatText:
		return Read(r, opts...)
	case FormatYAML:
		return ReadYAML(r, opts...)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// Encode writes m to w in the given format.
func Encode(w io.Writer, m matrix.Matrix, f Format) error {
	switch f {
	case FormatText:
		return Write(w, m)
	case FormatYAML:
		return WriteYAML(w, m)
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// Load reads a matrix file, choosing the format from its extension.
func Load(path string, opts ...matrix.Option) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("codec: failed to open matrix file: %w", err)
	}
	defer f.Close()

	m, err := Decode(f, FormatFor(path), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Save writes m to path, creating parent directories as needed.
func Save(path string, m matrix.Matrix) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("codec: failed to create directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("codec: failed to create matrix file: %w", err)
	}
	if err = Encode(f, m, FormatFor(path)); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}
