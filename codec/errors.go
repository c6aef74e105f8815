// SPDX-License-Identifier: MIT

package codec

import "errors"

var (
	// ErrMalformedHeader indicates the "rows cols" header is missing or not integral.
	ErrMalformedHeader = errors.New("codec: malformed header")

	// ErrShortData indicates the stream ended before rows*cols values were read.
	ErrShortData = errors.New("codec: not enough values")

	// ErrUnknownFormat indicates a format name that is neither text nor yaml.
	ErrUnknownFormat = errors.New("codec: unknown format")

	// ErrShapeMismatch indicates a YAML document whose data does not match rows/cols.
	ErrShapeMismatch = errors.New("codec: data does not match declared shape")
)
