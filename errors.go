package h3grid

import "github.com/pkg/errors"

var (
	// ErrInvalidResolution is returned when a requested resolution falls
	// outside [0, MAX_H3_RES].
	ErrInvalidResolution = errors.New("h3grid: resolution out of range")

	// ErrInvalidGeoCoord is returned when a latitude/longitude pair cannot
	// be projected onto the icosahedron (non-finite components).
	ErrInvalidGeoCoord = errors.New("h3grid: invalid geographic coordinate")

	// ErrInvalidIndex is returned when an operation is asked to act on an
	// H3Index that does not pass IsValid.
	ErrInvalidIndex = errors.New("h3grid: invalid H3 index")

	// ErrCellEncodingFailed is returned when the forward pipeline collapses
	// to H3_NULL for reasons other than invalid input, such as an
	// out-of-range face coordinate surfacing deep inside the bit-packing
	// step.
	ErrCellEncodingFailed = errors.New("h3grid: failed to encode cell")
)
