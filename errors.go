package qoi

import "errors"

// Sentinel errors returned by the codec. Callers should check the kind with
// errors.Is rather than matching error strings.
var (
	// ErrInvalidArgument is returned when a caller passes a nil buffer, a
	// zero dimension, a channel count outside {3, 4}, a color-space byte
	// outside {0, 1}, or a pixel count that would overflow the format's
	// bound.
	ErrInvalidArgument = errors.New("qoi: invalid argument")

	// ErrInvalidHeader is returned when the 14-byte header's magic does not
	// read "qoif", or its fields violate the descriptor invariants.
	ErrInvalidHeader = errors.New("qoi: invalid header")

	// ErrTruncated is returned when an encoded buffer is shorter than the
	// minimum header-plus-padding length. A stream whose ops end before every
	// pixel is filled is not reported; the remaining pixels repeat the last
	// decoded one.
	ErrTruncated = errors.New("qoi: truncated stream")

	// ErrOutOfMemory is the error kind for an output buffer that cannot be
	// allocated. Encode and Decode allocate their output with make and never
	// return it; a failed allocation is not turned into an error value.
	ErrOutOfMemory = errors.New("qoi: out of memory")
)
