package ppm

import "errors"

// Signature is the magic token of the binary pixel-map variant handled by this package.
const Signature = "P6"

// MaxValue is the only maximum channel value accepted in the header.
const MaxValue = 255

// MaxPixels bounds width, height and width*height of a decoded header so that a corrupt header cannot
// make Decode allocate an arbitrarily large buffer.
const MaxPixels = 1 << 28

// channels per pixel in the payload
const channels = 3

var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrInvalidMaxValue  = errors.New("invalid maximum channel value")
	ErrInvalidHeader    = errors.New("invalid header")
	ErrImageTooLarge    = errors.New("image too large")
	ErrTruncated        = errors.New("truncated pixel data")
	ErrWrite            = errors.New("write failed")
)
