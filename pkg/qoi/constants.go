package qoi

import (
	"errors"

	"go_pixmap/pkg/ppm"
)

// A List of opcodes used in the file. They specify how the bytes are encoded.
const (
	OpRgb   = byte(0b11111110)
	OpRgba  = byte(0b11111111)
	OpIndex = byte(0b00000000)
	OpDiff  = byte(0b01000000)
	OpLuma  = byte(0b10000000)
	OpRun   = byte(0b11000000)
	// OpMask selects the 2-bit op codes
	OpMask = byte(0b11000000)
)

// Magic is the magic code used for files of the QuiteOk image format.
const Magic = "qoif"

const (
	headerSize = 14
	// longest run a single OpRun can encode
	maxRun = 62
)

var (
	ErrInvalidMagic = errors.New("invalid magic")
	ErrInvalidEOF   = errors.New("invalid EOF")
	ErrTruncated    = errors.New("truncated data")
	ErrTooLarge     = errors.New("image too large")
	// eof is the end of file code used by files of the QuiteOk image format
	eof = [...]byte{0, 0, 0, 0, 0, 0, 0, 1}
)

// rgba is the decoder and encoder state. Pixels of this package are opaque, but a
// decoded stream may carry alpha which still takes part in the hash.
type rgba struct {
	r, g, b, a uint8
}

var startPixel = rgba{a: 255}

func fromPixel(p ppm.Pixel) rgba {
	return rgba{r: p.R, g: p.G, b: p.B, a: 255}
}

func (c rgba) pixel() ppm.Pixel {
	return ppm.Pixel{R: c.r, G: c.g, B: c.b}
}

// Generates a hash from the provided color. It is a number between 0 and 63.
func hashColor(c rgba) byte {
	return byte((int(c.r)*3 + int(c.g)*5 + int(c.b)*7 + int(c.a)*11) % 64)
}
