package ppm

import "embed"

//go:embed all:data/*
var data embed.FS

var validFiles = []string{
	"gradient",
	"pair",
	"empty",
}

// files that must fail to decode, mapped to the expected error
var invalidFiles = map[string]error{
	"truncated": ErrTruncated,
	"graymap":   ErrInvalidSignature,
	"maxvalue":  ErrInvalidMaxValue,
	"nonewline": ErrInvalidHeader,
}

// testImage returns a w x h image whose pixels are derived from their coordinates.
func testImage(w, h int) *Image {
	img := NewImage(w, h, Black)
	for y := 0; y < h; y++ {
		row := img.Row(y)
		for x := range row {
			row[x] = Pixel{
				R: uint8((x * 17) ^ (y * 31)),
				G: uint8((x * 43) + (y * 13)),
				B: uint8((x * 7) ^ (y * 11)),
			}
		}
	}
	return img
}
