package transform

import (
	"slices"

	"go_pixmap/pkg/ppm"
)

// MirrorHorizontal mirrors img about its horizontal axis in place, so the top row
// becomes the bottom row.
func MirrorHorizontal(img *ppm.Image) {
	h := img.Height()
	for j := 0; j < h/2; j++ {
		top, bottom := img.Row(j), img.Row(h-1-j)
		for i := range top {
			top[i], bottom[i] = bottom[i], top[i]
		}
	}
}

// MirrorVertical mirrors img about its vertical axis in place, so the leftmost
// column becomes the rightmost one.
func MirrorVertical(img *ppm.Image) {
	for y := 0; y < img.Height(); y++ {
		slices.Reverse(img.Row(y))
	}
}

// Rotate180 turns img upside down in place.
func Rotate180(img *ppm.Image) {
	MirrorHorizontal(img)
	MirrorVertical(img)
}
