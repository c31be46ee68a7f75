package transform

import "go_pixmap/pkg/ppm"

// Negate inverts the red channel of every pixel in place. Green and blue are left unchanged.
func Negate(img *ppm.Image) {
	for y := 0; y < img.Height(); y++ {
		row := img.Row(y)
		for x := range row {
			row[x].R = 255 - row[x].R
		}
	}
}
