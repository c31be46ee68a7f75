package transform

import (
	"fmt"
	"math"

	"go_pixmap/pkg/ppm"
)

// Sobel writes the per-channel Sobel gradient magnitude of src into dst.
//
// Only interior pixels are written; the one pixel wide border of dst keeps
// whatever the caller put there. dst must have the same size as src and must not
// be src.
func Sobel(src, dst *ppm.Image) {
	SobelParallel(Serial, src, dst)
}

// SobelParallel is Sobel with the interior rows distributed by r.
func SobelParallel(r Runner, src, dst *ppm.Image) {
	if !ppm.SameSize(src, dst) {
		panic(fmt.Sprintf("transform: sobel destination is %dx%d, source is %dx%d",
			dst.Width(), dst.Height(), src.Width(), src.Height()))
	}
	if src == dst {
		panic("transform: sobel source and destination are the same image")
	}
	if src.Width() < 3 || src.Height() < 3 {
		return
	}

	r.ParallelFor(src.Height()-2, func(start, end int) {
		for y := start + 1; y <= end; y++ {
			sobelRow(src, dst, y)
		}
	})
}

func sobelRow(src, dst *ppm.Image, y int) {
	above, row, below := src.Row(y-1), src.Row(y), src.Row(y+1)
	out := dst.Row(y)

	for x := 1; x < len(row)-1; x++ {
		tl, tc, tr := above[x-1], above[x], above[x+1]
		cl, cr := row[x-1], row[x+1]
		bl, bc, br := below[x-1], below[x], below[x+1]

		out[x] = ppm.Pixel{
			R: magnitude(tl.R, tc.R, tr.R, cl.R, cr.R, bl.R, bc.R, br.R),
			G: magnitude(tl.G, tc.G, tr.G, cl.G, cr.G, bl.G, bc.G, br.G),
			B: magnitude(tl.B, tc.B, tr.B, cl.B, cr.B, bl.B, bc.B, br.B),
		}
	}
}

// magnitude convolves one channel of a 3x3 neighborhood (center omitted) with
// both Sobel kernels and returns sqrt(gx²+gy²) clamped to [0, 255].
//
//	gx: -1 0 1    gy: -1 -2 -1
//	    -2 0 2         0  0  0
//	    -1 0 1         1  2  1
func magnitude(tl, tc, tr, cl, cr, bl, bc, br uint8) uint8 {
	gx := -int(tl) + int(tr) - 2*int(cl) + 2*int(cr) - int(bl) + int(br)
	gy := -int(tl) - 2*int(tc) - int(tr) + int(bl) + 2*int(bc) + int(br)

	m := math.Sqrt(float64(gx*gx + gy*gy))
	if m >= 255 {
		return 255
	}
	return uint8(m)
}
