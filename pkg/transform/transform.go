// Package transform implements in-place and derived operations on ppm images.
//
// In-place transforms (Negate, MirrorHorizontal, MirrorVertical, Rotate180) modify
// their argument. Derived transforms (Sobel) read one image and write into a
// caller-supplied image of the same size.
package transform

import (
	"sort"

	"go_pixmap/pkg/ppm"
)

// Runner distributes the row range [0, n) over workers. *workerpool.Pool implements it.
type Runner interface {
	ParallelFor(n int, fn func(start, end int))
}

// Serial is a Runner that runs everything on the calling goroutine.
var Serial Runner = serial{}

type serial struct{}

func (serial) ParallelFor(n int, fn func(start, end int)) {
	if n > 0 {
		fn(0, n)
	}
}

// Op applies a named transform and returns the resulting image. In-place
// transforms return img itself; derived transforms return a new image.
type Op func(r Runner, img *ppm.Image) *ppm.Image

var ops = map[string]Op{
	"negate":    inPlace(Negate),
	"hmirror":   inPlace(MirrorHorizontal),
	"vmirror":   inPlace(MirrorVertical),
	"rotate180": inPlace(Rotate180),
	"sobel":     sobelOp,
}

func inPlace(fn func(*ppm.Image)) Op {
	return func(_ Runner, img *ppm.Image) *ppm.Image {
		fn(img)
		return img
	}
}

// sobel output borders are black
func sobelOp(r Runner, img *ppm.Image) *ppm.Image {
	dst := ppm.NewImage(img.Width(), img.Height(), ppm.Black)
	SobelParallel(r, img, dst)
	return dst
}

// Lookup returns the transform registered under name.
func Lookup(name string) (Op, bool) {
	op, ok := ops[name]
	return op, ok
}

// Names returns the registered transform names in sorted order.
func Names() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
