package ppm

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Pixel is a single opaque RGB color with 8 bits per channel.
type Pixel struct {
	R, G, B uint8
}

// Black is the zero pixel. It is the fill used for scratch images.
var Black = Pixel{}

// RGBA implements color.Color. Pixels are always fully opaque.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r = uint32(p.R)
	r |= r << 8
	g = uint32(p.G)
	g |= g << 8
	b = uint32(p.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// PixelModel converts any color to a Pixel, dropping alpha after un-premultiplying.
var PixelModel = color.ModelFunc(pixelModel)

func pixelModel(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: n.R, G: n.G, B: n.B}
}

// Image is a row-major grid of pixels. It implements image.Image and draw.Image.
//
// The zero value is a valid 0x0 image. Every Image owns its pixel storage; no two
// images share it.
type Image struct {
	width  int
	height int
	pix    []Pixel
}

// NewImage allocates a width x height image with every pixel set to fill.
func NewImage(width, height int, fill Pixel) *Image {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("ppm: negative image size %dx%d", width, height))
	}
	pix := make([]Pixel, width*height)
	if fill != Black {
		for i := range pix {
			pix[i] = fill
		}
	}
	return &Image{width: width, height: height, pix: pix}
}

// Width returns the image width in pixels.
func (img *Image) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image) Height() int {
	return img.height
}

func (img *Image) offset(x, y int) int {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		panic(fmt.Sprintf("ppm: pixel (%d, %d) out of range for %dx%d image", x, y, img.width, img.height))
	}
	return y*img.width + x
}

// PixelAt returns the pixel in column x of row y. It panics if (x, y) is out of range.
func (img *Image) PixelAt(x, y int) Pixel {
	return img.pix[img.offset(x, y)]
}

// SetPixel replaces the pixel in column x of row y. It panics if (x, y) is out of range.
func (img *Image) SetPixel(x, y int, p Pixel) {
	img.pix[img.offset(x, y)] = p
}

// Row returns the width pixels of row y. Writes through the returned slice modify
// the image; appending to it never does. It panics if y is out of range.
func (img *Image) Row(y int) []Pixel {
	if y < 0 || y >= img.height {
		panic(fmt.Sprintf("ppm: row %d out of range for %dx%d image", y, img.width, img.height))
	}
	start := y * img.width
	end := start + img.width
	return img.pix[start:end:end]
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
	clone := &Image{
		width:  img.width,
		height: img.height,
		pix:    make([]Pixel, len(img.pix)),
	}
	copy(clone.pix, img.pix)
	return clone
}

// Equal reports whether both images have the same size and the same pixels.
func (img *Image) Equal(other *Image) bool {
	if !SameSize(img, other) {
		return false
	}
	for i := range img.pix {
		if img.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}

// SameSize reports whether both images have the same dimensions.
func SameSize(a, b *Image) bool {
	return a.width == b.width && a.height == b.height
}

func (img *Image) ColorModel() color.Model {
	return PixelModel
}

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// At implements image.Image. Unlike PixelAt it returns an opaque black Pixel
// outside the bounds, as image.Image requires.
func (img *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return Black
	}
	return img.pix[y*img.width+x]
}

// Set implements draw.Image. Points outside the bounds are ignored.
func (img *Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return
	}
	img.pix[y*img.width+x] = PixelModel.Convert(c).(Pixel)
}

// FromImage copies any image into a new Image whose bounds start at (0, 0).
func FromImage(src image.Image) *Image {
	if p, ok := src.(*Image); ok {
		return p.Clone()
	}
	b := src.Bounds()
	dst := NewImage(b.Dx(), b.Dy(), Black)
	draw.Copy(dst, image.Point{}, src, b, draw.Src, nil)
	return dst
}
