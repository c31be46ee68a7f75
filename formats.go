package main

import (
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"go_pixmap/pkg/ppm"
	"go_pixmap/pkg/qoi"
)

type encodeFunc func(w io.Writer, img *ppm.Image) error

var formats = map[string]encodeFunc{
	"ppm": ppm.Encode,
	"qoi": qoi.Encode,
	"png": func(w io.Writer, img *ppm.Image) error {
		return png.Encode(w, img)
	},
	"jpeg": func(w io.Writer, img *ppm.Image) error {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	},
	"bmp": func(w io.Writer, img *ppm.Image) error {
		return bmp.Encode(w, img)
	},
	"tiff": func(w io.Writer, img *ppm.Image) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Uncompressed})
	},
}

// file extension of each format, first entry is used for output names
var extensions = map[string][]string{
	"ppm":  {".ppm", ".pnm"},
	"qoi":  {".qoi"},
	"png":  {".png"},
	"jpeg": {".jpg", ".jpeg"},
	"bmp":  {".bmp"},
	"tiff": {".tiff", ".tif"},
}

func formatNames() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// formatForName derives the output format from the extension of a file name.
func formatForName(name string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	for format, exts := range extensions {
		for _, e := range exts {
			if e == ext {
				return format, true
			}
		}
	}
	return "", false
}

// decodeAny sniffs the format of r and converts the decoded image to a *ppm.Image.
func decodeAny(r io.Reader) (*ppm.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	if p, ok := img.(*ppm.Image); ok {
		return p, format, nil
	}
	return ppm.FromImage(img), format, nil
}
