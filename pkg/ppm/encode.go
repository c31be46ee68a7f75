package ppm

import (
	"fmt"
	"io"
)

// Encode writes img to w as a binary pixel map. The first failing write aborts the
// encoding; the returned error wraps ErrWrite and the writer's error. Bytes already
// written are not rolled back.
func Encode(w io.Writer, img *Image) error {
	if err := encodeHeader(w, img); err != nil {
		return err
	}
	return encodePixels(w, img)
}

func encodeHeader(w io.Writer, img *Image) error {
	_, err := fmt.Fprintf(w, "%s\n%d %d\n%d\n", Signature, img.Width(), img.Height(), MaxValue)
	if err != nil {
		return fmt.Errorf("%w: header: %w", ErrWrite, err)
	}
	return nil
}

func encodePixels(w io.Writer, img *Image) error {
	buf := make([]byte, img.Width()*channels)

	for y := 0; y < img.Height(); y++ {
		for x, p := range img.Row(y) {
			buf[x*channels+0] = p.R
			buf[x*channels+1] = p.G
			buf[x*channels+2] = p.B
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w: row %d: %w", ErrWrite, y, err)
		}
	}

	return nil
}
