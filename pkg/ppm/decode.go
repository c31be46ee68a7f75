package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"strconv"
)

func init() {
	image.RegisterFormat("ppm", Signature, decodeImage, DecodeConfig)
}

func decodeImage(r io.Reader) (image.Image, error) {
	img, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Decode reads a binary pixel map from r. On failure it returns a nil image and an
// error wrapping one of ErrInvalidSignature, ErrInvalidMaxValue, ErrInvalidHeader,
// ErrImageTooLarge or ErrTruncated, or the underlying read error.
//
// Bytes following the pixel payload are not consumed beyond what buffering reads ahead.
func Decode(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)
	conf, err := decodeConfig(br)
	if err != nil {
		return nil, err
	}
	return decodePixels(br, conf)
}

// DecodeConfig reads only the header from r.
func DecodeConfig(r io.Reader) (image.Config, error) {
	return decodeConfig(bufio.NewReader(r))
}

func decodeConfig(br *bufio.Reader) (image.Config, error) {
	// signature
	sig, err := readToken(br)
	if err != nil {
		return image.Config{}, err
	}
	if sig != Signature {
		return image.Config{}, fmt.Errorf("%w: expected %q, actual %q", ErrInvalidSignature, Signature, sig)
	}

	// size
	width, err := readInt(br, "width")
	if err != nil {
		return image.Config{}, err
	}
	height, err := readInt(br, "height")
	if err != nil {
		return image.Config{}, err
	}

	// maximum channel value
	maxValue, err := readInt(br, "maximum value")
	if err != nil {
		return image.Config{}, err
	}
	if maxValue != MaxValue {
		return image.Config{}, fmt.Errorf("%w: expected %d, actual %d", ErrInvalidMaxValue, MaxValue, maxValue)
	}

	// exactly one newline separates the header from the payload
	next, err := br.ReadByte()
	if err != nil {
		return image.Config{}, fmt.Errorf("%w: missing newline after header", ErrInvalidHeader)
	}
	if next != '\n' {
		return image.Config{}, fmt.Errorf("%w: expected newline after header, actual %q", ErrInvalidHeader, next)
	}

	// with one side 0 the product says nothing about the other side
	if width > MaxPixels || height > MaxPixels || (width > 0 && height > MaxPixels/width) {
		return image.Config{}, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrImageTooLarge, width, height, MaxPixels)
	}

	return image.Config{
		ColorModel: PixelModel,
		Width:      width,
		Height:     height,
	}, nil
}

func decodePixels(br *bufio.Reader, conf image.Config) (*Image, error) {
	img := NewImage(conf.Width, conf.Height, Black)
	buf := make([]byte, conf.Width*channels)

	for y := 0; y < conf.Height; y++ {
		if _, err := io.ReadFull(br, buf); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: row %d of %d is incomplete", ErrTruncated, y, conf.Height)
			}
			return nil, err
		}
		row := img.Row(y)
		for x := range row {
			row[x] = Pixel{
				R: buf[x*channels+0],
				G: buf[x*channels+1],
				B: buf[x*channels+2],
			}
		}
	}

	return img, nil
}

// longest accepted header token; enough for any int and the signature
const maxTokenLen = 20

// readToken skips leading whitespace and returns the following run of non-whitespace
// bytes. The terminating whitespace byte is left unread.
func readToken(br *bufio.Reader) (string, error) {
	var c byte
	var err error
	for {
		c, err = br.ReadByte()
		if err != nil {
			return "", fmt.Errorf("%w: unexpected end of header", ErrInvalidHeader)
		}
		if !isSpace(c) {
			break
		}
	}

	tok := []byte{c}
	for {
		c, err = br.ReadByte()
		if errors.Is(err, io.EOF) {
			return string(tok), nil
		}
		if err != nil {
			return "", err
		}
		if isSpace(c) {
			return string(tok), br.UnreadByte()
		}
		if len(tok) == maxTokenLen {
			return "", fmt.Errorf("%w: header token %q... too long", ErrInvalidHeader, tok)
		}
		tok = append(tok, c)
	}
}

func readInt(br *bufio.Reader, name string) (int, error) {
	tok, err := readToken(br)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", ErrInvalidHeader, name, tok)
	}
	return v, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
