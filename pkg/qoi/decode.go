package qoi

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"

	"go_pixmap/pkg/ppm"
)

func init() {
	image.RegisterFormat("qoi", Magic, decodeImage, DecodeConfig)
}

func decodeImage(r io.Reader) (image.Image, error) {
	img, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Decode reads a QuiteOk image from r. The alpha channel of the stream is dropped.
func Decode(r io.Reader) (*ppm.Image, error) {
	br := bufio.NewReader(r)
	conf, err := decodeConfig(br)
	if err != nil {
		return nil, err
	}
	return decodePixels(br, conf)
}

// DecodeConfig reads only the 14 byte header from r.
func DecodeConfig(r io.Reader) (image.Config, error) {
	return decodeConfig(r)
}

func decodeConfig(r io.Reader) (image.Config, error) {
	// read the header bytes
	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return image.Config{}, readErr(err)
	}
	// validate the magic bytes
	if string(buf[:4]) != Magic {
		return image.Config{}, fmt.Errorf("%w: expected %q, actual %q", ErrInvalidMagic, Magic, string(buf[:4]))
	}
	// read the width and height (ignores `channels` and `colorspace`)
	width := binary.BigEndian.Uint32(buf[4:8])
	height := binary.BigEndian.Uint32(buf[8:12])
	if width > ppm.MaxPixels || height > ppm.MaxPixels || uint64(width)*uint64(height) > ppm.MaxPixels {
		return image.Config{}, fmt.Errorf("%w: %dx%d", ErrTooLarge, width, height)
	}
	return image.Config{
		Width:      int(width),
		Height:     int(height),
		ColorModel: ppm.PixelModel,
	}, nil
}

func decodePixels(br *bufio.Reader, conf image.Config) (*ppm.Image, error) {
	img := ppm.NewImage(conf.Width, conf.Height, ppm.Black)

	last := startPixel
	var seen [64]rgba
	var buf [5]byte
	run := 0

	for y := 0; y < conf.Height; y++ {
		row := img.Row(y)
		for x := range row {
			// handle other run iterations
			if run > 0 {
				run--
				row[x] = last.pixel()
				continue
			}

			op, err := br.ReadByte()
			if err != nil {
				return nil, readErr(err)
			}
			switch {
			case op == OpRgb:
				if _, err := io.ReadFull(br, buf[:3]); err != nil {
					return nil, readErr(err)
				}
				last = rgba{r: buf[0], g: buf[1], b: buf[2], a: last.a}
			case op == OpRgba:
				if _, err := io.ReadFull(br, buf[:4]); err != nil {
					return nil, readErr(err)
				}
				last = rgba{r: buf[0], g: buf[1], b: buf[2], a: buf[3]}
			case op&OpMask == OpIndex:
				last = seen[op]
			case op&OpMask == OpDiff:
				last.r += (op>>4)&0x3 - 2
				last.g += (op>>2)&0x3 - 2
				last.b += (op>>0)&0x3 - 2
			case op&OpMask == OpLuma:
				second, err := br.ReadByte()
				if err != nil {
					return nil, readErr(err)
				}
				dg := op&0b00111111 - 32
				last.r += dg + (second>>4)&0xf - 8
				last.g += dg
				last.b += dg + second&0xf - 8
			case op&OpMask == OpRun:
				// first run iteration happens below
				run = int(op & 0b00111111)
			}

			seen[hashColor(last)] = last
			row[x] = last.pixel()
		}
	}

	// check EOF sequence
	var end [len(eof)]byte
	if _, err := io.ReadFull(br, end[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEOF, readErr(err))
	}
	if !bytes.Equal(end[:], eof[:]) {
		return nil, ErrInvalidEOF
	}

	return img, nil
}

func readErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}
