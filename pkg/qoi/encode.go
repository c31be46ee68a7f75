package qoi

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"go_pixmap/pkg/ppm"
)

// Encode writes img to w in the QuiteOk image format with 3 channels in the sRGB colorspace.
func Encode(w io.Writer, img *ppm.Image) error {
	if uint64(img.Width()) > 1<<32-1 || uint64(img.Height()) > 1<<32-1 {
		return fmt.Errorf("%w: %dx%d", ErrTooLarge, img.Width(), img.Height())
	}

	bw := bufio.NewWriter(w)
	if err := encodeHeader(bw, img); err != nil {
		return err
	}
	if err := encodePixels(bw, img); err != nil {
		return err
	}
	return bw.Flush()
}

func encodeHeader(w io.Writer, img *ppm.Image) error {
	buf := make([]byte, 0, headerSize)

	buf = append(buf, Magic...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(img.Width()))
	buf = binary.BigEndian.AppendUint32(buf, uint32(img.Height()))
	buf = append(buf, byte(3))
	buf = append(buf, byte(0))

	_, err := w.Write(buf)
	return err
}

func encodePixels(bw *bufio.Writer, img *ppm.Image) error {
	last := startPixel
	var seen [64]rgba
	run := 0

	flushRun := func() {
		if run > 0 {
			bw.WriteByte(OpRun | byte(run-1))
			run = 0
		}
	}

	// write errors are sticky in bufio.Writer and surface on Flush
	for y := 0; y < img.Height(); y++ {
		for _, p := range img.Row(y) {
			curr := fromPixel(p)

			// OpRun
			if curr == last {
				run++
				if run == maxRun {
					flushRun()
				}
				continue
			}
			flushRun()

			// OpIndex
			hash := hashColor(curr)
			if seen[hash] == curr {
				bw.WriteByte(OpIndex | hash)
				last = curr
				continue
			}
			seen[hash] = curr

			// alpha is always 255, so OpRgba is never needed
			dr := int8(curr.r - last.r)
			dg := int8(curr.g - last.g)
			db := int8(curr.b - last.b)
			drDg := int(dr) - int(dg)
			dbDg := int(db) - int(dg)

			switch {
			case -2 <= dr && dr <= 1 && -2 <= dg && dg <= 1 && -2 <= db && db <= 1:
				// OpDiff
				bw.WriteByte(OpDiff | byte(dr+2)<<4 | byte(dg+2)<<2 | byte(db+2))
			case -32 <= dg && dg <= 31 && -8 <= drDg && drDg <= 7 && -8 <= dbDg && dbDg <= 7:
				// OpLuma
				bw.WriteByte(OpLuma | byte(dg+32))
				bw.WriteByte(byte(drDg+8)<<4 | byte(dbDg+8))
			default:
				// OpRgb
				bw.Write([]byte{OpRgb, curr.r, curr.g, curr.b})
			}
			last = curr
		}
	}
	flushRun()

	// write EOF
	_, err := bw.Write(eof[:])
	return err
}
