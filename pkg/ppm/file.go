package ppm

import (
	"bufio"
	"fmt"
	"os"
)

// Load decodes the pixel map stored in the named file.
func Load(name string) (*Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return img, nil
}

// Save encodes img into the named file, creating or truncating it.
func Save(name string, img *Image) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	bw := bufio.NewWriter(f)
	err = Encode(bw, img)
	if err == nil {
		if flushErr := bw.Flush(); flushErr != nil {
			err = fmt.Errorf("%w: %w", ErrWrite, flushErr)
		}
	}
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("%w: %w", ErrWrite, closeErr)
	}
	return err
}
