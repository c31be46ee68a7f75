package ppm

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncode(t *testing.T) {
	// given
	img := NewImage(2, 1, Black)
	img.SetPixel(0, 0, Pixel{R: 10, G: 20, B: 30})
	img.SetPixel(1, 0, Pixel{R: 200, G: 100, B: 50})
	var buf bytes.Buffer

	// when
	err := Encode(&buf, img)
	if err != nil {
		t.Fatal(err)
	}

	// then
	want := append([]byte("P6\n2 1\n255\n"), 0x0A, 0x14, 0x1E, 0xC8, 0x64, 0x32)
	if d := cmp.Diff(want, buf.Bytes()); d != "" {
		t.Errorf("Encode() (-want +got):\n%s", d)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {0, 3}, {3, 0}, {1, 1}, {2, 1}, {1, 2}, {17, 9}, {64, 48}} {
		t.Run(fmt.Sprintf("%dx%d", size[0], size[1]), func(t *testing.T) {

			// given
			want := testImage(size[0], size[1])
			var buf bytes.Buffer

			// when
			if err := Encode(&buf, want); err != nil {
				t.Fatal(err)
			}
			got, err := Decode(&buf)
			if err != nil {
				t.Fatal(err)
			}

			// then
			if d := diffImages(want, got); d != "" {
				t.Error(d)
			}
		})
	}
}

// failingWriter accepts n bytes and then fails every write.
type failingWriter struct {
	n int
}

var errDiskFull = errors.New("disk full")

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		written := w.n
		w.n = 0
		return written, errDiskFull
	}
	w.n -= len(p)
	return len(p), nil
}

func TestEncodeWriteFailure(t *testing.T) {
	img := testImage(4, 4)

	for _, n := range []int{0, 5, 11, 20, 58} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			err := Encode(&failingWriter{n: n}, img)

			if !errors.Is(err, ErrWrite) || !errors.Is(err, errDiskFull) {
				t.Errorf("Encode() error = %v, want %v wrapping %v", err, ErrWrite, errDiskFull)
			}
		})
	}

	// exactly enough room
	if err := Encode(&failingWriter{n: 11 + 48}, img); err != nil {
		t.Errorf("Encode() = %v, want nil", err)
	}
}

func TestSaveLoad(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.ppm")
	want := testImage(13, 7)

	if err := Save(name, want); err != nil {
		t.Fatal(err)
	}
	got, err := Load(name)
	if err != nil {
		t.Fatal(err)
	}

	if d := diffImages(want, got); d != "" {
		t.Error(d)
	}
}

func TestSaveMissingDirectory(t *testing.T) {
	name := filepath.Join(t.TempDir(), "missing", "out.ppm")

	err := Save(name, testImage(2, 2))

	if !errors.Is(err, ErrWrite) {
		t.Errorf("Save() error = %v, want %v", err, ErrWrite)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.ppm"))

	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want %v", err, os.ErrNotExist)
	}
}

func BenchmarkEncode(b *testing.B) {
	img := testImage(1920, 1080)
	buf := bytes.NewBuffer(make([]byte, 0, 1920*1080*3+32))
	b.SetBytes(int64(buf.Cap()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		buf.Reset()
		if err := Encode(buf, img); err != nil {
			b.Fatal(err)
		}
	}
}
