package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

// twoRows is a 2x2 image: red on top, blue below.
func twoRows() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for x := 0; x < 2; x++ {
		img.Set(x, 0, color.NRGBA{255, 0, 0, 255})
		img.Set(x, 1, color.NRGBA{0, 0, 255, 255})
	}
	return img
}

func TestDecodeFormats(t *testing.T) {
	tests := []struct {
		name   string
		encode func(*bytes.Buffer, image.Image) error
	}{
		{"png", func(b *bytes.Buffer, img image.Image) error { return png.Encode(b, img) }},
		{"bmp", func(b *bytes.Buffer, img image.Image) error { return bmp.Encode(b, img) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.encode(&buf, twoRows()); err != nil {
				t.Fatalf("encode failed: %v", err)
			}

			img, format, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if format != tt.name {
				t.Errorf("format = %q, want %q", format, tt.name)
			}
			if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
				t.Fatalf("size = %v", img.Bounds())
			}
			// Rows are flipped: the bottom (blue) row comes first.
			if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
				t.Errorf("first row = %v, want blue", got)
			}
			if got := img.RGBAAt(1, 1); got != (color.RGBA{255, 0, 0, 255}) {
				t.Errorf("last row = %v, want red", got)
			}
		})
	}
}

func TestDecodeUnsupported(t *testing.T) {
	_, _, err := Decode(bytes.NewReader([]byte("definitely not an image")))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestToRGBAOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 8, 7))
	src.Set(5, 5, color.RGBA{1, 2, 3, 255})

	out := ToRGBA(src)
	if out.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("bounds = %v", out.Bounds())
	}
	if got := out.RGBAAt(0, 0); got != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("origin pixel = %v", got)
	}
}

func TestFlipVerticalOddHeight(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 3))
	for y := 0; y < 3; y++ {
		img.Pix[y*img.Stride] = byte(y)
	}
	FlipVertical(img)
	for y, want := range []byte{2, 1, 0} {
		if img.Pix[y*img.Stride] != want {
			t.Errorf("row %d = %d, want %d", y, img.Pix[y*img.Stride], want)
		}
	}
}
