package imamsite

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestEncodeIconScalesToTarget(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 300))

	data, err := encodeIcon(src, 48, 48)
	if err != nil {
		t.Fatalf("encodeIcon: %v", err)
	}

	out, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	bounds := out.Bounds()
	if bounds.Dx() != 48 || bounds.Dy() != 48 {
		t.Errorf("output = %dx%d, want 48x48", bounds.Dx(), bounds.Dy())
	}
}

func TestEncodeIconKeepsPresizedImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 180, 180))

	data, err := encodeIcon(src, 180, 180)
	if err != nil {
		t.Fatalf("encodeIcon: %v", err)
	}
	out, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if out.Bounds().Dx() != 180 {
		t.Errorf("width = %d, want 180", out.Bounds().Dx())
	}
}
