package ioutils

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

// encodePNG renders a solid test image of the given size.
func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestResizeImage(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		wantWidth  int
		wantHeight int
	}{
		{name: "wide image limited by width", width: 1500, height: 1000, wantWidth: 1000, wantHeight: 666},
		{name: "tall image limited by height", width: 500, height: 2000, wantWidth: 250, wantHeight: 1000},
		{name: "small image keeps its size", width: 800, height: 600, wantWidth: 800, wantHeight: 600},
	}

	svc := NewImageService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resized, err := svc.ResizeImage(encodePNG(t, tt.width, tt.height), 1000, 1000)
			if err != nil {
				t.Fatalf("ResizeImage() error = %v", err)
			}

			img, err := jpeg.Decode(bytes.NewReader(resized))
			if err != nil {
				t.Fatalf("result is not JPEG: %v", err)
			}
			bounds := img.Bounds()
			if bounds.Dx() != tt.wantWidth || bounds.Dy() != tt.wantHeight {
				t.Errorf("resized to %dx%d, want %dx%d",
					bounds.Dx(), bounds.Dy(), tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestResizeImage_InvalidData(t *testing.T) {
	if _, err := NewImageService().ResizeImage([]byte("not an image"), 100, 100); err == nil {
		t.Fatal("expected an error for undecodable data")
	}
}
