package imageutil

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestResizeToWidth_KeepsAspectRatio(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2000, 1000))
	got := ResizeToWidth(src, 900)
	if got.Bounds().Dx() != 900 || got.Bounds().Dy() != 450 {
		t.Fatalf("expected 900x450, got %v", got.Bounds().Size())
	}
}

func TestResize_SameSizeReturnsInput(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 10, 10))
	if got := Resize(src, 10, 10); got != image.Image(src) {
		t.Fatalf("expected original image to be returned")
	}
}

func TestResize_PreservesSolidColor(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 20))
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			src.Set(x, y, white)
		}
	}

	got := Resize(src, 20, 10)
	r, g, b, a := got.At(10, 5).RGBA()
	if r>>8 < 250 || g>>8 < 250 || b>>8 < 250 || a>>8 < 250 {
		t.Fatalf("expected near-white pixel, got %d,%d,%d,%d", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestLoad_DecodesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, image.NewGray(image.Rect(0, 0, 7, 3))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	img, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if img.Bounds().Dx() != 7 || img.Bounds().Dy() != 3 {
		t.Fatalf("expected 7x3, got %v", img.Bounds().Size())
	}
}

func TestLoad_RejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected decode error")
	}
}
