package overlay

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "marker.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMarker(t *testing.T) {
	tests := []struct {
		name         string
		w, h, size   int
		wantW, wantH int
	}{
		{"native size", 40, 20, 0, 40, 20},
		{"wide scaled", 40, 20, 80, 80, 40},
		{"tall scaled", 10, 50, 25, 5, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tex, err := LoadMarker(writePNG(t, tt.w, tt.h), tt.size)
			if err != nil {
				t.Fatalf("LoadMarker: %v", err)
			}
			w, h := tex.Size()
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
			if got := len(tex.Image().Pix); got != w*h*4 {
				t.Errorf("pix len = %d, want %d", got, w*h*4)
			}
		})
	}
}

func TestLoadMarker_Errors(t *testing.T) {
	if _, err := LoadMarker(filepath.Join(t.TempDir(), "missing.png"), 0); err == nil {
		t.Error("missing file loaded")
	}
	bad := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMarker(bad, 0); err == nil {
		t.Error("garbage decoded as an image")
	}
}

func TestDefaultMarker(t *testing.T) {
	tex := DefaultMarker(64, Palette.Marker)
	w, h := tex.Size()
	if w != 64 || h != 64 {
		t.Fatalf("size = %dx%d", w, h)
	}
	img := tex.Image()
	if a := img.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want transparent", a)
	}
	if a := img.NRGBAAt(32, 32).A; a != 255 {
		t.Errorf("centre alpha = %d, want opaque dot", a)
	}
	if a := img.NRGBAAt(32, 1).A; a == 0 {
		t.Error("ring edge is transparent")
	}
	if a := img.NRGBAAt(32, 18).A; a != 0 {
		t.Errorf("gap between ring and dot alpha = %d, want 0", a)
	}
}

func TestFitRect(t *testing.T) {
	tex := NewImageTexture(image.NewNRGBA(image.Rect(0, 0, 20, 10)))
	got := FitRect(tex, Rect{X: 0, Y: 0, W: 40, H: 40})
	want := Rect{X: 0, Y: 10, W: 40, H: 20}
	if got != want {
		t.Errorf("FitRect = %+v, want %+v", got, want)
	}
}
