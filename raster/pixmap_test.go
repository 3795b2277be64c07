package raster

import (
	"image/color"
	"path/filepath"
	"testing"
)

var red = [4]uint8{255, 0, 0, 255}

func TestPixmapSetPixel(t *testing.T) {
	pm := NewPixmap(4, 3)
	pm.SetPixel(1, 2, red)
	if got := pm.Pixel(1, 2); got != red {
		t.Errorf("Pixel(1, 2) = %v, want %v", got, red)
	}

	// Out of bounds access is ignored.
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 3}} {
		pm.SetPixel(p[0], p[1], red)
		if got := pm.Pixel(p[0], p[1]); got != ([4]uint8{}) {
			t.Errorf("Pixel(%d, %d) = %v, want zero", p[0], p[1], got)
		}
	}
	if got := pm.At(1, 2); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("At(1, 2) = %v", got)
	}
}

func TestPixmapFillSpan(t *testing.T) {
	tests := []struct {
		name   string
		x0, x1 int
		y      int
		pixels int
	}{
		{"inside", 2, 5, 1, 4},
		{"single", 3, 3, 1, 1},
		{"clipped left", -5, 1, 1, 2},
		{"clipped right", 8, 20, 1, 2},
		{"row outside", 0, 9, 7, 0},
		{"empty", 5, 4, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPixmap(10, 3)
			pm.FillSpan(tt.x0, tt.x1, tt.y, red)
			if n := countColor(pm, red); n != tt.pixels {
				t.Errorf("filled %d pixels, want %d", n, tt.pixels)
			}
		})
	}
}

func countColor(pm *Pixmap, c [4]uint8) int {
	n := 0
	for y := range pm.Height() {
		for x := range pm.Width() {
			if pm.Pixel(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestPixmapResizeClears(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(0, 0, red)
	pm.Resize(3, 1)
	if pm.Width() != 3 || pm.Height() != 1 || len(pm.Data()) != 12 {
		t.Fatalf("Resize(3, 1) = %dx%d with %d bytes", pm.Width(), pm.Height(), len(pm.Data()))
	}
	if pm.Pixel(0, 0) != ([4]uint8{}) {
		t.Error("Resize should clear the pixmap")
	}

	pm.Resize(-1, 5)
	if pm.Width() != 0 || len(pm.Data()) != 0 {
		t.Errorf("negative width should clamp to 0, got %d", pm.Width())
	}
}

func TestPixmapSavePNG(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.FillSpan(0, 2, 1, red)
	img := pm.ToImage()
	if img.NRGBAAt(1, 1) != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("ToImage pixel = %v", img.NRGBAAt(1, 1))
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
}
