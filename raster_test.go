package pluribus

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestRasterizeFitsCanvas(t *testing.T) {
	r := DefaultRasterizer()
	m, err := r.Rasterize("AB", 800, 600, 1)
	if err != nil {
		t.Fatalf("Rasterize: %v", err)
	}
	if m.Empty() {
		t.Fatal("mask has no foreground")
	}
	if m.Width != 800 || m.Height != 600 || len(m.Alpha) != 800*600 {
		t.Fatalf("mask size = %dx%d (%d px), want 800x600", m.Width, m.Height, len(m.Alpha))
	}
	if h := m.Bounds.Dy(); float64(h) > 600*maxHeightFraction {
		t.Errorf("text height = %d, want <= %v", h, 600*maxHeightFraction)
	}
	if w := m.Bounds.Dx(); float64(w) > 800*maxWidthFraction+2 {
		t.Errorf("text width = %d, want <= %v", w, 800*maxWidthFraction)
	}

	cx := float64(m.Bounds.Min.X+m.Bounds.Max.X) / 2
	cy := float64(m.Bounds.Min.Y+m.Bounds.Max.Y) / 2
	assertNearTol(t, "bbox centre x", cx, 400, 3)
	assertNearTol(t, "bbox centre y", cy, 300, 3)
}

func TestRasterizeOriginInsideFirstLetter(t *testing.T) {
	m, err := DefaultRasterizer().Rasterize("AB", 800, 600, 1)
	if err != nil {
		t.Fatalf("Rasterize: %v", err)
	}
	if m.Letters != 2 {
		t.Fatalf("Letters = %d, want 2", m.Letters)
	}
	wantX := float64(m.Bounds.Min.X) + float64(m.Bounds.Dx())/4
	assertNear(t, "Origin.X", m.Origin.X, wantX)
	assertNear(t, "Origin.Y", m.Origin.Y, float64(m.Bounds.Min.Y+m.Bounds.Max.Y)/2)
	if m.Origin.X >= 400 {
		t.Errorf("Origin.X = %v, want left of the canvas centre", m.Origin.X)
	}
}

func TestRasterizeLongTextShrinks(t *testing.T) {
	r := DefaultRasterizer()
	short, err := r.Rasterize("AB", 800, 600, 1)
	if err != nil {
		t.Fatalf("Rasterize short: %v", err)
	}
	long, err := r.Rasterize("ABCDEFGHIJKL", 800, 600, 1)
	if err != nil {
		t.Fatalf("Rasterize long: %v", err)
	}
	if w := long.Bounds.Dx(); float64(w) > 800*maxWidthFraction+2 {
		t.Errorf("long text width = %d, overflows %v", w, 800*maxWidthFraction)
	}
	if long.Bounds.Dy() >= short.Bounds.Dy() {
		t.Errorf("long text height %d should be below short text height %d",
			long.Bounds.Dy(), short.Bounds.Dy())
	}
}

func TestRasterizeScale(t *testing.T) {
	r := DefaultRasterizer()
	full, _ := r.Rasterize("A", 800, 600, 1)
	half, _ := r.Rasterize("A", 800, 600, 0.5)
	ratio := float64(half.Bounds.Dy()) / float64(full.Bounds.Dy())
	if math.Abs(ratio-0.5) > 0.05 {
		t.Errorf("height ratio at scale 0.5 = %v, want ~0.5", ratio)
	}
	big, _ := r.Rasterize("A", 800, 600, 4)
	if big.Bounds.Dy() > full.Bounds.Dy() {
		t.Errorf("scale 4 height %d exceeds the 40%% cap (%d)", big.Bounds.Dy(), full.Bounds.Dy())
	}
}

func TestRasterizeDeterministic(t *testing.T) {
	r := DefaultRasterizer()
	a, _ := r.Rasterize("HELLO", 640, 360, 1)
	b, _ := r.Rasterize("HELLO", 640, 360, 1)
	if !bytes.Equal(a.Alpha, b.Alpha) {
		t.Error("identical inputs produced different masks")
	}
	if a.Origin != b.Origin || a.Bounds != b.Bounds {
		t.Errorf("geometry differs: %v/%v vs %v/%v", a.Bounds, a.Origin, b.Bounds, b.Origin)
	}
}

func TestRasterizeEmptyText(t *testing.T) {
	for _, text := range []string{"", "   "} {
		m, err := DefaultRasterizer().Rasterize(text, 400, 300, 1)
		if err != nil {
			t.Fatalf("Rasterize(%q): %v", text, err)
		}
		if !m.Empty() {
			t.Errorf("Rasterize(%q) bounds = %v, want empty", text, m.Bounds)
		}
		assertNear(t, "Origin.X", m.Origin.X, 200)
		assertNear(t, "Origin.Y", m.Origin.Y, 150)
	}
}

func TestRasterizeInvalidCanvas(t *testing.T) {
	for _, size := range [][2]int{{0, 100}, {100, 0}, {-5, -5}} {
		_, err := DefaultRasterizer().Rasterize("A", size[0], size[1], 1)
		if !errors.Is(err, ErrInvalidCanvas) {
			t.Errorf("Rasterize at %v: err = %v, want ErrInvalidCanvas", size, err)
		}
	}
}

func TestNewTTFRasterizerBadData(t *testing.T) {
	if _, err := NewTTFRasterizer([]byte("not a font")); err == nil {
		t.Error("expected error for invalid font data")
	}
}
