package pluribus

import (
	"image"
	"testing"
)

// rectMask returns a w x h mask with a filled foreground rectangle.
func rectMask(w, h int, fg image.Rectangle, letters int) *Mask {
	alpha := make([]uint8, w*h)
	for y := fg.Min.Y; y < fg.Max.Y; y++ {
		for x := fg.Min.X; x < fg.Max.X; x++ {
			alpha[y*w+x] = 255
		}
	}
	return NewMask(w, h, alpha, letters)
}

func TestMaskBoundsAndOrigin(t *testing.T) {
	m := rectMask(200, 100, image.Rect(40, 20, 140, 60), 4)

	if m.Bounds != image.Rect(40, 20, 140, 60) {
		t.Errorf("Bounds = %v, want (40,20)-(140,60)", m.Bounds)
	}
	// Letter width 100/4 = 25, half = 12.5.
	assertNear(t, "Origin.X", m.Origin.X, 52.5)
	assertNear(t, "Origin.Y", m.Origin.Y, 40)
	if m.Empty() {
		t.Error("Empty() = true, want false")
	}
}

func TestMaskEmptyFallsBackToCenter(t *testing.T) {
	m := NewMask(300, 120, make([]uint8, 300*120), 1)
	if !m.Empty() {
		t.Fatal("Empty() = false, want true")
	}
	assertNear(t, "Origin.X", m.Origin.X, 150)
	assertNear(t, "Origin.Y", m.Origin.Y, 60)
}

func TestMaskIgnoresFaintCoverage(t *testing.T) {
	alpha := make([]uint8, 10*10)
	alpha[5*10+5] = textAlphaThreshold // not above the threshold
	m := NewMask(10, 10, alpha, 1)
	if !m.Empty() {
		t.Errorf("Bounds = %v, want empty", m.Bounds)
	}
	if m.IsText(5, 5) {
		t.Error("IsText at threshold = true, want false")
	}
}

func TestMaskAtOutOfRange(t *testing.T) {
	m := rectMask(10, 10, image.Rect(0, 0, 10, 10), 1)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}} {
		if got := m.At(p[0], p[1]); got != 0 {
			t.Errorf("At(%d,%d) = %d, want 0", p[0], p[1], got)
		}
	}
	if got := m.At(3, 3); got != 255 {
		t.Errorf("At(3,3) = %d, want 255", got)
	}
}

func TestMaskLettersFloor(t *testing.T) {
	m := rectMask(100, 100, image.Rect(10, 10, 30, 30), 0)
	if m.Letters != 1 {
		t.Errorf("Letters = %d, want 1", m.Letters)
	}
	assertNear(t, "Origin.X", m.Origin.X, 20)
}

func TestMaskFromAlpha(t *testing.T) {
	img := image.NewAlpha(image.Rect(0, 0, 8, 4))
	img.Pix[2*img.Stride+3] = 200
	m := MaskFromAlpha(img, 1)
	if m.Width != 8 || m.Height != 4 {
		t.Fatalf("size = %dx%d, want 8x4", m.Width, m.Height)
	}
	if !m.IsText(3, 2) {
		t.Error("IsText(3,2) = false, want true")
	}
	if m.Bounds != image.Rect(3, 2, 4, 3) {
		t.Errorf("Bounds = %v, want (3,2)-(4,3)", m.Bounds)
	}
}

func TestNewMaskShortBuffer(t *testing.T) {
	alpha := make([]uint8, 10) // one row of a 10x5 canvas
	alpha[3] = 255
	m := NewMask(10, 5, alpha, 1)
	if len(m.Alpha) != 50 {
		t.Fatalf("len(Alpha) = %d, want 50", len(m.Alpha))
	}
	if m.Bounds != image.Rect(3, 0, 4, 1) {
		t.Errorf("Bounds = %v, want (3,0)-(4,1)", m.Bounds)
	}
	if m.At(4, 4) != 0 {
		t.Error("padded pixel is not empty")
	}

	empty := NewMask(-3, 4, nil, 1)
	if !empty.Empty() || len(empty.Alpha) != 0 {
		t.Errorf("negative width mask = %+v, want empty", empty)
	}
}
