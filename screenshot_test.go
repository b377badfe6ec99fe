package pluribus

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-sweep", "after-sweep"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	g := NewGame(RunConfig{})
	g.Screenshot("a")
	g.Screenshot("b")
	g.Screenshot("c")
	if len(g.screenshotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(g.screenshotQueue))
	}
	if g.screenshotQueue[0] != "a" || g.screenshotQueue[1] != "b" || g.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", g.screenshotQueue)
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	g := NewGame(RunConfig{})
	if g.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", g.ScreenshotDir, "screenshots")
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		100, 50, 0, 200, // half-ish alpha
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)
	want := []byte{
		127, 63, 0, 200,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("Pix = %v, want %v", img.Pix[:12], want)
		}
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	src := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	if err := writePNG(path, src); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Errorf("bounds = %v, want 4x3", img.Bounds())
	}
}

func TestWritePNGBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.png")
	if err := writePNG(path, image.NewNRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected error for missing directory")
	}
}
