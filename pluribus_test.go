package pluribus

import (
	"math"
	"testing"
)

// --- Rect.Contains ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 9, 40, false},
		{"outside below", 50, 71, false},
		{"far outside", 999, 999, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Contains(tt.x, tt.y)
			if got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

// --- Vec2 ---

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, -2}
	if got := a.Add(b); got != (Vec2{4, 2}) {
		t.Errorf("Add = %v, want {4 2}", got)
	}
	if got := a.Sub(b); got != (Vec2{2, 6}) {
		t.Errorf("Sub = %v, want {2 6}", got)
	}
	if got := a.Scale(0.5); got != (Vec2{1.5, 2}) {
		t.Errorf("Scale = %v, want {1.5 2}", got)
	}
	assertNear(t, "Dot", a.Dot(b), -5)
	assertNear(t, "Len", a.Len(), 5)
	assertNear(t, "LenSq", a.LenSq(), 25)
}

// --- Range ---

func TestRangeRandomWithinBounds(t *testing.T) {
	rng := newRand(3)
	r := Range{0.6, 1.4}
	for i := 0; i < 1000; i++ {
		v := r.Random(rng)
		if v < r.Min || v >= r.Max {
			t.Fatalf("Random() = %v, want in [%v, %v)", v, r.Min, r.Max)
		}
	}
}

func TestRangeRandomDegenerate(t *testing.T) {
	r := Range{2, 2}
	if got := r.Random(newRand(1)); got != 2 {
		t.Errorf("Random() = %v, want 2", got)
	}
}

func TestNewRandDeterministic(t *testing.T) {
	a, b := newRand(42), newRand(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
	}
}

// --- smoothstep ---

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{2, 1},
	}
	for _, tt := range tests {
		assertNear(t, "smoothstep", smoothstep(0, 1, tt.x), tt.want)
	}
	// Hermite: zero slope at both edges.
	if d := smoothstep(0, 1, 1e-4); d > 1e-6 {
		t.Errorf("smoothstep near 0 = %v, want ~0", d)
	}
	if got := smoothstep(5, 5, 4); got != 0 {
		t.Errorf("degenerate below = %v, want 0", got)
	}
	if got := smoothstep(5, 5, 5); got != 1 {
		t.Errorf("degenerate at edge = %v, want 1", got)
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		KindText:       "text",
		KindBackground: "background",
		KindDust:       "dust",
		Kind(99):       "unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestClamp01(t *testing.T) {
	for _, tt := range []struct{ in, want float64 }{{-3, 0}, {0.25, 0.25}, {7, 1}, {math.Inf(1), 1}} {
		assertNear(t, "clamp01", clamp01(tt.in), tt.want)
	}
}
