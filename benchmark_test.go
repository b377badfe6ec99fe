package pluribus

import "testing"

func setupBenchEngine(b *testing.B, text string) (*Engine, Config) {
	b.Helper()
	cfg := DefaultConfig()
	e := NewEngine(DefaultRasterizer(), 1)
	if err := e.Rebuild(text, 1280, 720, 1, cfg); err != nil {
		b.Fatal(err)
	}
	return e, cfg
}

func BenchmarkTick(b *testing.B) {
	e, cfg := setupBenchEngine(b, "PLURIBUS")
	ptr := Pointer{X: 0, Y: 0, Active: true}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Tick(frameMS, cfg, ptr)
	}
}

func BenchmarkTick_Paused(b *testing.B) {
	e, cfg := setupBenchEngine(b, "PLURIBUS")
	cfg.Paused = true
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Tick(frameMS, cfg, Pointer{})
	}
}

func BenchmarkRebuild(b *testing.B) {
	cfg := DefaultConfig()
	e := NewEngine(DefaultRasterizer(), 1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := e.Rebuild("PLURIBUS", 1280, 720, 1, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSpatialHash_10000(b *testing.B) {
	rng := newRand(1)
	pts := make([]Vec2, 10000)
	for i := range pts {
		pts[i] = Vec2{rng.Float64()*1280 - 640, rng.Float64()*720 - 360}
	}
	h := NewSpatialHash(cellSizeFor(maxParticleRadius))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Reset(cellSizeFor(maxParticleRadius))
		for j, p := range pts {
			h.Insert(p.X, p.Y, int32(j))
		}
		n := 0
		for _, p := range pts {
			h.QueryAround(p.X, p.Y, func(int32) bool {
				n++
				return false
			})
		}
	}
}

func BenchmarkCollide_10000(b *testing.B) {
	rng := newRand(1)
	ps := make([]Particle, 10000)
	for i := range ps {
		ps[i] = Particle{
			Pos:    Vec2{rng.Float64()*400 - 200, rng.Float64()*400 - 200},
			Mass:   massRange.Random(rng),
			Radius: 1,
		}
	}
	c := newCollider()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.resolve(ps, 1)
	}
}
