// Package pluribus renders a field of particles that assemble into a short
// text string, disturbed by periodic radial waves and a pointer repulsion
// field, with particle collisions resolved physically. Rendering and input
// run on [Ebitengine].
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	err := pluribus.Run(pluribus.RunConfig{
//		Title: "Hello", Width: 800, Height: 600, Text: "hello",
//	})
//
// # Engine
//
// The simulation core is [Engine] and does not need a window. [Engine.Rebuild]
// rasterizes a string into a [Mask] and spawns the particle store;
// [Engine.Tick] advances one frame and returns a [Drawable] per particle:
//
//	e := pluribus.NewEngine(pluribus.DefaultRasterizer(), 1)
//	cfg := pluribus.DefaultConfig()
//	if err := e.Rebuild("AB", 800, 600, 1, cfg); err != nil {
//		// ...
//	}
//	for {
//		ds := e.Tick(1000.0/60, cfg, pluribus.Pointer{})
//		// draw ds ...
//	}
//
// Each tick runs, in order: the [WaveScheduler], the force pass (wave kick,
// bounce, pointer repulsion, spring return), the collision pass over a
// [SpatialHash], then integration and intro activation. The [Config] and
// [Pointer] arguments are plain values, so a host may mutate its copies from
// any goroutine between ticks; [ConfigStore] packages that pattern.
//
// All randomness comes from a seeded generator, so the same seed and mask
// always spawn the same field.
//
// [Ebitengine]: https://ebitengine.org
package pluribus
