package pluribus

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// ErrInvalidCanvas is returned when a rebuild is requested for a canvas with
// a zero or negative dimension.
var ErrInvalidCanvas = errors.New("pluribus: invalid canvas size")

// Engine owns the particle store and runs one ordered simulation tick per
// frame: waves, forces, collisions, integration, then activation.
//
// An Engine is not safe for concurrent use. Rebuild and Tick must be called
// from the same goroutine; inputs that the host mutates elsewhere reach the
// engine as values (Config, Pointer) taken once per tick.
type Engine struct {
	rast Rasterizer
	rng  *rand.Rand

	text          string
	width, height int
	scale         float64
	mask          *Mask

	particles []Particle
	maxRadius float64
	maxDist   float64
	waves     WaveScheduler
	collide   *collider
	drawables []Drawable

	built    bool
	revealed bool
	ticks    uint64

	sink  EventSink
	debug bool
}

// NewEngine creates an engine that builds masks with rast and draws every
// random number from a generator seeded with seed.
func NewEngine(rast Rasterizer, seed uint64) *Engine {
	return &Engine{
		rast:    rast,
		rng:     newRand(seed),
		collide: newCollider(),
	}
}

// Reseed replaces the random generator. The next Rebuild and every later
// tick draw from the new sequence.
func (e *Engine) Reseed(seed uint64) {
	e.rng = newRand(seed)
}

// SetEventSink sets the optional receiver for lifecycle events.
func (e *Engine) SetEventSink(sink EventSink) {
	e.sink = sink
}

// SetDebugMode enables or disables per-tick timing stats on stderr.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// Rebuild rasterizes text for a width x height canvas and replaces the whole
// particle store, waves, and intro state. On error the previous state is kept
// untouched, including when the canvas has a zero or negative dimension.
func (e *Engine) Rebuild(text string, width, height int, scale float64, cfg Config) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidCanvas, width, height)
	}
	m, err := e.rast.Rasterize(text, width, height, scale)
	if err != nil {
		return fmt.Errorf("pluribus: rasterize %q: %w", text, err)
	}
	e.load(m, Spawn(m, cfg.AmbientCount, e.rng))
	e.text, e.scale = text, scale
	e.emit(Event{Type: EventRebuilt, Tick: e.ticks, Count: len(e.particles)})
	return nil
}

// NeedsRebuild reports whether the store was built for different inputs.
func (e *Engine) NeedsRebuild(text string, width, height int, scale float64) bool {
	return !e.built || e.text != text || e.width != width || e.height != height || e.scale != scale
}

// load installs a new particle store built from m.
func (e *Engine) load(m *Mask, ps []Particle) {
	e.mask = m
	e.width, e.height = m.Width, m.Height
	e.particles = ps
	e.maxRadius = maxParticleRadius
	for i := range ps {
		e.maxRadius = math.Max(e.maxRadius, ps[i].Radius)
	}
	e.maxDist = math.Hypot(float64(m.Width), float64(m.Height))
	e.waves.Reset()
	e.drawables = e.drawables[:0]
	e.revealed = false
	e.built = true
}

// Tick advances the simulation by dt milliseconds and returns the drawable
// state of every particle. cfg and ptr are used as given for the whole tick.
// A paused configuration changes nothing and returns the current state.
//
// The returned slice is reused by the next Tick.
func (e *Engine) Tick(dt float64, cfg Config, ptr Pointer) []Drawable {
	if !e.built {
		return e.drawables[:0]
	}
	if cfg.Paused {
		return e.emitDrawables(cfg)
	}
	e.ticks++

	var stats debugStats
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	spawned, retired := e.waves.Update(dt, cfg, float64(e.width), float64(e.height))
	if spawned {
		e.emit(Event{Type: EventWaveSpawned, Tick: e.ticks, Count: len(e.waves.Waves())})
	}
	if retired > 0 {
		e.emit(Event{Type: EventWaveRetired, Tick: e.ticks, Count: retired})
	}

	if e.debug {
		stats.waveTime = time.Since(t0)
		t0 = time.Now()
	}

	f := forces{
		cfg:   cfg,
		ptr:   ptr,
		waves: e.waves.Waves(),
		t:     e.waves.Elapsed(),
		rng:   e.rng,
	}
	for i := range e.particles {
		f.apply(&e.particles[i])
	}

	if e.debug {
		stats.forceTime = time.Since(t0)
		t0 = time.Now()
	}

	e.collide.resolve(e.particles, e.maxRadius)

	if e.debug {
		stats.collideTime = time.Since(t0)
		stats.pairChecks = e.collide.checks
		stats.resolvedPairs = e.collide.resolved
		t0 = time.Now()
	}

	first, hasWave := e.waves.First()
	allRevealed := true
	for i := range e.particles {
		p := &e.particles[i]
		integrate(p)
		activate(p, first, hasWave, cfg.SkipIntro)
		if p.Kind == KindText && p.Activation < 1 {
			allRevealed = false
		}
	}
	if allRevealed && !e.revealed {
		e.revealed = true
		e.emit(Event{Type: EventRevealed, Tick: e.ticks, Count: e.Stats().Text})
	}

	if e.debug {
		stats.integrateTime = time.Since(t0)
		stats.particles = len(e.particles)
		stats.waves = len(e.waves.Waves())
		e.debugLog(stats)
	}

	return e.emitDrawables(cfg)
}

func (e *Engine) emitDrawables(cfg Config) []Drawable {
	e.drawables = e.drawables[:0]
	for i := range e.particles {
		p := &e.particles[i]
		e.drawables = append(e.drawables, Drawable{
			Pos:    p.Pos,
			Radius: p.Radius,
			Alpha:  alpha(p, cfg, e.maxDist),
			Kind:   p.Kind,
		})
	}
	return e.drawables
}

// Particles returns the particle store. The returned slice MUST NOT be
// mutated and is replaced by the next Rebuild.
func (e *Engine) Particles() []Particle {
	return e.particles
}

// Waves returns the live waves, oldest first.
func (e *Engine) Waves() []Wave {
	return e.waves.Waves()
}

// Mask returns the mask the store was built from, or nil before the first
// successful Rebuild.
func (e *Engine) Mask() *Mask {
	return e.mask
}

// Origin returns the wave origin in particle space.
func (e *Engine) Origin() Vec2 {
	if e.mask == nil {
		return Vec2{}
	}
	return e.mask.Origin.Sub(e.mask.Center())
}

// Elapsed returns the unpaused simulation time in milliseconds.
func (e *Engine) Elapsed() float64 {
	return e.waves.Elapsed()
}

// Revealed reports whether every text particle is fully activated.
func (e *Engine) Revealed() bool {
	return e.revealed
}

// Stats counts particles per kind, live waves, and revealed text particles.
func (e *Engine) Stats() Stats {
	s := Stats{Waves: len(e.waves.Waves())}
	for i := range e.particles {
		switch e.particles[i].Kind {
		case KindText:
			s.Text++
			if e.particles[i].Activation >= 1 {
				s.Revealed++
			}
		case KindBackground:
			s.Background++
		case KindDust:
			s.Dust++
		}
	}
	return s
}

func (e *Engine) emit(evt Event) {
	if e.sink != nil {
		e.sink.EmitEvent(evt)
	}
}
