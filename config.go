package pluribus

import (
	"math"
	"sync/atomic"
)

// Config controls wave emission, force strengths, and the intro sequence.
// A Config is a plain value: the engine receives a copy at the start of every
// tick and never retains it, so hosts may change any field between ticks.
//
// Units are tuned for visual effect. Distances are in pixels, times in
// milliseconds, and forces are velocity deltas in pixels per tick.
type Config struct {
	// WaveSpeed is the wavefront growth rate in pixels per millisecond.
	WaveSpeed float64
	// WaveInterval is the delay in milliseconds between wave spawns.
	WaveInterval float64
	// WaveThickness is the full width of the band around a wavefront
	// inside which particles are kicked.
	WaveThickness float64
	// KickStrength scales the wave kick.
	KickStrength float64
	// NoiseMix blends the kick direction from purely radial (0) to purely
	// noise-driven (1).
	NoiseMix float64
	// ReturnStrength is the spring constant pulling particles home.
	ReturnStrength float64
	// BounceProb is the per-tick chance of an extra radial impulse for a
	// text particle sitting at the centre of a wave band.
	BounceProb float64
	// AmbientCount is the target number of dust particles.
	AmbientCount int
	// RepelStrength scales the pointer repulsion force.
	RepelStrength float64
	// RepelRadius is the pointer's radius of influence in pixels.
	RepelRadius float64
	// FadeMinRadius is the wave radius below which the kick is zero.
	FadeMinRadius float64
	// FadeRadius is the wave radius at which the kick reaches full strength.
	FadeRadius float64
	// BaseAlpha is the draw alpha of a fully activated text particle.
	BaseAlpha float64
	// AmbientAlpha is the peak draw alpha of background and dust particles.
	AmbientAlpha float64
	// Paused freezes the simulation; ticks emit the current state unchanged.
	Paused bool
	// SkipIntro reveals all text immediately and disables the intro zoom.
	SkipIntro bool
}

// DefaultConfig returns the tuning used by the bundled example.
func DefaultConfig() Config {
	return Config{
		WaveSpeed:      0.12,
		WaveInterval:   1250,
		WaveThickness:  60,
		KickStrength:   0.6,
		NoiseMix:       0.35,
		ReturnStrength: 0.02,
		BounceProb:     0.04,
		AmbientCount:   220,
		RepelStrength:  2.5,
		RepelRadius:    110,
		FadeMinRadius:  20,
		FadeRadius:     180,
		BaseAlpha:      0.95,
		AmbientAlpha:   0.35,
	}
}

// Clamp returns a copy of c with every field forced into a range the engine
// can integrate without dividing by zero. The engine itself never validates
// its input; hosts that accept user tuning should call Clamp first.
func (c Config) Clamp() Config {
	c.WaveSpeed = math.Max(c.WaveSpeed, 0)
	c.WaveInterval = math.Max(c.WaveInterval, 1)
	c.WaveThickness = math.Max(c.WaveThickness, 0)
	c.NoiseMix = clamp01(c.NoiseMix)
	c.ReturnStrength = math.Max(c.ReturnStrength, 0)
	c.BounceProb = clamp01(c.BounceProb)
	if c.AmbientCount < 0 {
		c.AmbientCount = 0
	}
	c.RepelRadius = math.Max(c.RepelRadius, 0)
	c.FadeMinRadius = math.Max(c.FadeMinRadius, 0)
	c.FadeRadius = math.Max(c.FadeRadius, c.FadeMinRadius)
	c.BaseAlpha = clamp01(c.BaseAlpha)
	c.AmbientAlpha = clamp01(c.AmbientAlpha)
	return c
}

// ConfigStore holds the live configuration shared between a host UI and the
// tick loop. Load always returns a complete snapshot, so a tick never sees a
// half-applied edit.
type ConfigStore struct {
	p atomic.Pointer[Config]
}

// NewConfigStore creates a store holding cfg.
func NewConfigStore(cfg Config) *ConfigStore {
	s := &ConfigStore{}
	s.Store(cfg)
	return s
}

// Load returns the current configuration snapshot. A zero ConfigStore that
// has never been stored to returns DefaultConfig.
func (s *ConfigStore) Load() Config {
	if c := s.p.Load(); c != nil {
		return *c
	}
	return DefaultConfig()
}

// Store replaces the configuration.
func (s *ConfigStore) Store(cfg Config) {
	s.p.Store(&cfg)
}

// Update applies fn to a copy of the current configuration and publishes the
// result. Concurrent updates are retried until one wins, so no edit is lost.
func (s *ConfigStore) Update(fn func(*Config)) {
	for {
		old := s.p.Load()
		var next Config
		if old != nil {
			next = *old
		} else {
			next = DefaultConfig()
		}
		fn(&next)
		if s.p.CompareAndSwap(old, &next) {
			return
		}
	}
}
