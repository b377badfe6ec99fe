package pluribus

import (
	"math"
	"math/rand/v2"
)

const (
	// noiseTimeRate and noiseRadiusRate map simulation time (ms) and wave
	// radius (px) into the angle of the noise direction.
	noiseTimeRate   = 0.0012
	noiseRadiusRate = 0.015

	bounceMin = 0.4
	bounceMax = 1.0

	// dustRepelFactor scales pointer repulsion on dust.
	dustRepelFactor = 0.5
)

// forces accumulates every force of one tick into particle velocities.
// Positions are not touched; integration happens after collisions.
type forces struct {
	cfg   Config
	ptr   Pointer
	waves []Wave
	t     float64 // simulation time in ms
	rng   *rand.Rand
}

// apply adds wave kicks, bounce impulses, pointer repulsion, and the spring
// return to p.Vel. There is no clamping: extreme tuning produces wild motion.
func (f *forces) apply(p *Particle) {
	if p.wavy() {
		for _, w := range f.waves {
			f.kick(p, w)
		}
	}
	f.repel(p)

	k := f.cfg.ReturnStrength / p.Mass
	p.Vel = p.Vel.Add(p.Target().Sub(p.Pos).Scale(k))
}

// kick applies one wave's contribution. Band membership uses the particle's
// static spawn distance, so a displaced particle still rides its own slot.
func (f *forces) kick(p *Particle, w Wave) {
	half := f.cfg.WaveThickness / 2
	off := math.Abs(p.Dist - w.Radius)
	if off > half {
		return
	}

	band := 1 - smoothstep(0, half, off)
	fade := rampUp(f.cfg.FadeMinRadius, f.cfg.FadeRadius, w.Radius)
	radial := Vec2{math.Cos(p.Angle), math.Sin(p.Angle)}

	n := p.Phase + f.t*noiseTimeRate + w.Radius*noiseRadiusRate
	noise := Vec2{math.Cos(n), math.Sin(n)}

	mix := f.cfg.NoiseMix
	dir := radial.Scale(1 - mix).Add(noise.Scale(mix))
	p.Vel = p.Vel.Add(dir.Scale(f.cfg.KickStrength * fade * band))

	if p.Kind == KindText && f.rng.Float64() < f.cfg.BounceProb*band {
		mag := bounceMin + f.rng.Float64()*(bounceMax-bounceMin)
		p.Vel = p.Vel.Add(radial.Scale(mag))
	}
}

// repel pushes p away from an active pointer with a cubic falloff, divided by
// mass so heavy particles accelerate less.
func (f *forces) repel(p *Particle) {
	if !f.ptr.Active {
		return
	}
	r := f.cfg.RepelRadius
	d := p.Pos.Sub(Vec2{f.ptr.X, f.ptr.Y})
	distSq := d.LenSq()
	if distSq >= r*r || distSq < 1e-8 {
		return
	}
	dist := math.Sqrt(distSq)
	falloff := 1 - dist/r
	strength := f.cfg.RepelStrength * falloff * falloff * falloff / p.Mass
	if p.Kind == KindDust {
		strength *= dustRepelFactor
	}
	p.Vel = p.Vel.Add(d.Scale(strength / dist))
}

// rampUp is a linear ramp from 0 at lo to 1 at hi.
func rampUp(lo, hi, x float64) float64 {
	if hi <= lo {
		if x < lo {
			return 0
		}
		return 1
	}
	return clamp01((x - lo) / (hi - lo))
}
