package pluribus

const (
	// Reveal band around the first wave's radius: fully revealed behind
	// revealInner, untouched beyond revealOuter, linear in between.
	revealInner = 40
	revealOuter = 100

	// ambientMinAlpha is the fraction of AmbientAlpha kept by the farthest
	// background and dust particles.
	ambientMinAlpha = 0.35
)

// integrate applies friction then advances the position (semi-implicit Euler).
func integrate(p *Particle) {
	p.Vel = p.Vel.Scale(p.Friction)
	p.Pos = p.Pos.Add(p.Vel)
}

// activate raises a text particle's activation as the first wave passes its
// static distance. Activation never decreases and locks at 1 once the
// particle is behind the inner edge of the reveal band.
func activate(p *Particle, first Wave, hasWave bool, skipIntro bool) {
	if p.Kind != KindText || p.Activation >= 1 {
		return
	}
	if skipIntro {
		p.Activation = 1
		return
	}
	if !hasWave {
		return
	}
	inner := first.Radius - revealInner
	outer := first.Radius + revealOuter
	switch {
	case p.Dist <= inner:
		p.Activation = 1
	case p.Dist < outer:
		v := 1 - (p.Dist-inner)/(outer-inner)
		if v > p.Activation {
			p.Activation = v
		}
	}
}

// alpha returns the draw alpha of p. Text follows its activation; background
// and dust fade with their static distance from the wave origin.
func alpha(p *Particle, cfg Config, maxDist float64) float64 {
	if p.Kind == KindText {
		return p.Activation * cfg.BaseAlpha
	}
	near := 1.0
	if maxDist > 0 {
		near = 1 - clamp01(p.Dist/maxDist)
	}
	return cfg.AmbientAlpha * (ambientMinAlpha + (1-ambientMinAlpha)*near)
}
