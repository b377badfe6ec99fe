package pluribus

// Particle holds per-particle simulation state. Every particle in the field,
// whatever its Kind, lives in one flat slice owned by the Engine.
type Particle struct {
	Kind Kind

	// Home is the mask-derived rest position in particle space.
	Home Vec2
	// Jitter is a small permanent offset added to Home.
	Jitter Vec2
	Pos    Vec2
	Vel    Vec2

	// Dist and Angle are the polar coordinates of the spawn cell relative to
	// the wave origin. They are fixed at spawn: reveal timing and band
	// membership never follow the live position.
	Dist  float64
	Angle float64

	// Activation drives text alpha during the intro reveal, in [0, 1].
	// Unused for background and dust.
	Activation float64
	// Phase seeds the per-particle direction noise.
	Phase float64

	Friction float64
	Mass     float64
	Radius   float64
}

// Target returns the spring anchor, Home plus Jitter.
func (p *Particle) Target() Vec2 {
	return p.Home.Add(p.Jitter)
}

// wavy reports whether waves kick this particle.
func (p *Particle) wavy() bool {
	return p.Kind != KindDust
}

// Drawable is the per-tick output record handed to a renderer.
type Drawable struct {
	Pos    Vec2
	Radius float64
	Alpha  float64
	Kind   Kind
}

// Stats summarizes the current particle store.
type Stats struct {
	Text       int
	Background int
	Dust       int
	Waves      int
	// Revealed counts text particles whose activation has reached 1.
	Revealed int
}

// Total returns the number of particles of every kind.
func (s Stats) Total() int {
	return s.Text + s.Background + s.Dust
}
