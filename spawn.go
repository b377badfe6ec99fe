package pluribus

import (
	"math"
	"math/rand/v2"
)

// SpawnStride is the grid spacing in pixels between sampled mask cells.
const SpawnStride = 4

// Spawn probabilities and per-kind physical parameters.
const (
	textKeepProb       = 0.85
	backgroundKeepProb = 0.22
	dustPromoteProb    = 0.10

	textJitter       = 0.2
	backgroundJitter = 1.5

	textRadius    = 1.1
	ambientRadius = 1.0
)

var (
	massRange         = Range{0.6, 1.4}
	textFriction      = Range{0.92, 0.97}
	ambientFriction   = Range{0.90, 0.96}
	maxParticleRadius = math.Max(textRadius, ambientRadius)
)

// Spawn walks the mask on a SpawnStride grid and returns the particle set for
// it. Text cells are kept with probability 0.85 and background cells with
// probability 0.22. Roughly one in ten kept background cells is promoted to
// dust until ambientCount is reached; any shortfall is synthesized at uniformly
// random positions across the canvas.
//
// Home positions are relative to the canvas centre. All randomness comes from
// rng, so a fixed mask and seed always produce the same particles. A negative
// ambientCount spawns no dust.
func Spawn(m *Mask, ambientCount int, rng *rand.Rand) []Particle {
	ambientCount = max(ambientCount, 0)
	center := m.Center()
	origin := m.Origin

	cols := (m.Width + SpawnStride - 1) / SpawnStride
	rows := (m.Height + SpawnStride - 1) / SpawnStride
	out := make([]Particle, 0, cols*rows/4+ambientCount)
	dust := 0

	for y := 0; y < m.Height; y += SpawnStride {
		for x := 0; x < m.Width; x += SpawnStride {
			cell := Vec2{float64(x), float64(y)}

			if m.IsText(x, y) {
				if rng.Float64() >= textKeepProb {
					continue
				}
				out = append(out, newCellParticle(KindText, cell, center, origin, textJitter, rng))
				continue
			}

			if rng.Float64() >= backgroundKeepProb {
				continue
			}
			kind := KindBackground
			if dust < ambientCount && rng.Float64() < dustPromoteProb {
				kind = KindDust
				dust++
			}
			out = append(out, newCellParticle(kind, cell, center, origin, backgroundJitter, rng))
		}
	}

	for ; dust < ambientCount; dust++ {
		cell := Vec2{
			X: rng.Float64() * float64(m.Width),
			Y: rng.Float64() * float64(m.Height),
		}
		out = append(out, newCellParticle(KindDust, cell, center, origin, 0, rng))
	}
	return out
}

// newCellParticle creates a particle at rest at its home position. cell is in
// canvas coordinates.
func newCellParticle(kind Kind, cell, center, origin Vec2, jitter float64, rng *rand.Rand) Particle {
	rel := cell.Sub(origin)
	p := Particle{
		Kind:  kind,
		Home:  cell.Sub(center),
		Dist:  rel.Len(),
		Angle: math.Atan2(rel.Y, rel.X),
		Phase: rng.Float64() * 2 * math.Pi,
		Mass:  massRange.Random(rng),
	}
	if jitter > 0 {
		p.Jitter = Vec2{symmetric(rng, jitter), symmetric(rng, jitter)}
	}
	switch kind {
	case KindText:
		p.Friction = textFriction.Random(rng)
		p.Radius = textRadius
	case KindBackground:
		p.Friction = textFriction.Random(rng)
		p.Radius = ambientRadius
	default:
		p.Friction = ambientFriction.Random(rng)
		p.Radius = ambientRadius
	}
	p.Pos = p.Target()
	return p
}
