package pluribus

import "math"

const (
	// collisionDamping scales the post-collision normal velocities.
	collisionDamping = 0.85
	// minCollisionDistSq skips coincident pairs whose normal is undefined.
	minCollisionDistSq = 1e-4
)

// cellKey identifies one spatial hash cell.
type cellKey struct {
	x, y int32
}

// SpatialHash is a uniform grid for broad-phase neighbour queries over an
// unbounded plane. Items are particle indices. Cell buckets are kept between
// rebuilds (reset to [:0]) so steady-state rebuilds do not allocate.
//
// The cell size must be at least the largest interaction distance so that
// every candidate pair is found within the 3x3 neighbourhood.
type SpatialHash struct {
	cellSize    float64
	invCellSize float64
	index       map[cellKey]int32 // cell -> bucket
	buckets     [][]int32
	used        int
}

// NewSpatialHash creates an empty hash with the given cell size.
func NewSpatialHash(cellSize float64) *SpatialHash {
	h := &SpatialHash{index: make(map[cellKey]int32)}
	h.Reset(cellSize)
	return h
}

// Reset empties the hash and sets a new cell size. Bucket memory is retained.
func (h *SpatialHash) Reset(cellSize float64) {
	h.cellSize = cellSize
	h.invCellSize = 1 / cellSize
	clear(h.index)
	for i := 0; i < h.used; i++ {
		h.buckets[i] = h.buckets[i][:0]
	}
	h.used = 0
}

// CellSize returns the current cell edge length.
func (h *SpatialHash) CellSize() float64 {
	return h.cellSize
}

// Insert adds item at the given position.
func (h *SpatialHash) Insert(x, y float64, item int32) {
	key := h.cell(x, y)
	b, ok := h.index[key]
	if !ok {
		if h.used == len(h.buckets) {
			h.buckets = append(h.buckets, make([]int32, 0, 8))
		}
		b = int32(h.used)
		h.used++
		h.index[key] = b
	}
	h.buckets[b] = append(h.buckets[b], item)
}

// QueryAround calls fn for every item in the 3x3 cell neighbourhood of
// (x, y). If fn returns true, iteration stops early.
func (h *SpatialHash) QueryAround(x, y float64, fn func(item int32) bool) {
	c := h.cell(x, y)
	for dy := int32(-1); dy <= 1; dy++ {
		for dx := int32(-1); dx <= 1; dx++ {
			b, ok := h.index[cellKey{c.x + dx, c.y + dy}]
			if !ok {
				continue
			}
			for _, item := range h.buckets[b] {
				if fn(item) {
					return
				}
			}
		}
	}
}

// cell maps a position to its cell. Flooring keeps every cell the same size
// on both sides of zero.
func (h *SpatialHash) cell(x, y float64) cellKey {
	return cellKey{
		x: int32(math.Floor(x * h.invCellSize)),
		y: int32(math.Floor(y * h.invCellSize)),
	}
}

// collider resolves circle-circle contacts between all particles once per tick.
type collider struct {
	hash *SpatialHash

	// per-tick counters for debug stats
	checks   int
	resolved int
}

func newCollider() *collider {
	return &collider{hash: NewSpatialHash(cellSizeFor(maxParticleRadius))}
}

// cellSizeFor returns twice the largest particle diameter.
func cellSizeFor(maxRadius float64) float64 {
	return 4 * maxRadius
}

// resolve rebuilds the hash over ps and resolves every overlapping pair once.
// Each pair is pushed apart along the contact normal with the overlap split
// inversely by mass, then, if the pair is still approaching, their normal
// velocities are exchanged with the 1-D elastic formula and damped. A single
// pass leaves some residual overlap, which the next tick picks up again.
func (c *collider) resolve(ps []Particle, maxRadius float64) {
	c.checks, c.resolved = 0, 0
	c.hash.Reset(cellSizeFor(maxRadius))
	for i := range ps {
		c.hash.Insert(ps[i].Pos.X, ps[i].Pos.Y, int32(i))
	}

	for i := range ps {
		a := &ps[i]
		c.hash.QueryAround(a.Pos.X, a.Pos.Y, func(item int32) bool {
			j := int(item)
			if j <= i {
				return false
			}
			c.checks++
			if resolvePair(a, &ps[j]) {
				c.resolved++
			}
			return false
		})
	}
}

// resolvePair separates a and b if they overlap and reports whether it did.
func resolvePair(a, b *Particle) bool {
	d := b.Pos.Sub(a.Pos)
	distSq := d.LenSq()
	minDist := a.Radius + b.Radius
	if distSq >= minDist*minDist || distSq < minCollisionDistSq {
		return false
	}

	dist := math.Sqrt(distSq)
	n := d.Scale(1 / dist)

	// Positional correction: the heavier particle moves less.
	overlap := minDist - dist
	total := a.Mass + b.Mass
	a.Pos = a.Pos.Sub(n.Scale(overlap * b.Mass / total))
	b.Pos = b.Pos.Add(n.Scale(overlap * a.Mass / total))

	// Velocity exchange only while approaching along the normal.
	va := a.Vel.Dot(n)
	vb := b.Vel.Dot(n)
	if va-vb <= 0 {
		return true
	}
	na := (va*(a.Mass-b.Mass) + 2*b.Mass*vb) / total * collisionDamping
	nb := (vb*(b.Mass-a.Mass) + 2*a.Mass*va) / total * collisionDamping
	a.Vel = a.Vel.Add(n.Scale(na - va))
	b.Vel = b.Vel.Add(n.Scale(nb - vb))
	return true
}
