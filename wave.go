package pluribus

import "math"

// waveRetireMargin is how far past the canvas diagonal a wave travels before
// it is discarded.
const waveRetireMargin = 200

// Wave is an expanding circular wavefront centred on the wave origin.
type Wave struct {
	Radius float64
}

// WaveScheduler spawns, advances, and retires waves on a timer.
// The zero value is ready to use and holds no waves.
type WaveScheduler struct {
	waves     []Wave
	elapsed   float64 // unpaused simulation time in ms
	sinceLast float64 // ms since the last spawn
}

// Waves returns the live waves, oldest first. The returned slice MUST NOT be
// mutated and is only valid until the next Update.
func (s *WaveScheduler) Waves() []Wave {
	return s.waves
}

// Elapsed returns the accumulated unpaused simulation time in milliseconds.
func (s *WaveScheduler) Elapsed() float64 {
	return s.elapsed
}

// First returns the oldest live wave.
func (s *WaveScheduler) First() (Wave, bool) {
	if len(s.waves) == 0 {
		return Wave{}, false
	}
	return s.waves[0], true
}

// Reset discards all waves and timers.
func (s *WaveScheduler) Reset() {
	s.waves = s.waves[:0]
	s.elapsed = 0
	s.sinceLast = 0
}

// Update advances the schedule by dt milliseconds on a width x height canvas.
// Every wave grows by dt*WaveSpeed and waves past the canvas diagonal plus a
// margin are dropped. A wave spawns immediately whenever none is live,
// otherwise once WaveInterval has elapsed since the last spawn; never more
// than one per call. Paused configurations change nothing.
func (s *WaveScheduler) Update(dt float64, cfg Config, width, height float64) (spawned bool, retired int) {
	if cfg.Paused {
		return false, 0
	}
	s.elapsed += dt
	s.sinceLast += dt

	limit := math.Hypot(width, height) + waveRetireMargin
	grow := dt * cfg.WaveSpeed
	n := 0
	for _, w := range s.waves {
		w.Radius += grow
		if w.Radius > limit {
			retired++
			continue
		}
		s.waves[n] = w
		n++
	}
	s.waves = s.waves[:n]

	if len(s.waves) == 0 || s.sinceLast >= cfg.WaveInterval {
		s.waves = append(s.waves, Wave{})
		s.sinceLast = 0
		spawned = true
	}
	return spawned, retired
}
