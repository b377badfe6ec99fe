package pluribus

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-tick timing and collision metrics.
// Only populated when the engine's debug mode is on.
type debugStats struct {
	waveTime      time.Duration
	forceTime     time.Duration
	collideTime   time.Duration
	integrateTime time.Duration
	particles     int
	waves         int
	pairChecks    int
	resolvedPairs int
}

// debugLog prints timing and collision stats to stderr.
func (e *Engine) debugLog(stats debugStats) {
	if !e.debug {
		return
	}
	total := stats.waveTime + stats.forceTime + stats.collideTime + stats.integrateTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[pluribus] waves: %v | forces: %v | collide: %v | integrate: %v | total: %v\n",
		stats.waveTime, stats.forceTime, stats.collideTime, stats.integrateTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[pluribus] particles: %d | waves: %d | pair checks: %d | resolved: %d\n",
		stats.particles, stats.waves, stats.pairChecks, stats.resolvedPairs)
}
