package smasher

import (
	"math/rand"

	"github.com/vovakirdan/button-smasher/internal/config"
	"github.com/vovakirdan/button-smasher/internal/core"
)

// Cue is one falling arrow.
type Cue struct {
	Lane      core.Lane
	Y         float64 // Top edge in playfield units, grows as the cue falls
	SpawnTick int
}

// Rect returns the cue's nominal hit rectangle.
func (c Cue) Rect(p config.PlayfieldConfig) core.Rect {
	return core.NewRect(p.Lanes[c.Lane], int(c.Y), p.CueSize, p.CueSize)
}

// CueEngine spawns, advances and retires cues.
type CueEngine struct {
	cues       []Cue
	rng        *rand.Rand
	playfield  config.PlayfieldConfig
	timing     config.TimingConfig
	spawnTimer int // Ticks since the last batch
	nextSpawn  int // Batch fires once spawnTimer exceeds this
	tick       int
}

// NewCueEngine creates an engine drawing from rng.
func NewCueEngine(playfield config.PlayfieldConfig, timing config.TimingConfig, rng *rand.Rand) *CueEngine {
	e := &CueEngine{
		cues:      make([]Cue, 0, 16),
		rng:       rng,
		playfield: playfield,
		timing:    timing,
	}
	e.Reset()
	return e
}

// Reset clears all cues and reseeds the first spawn delay.
func (e *CueEngine) Reset() {
	e.cues = e.cues[:0]
	e.spawnTimer = 0
	e.tick = 0
	e.nextSpawn = e.between(e.timing.InitialSpawnMin, e.timing.InitialSpawnMax)
}

// Cues returns the active cues in spawn order. The slice must not be modified.
func (e *CueEngine) Cues() []Cue {
	return e.cues
}

// between returns a uniform integer in [lo, hi].
func (e *CueEngine) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + e.rng.Intn(hi-lo+1)
}

// SpawnTick counts one tick and spawns a batch when the delay has elapsed.
// Returns the number of cues spawned.
func (e *CueEngine) SpawnTick(t config.DifficultyTuning) int {
	e.tick++
	e.spawnTimer++
	if e.spawnTimer <= e.nextSpawn {
		return 0
	}

	lanes := e.pickLanes(t)
	for _, l := range lanes {
		e.cues = append(e.cues, Cue{
			Lane:      l,
			Y:         float64(-e.playfield.CueSize),
			SpawnTick: e.tick,
		})
	}

	e.nextSpawn = e.between(t.SpawnMin, t.SpawnMax)
	e.spawnTimer = 0
	return len(lanes)
}

// pickLanes applies the spawn policy. Draws are sequential and independent:
// the burst draw only happens when the double draw failed.
func (e *CueEngine) pickLanes(t config.DifficultyTuning) []core.Lane {
	if t.DoubleChance > 0 && e.rng.Float64() < t.DoubleChance {
		perm := e.rng.Perm(core.LaneCount)
		return []core.Lane{core.Lane(perm[0]), core.Lane(perm[1])}
	}
	if t.BurstChance > 0 && e.rng.Float64() < t.BurstChance {
		lane := core.Lane(e.rng.Intn(core.LaneCount))
		burst := make([]core.Lane, t.BurstSize)
		for i := range burst {
			burst[i] = lane
		}
		return burst
	}
	return []core.Lane{core.Lane(e.rng.Intn(core.LaneCount))}
}

// Advance moves every cue down by fallSpeed and removes the ones that left
// the playfield. Returns how many were removed.
func (e *CueEngine) Advance(fallSpeed float64) int {
	missed := 0
	kept := e.cues[:0]
	bottom := float64(e.playfield.Height)
	for _, c := range e.cues {
		c.Y += fallSpeed
		if c.Y > bottom {
			missed++
			continue
		}
		kept = append(kept, c)
	}
	e.cues = kept
	return missed
}

// ResolveHit removes the first cue in lane whose widened rectangle overlaps
// zone. Returns false if no cue qualifies.
func (e *CueEngine) ResolveHit(lane core.Lane, zone core.Rect) bool {
	for i, c := range e.cues {
		if c.Lane != lane {
			continue
		}
		if c.Rect(e.playfield).Inflate(e.playfield.HitInflate, 0).Intersects(zone) {
			e.cues = append(e.cues[:i], e.cues[i+1:]...)
			return true
		}
	}
	return false
}
