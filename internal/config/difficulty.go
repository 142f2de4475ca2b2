package config

// Ramp steps scroll speed up and spawn delay down at a fixed tick interval.
// Speed never decreases and spawn delay never increases during a run.
type Ramp struct {
	cfg        DifficultyConfig
	speed      float64
	spawnDelay int
	timer      int
}

// NewRamp creates a ramp at its initial values.
func NewRamp(cfg DifficultyConfig) *Ramp {
	r := &Ramp{cfg: cfg}
	r.Reset()
	return r
}

// Reset returns speed, spawn delay and the interval timer to their initial values.
func (r *Ramp) Reset() {
	r.speed = r.cfg.BaseSpeed
	r.spawnDelay = r.cfg.SpawnDelay
	r.timer = 0
}

// IsEnabled returns whether the ramp ever changes its values.
func (r *Ramp) IsEnabled() bool {
	return r.cfg.Enabled && r.cfg.RampInterval > 0
}

// Advance counts one tick and applies a step when the interval elapses.
// Returns true if a step was applied.
func (r *Ramp) Advance() bool {
	r.timer++
	if !r.IsEnabled() || r.timer < r.cfg.RampInterval {
		return false
	}

	r.timer = 0
	r.speed += r.cfg.SpeedIncrement
	if r.spawnDelay > r.cfg.MinSpawnDelay {
		r.spawnDelay = max(r.spawnDelay-r.cfg.SpawnDelayStep, r.cfg.MinSpawnDelay)
	}
	return true
}

// Speed returns the current scroll speed shared by ground and obstacles.
func (r *Ramp) Speed() float64 {
	return r.speed
}

// SpawnDelay returns the current number of ticks between spawns.
func (r *Ramp) SpawnDelay() int {
	return r.spawnDelay
}
