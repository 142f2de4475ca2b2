// Package config provides YAML-based game configuration loading and
// difficulty management for the runner.
package config

import "github.com/vovakirdan/dino-runner/internal/core"

// RunnerConfig contains all configuration for the Dino Runner game.
type RunnerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Actor      ActorConfig      `yaml:"actor"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Field      FieldConfig      `yaml:"field"`
	Sky        SkyConfig        `yaml:"sky"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Input      InputConfig      `yaml:"input"`
}

// WorldConfig defines the simulated plane.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
	TickRate     int     `yaml:"tick_rate"`
}

// GroundLine returns the y coordinate of the ground surface.
func (w WorldConfig) GroundLine() float64 {
	return w.Height - w.GroundHeight
}

// ActorConfig defines the runner's size and jump physics.
type ActorConfig struct {
	X                 float64 `yaml:"x"`
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	DuckHeight        float64 `yaml:"duck_height"`
	Gravity           float64 `yaml:"gravity"`
	JumpStrength      float64 `yaml:"jump_strength"` // negative = up
	RunAnimationSpeed float64 `yaml:"run_animation_speed"`
}

// ObstacleConfig defines both hazard kinds and their spawn weights.
type ObstacleConfig struct {
	Ground       GroundHazardConfig `yaml:"ground"`
	Flying       FlyingHazardConfig `yaml:"flying"`
	GroundWeight int                `yaml:"ground_weight"`
	FlyingWeight int                `yaml:"flying_weight"`
}

// GroundHazardConfig defines cactus dimensions.
type GroundHazardConfig struct {
	Width     float64 `yaml:"width"`
	MinHeight int     `yaml:"min_height"`
	MaxHeight int     `yaml:"max_height"`
	MinSpikes int     `yaml:"min_spikes"`
	MaxSpikes int     `yaml:"max_spikes"`
}

// FlyingHazardConfig defines bird dimensions and flight band.
type FlyingHazardConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	MinAltitude int     `yaml:"min_altitude"` // above the ground line
	MaxAltitude int     `yaml:"max_altitude"`
	WingSpeed   float64 `yaml:"wing_speed"`
}

// FieldConfig defines the ground scroller and its dust particles.
type FieldConfig struct {
	TileWidth       float64 `yaml:"tile_width"`
	ParticleChance  int     `yaml:"particle_chance"` // one in N ticks
	ParticleSpread  int     `yaml:"particle_spread"` // spawn distance past the right edge
	ParticleRise    int     `yaml:"particle_rise"`   // max height above the ground line
	ParticleMinLife int     `yaml:"particle_min_life"`
	ParticleMaxLife int     `yaml:"particle_max_life"`
}

// SkyConfig defines the day/night cycle.
type SkyConfig struct {
	Day        [3]uint8 `yaml:"day"`
	Night      [3]uint8 `yaml:"night"`
	CycleSpeed float64  `yaml:"cycle_speed"`
}

// DayColor returns the day sky as a color.
func (s SkyConfig) DayColor() core.RGB {
	return core.RGB{R: s.Day[0], G: s.Day[1], B: s.Day[2]}
}

// NightColor returns the night sky as a color.
func (s SkyConfig) NightColor() core.RGB {
	return core.RGB{R: s.Night[0], G: s.Night[1], B: s.Night[2]}
}

// DifficultyConfig defines the stepped speed ramp.
type DifficultyConfig struct {
	Enabled        bool    `yaml:"enabled"`
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"`
	RampInterval   int     `yaml:"ramp_interval"` // ticks between steps
	SpawnDelay     int     `yaml:"spawn_delay"`   // initial ticks between spawns
	SpawnDelayStep int     `yaml:"spawn_delay_step"`
	MinSpawnDelay  int     `yaml:"min_spawn_delay"`
}

// ScoringConfig defines when point events fire.
type ScoringConfig struct {
	PointInterval int `yaml:"point_interval"`
}

// InputConfig holds platform input tuning.
type InputConfig struct {
	// Terminals report no key release, so a terminal frontend keeps ducking
	// for DuckHoldTicks after the first press, long enough to reach the
	// keyboard's auto-repeat delay, then for DuckRepeatTicks after each
	// repeat.
	DuckHoldTicks   int `yaml:"duck_hold_ticks"`
	DuckRepeatTicks int `yaml:"duck_repeat_ticks"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every preset in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// Describe returns a one-line description of the preset.
func (p DifficultyPreset) Describe() string {
	switch p {
	case DifficultyEasy:
		return "slower start, longer gaps, ramps every 6 seconds"
	case DifficultyNormal:
		return "the classic pace"
	case DifficultyHard:
		return "faster start, tighter spawns"
	case DifficultyFixed:
		return "no ramp, speed and spawn rate never change"
	default:
		return ""
	}
}
