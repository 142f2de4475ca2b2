package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default Dino Runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:        800,
			Height:       400,
			GroundHeight: 50,
			TickRate:     60,
		},
		Actor: ActorConfig{
			X:                 100,
			Width:             40,
			Height:            60,
			DuckHeight:        30,
			Gravity:           0.8,
			JumpStrength:      -15,
			RunAnimationSpeed: 0.2,
		},
		Obstacles: ObstacleConfig{
			Ground: GroundHazardConfig{
				Width:     20,
				MinHeight: 40,
				MaxHeight: 70,
				MinSpikes: 3,
				MaxSpikes: 6,
			},
			Flying: FlyingHazardConfig{
				Width:       30,
				Height:      20,
				MinAltitude: 60,
				MaxAltitude: 120,
				WingSpeed:   0.3,
			},
			GroundWeight: 2,
			FlyingWeight: 1,
		},
		Field: FieldConfig{
			TileWidth:       20,
			ParticleChance:  10,
			ParticleSpread:  50,
			ParticleRise:    10,
			ParticleMinLife: 20,
			ParticleMaxLife: 40,
		},
		Sky: SkyConfig{
			Day:        [3]uint8{135, 206, 235},
			Night:      [3]uint8{25, 25, 112},
			CycleSpeed: 0.02,
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			BaseSpeed:      8,
			SpeedIncrement: 0.5,
			RampInterval:   300, // 5 seconds at 60fps
			SpawnDelay:     90,
			SpawnDelayStep: 2,
			MinSpawnDelay:  30,
		},
		Scoring: ScoringConfig{
			PointInterval: 100,
		},
		Input: InputConfig{
			DuckHoldTicks:   45,
			DuckRepeatTicks: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
