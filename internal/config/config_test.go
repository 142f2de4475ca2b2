package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded config should parse: %v", err)
	}
	if cfg != DefaultRunnerConfig() {
		t.Errorf("embedded YAML and DefaultRunnerConfig differ:\n%+v\n%+v", cfg, DefaultRunnerConfig())
	}
}

func TestDefaultGroundLine(t *testing.T) {
	cfg := DefaultRunnerConfig()
	if got := cfg.World.GroundLine(); got != 350 {
		t.Errorf("GroundLine() = %v, want 350", got)
	}
	if got := cfg.Sky.DayColor(); got.R != 135 || got.G != 206 || got.B != 235 {
		t.Errorf("DayColor() = %+v", got)
	}
}

func TestLoadRunnerCustomPathOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runner.yaml")
	data := []byte("difficulty:\n  base_speed: 12\nactor:\n  gravity: 1.2\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner failed: %v", err)
	}
	if cfg.Difficulty.BaseSpeed != 12 {
		t.Errorf("BaseSpeed = %v, want 12", cfg.Difficulty.BaseSpeed)
	}
	if cfg.Actor.Gravity != 1.2 {
		t.Errorf("Gravity = %v, want 1.2", cfg.Actor.Gravity)
	}
	// Untouched values keep their defaults
	if cfg.Actor.JumpStrength != -15 {
		t.Errorf("JumpStrength = %v, want -15", cfg.Actor.JumpStrength)
	}
	if cfg.Difficulty.SpawnDelay != 90 {
		t.Errorf("SpawnDelay = %v, want 90", cfg.Difficulty.SpawnDelay)
	}
}

func TestLoadRunnerErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRunner(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("world: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunner(broken); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalidPath := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalidPath, []byte("actor:\n  jump_strength: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadRunner(invalidPath)
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Code != "JUMP_STRENGTH" {
		t.Errorf("Code = %q, want JUMP_STRENGTH", verr.Code)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
		code   string
	}{
		{"defaults", func(*RunnerConfig) {}, ""},
		{"zero width", func(c *RunnerConfig) { c.World.Width = 0 }, "WORLD_SIZE"},
		{"ground too tall", func(c *RunnerConfig) { c.World.GroundHeight = 400 }, "GROUND_HEIGHT"},
		{"zero tick rate", func(c *RunnerConfig) { c.World.TickRate = 0 }, "TICK_RATE"},
		{"duck taller than stand", func(c *RunnerConfig) { c.Actor.DuckHeight = 80 }, "DUCK_HEIGHT"},
		{"no gravity", func(c *RunnerConfig) { c.Actor.Gravity = 0 }, "GRAVITY"},
		{"inverted cactus heights", func(c *RunnerConfig) { c.Obstacles.Ground.MinHeight = 90 }, "GROUND_HAZARD"},
		{"inverted altitudes", func(c *RunnerConfig) { c.Obstacles.Flying.MaxAltitude = 10 }, "FLYING_HAZARD"},
		{"zero weights", func(c *RunnerConfig) {
			c.Obstacles.GroundWeight = 0
			c.Obstacles.FlyingWeight = 0
		}, "OBSTACLE_WEIGHTS"},
		{"zero tile", func(c *RunnerConfig) { c.Field.TileWidth = 0 }, "TILE_WIDTH"},
		{"zero particle chance", func(c *RunnerConfig) { c.Field.ParticleChance = 0 }, "PARTICLE_CHANCE"},
		{"inverted life", func(c *RunnerConfig) { c.Field.ParticleMinLife = 50 }, "PARTICLE_LIFE"},
		{"zero speed", func(c *RunnerConfig) { c.Difficulty.BaseSpeed = 0 }, "BASE_SPEED"},
		{"negative increment", func(c *RunnerConfig) { c.Difficulty.SpeedIncrement = -1 }, "RAMP_STEP"},
		{"zero interval", func(c *RunnerConfig) { c.Difficulty.RampInterval = 0 }, "RAMP_INTERVAL"},
		{"zero delay", func(c *RunnerConfig) { c.Difficulty.SpawnDelay = 0 }, "SPAWN_DELAY"},
		{"zero point interval", func(c *RunnerConfig) { c.Scoring.PointInterval = 0 }, "POINT_INTERVAL"},
		{"zero duck hold", func(c *RunnerConfig) { c.Input.DuckHoldTicks = 0 }, "DUCK_HOLD"},
		{"zero duck repeat", func(c *RunnerConfig) { c.Input.DuckRepeatTicks = 0 }, "DUCK_REPEAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()

			if tt.code == "" {
				if err != nil {
					t.Fatalf("expected valid config, got %v", err)
				}
				return
			}
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Code != tt.code {
				t.Errorf("Code = %q, want %q", verr.Code, tt.code)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, p := range Presets() {
		got, err := ParsePreset(string(p))
		if err != nil || got != p {
			t.Errorf("ParsePreset(%q) = %q, %v", p, got, err)
		}
		if p.Describe() == "" {
			t.Errorf("preset %q has no description", p)
		}
	}
	if got, err := ParsePreset(""); err != nil || got != "" {
		t.Errorf("ParsePreset(\"\") = %q, %v", got, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	cfg := DefaultRunnerConfig()
	ApplyRunnerPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable the ramp")
	}

	cfg = DefaultRunnerConfig()
	ApplyRunnerPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.BaseSpeed <= DefaultRunnerConfig().Difficulty.BaseSpeed {
		t.Error("hard preset should start faster")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset produced invalid config: %v", err)
	}

	cfg = DefaultRunnerConfig()
	ApplyRunnerPreset(&cfg, DifficultyEasy)
	if cfg.Difficulty.SpawnDelay <= DefaultRunnerConfig().Difficulty.SpawnDelay {
		t.Error("easy preset should spawn less often")
	}

	cfg = DefaultRunnerConfig()
	ApplyRunnerPreset(&cfg, DifficultyNormal)
	if cfg != DefaultRunnerConfig() {
		t.Error("normal preset should keep the defaults")
	}
}

func TestMarshalRoundTripKeepsValidity(t *testing.T) {
	data, err := Marshal(DefaultRunnerConfig())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Parse(data); err != nil {
		t.Errorf("marshalled defaults should parse: %v", err)
	}
}
