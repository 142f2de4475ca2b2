package config

import "fmt"

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func invalid(code, format string, args ...any) error {
	return ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Validate checks that the configuration describes a playable game.
func (c RunnerConfig) Validate() error {
	checks := []func() error{
		c.validateWorld,
		c.validateActor,
		c.validateObstacles,
		c.validateField,
		c.validateDifficulty,
		c.validateMisc,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (c RunnerConfig) validateWorld() error {
	w := c.World
	if w.Width <= 0 || w.Height <= 0 {
		return invalid("WORLD_SIZE", "world must have positive size, got %vx%v", w.Width, w.Height)
	}
	if w.GroundHeight < 0 || w.GroundHeight >= w.Height {
		return invalid("GROUND_HEIGHT", "ground_height %v must be within [0, %v)", w.GroundHeight, w.Height)
	}
	if w.TickRate <= 0 {
		return invalid("TICK_RATE", "tick_rate must be positive, got %d", w.TickRate)
	}
	return nil
}

func (c RunnerConfig) validateActor() error {
	a := c.Actor
	if a.Width <= 0 || a.Height <= 0 {
		return invalid("ACTOR_SIZE", "actor must have positive size, got %vx%v", a.Width, a.Height)
	}
	if a.DuckHeight <= 0 || a.DuckHeight > a.Height {
		return invalid("DUCK_HEIGHT", "duck_height %v must be within (0, %v]", a.DuckHeight, a.Height)
	}
	if a.Gravity <= 0 {
		return invalid("GRAVITY", "gravity must be positive, got %v", a.Gravity)
	}
	if a.JumpStrength >= 0 {
		return invalid("JUMP_STRENGTH", "jump_strength must be negative (up), got %v", a.JumpStrength)
	}
	if a.Height > c.World.GroundLine() {
		return invalid("ACTOR_SIZE", "actor height %v does not fit above the ground line", a.Height)
	}
	return nil
}

func (c RunnerConfig) validateObstacles() error {
	o := c.Obstacles
	if o.Ground.Width <= 0 || o.Ground.MinHeight <= 0 || o.Ground.MinHeight > o.Ground.MaxHeight {
		return invalid("GROUND_HAZARD", "ground hazard needs width > 0 and 0 < min_height <= max_height")
	}
	if o.Ground.MinSpikes < 0 || o.Ground.MinSpikes > o.Ground.MaxSpikes {
		return invalid("GROUND_HAZARD", "spike range [%d, %d] is invalid", o.Ground.MinSpikes, o.Ground.MaxSpikes)
	}
	if o.Flying.Width <= 0 || o.Flying.Height <= 0 {
		return invalid("FLYING_HAZARD", "flying hazard must have positive size")
	}
	if o.Flying.MinAltitude < 0 || o.Flying.MinAltitude > o.Flying.MaxAltitude {
		return invalid("FLYING_HAZARD", "altitude range [%d, %d] is invalid", o.Flying.MinAltitude, o.Flying.MaxAltitude)
	}
	if o.GroundWeight < 0 || o.FlyingWeight < 0 || o.GroundWeight+o.FlyingWeight == 0 {
		return invalid("OBSTACLE_WEIGHTS", "obstacle weights must be non-negative with a positive sum")
	}
	return nil
}

func (c RunnerConfig) validateField() error {
	f := c.Field
	if f.TileWidth <= 0 {
		return invalid("TILE_WIDTH", "tile_width must be positive, got %v", f.TileWidth)
	}
	if f.ParticleChance < 1 {
		return invalid("PARTICLE_CHANCE", "particle_chance must be at least 1, got %d", f.ParticleChance)
	}
	if f.ParticleSpread < 0 || f.ParticleRise < 0 {
		return invalid("PARTICLE_RANGE", "particle spread and rise must be non-negative")
	}
	if f.ParticleMinLife < 1 || f.ParticleMinLife > f.ParticleMaxLife {
		return invalid("PARTICLE_LIFE", "particle life range [%d, %d] is invalid", f.ParticleMinLife, f.ParticleMaxLife)
	}
	return nil
}

func (c RunnerConfig) validateDifficulty() error {
	d := c.Difficulty
	if d.BaseSpeed <= 0 {
		return invalid("BASE_SPEED", "base_speed must be positive, got %v", d.BaseSpeed)
	}
	if d.SpeedIncrement < 0 || d.SpawnDelayStep < 0 {
		return invalid("RAMP_STEP", "ramp increments must be non-negative")
	}
	if d.RampInterval < 1 {
		return invalid("RAMP_INTERVAL", "ramp_interval must be at least 1, got %d", d.RampInterval)
	}
	if d.SpawnDelay < 1 || d.MinSpawnDelay < 1 {
		return invalid("SPAWN_DELAY", "spawn delays must be at least 1 tick")
	}
	return nil
}

func (c RunnerConfig) validateMisc() error {
	if c.Scoring.PointInterval < 1 {
		return invalid("POINT_INTERVAL", "point_interval must be at least 1, got %d", c.Scoring.PointInterval)
	}
	if c.Input.DuckHoldTicks < 1 {
		return invalid("DUCK_HOLD", "duck_hold_ticks must be at least 1, got %d", c.Input.DuckHoldTicks)
	}
	if c.Input.DuckRepeatTicks < 1 {
		return invalid("DUCK_REPEAT", "duck_repeat_ticks must be at least 1, got %d", c.Input.DuckRepeatTicks)
	}
	return nil
}
