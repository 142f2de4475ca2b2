package dino

import "github.com/vovakirdan/dino-runner/internal/core"

// Frame is a read-only snapshot of everything a frontend draws.
// All coordinates are world units.
type Frame struct {
	World  core.Rect // full scene
	Ground float64   // y of the ground line

	Sky          core.RGB
	GroundOffset float64
	TileWidth    float64
	Particles    []Particle

	Actor     core.Rect
	Pose      Pose
	AnimPhase float64

	Obstacles []Obstacle

	Score        int
	HighScore    int
	Speed        float64
	GameOver     bool
	NewHighScore bool
}

// Frame captures the current session state. Slices are copies.
func (s *Session) Frame() Frame {
	return Frame{
		World:        core.NewRect(0, 0, s.cfg.World.Width, s.cfg.World.Height),
		Ground:       s.cfg.World.GroundLine(),
		Sky:          s.sky.Color(),
		GroundOffset: s.field.Offset(),
		TileWidth:    s.cfg.Field.TileWidth,
		Particles:    append([]Particle(nil), s.field.Particles()...),
		Actor:        s.actor.Rect(),
		Pose:         s.actor.Pose,
		AnimPhase:    s.actor.AnimPhase,
		Obstacles:    append([]Obstacle(nil), s.obstacles...),
		Score:        s.score,
		HighScore:    s.highScore,
		Speed:        s.ramp.Speed(),
		GameOver:     s.gameOver,
		NewHighScore: s.newHighScore,
	}
}
