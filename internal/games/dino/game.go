// Package dino implements the side-scrolling runner: a character that
// jumps over cacti and ducks under birds while the world speeds up.
// The session is a pure simulation; frontends feed it input once per tick
// and draw its Frame.
package dino

import (
	"github.com/vovakirdan/dino-runner/internal/audio"
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Session owns one player's game: the running world, the score and the
// best score seen since the session was created.
type Session struct {
	cfg   config.RunnerConfig
	rng   Rand
	sound audio.Sink

	actor     *Actor
	field     *Field
	sky       *Sky
	ramp      *config.Ramp
	obstacles []Obstacle

	score        int
	highScore    int
	newHighScore bool
	gameOver     bool
	spawnTimer   int
	ticks        int // ticks since the last restart
}

// NewSession creates a running session. A nil sink plays nothing.
func NewSession(cfg config.RunnerConfig, rng Rand, sound audio.Sink) *Session {
	if sound == nil {
		sound = audio.Nop{}
	}
	s := &Session{
		cfg:   cfg,
		rng:   rng,
		sound: sound,
		field: NewField(cfg.Field, cfg.World, rng),
		sky:   NewSky(cfg.Sky),
		ramp:  config.NewRamp(cfg.Difficulty),
	}
	s.Restart()
	return s
}

// Step applies one tick of input and advances the simulation.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	if s.gameOver {
		if in.Has(core.ActionJump) || in.Has(core.ActionRestart) {
			s.Restart()
			events = append(events, core.EventRestart)
		}
		return core.StepResult{State: s.State(), Events: events}
	}

	if in.Has(core.ActionJump) {
		// The cue plays on every press, even when the jump itself is refused
		s.actor.Jump()
		s.sound.PlayJump()
		events = append(events, core.EventJump)
	}
	if in.Has(core.ActionDuck) {
		s.actor.Duck(true)
	}
	if in.Has(core.ActionDuckRelease) {
		s.actor.StopDuck()
	}

	events = append(events, s.Update()...)
	return core.StepResult{State: s.State(), Events: events}
}

// Update advances the world by one tick without reading input. It does
// nothing after game over.
func (s *Session) Update() []core.Event {
	if s.gameOver {
		return nil
	}
	var events []core.Event

	s.ticks++
	s.score++
	s.ramp.Advance()
	s.sky.Tick()

	speed := s.ramp.Speed()
	s.actor.Tick()
	s.field.Tick(speed)

	if s.score%s.cfg.Scoring.PointInterval == 0 {
		s.sound.PlayPoint()
		events = append(events, core.EventPoint)
	}

	s.spawnTimer++
	if s.spawnTimer >= s.ramp.SpawnDelay() {
		kind := PickKind(s.cfg.Obstacles, s.rng)
		s.obstacles = append(s.obstacles, SpawnObstacle(kind, s.cfg.World.Width, s.cfg, s.rng))
		s.spawnTimer = 0
	}

	for i := range s.obstacles {
		s.obstacles[i].Tick(speed)
	}
	s.obstacles = pruneObstacles(s.obstacles)

	if Collides(s.actor.Rect(), s.obstacles) {
		s.gameOver = true
		// Tying the record still shows as a new high score
		s.newHighScore = s.score > 0 && s.score >= s.highScore
		if s.score > s.highScore {
			s.highScore = s.score
		}
		s.sound.PlayHit()
		events = append(events, core.EventHit)
	}

	return events
}

// Restart begins a new run. The high score survives.
func (s *Session) Restart() {
	s.actor = NewActor(s.cfg.Actor, s.cfg.World.GroundLine())
	s.obstacles = s.obstacles[:0]
	s.score = 0
	s.spawnTimer = 0
	s.ticks = 0
	s.gameOver = false
	s.newHighScore = false
	s.ramp.Reset()
	s.sky.Reset()
}

// State returns the score summary.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:     s.score,
		HighScore: s.highScore,
		GameOver:  s.gameOver,
	}
}

// Actor returns the runner. Intended for frontends and tests.
func (s *Session) Actor() *Actor {
	return s.actor
}

// Obstacles returns the live obstacles in spawn order. The slice is owned
// by the session.
func (s *Session) Obstacles() []Obstacle {
	return s.obstacles
}

// Speed returns the current scroll speed.
func (s *Session) Speed() float64 {
	return s.ramp.Speed()
}

// SpawnDelay returns the current ticks between spawns.
func (s *Session) SpawnDelay() int {
	return s.ramp.SpawnDelay()
}

// IsGameOver reports whether the run has ended.
func (s *Session) IsGameOver() bool {
	return s.gameOver
}

// Ticks returns the number of simulated ticks since the last restart.
func (s *Session) Ticks() int {
	return s.ticks
}
