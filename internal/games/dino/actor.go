package dino

import (
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Pose is the actor's movement state. Ducking in mid-air cannot be expressed.
type Pose int

const (
	PoseRunning Pose = iota
	PoseDucking
	PoseAirborne
)

// String returns a human-readable name for the pose.
func (p Pose) String() string {
	switch p {
	case PoseRunning:
		return "running"
	case PoseDucking:
		return "ducking"
	case PoseAirborne:
		return "airborne"
	default:
		return "unknown"
	}
}

// Actor is the player-controlled runner. Y is the top edge of the standing
// box; GroundY is that edge's resting value.
type Actor struct {
	X, Y      float64
	VelocityY float64
	GroundY   float64
	Pose      Pose
	AnimPhase float64 // advances only while running

	cfg config.ActorConfig
}

// NewActor places a standing actor on the ground line.
func NewActor(cfg config.ActorConfig, groundLine float64) *Actor {
	groundY := groundLine - cfg.Height
	return &Actor{
		X:       cfg.X,
		Y:       groundY,
		GroundY: groundY,
		Pose:    PoseRunning,
		cfg:     cfg,
	}
}

// Jump launches the actor. Only a running actor can jump.
func (a *Actor) Jump() bool {
	if a.Pose != PoseRunning {
		return false
	}
	a.Pose = PoseAirborne
	a.VelocityY = a.cfg.JumpStrength
	return true
}

// Duck engages or releases the crouch. Engaging is ignored in mid-air.
func (a *Actor) Duck(engaged bool) {
	if !engaged {
		a.StopDuck()
		return
	}
	if a.Pose == PoseRunning {
		a.Pose = PoseDucking
	}
}

// StopDuck stands a ducking actor back up.
func (a *Actor) StopDuck() {
	if a.Pose == PoseDucking {
		a.Pose = PoseRunning
	}
}

// Tick advances the jump arc or the running animation by one step.
func (a *Actor) Tick() {
	switch a.Pose {
	case PoseAirborne:
		a.VelocityY += a.cfg.Gravity
		a.Y += a.VelocityY
		if a.Y >= a.GroundY {
			a.Y = a.GroundY
			a.VelocityY = 0
			a.Pose = PoseRunning
		}
	case PoseRunning:
		a.AnimPhase += a.cfg.RunAnimationSpeed
	}
}

// Rect returns the collision box. A ducking actor keeps its feet where they
// were and loses height from the top.
func (a *Actor) Rect() core.Rect {
	if a.Pose == PoseDucking {
		return core.NewRect(a.X, a.Y+(a.cfg.Height-a.cfg.DuckHeight), a.cfg.Width, a.cfg.DuckHeight)
	}
	return core.NewRect(a.X, a.Y, a.cfg.Width, a.cfg.Height)
}

// IsAirborne reports whether the actor is mid-jump.
func (a *Actor) IsAirborne() bool {
	return a.Pose == PoseAirborne
}

// IsDucking reports whether the actor is crouched.
func (a *Actor) IsDucking() bool {
	return a.Pose == PoseDucking
}
