package dino

import (
	"fmt"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// ObstacleKind distinguishes the two hazards.
type ObstacleKind int

const (
	GroundHazard ObstacleKind = iota // cactus, must be jumped
	FlyingHazard                     // bird, jumped or ducked depending on altitude
)

// String returns a human-readable name for the kind.
func (k ObstacleKind) String() string {
	switch k {
	case GroundHazard:
		return "cactus"
	case FlyingHazard:
		return "bird"
	default:
		return fmt.Sprintf("ObstacleKind(%d)", int(k))
	}
}

// Obstacle is a hazard scrolling from right to left. Only X changes after
// spawn; Spikes and WingPhase are cosmetic.
type Obstacle struct {
	Kind      ObstacleKind
	X, Y      float64
	Width     float64
	Height    float64
	Spikes    int     // ground hazards only
	WingPhase float64 // flying hazards only

	wingSpeed float64
}

// SpawnObstacle creates an obstacle of the given kind with its left edge at x.
// It panics on an unknown kind.
func SpawnObstacle(kind ObstacleKind, x float64, cfg config.RunnerConfig, rng Rand) Obstacle {
	groundLine := cfg.World.GroundLine()

	switch kind {
	case GroundHazard:
		g := cfg.Obstacles.Ground
		h := float64(between(rng, g.MinHeight, g.MaxHeight))
		return Obstacle{
			Kind:   GroundHazard,
			X:      x,
			Y:      groundLine - h,
			Width:  g.Width,
			Height: h,
			Spikes: between(rng, g.MinSpikes, g.MaxSpikes),
		}
	case FlyingHazard:
		f := cfg.Obstacles.Flying
		altitude := float64(between(rng, f.MinAltitude, f.MaxAltitude))
		return Obstacle{
			Kind:      FlyingHazard,
			X:         x,
			Y:         groundLine - altitude,
			Width:     f.Width,
			Height:    f.Height,
			wingSpeed: f.WingSpeed,
		}
	default:
		panic(fmt.Sprintf("dino: unknown obstacle kind %d", int(kind)))
	}
}

// PickKind chooses an obstacle kind using the configured weights.
func PickKind(cfg config.ObstacleConfig, rng Rand) ObstacleKind {
	if rng.Intn(cfg.GroundWeight+cfg.FlyingWeight) < cfg.GroundWeight {
		return GroundHazard
	}
	return FlyingHazard
}

// Tick scrolls the obstacle left by speed and flaps the wings of a bird.
func (o *Obstacle) Tick(speed float64) {
	o.X -= speed
	if o.Kind == FlyingHazard {
		o.WingPhase += o.wingSpeed
	}
}

// Rect returns the collision box.
func (o *Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// IsOffScreen reports whether the obstacle has fully left the left edge.
func (o *Obstacle) IsOffScreen() bool {
	return o.X+o.Width < 0
}

// pruneObstacles removes off-screen obstacles in place, keeping order.
func pruneObstacles(obs []Obstacle) []Obstacle {
	kept := obs[:0]
	for _, o := range obs {
		if !o.IsOffScreen() {
			kept = append(kept, o)
		}
	}
	return kept
}
