package dino

import (
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// maxRand always draws the largest value: every spawn is a high bird and
// no dust appears.
type maxRand struct{}

func (maxRand) Intn(n int) int { return n - 1 }

// seqRand replays a fixed sequence, wrapping each value into [0, n).
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

// recordingSink counts the cues it receives.
type recordingSink struct {
	jumps, hits, points int
}

func (s *recordingSink) PlayJump()  { s.jumps++ }
func (s *recordingSink) PlayHit()   { s.hits++ }
func (s *recordingSink) PlayPoint() { s.points++ }

func empty() core.InputFrame {
	return core.NewInputFrame()
}

func defaults() config.RunnerConfig {
	return config.DefaultRunnerConfig()
}

// blockActor places a cactus that overlaps the actor after the next scroll.
func blockActor(s *Session) {
	r := s.actor.Rect()
	s.obstacles = append(s.obstacles, Obstacle{
		Kind:   GroundHazard,
		X:      r.X + s.Speed(),
		Y:      r.Y,
		Width:  20,
		Height: r.H,
		Spikes: 3,
	})
}
