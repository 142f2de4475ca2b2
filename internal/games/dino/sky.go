package dino

import (
	"math"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Sky drifts the background between day and night.
type Sky struct {
	phase float64
	color core.RGB
	cfg   config.SkyConfig
}

// NewSky starts at full day.
func NewSky(cfg config.SkyConfig) *Sky {
	s := &Sky{cfg: cfg}
	s.Reset()
	return s
}

// Reset returns to phase zero and the day color.
func (s *Sky) Reset() {
	s.phase = 0
	s.color = s.cfg.DayColor()
}

// Tick advances the cycle and recomputes the color.
func (s *Sky) Tick() {
	s.phase += s.cfg.CycleSpeed
	blend := (math.Sin(s.phase) + 1) / 2
	s.color = core.LerpRGB(s.cfg.DayColor(), s.cfg.NightColor(), blend)
}

// Color returns the current sky color.
func (s *Sky) Color() core.RGB {
	return s.color
}
