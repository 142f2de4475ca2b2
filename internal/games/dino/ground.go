package dino

import (
	"github.com/vovakirdan/dino-runner/internal/config"
)

// Particle is a dust speck kicked up along the ground line.
type Particle struct {
	X, Y float64
	Life int

	maxLife int
}

// Fade returns the remaining life as a fraction of the longest possible
// life, for alpha blending.
func (p Particle) Fade() float64 {
	if p.maxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.maxLife)
}

// Field is the scrolling ground strip and its dust.
type Field struct {
	offset    float64
	particles []Particle

	cfg   config.FieldConfig
	world config.WorldConfig
	rng   Rand
}

// NewField creates a field with no scroll offset and no dust.
func NewField(cfg config.FieldConfig, world config.WorldConfig, rng Rand) *Field {
	return &Field{
		particles: make([]Particle, 0, 16),
		cfg:       cfg,
		world:     world,
		rng:       rng,
	}
}

// Tick scrolls the ground and dust by speed, ages the dust and maybe
// spawns a new speck past the right edge.
func (f *Field) Tick(speed float64) {
	f.offset -= speed
	for f.offset <= -f.cfg.TileWidth {
		f.offset += f.cfg.TileWidth
	}

	kept := f.particles[:0]
	for _, p := range f.particles {
		p.X -= speed
		p.Life--
		if p.Life > 0 && p.X >= 0 {
			kept = append(kept, p)
		}
	}
	f.particles = kept

	if f.rng.Intn(f.cfg.ParticleChance) == 0 {
		f.particles = append(f.particles, Particle{
			X:       f.world.Width + float64(between(f.rng, 0, f.cfg.ParticleSpread)),
			Y:       f.world.GroundLine() - float64(between(f.rng, 0, f.cfg.ParticleRise)),
			Life:    between(f.rng, f.cfg.ParticleMinLife, f.cfg.ParticleMaxLife),
			maxLife: f.cfg.ParticleMaxLife,
		})
	}
}

// Offset returns the ground pattern offset in (-tileWidth, 0].
func (f *Field) Offset() float64 {
	return f.offset
}

// Particles returns the live dust specks. The slice is owned by the field.
func (f *Field) Particles() []Particle {
	return f.particles
}
