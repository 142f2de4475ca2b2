package dino

import "github.com/vovakirdan/dino-runner/internal/core"

// Collides reports whether the actor box overlaps any obstacle box.
// Touching edges do not count.
func Collides(actor core.Rect, obstacles []Obstacle) bool {
	for i := range obstacles {
		if actor.Intersects(obstacles[i].Rect()) {
			return true
		}
	}
	return false
}
