package dino

import (
	"testing"

	"github.com/vovakirdan/dino-runner/internal/core"
)

func TestCollides(t *testing.T) {
	actor := core.NewRect(100, 290, 40, 60)

	tests := []struct {
		name      string
		obstacles []Obstacle
		want      bool
	}{
		{"none", nil, false},
		{"far away", []Obstacle{{X: 500, Y: 300, Width: 20, Height: 50}}, false},
		{"overlap", []Obstacle{{X: 130, Y: 300, Width: 20, Height: 50}}, true},
		{"touching right edge", []Obstacle{{X: 140, Y: 300, Width: 20, Height: 50}}, false},
		{"touching top edge", []Obstacle{{X: 110, Y: 270, Width: 30, Height: 20}}, false},
		{"containment", []Obstacle{{X: 90, Y: 280, Width: 80, Height: 80}}, true},
		{"second of many", []Obstacle{
			{X: 600, Y: 300, Width: 20, Height: 50},
			{X: 120, Y: 330, Width: 20, Height: 20},
		}, true},
		{"low bird vs standing actor", []Obstacle{{X: 100, Y: 295, Width: 30, Height: 20}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(actor, tt.obstacles); got != tt.want {
				t.Errorf("Collides() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDuckingClearsLowBird(t *testing.T) {
	a := newTestActor()
	// Lowest bird: bottom edge at y=310, ducking actor top at y=320
	bird := []Obstacle{{Kind: FlyingHazard, X: 110, Y: 290, Width: 30, Height: 20}}

	if !Collides(a.Rect(), bird) {
		t.Fatal("standing actor should hit the low bird")
	}
	a.Duck(true)
	if Collides(a.Rect(), bird) {
		t.Error("ducking actor should pass under the low bird")
	}
}
