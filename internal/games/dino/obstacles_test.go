package dino

import (
	"testing"
)

func TestObstacleScrollsOffScreen(t *testing.T) {
	o := SpawnObstacle(GroundHazard, 800, defaults(), maxRand{})

	for i := 0; i < 100; i++ {
		o.Tick(8)
	}
	if o.X != 0 {
		t.Fatalf("after 100 ticks X = %v, want 0", o.X)
	}
	if o.IsOffScreen() {
		t.Error("obstacle at x=0 should be on screen")
	}

	o.Tick(8)
	if o.X != -8 {
		t.Fatalf("after 101 ticks X = %v, want -8", o.X)
	}
	// The right edge is still at x=12
	if o.IsOffScreen() {
		t.Error("obstacle with right edge at 12 should still be on screen")
	}

	o.Tick(8)
	o.Tick(8)
	if !o.IsOffScreen() {
		t.Errorf("obstacle at X = %v should be off screen", o.X)
	}
}

func TestIsOffScreenBoundary(t *testing.T) {
	tests := []struct {
		x    float64
		want bool
	}{
		{0, false},
		{-19.5, false},
		{-20, false}, // right edge exactly at 0
		{-20.5, true},
		{-100, true},
	}
	for _, tt := range tests {
		o := Obstacle{Kind: GroundHazard, X: tt.x, Width: 20, Height: 40}
		if got := o.IsOffScreen(); got != tt.want {
			t.Errorf("x=%v: IsOffScreen() = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestSpawnGroundHazard(t *testing.T) {
	tests := []struct {
		name       string
		rng        Rand
		wantHeight float64
		wantSpikes int
	}{
		{"smallest", &seqRand{vals: []int{0, 0}}, 40, 3},
		{"largest", maxRand{}, 70, 6},
		{"middle", &seqRand{vals: []int{15, 1}}, 55, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := SpawnObstacle(GroundHazard, 800, defaults(), tt.rng)
			if o.Kind != GroundHazard {
				t.Fatalf("Kind = %v", o.Kind)
			}
			if o.X != 800 || o.Width != 20 {
				t.Errorf("X = %v, Width = %v", o.X, o.Width)
			}
			if o.Height != tt.wantHeight {
				t.Errorf("Height = %v, want %v", o.Height, tt.wantHeight)
			}
			if o.Y+o.Height != 350 {
				t.Errorf("cactus should stand on the ground line, bottom = %v", o.Y+o.Height)
			}
			if o.Spikes != tt.wantSpikes {
				t.Errorf("Spikes = %d, want %d", o.Spikes, tt.wantSpikes)
			}
		})
	}
}

func TestSpawnFlyingHazard(t *testing.T) {
	tests := []struct {
		name  string
		rng   Rand
		wantY float64
	}{
		{"lowest", &seqRand{vals: []int{0}}, 290},
		{"highest", maxRand{}, 230},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := SpawnObstacle(FlyingHazard, 800, defaults(), tt.rng)
			if o.Width != 30 || o.Height != 20 {
				t.Errorf("size = %vx%v, want 30x20", o.Width, o.Height)
			}
			if o.Y != tt.wantY {
				t.Errorf("Y = %v, want %v", o.Y, tt.wantY)
			}
			if o.WingPhase != 0 {
				t.Errorf("WingPhase = %v, want 0", o.WingPhase)
			}
		})
	}
}

func TestSpawnUnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown kind")
		}
	}()
	SpawnObstacle(ObstacleKind(7), 800, defaults(), maxRand{})
}

func TestPickKindWeights(t *testing.T) {
	cfg := defaults().Obstacles
	want := []ObstacleKind{GroundHazard, GroundHazard, FlyingHazard}

	for draw, kind := range want {
		rng := &seqRand{vals: []int{draw}}
		if got := PickKind(cfg, rng); got != kind {
			t.Errorf("draw %d: PickKind() = %v, want %v", draw, got, kind)
		}
	}
}

func TestObstacleTickAnimatesBirdsOnly(t *testing.T) {
	cfg := defaults()
	bird := SpawnObstacle(FlyingHazard, 800, cfg, maxRand{})
	cactus := SpawnObstacle(GroundHazard, 800, cfg, maxRand{})
	startY := bird.Y

	bird.Tick(8)
	cactus.Tick(8)

	if bird.WingPhase != 0.3 {
		t.Errorf("bird WingPhase = %v, want 0.3", bird.WingPhase)
	}
	if cactus.WingPhase != 0 {
		t.Errorf("cactus WingPhase = %v, want 0", cactus.WingPhase)
	}
	if bird.Y != startY {
		t.Error("scrolling must not move obstacles vertically")
	}
}

func TestPruneObstaclesKeepsOrder(t *testing.T) {
	obs := []Obstacle{
		{X: -50, Width: 20},
		{X: 10, Width: 20},
		{X: -30, Width: 20},
		{X: 400, Width: 30},
	}
	got := pruneObstacles(obs)
	if len(got) != 2 || got[0].X != 10 || got[1].X != 400 {
		t.Errorf("pruneObstacles() = %+v", got)
	}
}

func TestObstacleKindString(t *testing.T) {
	if GroundHazard.String() != "cactus" || FlyingHazard.String() != "bird" {
		t.Errorf("unexpected names %q %q", GroundHazard, FlyingHazard)
	}
	if ObstacleKind(9).String() != "ObstacleKind(9)" {
		t.Errorf("unknown kind name = %q", ObstacleKind(9).String())
	}
}
