package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/dino"
)

// Minimum terminal size that still shows a readable scene.
const (
	minCols = 40
	minRows = 12
)

// Scene glyphs
const (
	groundMark = '╲'
	dustChar   = '·'
	eyeChar    = '•'
	legLeft    = '╱'
	legRight   = '╲'
	spikeLeft  = '<'
	spikeRight = '>'
	wingUp     = '^'
	wingDown   = 'v'
	beakChar   = '▸'
)

const (
	controlsHint  = "SPACE: Jump | C: Duck"
	restartPrompt = "Press SPACE to restart"
)

// viewport maps world units onto terminal cells.
type viewport struct {
	sx, sy float64
}

func newViewport(world core.Rect, cols, rows int) viewport {
	return viewport{sx: float64(cols) / world.W, sy: float64(rows) / world.H}
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return int(math.Floor(y * v.sy)) }

// cells converts a world rectangle to a cell rectangle at least one cell
// in each direction.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x, y = v.col(r.X), v.row(r.Y)
	x1, y1 := v.col(r.Right()), v.row(r.Bottom())
	return x, y, max(x1-x, 1), max(y1-y, 1)
}

// DrawFrame renders a session snapshot into dst, scaling the world to fill it.
func DrawFrame(dst *core.Screen, f dino.Frame) {
	if dst.Width() < minCols || dst.Height() < minRows {
		drawTooSmall(dst)
		return
	}

	vp := newViewport(f.World, dst.Width(), dst.Height())
	text := f.Sky.Contrast()

	dst.SetBackground(f.Sky)
	dst.SetPen(text)
	dst.Clear()

	drawGround(dst, vp, f)
	drawActor(dst, vp, f)
	for _, o := range f.Obstacles {
		drawObstacle(dst, vp, o)
	}
	drawHUD(dst, f, text)

	if f.GameOver {
		drawGameOver(dst, f)
	}
}

func drawTooSmall(dst *core.Screen) {
	dst.SetBackground(core.Black)
	dst.SetPen(core.White)
	dst.Clear()
	dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
	dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", minCols, minRows))
}

func drawGround(dst *core.Screen, vp viewport, f dino.Frame) {
	top := vp.row(f.Ground)
	dst.PaintRect(0, top, dst.Width(), dst.Height()-top, core.Brown)

	dst.SetPen(core.Black)
	for x := f.GroundOffset; x < f.World.W; x += f.TileWidth {
		dst.Set(vp.col(x), top, groundMark)
	}

	for _, p := range f.Particles {
		dst.SetPen(dustColor(p.Fade()))
		dst.Set(vp.col(p.X), vp.row(p.Y)-1, dustChar)
	}
}

// dustColor brightens brown dust as it fades.
func dustColor(fade float64) core.RGB {
	lift := uint8(50 * core.ClampF(fade, 0, 1))
	return core.RGB{R: core.Brown.R + lift, G: core.Brown.G + lift, B: core.Brown.B + lift}
}

func drawActor(dst *core.Screen, vp viewport, f dino.Frame) {
	x, y, w, h := vp.cells(f.Actor)
	dst.PaintRect(x, y, w, h, core.Green)

	dst.SetPen(core.Black)
	dst.Set(x+w-1, y, eyeChar)

	if f.Pose != dino.PoseRunning || h < 2 {
		return
	}
	// Two-frame gait on the bottom row
	dst.SetPen(core.DarkGreen)
	bottom := y + h - 1
	if int(f.AnimPhase)%2 == 0 {
		dst.Set(x, bottom, legLeft)
		dst.Set(x+w-1, bottom, legRight)
	} else {
		dst.Set(x, bottom, legRight)
		dst.Set(x+w-1, bottom, legLeft)
	}
}

func drawObstacle(dst *core.Screen, vp viewport, o dino.Obstacle) {
	x, y, w, h := vp.cells(o.Rect())

	switch o.Kind {
	case dino.GroundHazard:
		dst.PaintRect(x, y, w, h, core.Green)
		dst.SetPen(core.DarkGreen)
		for i := 0; i < o.Spikes && i < h; i++ {
			row := y + i*h/o.Spikes
			if i%2 == 0 {
				dst.Set(x-1, row, spikeLeft)
			} else {
				dst.Set(x+w, row, spikeRight)
			}
		}
	case dino.FlyingHazard:
		dst.PaintRect(x, y, w, h, core.Gray)
		wing := wingUp
		if math.Sin(o.WingPhase) < 0 {
			wing = wingDown
		}
		dst.SetPen(core.Black)
		dst.Set(x+w/2, y, wing)
		dst.SetPen(core.Orange)
		dst.Set(x+w, y+h/2, beakChar)
	}
}

func drawHUD(dst *core.Screen, f dino.Frame, text core.RGB) {
	dst.SetPen(text)
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", f.Score))
	dst.DrawText(1, 1, fmt.Sprintf("High Score: %d", f.HighScore))
	dst.DrawText(1, 2, fmt.Sprintf("Speed: %.1f", f.Speed))

	if dst.Width() >= len(controlsHint)+24 {
		dst.DrawText(dst.Width()-len(controlsHint)-1, 0, controlsHint)
	}
}

func drawGameOver(dst *core.Screen, f dino.Frame) {
	// Half-transparent black overlay
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			c := dst.GetCell(x, y)
			dst.Paint(x, y, c.Bg.Scale(0.5))
		}
	}

	mid := dst.Height() / 2
	dst.SetPen(core.White)
	if boxW := len(restartPrompt) + 4; dst.Width() >= boxW && dst.Height() >= 9 {
		dst.DrawBox((dst.Width()-boxW)/2, mid-4, boxW, 9)
	}
	dst.DrawTextCentered(mid-3, "GAME OVER")
	dst.DrawTextCentered(mid-1, fmt.Sprintf("Final Score: %d", f.Score))
	if f.NewHighScore {
		dst.SetPen(core.Orange)
		dst.DrawTextCentered(mid+1, "NEW HIGH SCORE!")
		dst.SetPen(core.White)
	}
	dst.DrawTextCentered(mid+3, restartPrompt)
}

