package window

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/dino"
)

const (
	bigText   = 16
	smallText = 10

	controlsHint = "SPACE: Jump | C: Duck"
)

// painter draws frames with vector shapes and the HUD font.
type painter struct {
	font  *text.GoTextFaceSource
	white *ebiten.Image // 1x1 source for filled polygons

	vs []ebiten.Vertex
	is []uint16
}

func newPainter() (*painter, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)

	return &painter{
		font:  src,
		white: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}, nil
}

func rgba(c core.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func (p *painter) drawFrame(dst *ebiten.Image, f dino.Frame) {
	dst.Fill(rgba(f.Sky))

	p.drawGround(dst, f)
	p.drawActor(dst, f)
	for _, o := range f.Obstacles {
		switch o.Kind {
		case dino.GroundHazard:
			p.drawCactus(dst, o)
		case dino.FlyingHazard:
			p.drawBird(dst, o)
		}
	}

	if f.GameOver {
		p.drawGameOver(dst, f)
		return
	}
	p.drawHUD(dst, f)
}

func (p *painter) drawGround(dst *ebiten.Image, f dino.Frame) {
	w := float32(f.World.W)
	ground := float32(f.Ground)
	vector.DrawFilledRect(dst, 0, ground, w, float32(f.World.Bottom())-ground, rgba(core.Brown), false)

	if f.TileWidth > 0 {
		for x := f.GroundOffset; x < f.World.W; x += f.TileWidth {
			fx := float32(x)
			vector.StrokeLine(dst, fx, ground, fx+10, ground+5, 2, rgba(core.Black), true)
		}
	}

	for _, d := range f.Particles {
		a := uint8(50 * core.ClampF(d.Fade(), 0, 1))
		c := color.RGBA{R: core.Brown.R + a, G: core.Brown.G + a, B: core.Brown.B + a, A: 0xff}
		vector.DrawFilledCircle(dst, float32(d.X), float32(d.Y), 2, c, true)
	}
}

func (p *painter) drawActor(dst *ebiten.Image, f dino.Frame) {
	r := f.Actor
	x, y := float32(r.X), float32(r.Y)
	w, h := float32(r.W), float32(r.H)
	green := rgba(core.Green)
	dark := rgba(core.DarkGreen)

	eyeY := y + 8
	if f.Pose == dino.PoseDucking {
		cx, cy := r.Center()
		p.fillEllipse(dst, cx, cy, r.W/2, r.H/2, green)
		eyeY = y + 5
	} else {
		vector.DrawFilledRect(dst, x, y, w, h, green, false)
		const head = 15.0
		p.fillEllipse(dst, r.Right()-head/2, r.Y, head/2, head/2, green)
	}
	vector.DrawFilledCircle(dst, x+w-8, eyeY, 2, rgba(core.Black), true)

	if f.Pose == dino.PoseRunning {
		leg := float32(math.Sin(f.AnimPhase) * 3)
		feet := y + h
		vector.StrokeLine(dst, x+10, feet, x+8+leg, feet+15, 3, dark, true)
		vector.StrokeLine(dst, x+20, feet, x+22-leg, feet+15, 3, dark, true)
	}

	mid := r.Y + r.H/2
	p.fillPolygon(dst, dark,
		r.X, mid,
		r.X-10, mid-5,
		r.X-8, mid+5,
	)
}

func (p *painter) drawCactus(dst *ebiten.Image, o dino.Obstacle) {
	r := o.Rect()
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(core.Green), false)

	if o.Spikes <= 0 {
		return
	}
	dark := rgba(core.DarkGreen)
	for i := 0; i < o.Spikes; i++ {
		sy := r.Y + float64(i)*r.H/float64(o.Spikes)
		p.fillPolygon(dst, dark, r.X-3, sy, r.X-8, sy+5, r.X-3, sy+10)
		p.fillPolygon(dst, dark, r.Right()+3, sy+5, r.Right()+8, sy+10, r.Right()+3, sy+15)
	}
}

func (p *painter) drawBird(dst *ebiten.Image, o dino.Obstacle) {
	r := o.Rect()
	cx, cy := r.Center()
	p.fillEllipse(dst, cx, cy, r.W/2, r.H/2, rgba(core.Gray))

	flap := math.Sin(o.WingPhase) * 5
	black := rgba(core.Black)
	p.fillEllipse(dst, r.X-1, r.Y+10+flap, 4, 5, black)
	p.fillEllipse(dst, r.Right()+1, r.Y+10-flap, 4, 5, black)

	mid := r.Y + r.H/2
	p.fillPolygon(dst, rgba(core.Orange),
		r.Right(), mid,
		r.Right()+8, mid-2,
		r.Right()+8, mid+2,
	)
}

func (p *painter) drawHUD(dst *ebiten.Image, f dino.Frame) {
	fg := rgba(f.Sky.Contrast())
	p.text(dst, fmt.Sprintf("Score: %d", f.Score), bigText, 10, 10, fg, text.AlignStart)
	p.text(dst, fmt.Sprintf("High Score: %d", f.HighScore), smallText, 10, 50, fg, text.AlignStart)
	p.text(dst, fmt.Sprintf("Speed: %.1f", f.Speed), smallText, 10, 75, fg, text.AlignStart)
	p.text(dst, controlsHint, smallText, f.World.W-10, 10, fg, text.AlignEnd)
}

func (p *painter) drawGameOver(dst *ebiten.Image, f dino.Frame) {
	vector.DrawFilledRect(dst, 0, 0, float32(f.World.W), float32(f.World.H), color.RGBA{A: 128}, false)

	cx, cy := f.World.Center()
	white := rgba(core.White)
	p.text(dst, "GAME OVER", bigText, cx, cy-60, white, text.AlignCenter)
	p.text(dst, fmt.Sprintf("Final Score: %d", f.Score), bigText, cx, cy-20, white, text.AlignCenter)
	if f.NewHighScore {
		p.text(dst, "NEW HIGH SCORE!", smallText, cx, cy+10, rgba(core.Orange), text.AlignCenter)
	}
	p.text(dst, "Press SPACE to restart", bigText, cx, cy+40, white, text.AlignCenter)
}

// text draws s with its top edge at y; align decides which end x anchors.
func (p *painter) text(dst *ebiten.Image, s string, size, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(dst, s, &text.GoTextFace{Source: p.font, Size: size}, op)
}

// fillEllipse approximates an ellipse with a polygon.
func (p *painter) fillEllipse(dst *ebiten.Image, cx, cy, rx, ry float64, clr color.RGBA) {
	const segments = 24
	pts := make([]float64, 0, segments*2)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		pts = append(pts, cx+rx*math.Cos(a), cy+ry*math.Sin(a))
	}
	p.fillPolygon(dst, clr, pts...)
}

// fillPolygon fills the closed polygon given as x, y pairs.
func (p *painter) fillPolygon(dst *ebiten.Image, clr color.RGBA, xy ...float64) {
	if len(xy) < 6 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(xy[0]), float32(xy[1]))
	for i := 2; i+1 < len(xy); i += 2 {
		path.LineTo(float32(xy[i]), float32(xy[i+1]))
	}
	path.Close()

	p.vs, p.is = path.AppendVerticesAndIndicesForFilling(p.vs[:0], p.is[:0])
	r, g, b, a := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff, float32(clr.A)/0xff
	for i := range p.vs {
		p.vs[i].SrcX, p.vs[i].SrcY = 1, 1
		p.vs[i].ColorR, p.vs[i].ColorG, p.vs[i].ColorB, p.vs[i].ColorA = r, g, b, a
	}
	dst.DrawTriangles(p.vs, p.is, p.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
