// Package window runs the runner in a desktop window with Ebiten.
// The world is drawn at its native resolution and Ebiten scales it to
// whatever size the window is given.
package window

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/dino-runner/internal/audio"
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/dino"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

const title = "Dino Runner"

// Options configures a window game.
type Options struct {
	Config     config.RunnerConfig
	Runtime    core.RuntimeConfig
	Difficulty string
	Sound      audio.Sink
	Store      *storage.Store // optional run history
	Logger     *log.Logger
	Player     string
}

// Game implements ebiten.Game around a runner session.
type Game struct {
	session  *dino.Session
	keys     keyBindings
	input    core.InputFrame
	painter  *painter
	opts     Options
	runSaved bool
}

// NewGame builds a session and loads the HUD font.
func NewGame(opts Options) (*Game, error) {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}

	p, err := newPainter()
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}

	rng := rand.New(rand.NewSource(opts.Runtime.Seed))
	return &Game{
		session: dino.NewSession(opts.Config, rng, opts.Sound),
		keys:    defaultBindings(),
		input:   core.NewInputFrame(),
		painter: p,
		opts:    opts,
	}, nil
}

// Update advances the session by one tick.
func (g *Game) Update() error {
	g.keys.poll(&g.input)
	if g.input.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	res := g.session.Step(g.input)
	g.input.Clear()

	if res.Has(core.EventRestart) {
		g.runSaved = false
	}
	if res.State.GameOver && !g.runSaved {
		g.saveRun(res.State)
		g.runSaved = true
	}
	return nil
}

// Draw paints the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.drawFrame(screen, g.session.Frame())
}

// Layout keeps the logical screen at world size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := g.opts.Config.World
	return int(w.Width), int(w.Height)
}

func (g *Game) saveRun(st core.GameState) {
	if g.opts.Store == nil || st.Score == 0 {
		return
	}
	_, err := g.opts.Store.SaveRun(storage.Run{
		Player:     g.opts.Player,
		Score:      st.Score,
		Ticks:      g.session.Ticks(),
		MaxSpeed:   g.session.Speed(),
		Difficulty: g.opts.Difficulty,
		Seed:       g.opts.Runtime.Seed,
	})
	if err != nil {
		g.opts.Logger.Warn("could not save run", "err", err)
	}
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}

	tps := opts.Runtime.TickRate
	if tps <= 0 {
		tps = opts.Config.World.TickRate
	}
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(int(opts.Config.World.Width), int(opts.Config.World.Height))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
