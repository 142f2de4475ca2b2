package tui

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/audio"
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/dino"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

// statusTicks is how long a status line stays on screen.
const statusTicks = 120

// Options configures a game model.
type Options struct {
	Config     config.RunnerConfig
	Runtime    core.RuntimeConfig
	Difficulty string // preset name, recorded with each run
	Sound      audio.Sink
	Store      *storage.Store // optional run history
	Logger     *log.Logger
	Player     string
}

// Model is the Bubble Tea model for playing the runner.
type Model struct {
	session  *dino.Session
	screen   *core.Screen
	keys     GameKeyMap
	mapper   *KeyMapper
	help     help.Model
	opts     Options
	input    core.InputFrame
	duck     duckHold
	width    int
	height   int
	status   string
	statusIn int
	runSaved bool
	quitting bool
}

// NewModel creates a game model. A zero seed picks one from the clock.
func NewModel(opts Options) Model {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = opts.Config.World.TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}

	keys := DefaultGameKeyMap()
	rng := rand.New(rand.NewSource(opts.Runtime.Seed))

	m := Model{
		session: dino.NewSession(opts.Config, rng, opts.Sound),
		screen:  core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keys:    keys,
		mapper:  NewKeyMapper(keys),
		help:    help.New(),
		opts:    opts,
		input:   core.NewInputFrame(),
		duck: duckHold{
			window: opts.Config.Input.DuckHoldTicks,
			repeat: opts.Config.Input.DuckRepeatTicks,
		},
		width:   opts.Runtime.ScreenW,
		height:  opts.Runtime.ScreenH,
	}
	m.layout()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.screenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	if m.mapper.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.input.Has(core.ActionDuck) {
		m.duck.press()
	}
	return m, nil
}

// handleTick runs one simulation step with the input gathered since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.duck.tick() {
		m.input.Set(core.ActionDuckRelease)
	}

	res := m.session.Step(m.input)
	if res.Has(core.EventRestart) {
		m.runSaved = false
		m.duck.reset()
	}
	if res.State.GameOver && !m.runSaved {
		m.saveRun(res.State)
		m.runSaved = true
	}

	if m.statusIn > 0 {
		m.statusIn--
		if m.statusIn == 0 {
			m.status = ""
		}
	}

	m.input.Clear()
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// saveRun records the finished run. Failures are logged and otherwise ignored.
func (m *Model) saveRun(st core.GameState) {
	if m.opts.Store == nil || st.Score == 0 {
		return
	}
	_, err := m.opts.Store.SaveRun(storage.Run{
		Player:     m.opts.Player,
		Score:      st.Score,
		Ticks:      m.session.Ticks(),
		MaxSpeed:   m.session.Speed(),
		Difficulty: m.opts.Difficulty,
		Seed:       m.opts.Runtime.Seed,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save run", "err", err)
	}
}

// screenshot writes the current frame as plain text under ~/.arcade/screenshots.
func (m *Model) screenshot() {
	DrawFrame(m.screen, m.session.Frame())

	path, err := saveScreenshot(m.screen, time.Now())
	if err != nil {
		m.opts.Logger.Warn("screenshot failed", "err", err)
		m.setStatus("screenshot failed")
		return
	}
	m.setStatus("saved " + path)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusIn = statusTicks
}

// layout sizes the scene to the space left under the help bar.
func (m *Model) layout() {
	helpLines := lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(max(m.width, 0), max(m.height-helpLines, 0))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawFrame(m.screen, m.session.Frame())
	if m.status != "" {
		m.screen.SetPen(core.White)
		m.screen.DrawText(1, m.screen.Height()-1, m.status)
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Session exposes the underlying game session.
func (m Model) Session() *dino.Session {
	return m.session
}

// saveScreenshot writes the screen as text and returns the file path.
func saveScreenshot(s *core.Screen, now time.Time) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("runner_%s.txt", now.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(s.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
