package main

import (
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-runner/internal/audio/device"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/platform/tui"
	"github.com/vovakirdan/dino-runner/internal/platform/window"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

var (
	flagWindow bool
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the runner",
	Long: `Start a run in this terminal, or in a desktop window with --window.

Controls:
  Space/Up/W   - Jump
  C/Down/S     - Duck (hold in a window, tap repeatedly in a terminal)
  R/Enter      - Restart after game over
  Ctrl+S       - Save a text screenshot (terminal only)
  Q/Esc        - Quit

Difficulty options:
  easy   - Slower start and longer gaps
  normal - The classic pace
  hard   - Fast start and tight gaps
  fixed  - No speed ramp

Examples:
  runner play
  runner play --difficulty easy
  runner play --window --mute
  runner play --config ./my-runner.yaml --db ~/.arcade/runs.db`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, preset, err := loadGameConfig(cmd)
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	// Terminal size; the window frontend ignores it
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	volume := 1.0
	if flagMute {
		volume = 0
	}
	sound := device.Open(logger, volume)
	if sp, ok := sound.(*device.Speaker); ok {
		defer sp.Close()
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if flagWindow {
		return window.Run(window.Options{
			Config:     cfg,
			Runtime:    rt,
			Difficulty: string(preset),
			Sound:      sound,
			Store:      store,
			Logger:     logger,
			Player:     playerName(),
		})
	}
	return tui.Run(tui.Options{
		Config:     cfg,
		Runtime:    rt,
		Difficulty: string(preset),
		Sound:      sound,
		Store:      store,
		Logger:     logger,
		Player:     playerName(),
	})
}

// openStore opens the run history when --db is set. Failures leave history off.
func openStore() *storage.Store {
	if flagDBPath == "" {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history, continuing without it", "err", err)
		return nil
	}
	return store
}

// playerName is the local account name recorded with each run.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}
