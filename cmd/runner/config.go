package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-runner/internal/config"
)

var (
	flagConfig     string
	flagDifficulty string
)

// addGameFlags registers the flags shared by commands that build a game config.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadGameConfig resolves the config file and preset from flags and environment.
func loadGameConfig(cmd *cobra.Command) (config.RunnerConfig, config.DifficultyPreset, error) {
	envString(cmd, "config", envConfig, &flagConfig)
	envString(cmd, "difficulty", envDifficulty, &flagDifficulty)

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RunnerConfig{}, "", err
	}

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, "", err
	}
	config.ApplyRunnerPreset(&cfg, preset)
	if preset == "" {
		preset = config.DifficultyNormal
	}

	logger.Debug("config loaded", "path", flagConfig, "difficulty", preset,
		"speed", cfg.Difficulty.BaseSpeed, "spawn_delay", cfg.Difficulty.SpawnDelay)
	return cfg, preset, nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective runner configuration",
	Long: `Print the configuration a game would start with, after the config
search path and difficulty preset are applied. The output is valid YAML and
can be saved as a starting point for a custom config.

Examples:
  runner config
  runner config --difficulty hard > ~/.arcade/configs/runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addGameFlags(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadGameConfig(cmd)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		for _, p := range config.Presets() {
			fmt.Printf("  %-8s %s\n", p, p.Describe())
		}
	},
}
