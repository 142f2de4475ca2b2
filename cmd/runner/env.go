package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Environment variables that provide flag defaults.
const (
	envConfig     = "RUNNER_CONFIG"
	envDB         = "RUNNER_DB"
	envDifficulty = "RUNNER_DIFFICULTY"
	envFPS        = "RUNNER_FPS"
)

// loadDotEnv reads ./.env if present. Variables already set win.
func loadDotEnv() {
	err := godotenv.Load()
	if err == nil {
		logger.Debug("loaded environment from .env")
		return
	}
	if !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("could not read .env", "err", err)
	}
}

// envString copies the variable into dst unless the flag was set explicitly.
func envString(cmd *cobra.Command, flag, key string, dst *string) {
	if cmd.Flags().Changed(flag) {
		return
	}
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

// envInt is envString for integer flags.
func envInt(cmd *cobra.Command, flag, key string, dst *int) error {
	if cmd.Flags().Changed(flag) {
		return nil
	}
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}
