// runner is an endless side-scrolling dinosaur game for the terminal,
// a desktop window, or SSH.
//
// Usage:
//
//	runner play              - Play in this terminal
//	runner play --window     - Play in a desktop window
//	runner serve             - Start SSH server for remote play
//	runner scores            - Show the run history
//	runner config            - Print the effective configuration
//	runner presets           - List difficulty presets
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Record runs in this database
//	--log-level <level> - debug, info, warn or error
//
// Flags not given on the command line fall back to RUNNER_* variables,
// which may also come from a .env file in the working directory.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Dino Runner - jump and duck past an endless stream of obstacles",
	Long: `Dino Runner is an endless runner: jump over cacti, duck under birds,
and survive as the world speeds up.

Available commands:
  play     - Play in the terminal or a desktop window
  serve    - Start SSH server for remote play
  scores   - View the run history
  config   - Print the effective configuration
  presets  - List difficulty presets

Examples:
  runner play
  runner play --window --difficulty hard
  runner play --db ~/.arcade/runs.db
  runner serve --ssh :2222
  runner scores --db ~/.arcade/runs.db`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (history is off when empty)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(presetsCmd)
}

// setup loads the environment and configures logging before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	loadDotEnv()

	envString(cmd, "db", envDB, &flagDBPath)
	if err := envInt(cmd, "fps", envFPS, &flagFPS); err != nil {
		return err
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	return nil
}
