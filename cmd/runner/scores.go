package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-runner/internal/platform/tui"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

var (
	flagLimit  int
	flagPlayer string
	flagPlain  bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best recorded runs. In a terminal this opens an interactive
scoreboard; when output is piped, or with --plain, it prints a table.

Runs are only recorded when a database is given with --db or RUNNER_DB.

Examples:
  runner scores --db ~/.arcade/runs.db
  runner scores --plain --limit 5
  runner scores --player alice
  runner scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show runs by this player")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole run history")
}

func runScores(_ *cobra.Command, _ []string) error {
	if flagDBPath == "" {
		return errors.New("no run history: pass --db or set " + envDB)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		logger.Info("run history cleared", "db", flagDBPath)
		return nil
	}

	interactive := !flagPlain && flagPlayer == "" && term.IsTerminal(int(os.Stdout.Fd()))
	if interactive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	var runs []storage.Run
	if flagPlayer != "" {
		runs, err = store.PlayerRuns(flagPlayer, flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		return err
	}

	fmt.Println("Dino Runner - High Scores")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play --db " + flagDBPath + "' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-8s  %s\n", "Rank", "Player", "Score", "Speed", "Mode", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-8s  %s\n", "----", "------", "-----", "-----", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-8d  %-6.1f  %-8s  %s\n",
			i+1, r.Player, r.Score, r.MaxSpeed, r.Difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.0f\n", stats.Runs, stats.BestScore, stats.AvgScore)
	}
	return nil
}
