package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/button-smasher/internal/core"
	"github.com/vovakirdan/button-smasher/internal/platform/tui"
	"github.com/vovakirdan/button-smasher/internal/storage"
)

var (
	flagHistory     bool
	flagInteractive bool
	flagLimit       int
	flagDifficulty  string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best scores",
	Long: `Display the best score for each difficulty.

With the sqlite backend every finished run is recorded; --history lists
the most recent runs with per-difficulty statistics.

Examples:
  smasher scores
  smasher scores --backend sqlite --history
  smasher scores --backend sqlite --history --difficulty hard
  smasher scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagHistory, "history", false, "List recent runs (sqlite backend)")
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "With --history, list the best runs of one difficulty")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	store, err := storage.Open(cfg.Highscores)
	if err != nil {
		fatal("opening highscores: %v", err)
	}
	defer store.Close()

	record, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	sql, hasHistory := store.(*storage.SQLStore)

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		var runs tui.RunLister
		if hasHistory {
			runs = sql
		}
		if err := tui.RunScoreboard(record, runs, width, height); err != nil {
			fatal("running scoreboard: %v", err)
		}
		return
	}

	fmt.Println("High Scores - Button Smasher")
	fmt.Println()
	fmt.Printf("  %-10s  %s\n", "Difficulty", "Best")
	fmt.Printf("  %-10s  %s\n", "----------", "----")
	for _, d := range core.Difficulties {
		fmt.Printf("  %-10s  %d\n", d, record.Get(d))
	}

	if !flagHistory {
		return
	}
	fmt.Println()
	if !hasHistory {
		fmt.Println("Run history is only kept by the sqlite backend (--backend sqlite).")
		return
	}
	printHistory(sql)
}

func printHistory(sql *storage.SQLStore) {
	fmt.Printf("  %-10s  %-5s  %-8s  %s\n", "Difficulty", "Runs", "Average", "Last played")
	fmt.Printf("  %-10s  %-5s  %-8s  %s\n", "----------", "----", "-------", "-----------")
	for _, d := range core.Difficulties {
		st, err := sql.Stats(d)
		if err != nil {
			fatal("reading stats: %v", err)
		}
		last := "-"
		if !st.LastPlayed.IsZero() {
			last = st.LastPlayed.Local().Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-10s  %-5d  %-8.1f  %s\n", d, st.Runs, st.AvgScore, last)
	}

	runs, err := historyRuns(sql, flagDifficulty, flagLimit)
	if err != nil {
		fatal("reading runs: %v", err)
	}
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'smasher play --backend sqlite' to record the first run!")
		return
	}
	fmt.Printf("  %-16s  %-10s  %s\n", "Date", "Difficulty", "Score")
	fmt.Printf("  %-16s  %-10s  %s\n", "----", "----------", "-----")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-10s  %d\n", r.PlayedAt.Local().Format("2006-01-02 15:04"), r.Difficulty, r.Score)
	}
}

// historyRuns lists recent runs, or the top runs of one difficulty when a
// name is given.
func historyRuns(sql *storage.SQLStore, difficulty string, limit int) ([]storage.Run, error) {
	if difficulty == "" {
		return sql.RecentRuns(limit)
	}
	d, err := core.ParseDifficultyFold(difficulty)
	if err != nil {
		return nil, err
	}
	return sql.TopRuns(d, limit)
}
