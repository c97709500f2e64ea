package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/button-smasher/internal/core"
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "Show the difficulty tuning table",
	Long: `List fall speed and spawn policy for every difficulty, as loaded
from the active configuration.

Example:
  smasher difficulties --config ./configs/smasher.yaml`,
	Args: cobra.NoArgs,
	Run:  runDifficulties,
}

func runDifficulties(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	fmt.Println("Difficulties:")
	fmt.Println()
	fmt.Printf("  %-8s  %-6s  %-9s  %-7s  %-7s  %s\n", "Name", "Speed", "Spawn", "Double", "Burst", "Burst size")
	fmt.Printf("  %-8s  %-6s  %-9s  %-7s  %-7s  %s\n", "----", "-----", "-----", "------", "-----", "----------")
	for _, d := range core.Difficulties {
		t := cfg.Difficulties.For(d)
		burstSize := "-"
		if t.BurstChance > 0 {
			burstSize = fmt.Sprintf("%d", t.BurstSize)
		}
		fmt.Printf("  %-8s  %-6g  %-9s  %-7s  %-7s  %s\n",
			d, t.FallSpeed, fmt.Sprintf("%d-%d", t.SpawnMin, t.SpawnMax),
			percent(t.DoubleChance), percent(t.BurstChance), burstSize)
	}
	fmt.Println()
	fmt.Println("Speed is playfield units per tick; spawn is ticks between batches.")
}

func percent(p float64) string {
	if p == 0 {
		return "-"
	}
	return fmt.Sprintf("%.0f%%", p*100)
}
