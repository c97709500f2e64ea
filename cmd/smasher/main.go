// smasher is a four-lane rhythm game for the terminal.
//
// Usage:
//
//	smasher                  - Play (same as "smasher play")
//	smasher play             - Play in the current terminal
//	smasher scores           - Show best scores per difficulty
//	smasher difficulties     - Show the difficulty tuning table
//	smasher serve            - Start SSH server for remote play
//	smasher snapshot         - Render a demo frame to PNG
//	smasher config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>             - Set tick rate (default: 60)
//	--seed <value>           - Set RNG seed for reproducible gameplay
//	--config <path>          - Use a custom config YAML
//	--scores <path>          - Highscore file or database path
//	--backend text|sqlite    - Highscore backend
//	--metrics-addr <addr>    - Serve metrics and the spectator feed
//	--log-file <path>        - Log file for interactive play
//	--mute                   - Disable audio
//	--fall-speed <d>=<v>     - Override a difficulty's fall speed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS         int
	flagSeed        int64
	flagConfig      string
	flagScores      string
	flagBackend     string
	flagMetricsAddr string
	flagLogFile     string
	flagMute        bool
	flagFallSpeeds  []string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "smasher",
	Short: "Button Smasher - hit the arrows as they reach the receptors",
	Long: `Button Smasher is a four-lane rhythm game played in the terminal.

Arrows fall down four lanes. Press the matching key when an arrow
crosses the receptor row to score; every arrow that falls off the
bottom costs one health.

Available commands:
  play          - Play the game (default)
  scores        - View best scores
  difficulties  - Show difficulty tuning
  serve         - Start SSH server for remote play
  snapshot      - Render a demo frame to PNG
  config        - Print the effective configuration

Examples:
  smasher
  smasher play --seed 42
  smasher scores --history
  smasher serve --ssh :2222
  smasher snapshot --phase playing --out frame.png
  smasher config > ~/.smasher/config.yaml`,
	Run: runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagScores, "scores", "", "Highscore file or database path (overrides config)")
	pf.StringVar(&flagBackend, "backend", "", "Highscore backend: text or sqlite (overrides config)")
	pf.StringVar(&flagMetricsAddr, "metrics-addr", "", "Serve metrics and spectator feed on this address")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file for interactive play (default ~/.smasher/smasher.log)")
	pf.BoolVar(&flagMute, "mute", false, "Disable audio")
	pf.StringSliceVar(&flagFallSpeeds, "fall-speed", nil, "Override fall speed per difficulty, e.g. hard=18 (repeatable)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(difficultiesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(configCmd)
}

// fatal prints an error and exits with status 1.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
