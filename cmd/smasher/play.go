package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/button-smasher/internal/audio"
	"github.com/vovakirdan/button-smasher/internal/config"
	"github.com/vovakirdan/button-smasher/internal/core"
	"github.com/vovakirdan/button-smasher/internal/games/smasher"
	"github.com/vovakirdan/button-smasher/internal/observe"
	"github.com/vovakirdan/button-smasher/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Button Smasher",
	Long: `Start the game in the current terminal.

Controls:
  Left/H        - Left lane
  Up/K          - Down-arrow lane
  Down/J        - Up-arrow lane
  Right/L       - Right lane
  Enter/S       - Start
  C             - Credits
  1/2/3         - Easy / Normal / Hard
  R / M         - Retry / Menu (after game over)
  Esc/B         - Back
  Q             - Quit (from the menu)
  Ctrl+S        - Screenshot (text and PNG)
  Ctrl+C        - Quit from anywhere
  Mouse         - Click buttons, drag credits portraits

Examples:
  smasher play
  smasher play --seed 42 --mute
  smasher play --backend sqlite --scores ~/.smasher/scores.db
  smasher play --metrics-addr :9090`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}
	sheet := loadAssets()

	logFile, err := openLogFile()
	if err != nil {
		fatal("opening log file: %v", err)
	}
	defer logFile.Close()
	logger := newLogger(logFile, "smasher")

	keeper, err := openKeeper(cfg.Highscores, logger)
	if err != nil {
		fatal("opening highscores: %v", err)
	}

	sounds := openAudio(cfg.Audio, logger)
	defer sounds.Close()

	obs := startObservability(cfg.Observe, logger)
	defer obs.shutdown(logger)

	width, height := 80, 42
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	opts := tui.Options{
		Config: cfg,
		Sheet:  sheet,
		Keeper: keeper,
		Sounds: sounds,
		Logger: logger,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		SessionID: observe.LocalSession,
	}
	if obs != nil {
		opts.Observer = obs.metrics
		opts.Publisher = obs.hub
	}

	logger.Info("game started", "backend", cfg.Highscores.Backend, "seed", flagSeed)
	runErr := tui.Run(opts)

	// The record is saved whether the game ended normally or not.
	if err := keeper.Close(); err != nil {
		logger.Error("could not save highscores", "error", err)
		fmt.Fprintf(os.Stderr, "Error saving highscores: %v\n", err)
	}
	if runErr != nil {
		fatal("running game: %v", runErr)
	}
	logger.Info("game ended", "record", keeper.Record())
}

// soundPlayer is a smasher.Sounds that owns an audio device.
type soundPlayer interface {
	smasher.Sounds
	Close()
}

// openAudio opens the speaker. Audio is optional: a missing device is
// logged and the game runs silent.
func openAudio(cfg config.AudioConfig, logger *log.Logger) soundPlayer {
	if !cfg.Enabled {
		return audio.Nop{}
	}
	p, err := audio.New(cfg)
	if err != nil {
		logger.Warn("audio unavailable", "error", err)
		return audio.Nop{}
	}
	return p
}
