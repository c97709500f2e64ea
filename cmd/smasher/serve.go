package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/button-smasher/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Button Smasher SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. Best scores are shared: when a
session ends its record is merged into the server's highscores, keeping
the higher score per difficulty, and saved.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.smasher/host_key

Examples:
  smasher serve                           # Listen on :23234 with auto-generated key
  smasher serve --ssh :2222               # Listen on port 2222
  smasher serve --metrics-addr :9090      # Also serve metrics and spectator feed

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}
	sheet := loadAssets()
	logger := newLogger(os.Stderr, "smasher-ssh")

	keeper, err := openKeeper(cfg.Highscores, logger)
	if err != nil {
		fatal("opening highscores: %v", err)
	}

	obs := startObservability(cfg.Observe, logger)

	deps := tui.SSHDeps{
		Game:   cfg,
		Sheet:  sheet,
		Keeper: keeper,
		Logger: logger,
	}
	if obs != nil {
		deps.Observer = obs.metrics
		deps.Publisher = obs.hub
	}

	sshCfg := tui.DefaultSSHServerConfig()
	if flagSSHAddr != "" {
		sshCfg.Address = flagSSHAddr
	}
	if flagIdleTimeout > 0 {
		sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	if flagFPS > 0 {
		sshCfg.TickRate = flagFPS
	}
	sshCfg.HostKeyPath = flagHostKey

	server, err := tui.NewSSHServer(sshCfg, deps)
	if err != nil {
		fatal("creating server: %v", err)
	}

	fmt.Printf("Starting Button Smasher SSH server on %s\n", sshCfg.Address)
	fmt.Println("Connect with:", connectHint(sshCfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	serveErr := server.ListenAndServe()
	obs.shutdown(logger)
	if err := keeper.Close(); err != nil {
		logger.Error("could not save highscores", "error", err)
	}
	if serveErr != nil {
		fatal("server: %v", serveErr)
	}
}

// connectHint returns the ssh command that reaches a server listening on
// addr.
func connectHint(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "ssh " + addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	if port == "22" {
		return "ssh " + host
	}
	return fmt.Sprintf("ssh %s -p %s", host, port)
}
