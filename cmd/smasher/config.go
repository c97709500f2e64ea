package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/button-smasher/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the config
file search and every flag override, as YAML.

The output is a complete config file and can be edited and saved to
~/.smasher/config.yaml.

Examples:
  smasher config
  smasher config --fall-speed hard=18 > ~/.smasher/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}
	if err := writeConfig(cmd.OutOrStdout(), cfg); err != nil {
		fatal("writing config: %v", err)
	}
}

func writeConfig(w io.Writer, cfg config.Config) error {
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
