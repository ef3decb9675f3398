package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadrush/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the game config as YAML after applying the config search order
and the difficulty preset. The output is a valid --config file.

Config search order:
  1. --config path
  2. ~/.roadrush/configs/road.yaml
  3. ./configs/road.yaml
  4. built-in defaults

Examples:
  roadrush config > my-road.yaml
  roadrush config --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	addTuningFlags(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadTuning()
	if err != nil {
		logger.Error("invalid game config", "error", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		logger.Error("cannot encode config", "error", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
