// roadrush is a terminal dodging game: steer the car, collect coins, avoid
// obstacles while the road keeps speeding up.
//
// Usage:
//
//	roadrush play            - Play a run in this terminal
//	roadrush serve           - Start SSH server for remote play
//	roadrush scores          - Show high scores
//	roadrush replay <file>   - Re-simulate a recorded run
//	roadrush config          - Print the effective game config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.roadrush/scores.db)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadrush/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string

	// Tuning flags shared by play, serve and config
	flagConfig     string
	flagDifficulty string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "roadrush"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roadrush",
	Short: "Road Rush - dodge and collect in your terminal",
	Long: `Road Rush is a single-lane arcade game for the terminal.

Steer your car up and down, grab coins for points and avoid obstacles.
Every five seconds the road gets faster. Buffs make you invulnerable or
slow the road down for ten seconds. Five hits and the run is over.

Available commands:
  play     - Play a run
  serve    - Start SSH server for remote play
  scores   - View high scores
  replay   - Re-simulate a recorded run
  config   - Print the effective config

Examples:
  roadrush play
  roadrush play --difficulty hard --record run.rrr
  roadrush serve --ssh :2222
  roadrush replay run.rrr`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.roadrush/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// addTuningFlags registers --config and --difficulty on cmd.
func addTuningFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadTuning resolves the game config from the tuning flags.
func loadTuning() (config.RoadConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RoadConfig{}, err
	}
	cfg, err := config.LoadRoad(flagConfig)
	if err != nil {
		return config.RoadConfig{}, err
	}
	config.ApplyRoadPreset(&cfg, preset)
	return cfg, nil
}
