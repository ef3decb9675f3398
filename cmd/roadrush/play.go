package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/games/road"
	"github.com/vovakirdan/roadrush/internal/platform/tui"
	"github.com/vovakirdan/roadrush/internal/replay"
	"github.com/vovakirdan/roadrush/internal/storage"
)

var (
	flagRecord  string
	flagLogFile string
	flagHold    time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run in this terminal.

Controls:
  Up/W       - Steer up
  Down/S     - Steer down
  P/Esc      - Pause
  N/R        - Restart
  Q/Ctrl+C   - Quit

Terminals only report key presses, so a steering key counts as held while
it keeps auto-repeating (see --hold).

Difficulty options:
  easy   - Slower road, gentler speed-ups
  normal - Config values as is
  hard   - Faster road, steeper speed-ups, at most 3 health
  fixed  - The road never speeds up

Examples:
  roadrush play
  roadrush play --difficulty easy
  roadrush play --config ./my-road.yaml
  roadrush play --seed 42 --record run.rrr`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addTuningFlags(playCmd)
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record the run inputs to this replay file")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write the game log to this file")
	playCmd.Flags().DurationVar(&flagHold, "hold", tui.DefaultHoldWindow, "How long a steering key stays held after a key repeat")
}

func runPlay(_ *cobra.Command, _ []string) {
	game, err := loadTuning()
	if err != nil {
		logger.Error("invalid game config", "error", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := tui.Options{
		Config: game,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     seed,
		},
		HoldWindow: flagHold,
		RunID:      uuid.New(),
	}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logger.Error("cannot open log file", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		opts.Logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "roadrush",
			Level:           log.DebugLevel,
		})
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}
	opts.Store = store

	var rec *replay.Recorder
	if flagRecord != "" {
		rec, err = replay.Create(flagRecord, replay.Header{
			RunID:     opts.RunID.String(),
			Seed:      seed,
			Config:    game,
			CreatedAt: time.Now(),
		})
		if err != nil {
			logger.Error("cannot start recording", "error", err)
			os.Exit(1)
		}
		opts.Recorder = rec
	}

	state, runErr := tui.Run(opts)

	if rec != nil {
		if err := rec.Close(); err != nil {
			logger.Warn("replay incomplete", "error", err)
		} else if n := rec.Dropped(); n > 0 {
			logger.Warn("replay dropped frames and will not play back", "dropped", n)
		} else {
			logger.Info("replay saved", "file", flagRecord)
		}
	}

	if runErr != nil {
		logger.Error("error running game", "error", runErr)
		os.Exit(1)
	}

	fmt.Printf("Score: %d  Health: %d  Seed: %d\n", state.Score, state.Health, seed)
	if store != nil {
		if best, err := store.HighScore(road.ID); err == nil && best > 0 {
			fmt.Printf("Best: %d\n", best)
		}
	}
}
