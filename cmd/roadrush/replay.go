package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadrush/internal/audio"
	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/games/road"
	"github.com/vovakirdan/roadrush/internal/replay"
)

var (
	flagMaxFrames int
	flagVerbose   bool
	flagShow      bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded run",
	Long: `Play back a run recorded with 'roadrush play --record' without a
terminal and print its outcome. The recorded seed, config and inputs fully
determine the run, so the result matches the original.

Examples:
  roadrush replay run.rrr
  roadrush replay run.rrr --frames 600 --verbose
  roadrush replay run.rrr --screen`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().IntVar(&flagMaxFrames, "frames", 0, "Stop after this many frames (0 = all)")
	replayCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log sound cues and state changes")
	replayCmd.Flags().BoolVar(&flagShow, "screen", false, "Print the last frame as text")
}

func runReplay(_ *cobra.Command, args []string) {
	opts := replay.Options{MaxFrames: flagMaxFrames}

	if flagVerbose {
		l := log.NewWithOptions(os.Stderr, log.Options{Prefix: "replay", Level: log.DebugLevel})
		opts.Audio = audio.NewLogSink(l)

		var prev road.Snapshot
		opts.OnFrame = func(frame int, snap road.Snapshot) {
			if snap.Score != prev.Score || snap.Health != prev.Health || snap.Lost != prev.Lost {
				l.Debug("state", "frame", frame, "score", snap.Score, "health", snap.Health, "lost", snap.Lost)
			}
			prev = snap
		}
	}

	if flagShow {
		opts.Screen = core.NewScreen(80, 24)
	}

	res, err := replay.PlayFile(args[0], opts)
	if err != nil {
		logger.Error("replay failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Run:    %s\n", res.RunID)
	fmt.Printf("Seed:   %d\n", res.Seed)
	fmt.Printf("Frames: %d\n", res.Frames)
	fmt.Printf("Score:  %d\n", res.Score)
	fmt.Printf("Health: %d\n", res.Health)
	fmt.Printf("Lost:   %t\n", res.Lost)

	if opts.Screen != nil {
		fmt.Println()
		fmt.Println(opts.Screen.String())
	}
}
