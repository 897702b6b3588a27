package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

var (
	flagSimTicks   uint64
	flagSimDelay   time.Duration
	flagSimTimeout time.Duration
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game",
	Long: `Run the game without any display for a fixed number of ticks.

Nobody moves the paddles, so the run shows how the serve, bounces and
scoring play out for a given seed and config. Every point is logged and
the final score is printed. Simulated matches are not saved.

Examples:
  pong sim --ticks 5000 --seed 42
  pong sim --ticks 100000 --delay 0s --timeout 10s
  pong sim --config ./fast.toml --debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagSimTicks, "ticks", 5000, "Number of ticks to run")
	simCmd.Flags().DurationVar(&flagSimDelay, "delay", time.Millisecond, "Delay between ticks (0 = config delay)")
	simCmd.Flags().DurationVar(&flagSimTimeout, "timeout", time.Minute, "Stop after this long (0 = no limit)")
}

func runSim(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := loadConfig(logger)

	rt := core.DefaultConfig()
	rt.Seed = flagSeed
	rt.Delay = flagSimDelay
	if rt.Delay <= 0 {
		rt.Delay = cfg.Delay()
	}

	game, err := pong.New(cfg, rt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if flagSimTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagSimTimeout)
		defer cancel()
	}

	loop := pong.NewLoop(game, nil, rt.Delay)
	logger.Debug("simulation started", "ticks", flagSimTicks, "delay", rt.Delay, "seed", flagSeed)

	runErr := loop.RunTicks(ctx, flagSimTicks, func(res pong.TickResult) {
		if res.Scorer != pong.NoPlayer {
			logger.Info("point scored", "tick", game.Ticks(), "scorer", res.Scorer, "score", game.ScoreText())
		}
	})
	if runErr != nil {
		logger.Warn("simulation stopped early", "error", runErr, "ticks", game.Ticks())
	}

	fmt.Printf("%s after %d ticks\n", game.ScoreText(), game.Ticks())
}
