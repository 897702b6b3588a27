package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/window"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagWindowW int
	flagWindowH int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a local two-player game in a desktop window.

The playfield is the viewport minus the configured margins, so the
default 920x700 viewport gives an 800x600 board.

Controls:
  W/S        - Player 1 up/down
  Up/Down    - Player 2 up/down
  Esc        - Settings menu
  F5         - Reset the score

Examples:
  pong window
  pong window --width 1024 --height 768`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	def := core.DefaultConfig()
	windowCmd.Flags().IntVar(&flagWindowW, "width", def.ViewportW, "Viewport width in pixels")
	windowCmd.Flags().IntVar(&flagWindowH, "height", def.ViewportH, "Viewport height in pixels")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := loadConfig(logger)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open match database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	runErr := window.Run(window.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ViewportW: flagWindowW,
			ViewportH: flagWindowH,
			Delay:     cfg.Delay(),
			Seed:      flagSeed,
		},
		Store:  store,
		Logger: logger,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
