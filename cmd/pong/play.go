package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a local two-player game in this terminal.

Controls:
  W/S        - Player 1 up/down
  Up/Down    - Player 2 up/down
  Esc        - Settings menu
  Tab        - Focus the settings panel
  Ctrl+R     - Reset the score
  Ctrl+H     - Match history
  Ctrl+S     - Screenshot
  Ctrl+C     - Quit

Each terminal cell is 8x16 playfield pixels; the board is sized to the
terminal when the game starts.

Examples:
  pong play
  pong play --seed 42
  pong play --config ./my-pong.yaml --log-file pong.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	// Logs would corrupt the alt screen, so they only go to --log-file
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := loadConfig(logger)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	} else {
		defer store.Close()
	}

	runErr := tui.Run(tui.Options{
		Config:  cfg,
		Runtime: tui.SessionRuntime(width, height, cfg.Delay(), flagSeed),
		Store:   store,
		Logger:  logger,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
