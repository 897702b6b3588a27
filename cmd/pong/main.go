// pong is a two-player Pong game for the terminal, a desktop window or an
// SSH server.
//
// Usage:
//
//	pong play      - Play in this terminal
//	pong window    - Play in a desktop window
//	pong serve     - Start SSH server; every session plays its own game
//	pong history   - Show recent matches
//	pong sim       - Run a headless game for a number of ticks
//	pong config    - Print the default configuration
//
// Global flags:
//
//	--config <path>    - Game config file (YAML or TOML)
//	--seed <value>     - Set RNG seed for reproducible serves
//	--db <path>        - Set database path (default: ~/.pong/matches.db)
//	--log-file <path>  - Write logs to a file
//	--debug            - Log debug events
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - two players, one keyboard",
	Long: `Pong is the classic two-player paddle game.

Player 1 moves the left paddle with W/S, player 2 the right paddle with
the arrow keys. Escape opens the settings menu.

Available commands:
  play     - Play in this terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  history  - Show recent matches
  sim      - Run a headless game
  config   - Print the default configuration

Examples:
  pong play
  pong play --config ./pong.toml
  pong window --width 1024 --height 768
  pong serve --ssh :2222
  pong history --limit 5`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/matches.db", "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug events")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger. Output goes to --log-file if set, otherwise
// to fallback. The returned close function releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// loadConfig loads the game config or exits.
func loadConfig(logger *log.Logger) config.PongConfig {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", "source", source)
	return cfg
}
