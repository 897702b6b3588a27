package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryTable bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent matches",
	Long: `Display recent matches and win totals.

A match is saved when the score is reset or the game quits, if anyone
scored.

Examples:
  pong history
  pong history --limit 5
  pong history --table
  pong history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of matches to show")
	historyCmd.Flags().BoolVar(&flagHistoryTable, "table", false, "Browse the history interactively")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the whole history")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearMatches(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Match history cleared.")
		return
	}

	if flagHistoryTable {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	matches, err := store.RecentMatches(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Match History")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pong play', score a point, then reset or quit to save a match.")
		return
	}

	fmt.Printf("  %-8s  %-9s  %-8s  %-6s  %s\n", "ID", "Score", "Winner", "Ended", "Date")
	fmt.Printf("  %-8s  %-9s  %-8s  %-6s  %s\n", "--", "-----", "------", "-----", "----")

	for _, m := range matches {
		winner := "draw"
		if w := m.Winner(); w != 0 {
			winner = fmt.Sprintf("player %d", w)
		}
		fmt.Printf("  %-8s  %-9s  %-8s  %-6s  %s\n",
			m.ID.String()[:8],
			fmt.Sprintf("%d : %d", m.Player1Score, m.Player2Score),
			winner,
			m.EndReason,
			m.EndedAt.Local().Format("2006-01-02 15:04"),
		)
	}

	fmt.Println()
	if totals, err := store.Totals(); err == nil {
		fmt.Printf("Matches: %d  Player 1: %d  Player 2: %d  Draws: %d\n",
			totals.Matches, totals.Player1Wins, totals.Player2Wins, totals.Draws)
	}
}
