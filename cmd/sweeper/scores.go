package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/storage"
	"github.com/vovakirdan/tui-sweeper/internal/sweeper"
)

var (
	flagReset  bool
	flagRecent int
	flagGameID string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show best times and win rates",
	Long: `Without arguments, show played/won counts and best time for every
difficulty. With a difficulty key, show its top 10 times.

Examples:
  sweeper scores
  sweeper scores easy
  sweeper scores --recent 20
  sweeper scores --game 0b5c8a52-6f0e-4b1e-9a53-3c1f2e9d7a10
  sweeper scores hard --reset`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete recorded results (for one difficulty if given)")
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 0, "Show the N most recent games, won or lost")
	scoresCmd.Flags().StringVar(&flagGameID, "game", "", "Show one game by its id")
}

func runScores(_ *cobra.Command, args []string) {
	s := loadSettings()

	var d sweeper.Difficulty
	if len(args) == 1 {
		var err error
		if d, err = s.catalog.Lookup(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'sweeper difficulties' to see available difficulties.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagReset:
		err = resetScores(store, d)
	case flagGameID != "":
		err = printGame(os.Stdout, store, flagGameID)
	case flagRecent > 0:
		err = printRecent(os.Stdout, store, flagRecent)
	case d.Key != "":
		err = printBestTimes(store, d)
	default:
		err = printSummary(store, s.catalog)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func resetScores(store *storage.Store, d sweeper.Difficulty) error {
	if err := store.ClearResults(d.Key); err != nil {
		return err
	}
	if d.Key == "" {
		fmt.Println("Cleared all results.")
	} else {
		fmt.Printf("Cleared results for %s.\n", d.Name)
	}
	return nil
}

func printBestTimes(store *storage.Store, d sweeper.Difficulty) error {
	results, err := store.BestTimes(d.Key, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Best Times - %s\n", d)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'sweeper play --difficulty %s' to set the first time!\n", d.Key)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-9s  %-12s  %s\n", "Rank", "Time", "Power-ups", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-9s  %-12s  %s\n", "----", "----", "---------", "------", "----")
	for i, r := range results {
		fmt.Printf("  %-4d  %-6s  %-9d  %-12s  %s\n", i+1, clock(r.ElapsedSecs), r.PowerUpsUsed,
			r.Player, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	st, err := store.Stats(d.Key)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Played: %d  Won: %d  Win rate: %.0f%%\n", st.Played, st.Won, st.WinRate()*100)
	return nil
}

func printSummary(store *storage.Store, catalog sweeper.Catalog) error {
	stats, err := store.AllStats()
	if err != nil {
		return err
	}

	fmt.Printf("  %-10s  %-6s  %-4s  %-8s  %s\n", "Difficulty", "Played", "Won", "Win rate", "Best")
	fmt.Printf("  %-10s  %-6s  %-4s  %-8s  %s\n", "----------", "------", "---", "--------", "----")
	for _, d := range catalog {
		st := stats[d.Key]
		best := "-"
		if st.Won > 0 {
			best = clock(st.BestSecs)
		}
		rate := fmt.Sprintf("%.0f%%", st.WinRate()*100)
		fmt.Printf("  %-10s  %-6d  %-4d  %-8s  %s\n", d.Name, st.Played, st.Won, rate, best)
	}
	return nil
}

func printRecent(w io.Writer, store *storage.Store, limit int) error {
	results, err := store.RecentResults(limit)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-16s  %-10s  %-6s  %-6s  %-12s  %s\n", "Date", "Difficulty", "Result", "Time", "Player", "Game")
	fmt.Fprintf(w, "  %-16s  %-10s  %-6s  %-6s  %-12s  %s\n", "----", "----------", "------", "----", "------", "----")
	for _, r := range results {
		fmt.Fprintf(w, "  %-16s  %-10s  %-6s  %-6s  %-12s  %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Difficulty, r.Status, clock(r.ElapsedSecs), r.Player, r.GameID)
	}
	return nil
}

func printGame(w io.Writer, store *storage.Store, gameID string) error {
	r, err := store.ResultByGameID(gameID)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no game with id %q", gameID)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Game:       %s\n", r.GameID)
	fmt.Fprintf(w, "Difficulty: %s (%dx%d, %d mines)\n", r.Difficulty, r.Rows, r.Cols, r.Mines)
	fmt.Fprintf(w, "Result:     %s in %s\n", r.Status, clock(r.ElapsedSecs))
	fmt.Fprintf(w, "Power-ups:  %d used\n", r.PowerUpsUsed)
	fmt.Fprintf(w, "Player:     %s\n", r.Player)
	fmt.Fprintf(w, "Played:     %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	return nil
}

func clock(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
