package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/homebound/internal/platform/tui"
	"github.com/vovakirdan/homebound/internal/registry"
	"github.com/vovakirdan/homebound/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [map]",
	Short: "Show run history",
	Long: `Display the best runs for a map, or a summary of every map when no map
is given.

Runs are ranked by outcome (won first), then tasks done, then remaining
happiness, then time taken. Abandoned runs only show up with --recent.

Examples:
  homebound scores
  homebound scores apartment
  homebound scores apartment --recent
  homebound scores apartment --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history of the map")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer closeHistory(store)

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		return printSummary(out, store)
	}

	mapID := args[0]
	if !registry.Exists(mapID) {
		return fmt.Errorf("unknown map %q (run 'homebound list' to see available maps)", mapID)
	}
	game, err := registry.Create(mapID)
	if err != nil {
		return err
	}

	if flagScoresClear {
		if err := store.ClearRuns(mapID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Run history of %s cleared.\n", game.Title())
		return nil
	}

	heading := "Best Runs"
	runs, err := store.BestRuns(mapID, flagScoresLimit)
	if flagScoresRecent {
		heading = "Recent Runs"
		runs, err = store.RecentRuns(mapID, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s - %s\n\n", heading, game.Title())

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'homebound play %s' to record the first one!\n", mapID)
		return nil
	}

	printRuns(out, runs)

	stats, err := store.MapStats(mapID)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%d runs, %d won, average happiness %.0f\n", stats.Runs, stats.Wins, stats.AvgHappiness)
	}
	return nil
}

// printRuns renders runs as a plain text table.
func printRuns(out io.Writer, runs []storage.Run) {
	fmt.Fprintf(out, "  %-4s  %-7s  %-5s  %-5s  %-6s  %s\n", "Rank", "Outcome", "Tasks", "Happy", "Time", "When")
	fmt.Fprintf(out, "  %-4s  %-7s  %-5s  %-5s  %-6s  %s\n", "----", "-------", "-----", "-----", "----", "----")
	for i, r := range runs {
		row := tui.RunRow(i+1, r)
		fmt.Fprintf(out, "  %-4s  %-7s  %-5s  %-5s  %-6s  %s\n", row[0], row[1], row[2], row[3], row[4], row[5])
	}
}

// printSummary lists every registered map with its totals.
func printSummary(out io.Writer, store *storage.Store) error {
	all, err := store.AllMapStats()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Run History")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-16s  %-5s  %-4s  %-10s  %s\n", "Map", "Runs", "Won", "Best tasks", "Last played")
	for _, m := range registry.List() {
		s, ok := all[m.ID]
		if !ok {
			fmt.Fprintf(out, "  %-16s  %-5d  %-4d  %-10s  %s\n", m.Title, 0, 0, "-", "never")
			continue
		}
		last := "never"
		if !s.LastPlayed.IsZero() {
			last = humanize.RelTime(s.LastPlayed, time.Now(), "ago", "from now")
		}
		fmt.Fprintf(out, "  %-16s  %-5d  %-4d  %-10d  %s\n", m.Title, s.Runs, s.Wins, s.BestTasks, last)
	}
	return nil
}
