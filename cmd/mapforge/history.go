package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mapforge/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent processing runs",
	Long: `Display the most recent processing runs recorded in the history
database, newest first.

Examples:
  mapforge history
  mapforge history --limit 5
  mapforge history --db ./history.db`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Maximum number of runs to show")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'mapforge process <input> <output>' to process a map.")
		return
	}

	fmt.Printf("  %-16s  %-24s  %-11s  %-6s  %s\n", "Date", "Input", "Size", "Buffer", "Land %")
	fmt.Printf("  %-16s  %-24s  %-11s  %-6s  %s\n", "----", "-----", "----", "------", "------")

	for _, r := range runs {
		total := r.WaterCells + r.ShallowCells + r.LandCells
		landPct := 0.0
		if total > 0 {
			landPct = float64(r.LandCells) / float64(total) * 100
		}
		fmt.Printf("  %-16s  %-24s  %-11s  %-6d  %.1f\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			truncate(r.InputPath, 24),
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.ShallowBuffer,
			landPct)
	}
}

// truncate shortens a path to fit a column, keeping the tail end since the
// file name matters more than the leading directories.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n+3:]
}
