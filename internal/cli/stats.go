package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show database statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := s.Stats(cmd.Context(), getDBPath())
	if err != nil {
		exitErr("stats", err)
	}

	if !textOutput() {
		printJSON(cmd.OutOrStdout(), stats)
		return
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s (%s)\n", stats.DBPath, humanize.Bytes(uint64(stats.DBSizeBytes)))
	fmt.Fprintf(w, "%d notes, %d favorites, %d tags\n", stats.TotalNotes, stats.Favorites, stats.Tags)
	if stats.Checklist.Total > 0 {
		fmt.Fprintf(w, "checklists: %d/%d done\n", stats.Checklist.Checked, stats.Checklist.Total)
	}
	for _, c := range stats.Categories {
		fmt.Fprintf(w, "  %-20s %d\n", c.Category, c.Count)
	}
}
