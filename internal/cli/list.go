package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rcliao/inkwell/internal/model"
	"github.com/rcliao/inkwell/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		Long:  `List notes, most recently updated first. Use -c "Favorites" for favorites only.`,
		Run:   runList,
	}

	cmd.Flags().StringP("category", "c", model.AllNotes, "Category, \"All Notes\" or \"Favorites\"")
	cmd.Flags().StringP("tag", "t", "", "Only notes with this tag")
	cmd.Flags().IntP("limit", "l", 0, "Max results (0 = no limit)")
	cmd.Flags().Bool("ids-only", false, "Only output note IDs")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	category, _ := cmd.Flags().GetString("category")
	tag, _ := cmd.Flags().GetString("tag")
	limit, _ := cmd.Flags().GetInt("limit")
	idsOnly, _ := cmd.Flags().GetBool("ids-only")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	notes, err := s.List(cmd.Context(), store.ListParams{
		Category: category,
		Tag:      tag,
		Limit:    limit,
	})
	if err != nil {
		exitErr("list", err)
	}

	if idsOnly {
		for _, n := range notes {
			fmt.Fprintln(cmd.OutOrStdout(), n.ID)
		}
		return
	}
	writeNotes(cmd.OutOrStdout(), notes)
}

// writeNotes prints a note list in the selected output format.
func writeNotes(w io.Writer, notes []model.Note) {
	if !textOutput() {
		if notes == nil {
			notes = []model.Note{}
		}
		printJSON(w, notes)
		return
	}
	for _, n := range notes {
		star := " "
		if n.Favorite {
			star = "★"
		}
		line := fmt.Sprintf("%s %s  %s  [%s]", star, n.ID, n.Title, n.Category)
		if len(n.Tags) > 0 {
			line += "  #" + strings.Join(n.Tags, " #")
		}
		fmt.Fprintf(w, "%s  (%s)\n", line, humanize.Time(n.UpdatedAt))
	}
}
