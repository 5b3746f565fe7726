package cli

import (
	"strings"

	"github.com/rcliao/inkwell/internal/model"
	"github.com/rcliao/inkwell/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search notes by keyword",
		Long:  "Search note titles, content and tags for matching text, ignoring case.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}

	cmd.Flags().StringP("category", "c", model.AllNotes, "Category, \"All Notes\" or \"Favorites\"")
	cmd.Flags().StringP("tag", "t", "", "Only notes with this tag")
	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	category, _ := cmd.Flags().GetString("category")
	tag, _ := cmd.Flags().GetString("tag")
	limit, _ := cmd.Flags().GetInt("limit")
	query := strings.Join(args, " ")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	results, err := s.List(cmd.Context(), store.ListParams{
		Category: category,
		Tag:      tag,
		Query:    query,
		Limit:    limit,
	})
	if err != nil {
		exitErr("search", err)
	}

	writeNotes(cmd.OutOrStdout(), results)
}
