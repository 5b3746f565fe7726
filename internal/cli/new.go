package cli

import (
	"fmt"
	"strings"

	"github.com/rcliao/inkwell/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "new [content]",
		Short: "Create a note",
		Long:  "Create a note. Content can be a positional arg or piped via stdin.",
		Run:   runNew,
	}

	cmd.Flags().StringP("title", "T", "", "Title (default: Untitled)")
	cmd.Flags().StringP("tags", "t", "", "Comma-separated tags")
	cmd.Flags().StringP("category", "c", "", "Category (default: default_category setting)")
	cmd.Flags().String("color", "", "Color: blue, green, red, yellow, purple")
	cmd.Flags().Bool("fav", false, "Mark as favorite")

	RootCmd.AddCommand(cmd)
}

func runNew(cmd *cobra.Command, args []string) {
	title, _ := cmd.Flags().GetString("title")
	tagsStr, _ := cmd.Flags().GetString("tags")
	category, _ := cmd.Flags().GetString("category")
	color, _ := cmd.Flags().GetString("color")
	fav, _ := cmd.Flags().GetBool("fav")

	content := strings.TrimRight(readContent(args), "\n")
	if category == "" {
		category = loadSettings().DefaultCategory
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	n, err := s.Create(cmd.Context(), store.CreateParams{
		Title:    title,
		Content:  content,
		Tags:     splitTags(tagsStr),
		Category: category,
		Favorite: fav,
		Color:    color,
	})
	if err != nil {
		exitErr("new", err)
	}

	if textOutput() {
		fmt.Fprintln(cmd.OutOrStdout(), n.ID)
		return
	}
	printJSON(cmd.OutOrStdout(), n)
}
