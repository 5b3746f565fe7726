package cli

import (
	"strings"

	"github.com/rcliao/inkwell/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "edit [id] [content]",
		Short: "Change a note's metadata or replace its text",
		Long: `Change a note's title, tags, category or color. New content can be given
after the ID or piped via stdin; it replaces the body and drops its formatting.`,
		Args: cobra.MinimumNArgs(1),
		Run:  runEdit,
	}

	cmd.Flags().StringP("title", "T", "", "New title")
	cmd.Flags().StringP("tags", "t", "", "Replace tags (comma-separated, empty string clears)")
	cmd.Flags().StringP("category", "c", "", "New category")
	cmd.Flags().String("color", "", "New color")

	RootCmd.AddCommand(cmd)
}

func runEdit(cmd *cobra.Command, args []string) {
	id := args[0]
	p := store.UpdateParams{ID: id}
	if cmd.Flags().Changed("title") {
		v, _ := cmd.Flags().GetString("title")
		p.Title = &v
	}
	if cmd.Flags().Changed("tags") {
		v, _ := cmd.Flags().GetString("tags")
		tags := splitTags(v)
		p.Tags = &tags
	}
	if cmd.Flags().Changed("category") {
		v, _ := cmd.Flags().GetString("category")
		p.Category = &v
	}
	if cmd.Flags().Changed("color") {
		v, _ := cmd.Flags().GetString("color")
		p.Color = &v
	}
	content := readContent(args[1:])

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	n, err := s.Update(cmd.Context(), p)
	if err != nil {
		exitErr("edit", err)
	}

	if content != "" {
		sess := openSession(cmd, s, id)
		if err := sess.SetText(cmd.Context(), strings.TrimRight(content, "\n")); err != nil {
			exitErr("save content", err)
		}
		finishSession(cmd, sess)
		note := sess.Note()
		n = &note
	}

	printJSON(cmd.OutOrStdout(), n)
}
