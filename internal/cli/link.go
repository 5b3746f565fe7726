package cli

import (
	"github.com/rcliao/inkwell/internal/richtext"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Link text in a note",
		Long: `Attach a URL to the selected range of a note. With a caret (a bare offset)
the title, or the URL itself, is inserted there as linked text.`,
		Run: runLink,
	}

	cmd.Flags().String("id", "", "Note ID (required)")
	cmd.Flags().StringP("url", "u", "", "Link target (required)")
	cmd.Flags().StringP("range", "r", "", "Selection, e.g. 4:10 or 12 (required)")
	cmd.Flags().String("title", "", "Text to insert at a caret")

	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("url")
	cmd.MarkFlagRequired("range")

	RootCmd.AddCommand(cmd)
}

func runLink(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")
	url, _ := cmd.Flags().GetString("url")
	rangeStr, _ := cmd.Flags().GetString("range")
	title, _ := cmd.Flags().GetString("title")

	sel, err := richtext.ParseSelection(rangeStr)
	if err != nil {
		exitErr("link", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sess := openSession(cmd, s, id)
	sess.Select(sel)
	if err := sess.InsertLink(cmd.Context(), url, title); err != nil {
		exitErr("link", err)
	}
	finishSession(cmd, sess)
	writeEditResult(cmd, sess)
}
