package cli

import (
	"fmt"
	"strings"

	"github.com/rcliao/inkwell/internal/editor"
	"github.com/rcliao/inkwell/internal/richtext"
	"github.com/spf13/cobra"
)

type editResult struct {
	ID        string `json:"id"`
	Selection string `json:"selection"`
	Content   string `json:"content"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Apply a formatting operation to a note",
		Long: fmt.Sprintf(`Apply a formatting operation to ranges of a note and save it.

Ops: %s
Ranges are rune offsets written START:LEN, comma-separated; a bare START is a caret.`,
			strings.Join(richtext.OpNames(), ", ")),
		Run: runFormat,
	}

	cmd.Flags().String("id", "", "Note ID (required)")
	cmd.Flags().String("op", "", "Operation (required)")
	cmd.Flags().StringP("range", "r", "", "Selection, e.g. 0:5,12:3 (required)")

	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("op")
	cmd.MarkFlagRequired("range")

	RootCmd.AddCommand(cmd)
}

func runFormat(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")
	opName, _ := cmd.Flags().GetString("op")
	rangeStr, _ := cmd.Flags().GetString("range")

	op, err := richtext.ParseOp(opName)
	if err != nil {
		exitErr("format", err)
	}
	sel, err := richtext.ParseSelection(rangeStr)
	if err != nil {
		exitErr("format", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sess := openSession(cmd, s, id)
	sess.Select(sel)
	if err := sess.Apply(cmd.Context(), op); err != nil {
		exitErr("format", err)
	}
	finishSession(cmd, sess)
	writeEditResult(cmd, sess)
}

func writeEditResult(cmd *cobra.Command, sess *editor.Session) {
	if textOutput() {
		fmt.Fprintln(cmd.OutOrStdout(), sess.Document().String())
		return
	}
	printJSON(cmd.OutOrStdout(), editResult{
		ID:        sess.Note().ID,
		Selection: sess.Selection().String(),
		Content:   sess.Document().String(),
	})
}
