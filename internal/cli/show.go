package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/rcliao/inkwell/internal/model"
	"github.com/rcliao/inkwell/internal/render"
	"github.com/rcliao/inkwell/internal/richtext"
	"github.com/spf13/cobra"
)

type noteView struct {
	model.Note
	Checklist richtext.Checklist `json:"checklist"`
	Runs      []render.RunView   `json:"runs,omitempty"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a note with its formatting",
		Args:  cobra.ExactArgs(1),
		Run:   runShow,
	}

	cmd.Flags().Bool("runs", false, "Include the attribute runs (json only)")

	RootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) {
	withRuns, _ := cmd.Flags().GetBool("runs")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	settings := loadSettings()
	sess := openSession(cmd, s, args[0])
	doc := sess.Document()
	r := render.New(cmd.OutOrStdout(), settings.AccentColor, settings.FontName, settings.FontSize)

	view := noteView{Note: sess.Note(), Checklist: richtext.CountChecklist(doc)}
	if !textOutput() {
		if withRuns {
			view.Runs = r.Runs(doc)
		}
		printJSON(cmd.OutOrStdout(), view)
		return
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, r.Title(view.Title))
	fmt.Fprintf(w, "%s · %s · updated %s\n", view.Category, view.Color, humanize.Time(view.UpdatedAt))
	if view.Checklist.Total > 0 {
		fmt.Fprintf(w, "%d/%d done\n", view.Checklist.Checked, view.Checklist.Total)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, r.Document(doc))
}
