package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Click a checklist box",
		Long:  "Toggle the checkbox at rune offset --at. The offset must fall on the two marker characters of a checklist line.",
		Run:   runCheck,
	}

	cmd.Flags().String("id", "", "Note ID (required)")
	cmd.Flags().Int("at", 0, "Rune offset of the click")

	cmd.MarkFlagRequired("id")

	RootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")
	at, _ := cmd.Flags().GetInt("at")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sess := openSession(cmd, s, id)
	toggled, err := sess.ClickCheckbox(cmd.Context(), at)
	if err != nil {
		exitErr("check", err)
	}
	if !toggled {
		exitErr("check", fmt.Errorf("no checkbox at offset %d", at))
	}
	finishSession(cmd, sess)
	writeEditResult(cmd, sess)
}
