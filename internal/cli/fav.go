package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "fav [id]",
		Short: "Toggle a note's favorite mark",
		Args:  cobra.ExactArgs(1),
		Run:   runFav,
	}

	RootCmd.AddCommand(cmd)
}

func runFav(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	n, err := s.ToggleFavorite(cmd.Context(), args[0])
	if err != nil {
		exitErr("fav", err)
	}
	printJSON(cmd.OutOrStdout(), n)
}
