package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories, including All Notes and Favorites",
		Run: func(cmd *cobra.Command, args []string) {
			runNames(cmd, "categories", func(ctx context.Context) ([]string, error) {
				s, err := openStore()
				if err != nil {
					exitErr("open store", err)
				}
				defer s.Close()
				return s.Categories(ctx)
			})
		},
	}

	tagsCmd := &cobra.Command{
		Use:   "tags",
		Short: "List every tag in use",
		Run: func(cmd *cobra.Command, args []string) {
			runNames(cmd, "tags", func(ctx context.Context) ([]string, error) {
				s, err := openStore()
				if err != nil {
					exitErr("open store", err)
				}
				defer s.Close()
				return s.Tags(ctx)
			})
		},
	}

	RootCmd.AddCommand(categoriesCmd, tagsCmd)
}

func runNames(cmd *cobra.Command, what string, fetch func(context.Context) ([]string, error)) {
	names, err := fetch(cmd.Context())
	if err != nil {
		exitErr(what, err)
	}
	if textOutput() {
		for _, n := range names {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		return
	}
	if names == nil {
		names = []string{}
	}
	printJSON(cmd.OutOrStdout(), names)
}
