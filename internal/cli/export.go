package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rcliao/inkwell/internal/exchange"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export notes to a package file",
		Long: `Export one note (--id) as a .ynote package, or every note as a
YouNotes_<date>.ynotes package. Without --dir the package is written to stdout.`,
		Run: runExport,
	}

	cmd.Flags().String("id", "", "Export only this note")
	cmd.Flags().String("dir", "", "Directory to write the package into")
	cmd.Flags().String("encoding", "json", "Package encoding: json or yaml")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")
	dir, _ := cmd.Flags().GetString("dir")
	encoding, _ := cmd.Flags().GetString("encoding")

	f, err := exchange.ParseFormat(encoding)
	if err != nil {
		exitErr("export", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if id != "" {
		n, err := s.Get(cmd.Context(), id)
		if err != nil {
			exitErr("export", err)
		}
		if dir == "" {
			if err := exchange.EncodeNote(os.Stdout, *n, f); err != nil {
				exitErr("export", err)
			}
			return
		}
		path, err := exchange.WriteNote(dir, *n, f)
		if err != nil {
			exitErr("export", err)
		}
		logger.Info("exported note", "id", id, "path", path)
		fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"exported":1,"path":%q}`+"\n", path)
		return
	}

	notes, err := s.ExportAll(cmd.Context())
	if err != nil {
		exitErr("export", err)
	}
	if dir == "" {
		if err := exchange.EncodeNotes(os.Stdout, notes, f); err != nil {
			exitErr("export", err)
		}
		return
	}
	path, err := exchange.WriteNotes(dir, notes, time.Now(), f)
	if err != nil {
		exitErr("export", err)
	}
	logger.Info("exported notes", "count", len(notes), "path", path)
	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"exported":%d,"path":%q}`+"\n", len(notes), path)
}
