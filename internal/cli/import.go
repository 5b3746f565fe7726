package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rcliao/inkwell/internal/exchange"
	"github.com/rcliao/inkwell/internal/model"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import [pattern]",
		Short: "Import notes from package files",
		Long: `Import notes from .ynote/.ynotes packages. The pattern may use ** globs,
e.g. "backups/**/*.ynote*". Without a pattern the package is read from stdin.
Imported notes get fresh IDs.`,
		Args: cobra.MaximumNArgs(1),
		Run:  runImport,
	}

	cmd.Flags().String("encoding", "json", "Encoding of stdin input: json or yaml")

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	encoding, _ := cmd.Flags().GetString("encoding")

	var notes []model.Note
	if len(args) == 1 {
		got, paths, err := exchange.ReadFiles(args[0])
		if err != nil {
			exitErr("import", err)
		}
		logger.Debug("read packages", "files", paths)
		notes = got
	} else {
		f, err := exchange.ParseFormat(encoding)
		if err != nil {
			exitErr("import", err)
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			exitErr("read stdin", err)
		}
		notes, err = exchange.Decode(data, f)
		if err != nil {
			exitErr("import", err)
		}
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	imported, err := s.Import(cmd.Context(), notes)
	if err != nil {
		exitErr("import", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"imported":%d}`+"\n", len(imported))
}
