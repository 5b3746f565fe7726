// Package cli implements the inkwell CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rcliao/inkwell/internal/config"
	"github.com/rcliao/inkwell/internal/editor"
	"github.com/rcliao/inkwell/internal/richtext"
	"github.com/rcliao/inkwell/internal/store"
	"github.com/spf13/cobra"
)

var (
	dbPath     string
	formatFlag string
	verbose    bool

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "inkwell",
	Short: "Rich-text notes in your terminal",
	Long:  "A local note keeper with bold, headings, lists and checklists. SQLite-backed, single binary.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		}
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $INKWELL_DB or ~/.inkwell/notes.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging on stderr")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("INKWELL_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".inkwell", "notes.db")
}

func openStore() (*store.SQLiteStore, error) {
	logger.Debug("open store", "path", getDBPath())
	return store.NewSQLiteStore(getDBPath())
}

func loadSettings() config.Settings {
	s, err := config.Load(config.DefaultPath())
	if err != nil {
		exitErr("load config", err)
	}
	return s
}

// openSession opens an editor session on note id, with the engine sized from
// the configured font size and writes following the auto-save settings.
// Commands call finishSession once their edit is done.
func openSession(cmd *cobra.Command, s *store.SQLiteStore, id string) *editor.Session {
	settings := loadSettings()
	sess, err := editor.Open(cmd.Context(), s, id,
		editor.WithLogger(logger),
		editor.WithEngine(richtext.NewEngine(settings.FontSize)),
		editor.WithAutoSave(settings.AutoSave, time.Duration(settings.AutoSaveInterval*float64(time.Second))),
	)
	if err != nil {
		exitErr("open note", err)
	}
	return sess
}

// finishSession writes whatever auto-save left pending.
func finishSession(cmd *cobra.Command, sess *editor.Session) {
	if err := sess.Save(cmd.Context()); err != nil {
		exitErr("save note", err)
	}
}

func textOutput() bool {
	return formatFlag == "text"
}

func printJSON(w io.Writer, v interface{}) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(w, string(b))
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// readContent takes content from the positional args, then from piped stdin.
func readContent(args []string) string {
	if len(args) > 0 {
		return strings.Join(args, " ")
	}
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			exitErr("read stdin", err)
		}
		return string(b)
	}
	return ""
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
