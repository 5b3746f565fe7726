package exchange

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/rcliao/inkwell/internal/model"
)

// NoteFileName returns the file name of a single-note package.
func NoteFileName(title string) string {
	name := strings.TrimSpace(title)
	if name == "" {
		name = "Untitled"
	}
	name = strings.NewReplacer(" ", "_", "/", "_", `\`, "_").Replace(name)
	return name + NoteExt
}

// NotesFileName returns the file name of a multi-note package exported at t.
func NotesFileName(t time.Time) string {
	return "YouNotes_" + t.Format("2006-01-02") + NotesExt
}

// WriteNote writes a single-note package into dir and returns its path.
func WriteNote(dir string, n model.Note, f Format) (string, error) {
	var buf bytes.Buffer
	if err := EncodeNote(&buf, n, f); err != nil {
		return "", err
	}
	return writeFile(filepath.Join(dir, withExt(NoteFileName(n.Title), f)), buf.Bytes())
}

// WriteNotes writes a multi-note package into dir and returns its path.
func WriteNotes(dir string, notes []model.Note, now time.Time, f Format) (string, error) {
	var buf bytes.Buffer
	if err := EncodeNotes(&buf, notes, f); err != nil {
		return "", err
	}
	return writeFile(filepath.Join(dir, withExt(NotesFileName(now), f)), buf.Bytes())
}

func withExt(name string, f Format) string {
	if f == FormatYAML {
		return name + ".yaml"
	}
	return name
}

func writeFile(path string, data []byte) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// ReadFiles decodes every package matching pattern, which may use doublestar
// globs such as "backups/**/*.ynote". Files are read in sorted order and the
// notes of all files are concatenated.
func ReadFiles(pattern string) ([]model.Note, []string, error) {
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("no files match %q", pattern)
	}
	sort.Strings(paths)

	var notes []model.Note
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, nil, err
		}
		got, err := Decode(data, FormatForPath(p))
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", p, err)
		}
		notes = append(notes, got...)
	}
	return notes, paths, nil
}
