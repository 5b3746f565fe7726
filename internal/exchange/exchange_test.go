package exchange

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rcliao/inkwell/internal/model"
)

var created = time.Date(2025, 3, 2, 10, 30, 0, 123456789, time.UTC)

func sampleNote() model.Note {
	return model.Note{
		ID:        "01JNOTE",
		Title:     "Trip plan",
		Content:   "☐ Pack\n☑ Book hotel",
		Styled:    []byte(`{"v":1}`),
		Tags:      []string{"travel"},
		Category:  "Personal",
		Favorite:  true,
		Color:     "green",
		CreatedAt: created,
		UpdatedAt: created.Add(time.Hour),
	}
}

func TestEncodeNoteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeNote(&buf, sampleNote(), FormatJSON); err != nil {
		t.Fatalf("encode: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`"title": "Trip plan"`,
		`"isFavorite": true`,
		`"createdAt": "2025-03-02T10:30:00Z"`,
		`"updatedAt": "2025-03-02T11:30:00Z"`,
		`"color": "green"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in output:\n%s", want, out)
		}
	}
	for _, unwanted := range []string{"01JNOTE", `"v":1`, "styled"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("did not expect %q in output", unwanted)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			notes := []model.Note{sampleNote(), {Title: "Second", Content: "body", Category: "Work", Color: "blue"}}
			if err := EncodeNotes(&buf, notes, f); err != nil {
				t.Fatalf("encode: %v", err)
			}

			got, err := Decode(buf.Bytes(), f)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(got) != 2 {
				t.Fatalf("expected 2 notes, got %d", len(got))
			}
			n := got[0]
			if n.ID != "" || n.Styled != nil {
				t.Error("expected no id or styled content after decode")
			}
			if n.Title != "Trip plan" || n.Content != "☐ Pack\n☑ Book hotel" || !n.Favorite || n.Color != "green" {
				t.Errorf("fields lost: %+v", n)
			}
			if !n.CreatedAt.Equal(created.Truncate(time.Second)) {
				t.Errorf("created_at: got %v", n.CreatedAt)
			}
			if len(n.Tags) != 1 || n.Tags[0] != "travel" {
				t.Errorf("tags: got %v", n.Tags)
			}
		})
	}
}

func TestDecodeSingleNote(t *testing.T) {
	in := `{"title":"Solo","content":"x","tags":[],"category":"Uncategorized","isFavorite":false,
		"createdAt":"2025-03-02T10:00:00Z","updatedAt":"2025-03-02T10:00:00Z","color":"blue"}`
	got, err := Decode([]byte(in), FormatJSON)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Solo" {
		t.Errorf("unexpected notes: %+v", got)
	}

	yamlIn := "title: Solo\ncontent: x\ncolor: red\n"
	got, err = Decode([]byte(yamlIn), FormatYAML)
	if err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if len(got) != 1 || got[0].Color != "red" {
		t.Errorf("unexpected notes: %+v", got)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode([]byte("[]"), FormatJSON); !errors.Is(err, ErrEmptyPackage) {
		t.Errorf("expected ErrEmptyPackage, got %v", err)
	}
	if _, err := Decode([]byte(""), FormatYAML); !errors.Is(err, ErrEmptyPackage) {
		t.Errorf("expected ErrEmptyPackage for empty yaml, got %v", err)
	}
	if _, err := Decode([]byte("{nope"), FormatJSON); err == nil {
		t.Error("expected error for malformed json")
	}
	if _, err := Decode([]byte("title: [unclosed"), FormatYAML); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestFileNames(t *testing.T) {
	if got := NoteFileName("Trip plan"); got != "Trip_plan.ynote" {
		t.Errorf("got %q", got)
	}
	if got := NoteFileName("  "); got != "Untitled.ynote" {
		t.Errorf("got %q", got)
	}
	if got := NoteFileName("a/b"); got != "a_b.ynote" {
		t.Errorf("got %q", got)
	}
	if got := NotesFileName(created); got != "YouNotes_2025-03-02.ynotes" {
		t.Errorf("got %q", got)
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatJSON, "JSON": FormatJSON, "yml": FormatYAML, "yaml": FormatYAML} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for xml")
	}
	if FormatForPath("x.ynotes") != FormatJSON || FormatForPath("x.ynote.YAML") != FormatYAML {
		t.Error("FormatForPath mismatch")
	}
}

func TestWriteAndReadFiles(t *testing.T) {
	dir := t.TempDir()

	single, err := WriteNote(filepath.Join(dir, "one"), sampleNote(), FormatJSON)
	if err != nil {
		t.Fatalf("write note: %v", err)
	}
	if filepath.Base(single) != "Trip_plan.ynote" {
		t.Errorf("unexpected file %s", single)
	}

	multi, err := WriteNotes(filepath.Join(dir, "nested", "two"), []model.Note{sampleNote(), sampleNote()}, created, FormatYAML)
	if err != nil {
		t.Fatalf("write notes: %v", err)
	}
	if filepath.Base(multi) != "YouNotes_2025-03-02.ynotes.yaml" {
		t.Errorf("unexpected file %s", multi)
	}
	if _, err := os.Stat(multi); err != nil {
		t.Fatal(err)
	}

	notes, paths, err := ReadFiles(filepath.Join(dir, "**", "*.{ynote,yaml}"))
	if err != nil {
		t.Fatalf("read files: %v", err)
	}
	if len(paths) != 2 {
		t.Errorf("expected 2 files, got %v", paths)
	}
	if len(notes) != 3 {
		t.Errorf("expected 3 notes, got %d", len(notes))
	}

	if _, _, err := ReadFiles(filepath.Join(dir, "*.missing")); err == nil {
		t.Error("expected error when nothing matches")
	}
}
