// Package exchange reads and writes portable note packages.
//
// A single-note package holds one record, a multi-note package an array of
// them. Only plain text travels; styled attributes stay in the local store.
package exchange

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rcliao/inkwell/internal/model"
)

const (
	NoteExt  = ".ynote"
	NotesExt = ".ynotes"
)

// ErrEmptyPackage is returned when a package holds no notes.
var ErrEmptyPackage = errors.New("package contains no notes")

// NoteData is the portable record of a note.
type NoteData struct {
	Title      string    `json:"title" yaml:"title"`
	Content    string    `json:"content" yaml:"content"`
	Tags       []string  `json:"tags" yaml:"tags"`
	Category   string    `json:"category" yaml:"category"`
	IsFavorite bool      `json:"isFavorite" yaml:"isFavorite"`
	CreatedAt  time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" yaml:"updatedAt"`
	Color      string    `json:"color" yaml:"color"`
}

// FromNote converts a note to its portable record. Timestamps are truncated to
// whole seconds so the output is plain ISO-8601.
func FromNote(n model.Note) NoteData {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return NoteData{
		Title:      n.Title,
		Content:    n.Content,
		Tags:       tags,
		Category:   n.Category,
		IsFavorite: n.Favorite,
		CreatedAt:  n.CreatedAt.UTC().Truncate(time.Second),
		UpdatedAt:  n.UpdatedAt.UTC().Truncate(time.Second),
		Color:      n.Color,
	}
}

// ToNote converts a portable record back to a note without an ID.
func (d NoteData) ToNote() model.Note {
	return model.Note{
		Title:     d.Title,
		Content:   d.Content,
		Tags:      d.Tags,
		Category:  d.Category,
		Favorite:  d.IsFavorite,
		Color:     d.Color,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// Format is a package encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown package format %q (valid: json, yaml)", s)
}

// FormatForPath picks the encoding from a file extension. Package extensions
// and anything unknown are JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// EncodeNote writes a single-note package.
func EncodeNote(w io.Writer, n model.Note, f Format) error {
	return encode(w, FromNote(n), f)
}

// EncodeNotes writes a multi-note package.
func EncodeNotes(w io.Writer, notes []model.Note, f Format) error {
	records := make([]NoteData, len(notes))
	for i, n := range notes {
		records[i] = FromNote(n)
	}
	return encode(w, records, f)
}

func encode(w io.Writer, v interface{}, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}

// Decode reads either package shape.
func Decode(data []byte, f Format) ([]model.Note, error) {
	var records []NoteData
	var err error
	switch f {
	case FormatYAML:
		records, err = decodeYAML(data)
	default:
		records, err = decodeJSON(data)
	}
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyPackage
	}

	notes := make([]model.Note, len(records))
	for i, r := range records {
		notes[i] = r.ToNote()
	}
	return notes, nil
}

func decodeJSON(data []byte) ([]NoteData, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []NoteData
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("parse json package: %w", err)
		}
		return records, nil
	}
	var record NoteData
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return nil, fmt.Errorf("parse json package: %w", err)
	}
	return []NoteData{record}, nil
}

func decodeYAML(data []byte) ([]NoteData, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parse yaml package: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var records []NoteData
		if err := root.Decode(&records); err != nil {
			return nil, fmt.Errorf("parse yaml package: %w", err)
		}
		return records, nil
	}
	var record NoteData
	if err := root.Decode(&record); err != nil {
		return nil, fmt.Errorf("parse yaml package: %w", err)
	}
	return []NoteData{record}, nil
}
