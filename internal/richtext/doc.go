// Package richtext implements the formatted document model behind the note
// editor.
//
// A Document is an ordered sequence of runes, each carrying an Attrs record.
// Offsets and lengths are 0-based rune counts. A Selection is an ordered set of
// half-open ranges [Start, Start+Len) over those offsets.
//
// Every operation is a pure function of (Document, Selection) returning a new
// Document and the Selection the caller should restore. Inputs are never
// mutated.
//
// Lines are not stored. They are recomputed from the text on demand, and list
// markers ("• ", "1. ", "☐ ", "☑ ") are ordinary text at the start of a line.
package richtext
