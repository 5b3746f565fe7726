package richtext

import "strings"

const (
	uncheckedBox = '☐'
	checkedBox   = '☑'
)

// ToggleCheckboxAt handles a click resolved to rune offset i.
//
// When the click lands on the two-rune checkbox marker at the start of its
// line, the box flips between "☐ " and "☑ " in place, keeping its attributes,
// and ok is true. Otherwise doc is returned unchanged and ok is false so the
// caller can place the caret as usual.
func (e *Engine) ToggleCheckboxAt(doc Document, i int) (out Document, ok bool) {
	if i < 0 || i > doc.Len() {
		return doc, false
	}
	start := lineStart(doc.text, i)
	if i >= start+2 || start+2 > doc.Len() || doc.text[start+1] != ' ' {
		return doc, false
	}

	var flipped rune
	switch doc.text[start] {
	case uncheckedBox:
		flipped = checkedBox
	case checkedBox:
		flipped = uncheckedBox
	default:
		return doc, false
	}

	out = doc.clone()
	out.text[start] = flipped
	return out, true
}

// Checklist summarizes the checkbox lines of d.
type Checklist struct {
	Total   int `json:"total"`
	Checked int `json:"checked"`
}

// CountChecklist counts the lines of d that start with a checkbox marker.
func CountChecklist(d Document) Checklist {
	var c Checklist
	for _, ln := range d.Lines() {
		switch {
		case strings.HasPrefix(ln, CheckedMarker):
			c.Total++
			c.Checked++
		case strings.HasPrefix(ln, UncheckedMarker):
			c.Total++
		}
	}
	return c
}
