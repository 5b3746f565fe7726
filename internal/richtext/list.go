package richtext

// ListKind is the target of a list toggle.
type ListKind = MarkerKind

const (
	ListBullet   = MarkerBullet
	ListNumbered = MarkerNumbered
	ListCheckbox = MarkerCheckbox
)

// ToggleList adds or removes list markers line by line over the first range
// of sel. Other ranges are not edited; those after the first are shifted by
// the change in length.
//
// If any line of the range already starts with a marker of kind, every line
// loses its markers. Otherwise each non-blank line has its existing markers of
// any kind replaced with a new one of kind. Stacked markers such as "• 1. "
// are removed together. Numbering restarts at 1 for the
// range and counts blank lines. Runes keep their attributes when markers
// shift them.
func (e *Engine) ToggleList(doc Document, sel Selection, kind ListKind) (Document, Selection) {
	sel = sel.Normalize(doc.Len())
	first, ok := sel.First()
	if !ok || first.IsEmpty() || kind == MarkerNone {
		return doc, sel
	}

	seg := doc.Slice(first.Start, first.End())
	lines := splitLines(seg.text)

	remove := false
	for _, ln := range lines {
		if DetectMarker(string(seg.text[ln.start:ln.end])) == kind {
			remove = true
			break
		}
	}

	markerAttrs := e.BodyAttrs()
	if kind == MarkerCheckbox {
		markerAttrs.Checkbox = true
	}

	var b builder
	for idx, ln := range lines {
		text := string(seg.text[ln.start:ln.end])
		offset := listMarkerRunes(text)
		body := ln.end - ln.start - offset

		switch {
		case remove:
			e.project(&b, seg, ln.start+offset, body)
		case body == 0:
			b.appendFrom(seg, ln.start, ln.end)
		default:
			b.appendString(kind.prefix(idx+1), markerAttrs)
			e.project(&b, seg, ln.start+offset, body)
		}

		if idx < len(lines)-1 {
			b.append(seg.text[ln.end], seg.AttrsAt(ln.end, e.BodyAttrs()))
		}
	}

	rebuilt := b.doc()
	out := doc.Replace(first.Start, first.End(), rebuilt)

	delta := rebuilt.Len() - first.Len
	next := sel.shiftAfter(first.End(), delta)
	next[0] = Range{Start: first.Start, Len: rebuilt.Len()}
	return out, next
}

// project copies n runes of seg starting at from, falling back to body
// attributes for any offset past the end of seg.
func (e *Engine) project(b *builder, seg Document, from, n int) {
	for i := 0; i < n; i++ {
		j := from + i
		if j >= seg.Len() {
			break
		}
		b.append(seg.text[j], seg.AttrsAt(j, e.BodyAttrs()))
	}
}
