package richtext

// ApplyHeading sets every non-empty range of sel to heading level (1-3), or to
// body text for level 0.
//
// A range already uniformly at the level's size and weight is reset to body
// text instead. Headings replace size, weight and slant; underline, links and
// checkbox tags survive. Levels outside 0-3 are a no-op.
func (e *Engine) ApplyHeading(doc Document, sel Selection, level int) (Document, Selection) {
	sel = sel.Normalize(doc.Len())
	if level < 0 || level >= len(headingSizes) {
		return doc, sel
	}
	size := HeadingSize(level, e.BaseSize)
	bold := level > 0

	out := doc.clone()
	for _, r := range sel {
		if r.IsEmpty() {
			continue
		}
		matches := allSet(out, r, func(a Attrs) bool {
			return e.effectiveSize(a) == size && a.Bold == bold
		})
		for i := r.Start; i < r.End(); i++ {
			a := out.attrs[i]
			a.Italic = false
			if matches {
				a.Size, a.Bold = e.BaseSize, false
			} else {
				a.Size, a.Bold = size, bold
			}
			out.attrs[i] = a
		}
	}
	return out, sel
}
