package richtext

// ToggleStyle flips a binary style over every non-empty range of sel.
//
// A range whose runes all carry the style is cleared; any other range, mixed
// or clear, is set. Bold and italic are toggled independently so clearing one
// never touches the other. Carets are ignored.
func (e *Engine) ToggleStyle(doc Document, sel Selection, s Style) (Document, Selection) {
	sel = sel.Normalize(doc.Len())
	out := doc.clone()
	for _, r := range sel {
		if r.IsEmpty() {
			continue
		}
		on := !allSet(out, r, s.isSet)
		for i := r.Start; i < r.End(); i++ {
			out.attrs[i] = s.with(out.attrs[i], on)
		}
	}
	return out, sel
}

// allSet reports whether pred holds for every run overlapping r.
func allSet(d Document, r Range, pred func(Attrs) bool) bool {
	for i := r.Start; i < r.End(); {
		if !pred(d.attrs[i]) {
			return false
		}
		// skip to the next run boundary
		j := i + 1
		for j < r.End() && d.attrs[j] == d.attrs[i] {
			j++
		}
		i = j
	}
	return true
}
