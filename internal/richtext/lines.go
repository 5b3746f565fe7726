package richtext

// isLineSeparator reports whether r ends a line.
func isLineSeparator(r rune) bool {
	switch r {
	case '\n', '\r', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// span is a line's extent [start, end) excluding its separator. When
// end < len(text) the separator sits at end.
type span struct {
	start int
	end   int
}

// splitLines returns the lines of text. An empty text is one empty line, and a
// trailing separator yields a trailing empty line.
func splitLines(text []rune) []span {
	lines := make([]span, 0, 4)
	start := 0
	for i, r := range text {
		if isLineSeparator(r) {
			lines = append(lines, span{start: start, end: i})
			start = i + 1
		}
	}
	return append(lines, span{start: start, end: len(text)})
}

// lineStart returns the offset of the first rune of the line containing i.
func lineStart(text []rune, i int) int {
	i = clampInt(i, 0, len(text))
	for i > 0 && !isLineSeparator(text[i-1]) {
		i--
	}
	return i
}

// Lines returns the plain text of every line in d.
func (d Document) Lines() []string {
	spans := splitLines(d.text)
	out := make([]string, len(spans))
	for i, sp := range spans {
		out[i] = string(d.text[sp.start:sp.end])
	}
	return out
}
