package richtext

// Document is an ordered sequence of (rune, Attrs) pairs.
//
// The zero value is an empty document. Documents are values: operations return
// fresh copies and never alias the backing arrays of their inputs.
type Document struct {
	text  []rune
	attrs []Attrs
}

// Run is a maximal span of text sharing identical attributes.
type Run struct {
	Text  string `json:"t"`
	Attrs Attrs  `json:"a"`
}

// New returns a document holding text with every rune set to a.
func New(text string, a Attrs) Document {
	rs := []rune(text)
	as := make([]Attrs, len(rs))
	for i := range as {
		as[i] = a
	}
	return Document{text: rs, attrs: as}
}

// FromRuns concatenates runs into a document.
func FromRuns(runs []Run) Document {
	var b builder
	for _, r := range runs {
		b.appendString(r.Text, r.Attrs)
	}
	return b.doc()
}

func (d Document) Len() int { return len(d.text) }

func (d Document) String() string { return string(d.text) }

// At returns the rune and attributes at i. It panics if i is out of range.
func (d Document) At(i int) (rune, Attrs) {
	return d.text[i], d.attrs[i]
}

// AttrsAt returns the attributes at i, or fallback when i is out of range.
func (d Document) AttrsAt(i int, fallback Attrs) Attrs {
	if i < 0 || i >= len(d.attrs) {
		return fallback
	}
	return d.attrs[i]
}

// Runs groups the document into attribute runs.
func (d Document) Runs() []Run {
	var runs []Run
	start := 0
	for i := 1; i <= len(d.text); i++ {
		if i == len(d.text) || d.attrs[i] != d.attrs[start] {
			runs = append(runs, Run{Text: string(d.text[start:i]), Attrs: d.attrs[start]})
			start = i
		}
	}
	return runs
}

// Slice returns a copy of [start, end). Bounds are clamped.
func (d Document) Slice(start, end int) Document {
	start = clampInt(start, 0, len(d.text))
	end = clampInt(end, start, len(d.text))
	var b builder
	b.appendFrom(d, start, end)
	return b.doc()
}

// Replace returns a copy of d with [start, end) replaced by repl.
func (d Document) Replace(start, end int, repl Document) Document {
	start = clampInt(start, 0, len(d.text))
	end = clampInt(end, start, len(d.text))
	var b builder
	b.grow(len(d.text) - (end - start) + repl.Len())
	b.appendFrom(d, 0, start)
	b.appendFrom(repl, 0, repl.Len())
	b.appendFrom(d, end, len(d.text))
	return b.doc()
}

// Equal reports whether d and o hold the same text with the same attributes.
func (d Document) Equal(o Document) bool {
	if len(d.text) != len(o.text) {
		return false
	}
	for i := range d.text {
		if d.text[i] != o.text[i] || d.attrs[i] != o.attrs[i] {
			return false
		}
	}
	return true
}

func (d Document) clone() Document {
	return Document{
		text:  append([]rune(nil), d.text...),
		attrs: append([]Attrs(nil), d.attrs...),
	}
}

// builder accumulates runes and attributes into a new Document.
type builder struct {
	text  []rune
	attrs []Attrs
}

func (b *builder) grow(n int) {
	if n <= 0 {
		return
	}
	b.text = make([]rune, 0, n)
	b.attrs = make([]Attrs, 0, n)
}

func (b *builder) append(r rune, a Attrs) {
	b.text = append(b.text, r)
	b.attrs = append(b.attrs, a)
}

func (b *builder) appendString(s string, a Attrs) {
	for _, r := range s {
		b.append(r, a)
	}
}

func (b *builder) appendFrom(d Document, start, end int) {
	b.text = append(b.text, d.text[start:end]...)
	b.attrs = append(b.attrs, d.attrs[start:end]...)
}

func (b *builder) doc() Document {
	return Document{text: b.text, attrs: b.attrs}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
