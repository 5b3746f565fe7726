package richtext

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidLink is returned when a link target cannot be parsed.
var ErrInvalidLink = errors.New("invalid link")

// InsertLink attaches a hyperlink at the first range of sel.
//
// A non-empty range keeps its text and gains the link and an underline. A
// caret inserts title (or the URL itself when title is empty) carrying the
// link, and the returned selection is a caret after the inserted text.
func (e *Engine) InsertLink(doc Document, sel Selection, rawURL, title string) (Document, Selection, error) {
	rawURL = strings.TrimSpace(rawURL)
	u, err := url.Parse(rawURL)
	if rawURL == "" || err != nil || (u.Scheme == "" && u.Host == "") {
		return doc, sel, fmt.Errorf("%w: %q", ErrInvalidLink, rawURL)
	}
	href := u.String()

	sel = sel.Normalize(doc.Len())
	first, ok := sel.First()
	if !ok {
		return doc, sel, nil
	}

	if !first.IsEmpty() {
		out := doc.clone()
		for i := first.Start; i < first.End(); i++ {
			out.attrs[i].Link = href
			out.attrs[i].Underline = true
		}
		return out, sel, nil
	}

	text := title
	if text == "" {
		text = href
	}
	a := e.BodyAttrs()
	a.Link = href
	a.Underline = true
	inserted := New(text, a)

	out := doc.Replace(first.Start, first.Start, inserted)
	next := sel.shiftAfter(first.Start, inserted.Len())
	next[0] = Range{Start: first.Start + inserted.Len()}
	return out, next, nil
}
