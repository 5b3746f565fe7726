package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rcliao/inkwell/internal/richtext"
)

func sampleDoc() richtext.Document {
	return richtext.FromRuns([]richtext.Run{
		{Text: "Plan\n", Attrs: richtext.Attrs{Bold: true, Size: 24}},
		{Text: "☐ ", Attrs: richtext.Attrs{Checkbox: true, Size: 16}},
		{Text: "pack", Attrs: richtext.Attrs{Italic: true}},
		{Text: "\n\nsee ", Attrs: richtext.Attrs{}},
		{Text: "map", Attrs: richtext.Attrs{Underline: true, Link: "https://maps.example"}},
	})
}

func TestDocumentKeepsPlainLayout(t *testing.T) {
	// a bytes.Buffer is not a terminal, so no escape codes are emitted
	r := New(&bytes.Buffer{}, "pink", "SF Pro", 16)
	assert.Equal(t, sampleDoc().String(), r.Document(sampleDoc()))
}

func TestStyle(t *testing.T) {
	r := New(&bytes.Buffer{}, "green", "SF Pro", 16)

	s := r.Style(richtext.Attrs{Bold: true, Italic: true, Underline: true})
	assert.True(t, s.GetBold())
	assert.True(t, s.GetItalic())
	assert.True(t, s.GetUnderline())

	h := r.Style(richtext.Attrs{Bold: true, Size: 20})
	assert.Equal(t, accentColors["green"], h.GetForeground())

	l := r.Style(richtext.Attrs{Link: "https://x.example"})
	assert.Equal(t, linkColor, l.GetForeground())
}

func TestRuns(t *testing.T) {
	r := New(&bytes.Buffer{}, "unknown", "New York", 15)
	runs := r.Runs(sampleDoc())

	assert.Len(t, runs, 5)
	assert.Equal(t, RunView{Text: "Plan\n", Face: "New York Bold", Size: 24}, runs[0])
	assert.Equal(t, RunView{Text: "☐ ", Face: "New York Regular", Size: 16, Checkbox: true}, runs[1])
	assert.Equal(t, "New York Italic", runs[2].Face)
	assert.Equal(t, 15.0, runs[2].Size)
	assert.Equal(t, "https://maps.example", runs[4].Link)
}

func TestFaceName(t *testing.T) {
	assert.Equal(t, "Courier Bold Italic", FaceName("Courier", richtext.Attrs{Bold: true, Italic: true}))
	assert.Equal(t, "Courier Regular", FaceName("Courier", richtext.Attrs{Underline: true}))
}
