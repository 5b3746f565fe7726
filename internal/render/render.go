// Package render turns formatted documents into terminal output.
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/savioxavier/termlink"

	"github.com/rcliao/inkwell/internal/richtext"
)

var accentColors = map[string]lipgloss.Color{
	"blue":   lipgloss.Color("12"),
	"green":  lipgloss.Color("10"),
	"orange": lipgloss.Color("214"),
	"red":    lipgloss.Color("9"),
	"purple": lipgloss.Color("13"),
	"pink":   lipgloss.Color("205"),
}

var linkColor = lipgloss.Color("39")

// Renderer writes styled documents for a terminal.
type Renderer struct {
	r      *lipgloss.Renderer
	accent lipgloss.Color
	family string
	base   float64
	// hyperlinks wraps linked runs in OSC 8 escapes.
	hyperlinks bool
}

// New returns a renderer whose color support is detected from w. Headings use
// the accent color; family and base size name the configured body font.
func New(w io.Writer, accent, family string, base float64) *Renderer {
	c, ok := accentColors[accent]
	if !ok {
		c = accentColors["blue"]
	}
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		r:          r,
		accent:     c,
		family:     family,
		base:       base,
		hyperlinks: r.ColorProfile() != termenv.Ascii && termlink.SupportsHyperlinks(),
	}
}

// Style resolves attributes to a terminal style.
func (r *Renderer) Style(a richtext.Attrs) lipgloss.Style {
	s := r.r.NewStyle().
		Bold(a.Bold).
		Italic(a.Italic).
		Underline(a.Underline)
	if a.HeadingLevel() > 0 {
		s = s.Foreground(r.accent)
	}
	if a.Link != "" {
		s = s.Foreground(linkColor)
	}
	return s
}

// Document renders d run by run. Lines are styled separately so the terminal
// layout matches the plain text exactly.
func (r *Renderer) Document(d richtext.Document) string {
	var sb strings.Builder
	for _, run := range d.Runs() {
		style := r.Style(run.Attrs)
		for i, part := range strings.Split(run.Text, "\n") {
			if i > 0 {
				sb.WriteByte('\n')
			}
			if part == "" {
				continue
			}
			out := style.Render(part)
			if r.hyperlinks && run.Attrs.Link != "" {
				out = termlink.Link(out, run.Attrs.Link)
			}
			sb.WriteString(out)
		}
	}
	return sb.String()
}

// Title renders a note title line.
func (r *Renderer) Title(title string) string {
	return r.r.NewStyle().Bold(true).Foreground(r.accent).Render(title)
}

// RunView is a run with its attributes resolved for display.
type RunView struct {
	Text      string  `json:"text"`
	Face      string  `json:"face"`
	Size      float64 `json:"size"`
	Underline bool    `json:"underline,omitempty"`
	Link      string  `json:"link,omitempty"`
	Checkbox  bool    `json:"checkbox,omitempty"`
}

// Runs resolves every run of d to a concrete face and size.
func (r *Renderer) Runs(d richtext.Document) []RunView {
	runs := d.Runs()
	out := make([]RunView, len(runs))
	for i, run := range runs {
		size := run.Attrs.Size
		if size == 0 {
			size = r.base
		}
		out[i] = RunView{
			Text:      run.Text,
			Face:      FaceName(r.family, run.Attrs),
			Size:      size,
			Underline: run.Attrs.Underline,
			Link:      run.Attrs.Link,
			Checkbox:  run.Attrs.Checkbox,
		}
	}
	return out
}

// FaceName names the font face for the bold/italic pair of a.
func FaceName(family string, a richtext.Attrs) string {
	switch {
	case a.Bold && a.Italic:
		return family + " Bold Italic"
	case a.Bold:
		return family + " Bold"
	case a.Italic:
		return family + " Italic"
	}
	return family + " Regular"
}
