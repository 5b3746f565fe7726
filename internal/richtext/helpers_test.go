package richtext

import "strings"

// debugString renders runs as "[text|flags]" for failure messages.
func (d Document) debugString() string {
	var sb strings.Builder
	for _, r := range d.Runs() {
		sb.WriteByte('[')
		sb.WriteString(r.Text)
		sb.WriteByte('|')
		if r.Attrs.Bold {
			sb.WriteString("b")
		}
		if r.Attrs.Italic {
			sb.WriteString("i")
		}
		if r.Attrs.Underline {
			sb.WriteString("u")
		}
		if r.Attrs.Checkbox {
			sb.WriteString("c")
		}
		sb.WriteByte(']')
	}
	return sb.String()
}

func attrsOf(d Document) []Attrs {
	out := make([]Attrs, d.Len())
	for i := range out {
		_, out[i] = d.At(i)
	}
	return out
}
