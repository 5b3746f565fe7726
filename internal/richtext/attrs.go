package richtext

// Attrs is the formatting attached to a single rune.
//
// Size 0 means the rune carries no explicit font size and renders at the
// engine's base size. Bold and Italic are independent; a renderer resolves the
// pair to a concrete face.
type Attrs struct {
	Bold      bool    `json:"b,omitempty"`
	Italic    bool    `json:"i,omitempty"`
	Underline bool    `json:"u,omitempty"`
	Size      float64 `json:"sz,omitempty"`
	Checkbox  bool    `json:"cb,omitempty"`
	Link      string  `json:"href,omitempty"`
}

// Font sizes for heading levels 1-3.
var headingSizes = [...]float64{0, 24, 20, 18}

// HeadingSize returns the point size implied by level. Level 0 (body) and any
// out-of-range level resolve to base.
func HeadingSize(level int, base float64) float64 {
	if level < 1 || level >= len(headingSizes) {
		return base
	}
	return headingSizes[level]
}

// HeadingLevel reports the heading level encoded by a, or 0 for body text.
func (a Attrs) HeadingLevel() int {
	if !a.Bold {
		return 0
	}
	for level := 1; level < len(headingSizes); level++ {
		if a.Size == headingSizes[level] {
			return level
		}
	}
	return 0
}

// Style is one of the binary style axes.
type Style int

const (
	StyleBold Style = iota
	StyleItalic
	StyleUnderline
)

func (s Style) String() string {
	switch s {
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	case StyleUnderline:
		return "underline"
	}
	return "unknown"
}

func (s Style) isSet(a Attrs) bool {
	switch s {
	case StyleBold:
		return a.Bold
	case StyleItalic:
		return a.Italic
	case StyleUnderline:
		return a.Underline
	}
	return false
}

// with returns a with the style bit set to on. The orthogonal bits are kept.
func (s Style) with(a Attrs, on bool) Attrs {
	switch s {
	case StyleBold:
		a.Bold = on
	case StyleItalic:
		a.Italic = on
	case StyleUnderline:
		a.Underline = on
	}
	return a
}
