package richtext

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	BulletMarker    = "• "
	UncheckedMarker = "☐ "
	CheckedMarker   = "☑ "
)

var numberedMarker = regexp.MustCompile(`^[0-9]+\. `)

// MarkerKind identifies the list marker at the start of a line.
type MarkerKind int

const (
	MarkerNone MarkerKind = iota
	MarkerBullet
	MarkerNumbered
	MarkerCheckbox
)

func (k MarkerKind) String() string {
	switch k {
	case MarkerBullet:
		return "bullet"
	case MarkerNumbered:
		return "numbered"
	case MarkerCheckbox:
		return "checkbox"
	}
	return "none"
}

// prefix returns the marker text for the n-th (1-based) line of a list.
func (k MarkerKind) prefix(n int) string {
	switch k {
	case MarkerBullet:
		return BulletMarker
	case MarkerNumbered:
		return strconv.Itoa(n) + ". "
	case MarkerCheckbox:
		return UncheckedMarker
	}
	return ""
}

// DetectMarker returns the kind of marker line starts with. Kinds are checked
// in the order bullet, numbered, checkbox; text matching none is MarkerNone.
func DetectMarker(line string) MarkerKind {
	kind, _ := matchMarker(line)
	return kind
}

// StripMarker removes at most one leading marker from line.
func StripMarker(line string) string {
	_, n := matchMarker(line)
	return line[n:]
}

// matchMarker returns the marker kind and its length in bytes.
func matchMarker(line string) (MarkerKind, int) {
	switch {
	case strings.HasPrefix(line, BulletMarker):
		return MarkerBullet, len(BulletMarker)
	case numberedMarker.MatchString(line):
		return MarkerNumbered, numberedMarker.FindStringIndex(line)[1]
	case strings.HasPrefix(line, UncheckedMarker):
		return MarkerCheckbox, len(UncheckedMarker)
	case strings.HasPrefix(line, CheckedMarker):
		return MarkerCheckbox, len(CheckedMarker)
	}
	return MarkerNone, 0
}

// listMarkerRunes returns the rune length of every marker stacked at the
// start of line. Markers come off in the order bullet, numbered, checkbox, and
// the pass repeats until a line starts with none of them.
func listMarkerRunes(line string) int {
	n := 0
	for {
		start := n
		if strings.HasPrefix(line[n:], BulletMarker) {
			n += len(BulletMarker)
		}
		if loc := numberedMarker.FindStringIndex(line[n:]); loc != nil {
			n += loc[1]
		}
		switch {
		case strings.HasPrefix(line[n:], UncheckedMarker):
			n += len(UncheckedMarker)
		case strings.HasPrefix(line[n:], CheckedMarker):
			n += len(CheckedMarker)
		}
		if n == start {
			return utf8.RuneCountInString(line[:n])
		}
	}
}
