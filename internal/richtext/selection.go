package richtext

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Range is a half-open span [Start, Start+Len) of rune offsets. A zero-length
// range is a caret.
type Range struct {
	Start int `json:"start"`
	Len   int `json:"len"`
}

func (r Range) End() int { return r.Start + r.Len }

func (r Range) IsEmpty() bool { return r.Len == 0 }

func (r Range) String() string { return fmt.Sprintf("%d:%d", r.Start, r.Len) }

// Selection is an ordered set of disjoint ranges.
type Selection []Range

// Caret returns a selection holding a single caret at i.
func Caret(i int) Selection { return Selection{{Start: i}} }

// Span returns a selection holding the single range [start, start+length).
func Span(start, length int) Selection { return Selection{{Start: start, Len: length}} }

// Normalize clamps every range into [0, docLen], orders ranges by start and
// merges ranges that overlap. A caret that falls inside a non-empty range is
// absorbed by it.
func (s Selection) Normalize(docLen int) Selection {
	if len(s) == 0 {
		return nil
	}
	out := make(Selection, 0, len(s))
	for _, r := range s {
		start := clampInt(r.Start, 0, docLen)
		end := clampInt(r.Start+r.Len, start, docLen)
		if r.Len < 0 {
			end = start
		}
		out = append(out, Range{Start: start, Len: end - start})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].Len < out[j].Len
	})

	merged := out[:1]
	for _, r := range out[1:] {
		last := &merged[len(merged)-1]
		if r == *last || r.Start < last.End() || (last.IsEmpty() && r.Start == last.Start) {
			if r.End() > last.End() {
				last.Len = r.End() - last.Start
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// First returns the range with the lowest start.
func (s Selection) First() (Range, bool) {
	if len(s) == 0 {
		return Range{}, false
	}
	return s[0], true
}

// shiftAfter moves every range starting at or after pos by delta.
func (s Selection) shiftAfter(pos, delta int) Selection {
	out := make(Selection, len(s))
	for i, r := range s {
		if r.Start >= pos {
			r.Start += delta
		}
		out[i] = r
	}
	return out
}

func (s Selection) String() string {
	parts := make([]string, len(s))
	for i, r := range s {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}

// ParseSelection parses "START:LEN[,START:LEN...]". A bare "N" is a caret.
func ParseSelection(v string) (Selection, error) {
	var sel Selection
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		startStr, lenStr, hasLen := strings.Cut(part, ":")
		start, err := strconv.Atoi(startStr)
		if err != nil {
			return nil, fmt.Errorf("invalid range start %q", startStr)
		}
		length := 0
		if hasLen {
			length, err = strconv.Atoi(lenStr)
			if err != nil || length < 0 {
				return nil, fmt.Errorf("invalid range length %q", lenStr)
			}
		}
		sel = append(sel, Range{Start: start, Len: length})
	}
	if len(sel) == 0 {
		return nil, fmt.Errorf("empty selection %q", v)
	}
	return sel, nil
}
