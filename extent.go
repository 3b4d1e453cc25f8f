package minimap

import (
	"unicode"
)

// Span is the half-open range [Start, End) of character positions covered by
// non-whitespace content. Positions count code points, not bytes.
type Span struct {
	Start int
	End   int
}

func (s Span) Empty() bool { return s.End <= s.Start }

func (s Span) Contains(pos int) bool { return pos >= s.Start && pos < s.End }

// extent folds the lines of one row-slot into a single span.
type extent struct {
	beg, end int
	ink      bool
}

func (e *extent) add(line string) {
	first, last := -1, -1
	var pos int
	for _, r := range line {
		if !unicode.IsSpace(r) {
			if first < 0 {
				first = pos
			}
			last = pos
		}
		pos++
	}
	if first < 0 {
		return
	}
	if !e.ink || first < e.beg {
		e.beg = first
	}
	if !e.ink || last > e.end {
		e.end = last
	}
	e.ink = true
}

// span returns 0..0 for a row-slot without any non-whitespace content.
func (e *extent) span() Span {
	if !e.ink {
		return Span{}
	}
	return Span{Start: e.beg, End: e.end + 1}
}
