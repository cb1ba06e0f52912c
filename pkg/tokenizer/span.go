package tokenizer

import (
	"fmt"
	"unicode/utf8"
)

// Span is a borrowed byte range [Start, End) into a backing text. Slicing a
// Go string is already a no-copy borrow, so Span carries the backing string
// directly rather than a separate arena handle.
type Span struct {
	text  string
	Start int
	End   int
}

// NewSpan constructs a Span over text[start:end].
func NewSpan(text string, start, end int) Span {
	return Span{text: text, Start: start, End: end}
}

// Text returns the substring the span refers to.
func (s Span) Text() string {
	return s.text[s.Start:s.End]
}

// Len returns the span's byte length.
func (s Span) Len() int {
	return s.End - s.Start
}

// Range converts the span to a 1-based row/column TextRange.
func (s Span) Range() TextRange {
	return TextRange{
		Start: textPosAt(s.text, s.Start),
		End:   textPosAt(s.text, s.End),
	}
}

// TextPos is a 1-based (row, column) position, where column counts Unicode
// scalar values (runes) since the last line start.
type TextPos struct {
	Row uint32
	Col uint32
}

// Sub returns the position with its column decreased by n, saturating at
// zero rather than underflowing.
func (p TextPos) Sub(n uint32) TextPos {
	col := p.Col
	if col < n {
		col = 0
	} else {
		col -= n
	}
	return TextPos{Row: p.Row, Col: col}
}

func (p TextPos) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// TextRange is a (start, end) pair of TextPos, used in diagnostics that
// report a human-readable span rather than raw byte offsets.
type TextRange struct {
	Start TextPos
	End   TextPos
}

func (r TextRange) String() string {
	if r.Start.Row == r.End.Row {
		return fmt.Sprintf("%d:%d..%d", r.Start.Row, r.Start.Col, r.End.Col)
	}
	return fmt.Sprintf("%s..%s", r.Start, r.End)
}

// textPosAt computes the 1-based (row, col) position of byte offset pos
// within text by counting newlines before it and runes since the last one.
func textPosAt(text string, pos int) TextPos {
	if pos > len(text) {
		pos = len(text)
	}

	row := uint32(1)
	lineStart := 0
	for i := 0; i < pos; i++ {
		if text[i] == '\n' {
			row++
			lineStart = i + 1
		}
	}

	col := uint32(1)
	for i := lineStart; i < pos; {
		_, size := utf8.DecodeRuneInString(text[i:])
		if size <= 0 {
			size = 1
		}
		i += size
		col++
	}

	return TextPos{Row: row, Col: col}
}
