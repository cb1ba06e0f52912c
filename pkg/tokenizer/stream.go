package tokenizer

import "unicode/utf8"

// Stream is a cursor over a read-only text buffer. It is a plain struct
// (not an interface) because there is exactly one backing representation —
// unlike io.Reader, there is no seam here worth abstracting over.
//
// Stream is cheap to copy: it holds only a string header and an int offset,
// so cloning a Stream is O(1) and shares the backing array with the
// original, just like the Tokenizer that embeds it.
type Stream struct {
	text string
	pos  int
}

// NewStream wraps text starting at offset 0.
func NewStream(text string) Stream {
	return Stream{text: text}
}

// newSubStream wraps a substring range of fullText, used by fragment mode.
func newSubStream(fullText string, start, end int) Stream {
	return Stream{text: fullText[:end], pos: start}
}

// Pos returns the current byte offset.
func (s *Stream) Pos() int {
	return s.pos
}

// AtEnd reports whether the cursor has reached the end of the text.
func (s *Stream) AtEnd() bool {
	return s.pos >= len(s.text)
}

// CurrByte returns the byte at the cursor without advancing.
func (s *Stream) CurrByte() (byte, bool) {
	if s.AtEnd() {
		return 0, false
	}
	return s.text[s.pos], true
}

// NextByte returns the byte at the cursor and advances past it.
func (s *Stream) NextByte() (byte, bool) {
	b, ok := s.CurrByte()
	if ok {
		s.pos++
	}
	return b, ok
}

// PeekAt returns the byte at offset n past the cursor without advancing.
// PeekAt(0) is equivalent to CurrByte.
func (s *Stream) PeekAt(n int) (byte, bool) {
	i := s.pos + n
	if i < 0 || i >= len(s.text) {
		return 0, false
	}
	return s.text[i], true
}

// Advance moves the cursor forward n bytes, clamped to the end of text.
func (s *Stream) Advance(n int) {
	s.pos += n
	if s.pos > len(s.text) {
		s.pos = len(s.text)
	}
}

// Back moves the cursor back one byte, clamped to zero.
func (s *Stream) Back() {
	if s.pos > 0 {
		s.pos--
	}
}

// StartsWith reports whether the remaining text begins with prefix.
func (s *Stream) StartsWith(prefix string) bool {
	rest := s.text[s.pos:]
	if len(prefix) > len(rest) {
		return false
	}
	return rest[:len(prefix)] == prefix
}

// StartsWithSpace reports whether the current byte is XML whitespace.
func (s *Stream) StartsWithSpace() bool {
	b, ok := s.CurrByte()
	return ok && IsXMLSpace(rune(b))
}

// SkipSpaces advances past a run of XML whitespace.
func (s *Stream) SkipSpaces() {
	for s.StartsWithSpace() {
		s.pos++
	}
}

// SkipString consumes s's expected literal, returning InvalidString if the
// remaining text doesn't start with it.
func (s *Stream) SkipString(expected string) error {
	if !s.StartsWith(expected) {
		return StreamError{Kind: ErrInvalidString, Str: expected, Pos: s.GenTextPos()}
	}
	s.Advance(len(expected))
	return nil
}

// ConsumeByte consumes the expected byte or returns InvalidChar/UnexpectedEndOfStream.
func (s *Stream) ConsumeByte(expected byte) error {
	b, ok := s.CurrByte()
	if !ok {
		return StreamError{Kind: ErrUnexpectedEndOfStream}
	}
	if b != expected {
		return StreamError{Kind: ErrInvalidChar, Actual: b, Expected: expected, Pos: s.GenTextPos()}
	}
	s.pos++
	return nil
}

// ConsumeQuote consumes and returns an opening quote character, '"' or '\''.
func (s *Stream) ConsumeQuote() (byte, error) {
	b, ok := s.CurrByte()
	if !ok {
		return 0, StreamError{Kind: ErrUnexpectedEndOfStream}
	}
	if b != '"' && b != '\'' {
		return 0, StreamError{Kind: ErrInvalidQuote, Actual: b, Pos: s.GenTextPos()}
	}
	s.pos++
	return b, nil
}

// TryConsumeEq consumes an optional run of whitespace, an '=', and another
// optional run of whitespace. Reports whether an '=' was found; on failure
// the cursor is left unchanged.
func (s *Stream) TryConsumeEq() bool {
	start := s.pos
	s.SkipSpaces()
	if b, ok := s.CurrByte(); ok && b == '=' {
		s.pos++
		s.SkipSpaces()
		return true
	}
	s.pos = start
	return false
}

// ConsumeChars consumes a maximal run of runes satisfying pred and returns
// it as a Span. It does not itself validate XML-char-ness; callers that
// care (text content) check as they scan.
func (s *Stream) ConsumeChars(pred func(r rune) bool) Span {
	start := s.pos
	for !s.AtEnd() {
		r, size := utf8.DecodeRuneInString(s.text[s.pos:])
		if !pred(r) {
			break
		}
		s.pos += size
	}
	return s.SliceBack(start)
}

// ConsumeQName consumes a QName (prefix:local or local) and returns the
// prefix and local spans (prefix is empty when there is no ':').
func (s *Stream) ConsumeQName() (prefix, local Span, err error) {
	start := s.pos

	first, ok := s.peekRune()
	if !ok || !IsXMLNameStart(first) {
		return Span{}, Span{}, StreamError{Kind: ErrInvalidName}
	}

	s.consumeNameRunes()
	part1 := s.SliceBack(start)

	if b, ok := s.CurrByte(); ok && b == ':' {
		s.pos++
		localStart := s.pos
		next, ok := s.peekRune()
		if !ok || !IsXMLNameStart(next) {
			return Span{}, Span{}, StreamError{Kind: ErrInvalidName}
		}
		s.consumeNameRunes()
		return part1, s.SliceBack(localStart), nil
	}

	return Span{}, part1, nil
}

func (s *Stream) consumeNameRunes() {
	for !s.AtEnd() {
		r, size := utf8.DecodeRuneInString(s.text[s.pos:])
		if !IsXMLName(r) {
			break
		}
		s.pos += size
	}
}

func (s *Stream) peekRune() (rune, bool) {
	if s.AtEnd() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.text[s.pos:])
	return r, true
}

// SliceBack returns a Span over text[start:s.pos].
func (s *Stream) SliceBack(start int) Span {
	return NewSpan(s.text, start, s.pos)
}

// JumpToEnd moves the cursor to the end of the text, used after an error to
// halt further tokenization.
func (s *Stream) JumpToEnd() {
	s.pos = len(s.text)
}

// GenTextPos computes the position of the current cursor offset.
func (s *Stream) GenTextPos() TextPos {
	return textPosAt(s.text, s.pos)
}

// GenTextPosFrom computes the position of a previously-saved offset.
func (s *Stream) GenTextPosFrom(start int) TextPos {
	return textPosAt(s.text, start)
}

// RuneCursor iterates runes from the stream's current position without
// mutating the stream itself.
type RuneCursor struct {
	text string
	pos  int
}

// Chars returns a RuneCursor starting at the stream's current position.
func (s *Stream) Chars() RuneCursor {
	return RuneCursor{text: s.text, pos: s.pos}
}

// Next returns the next rune and reports whether one was available.
func (c *RuneCursor) Next() (rune, bool) {
	if c.pos >= len(c.text) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.text[c.pos:])
	c.pos += size
	return r, true
}
