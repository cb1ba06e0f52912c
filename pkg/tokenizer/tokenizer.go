// Package tokenizer implements a pull-based, allocation-free scanner for the
// TRAX markup grammar.
//
// Tokenizer turns a text buffer into a lazy sequence of Token values without
// building a tree: it does not match opening and closing tags, does not
// detect duplicate attributes, and does not validate that the document has
// a particular root element. Package document layers that validation on
// top by driving a Tokenizer and watching the events it produces.
//
// # Example
//
//	tok := tokenizer.NewTokenizer(`<tagname name="value" modifier/>`)
//	for {
//		t, err, ok := tok.Next()
//		if !ok {
//			break
//		}
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println(t.Kind)
//	}
package tokenizer

import "unicode/utf8"

type state int

const (
	stateRoot state = iota
	stateElements
	stateAttributes
	stateAfterElements
	stateEnd
)

// Tokenizer is the TRAX lexical scanner.
//
// A Tokenizer is cheap to copy (it holds a Stream, which is itself just a
// string header and an int), so callers needing to fork the scan at a
// checkpoint can simply take a value copy.
type Tokenizer struct {
	stream   Stream
	state    state
	depth    int
	fragment bool
	opts     options
}

// NewTokenizer creates a Tokenizer over the full text, requiring a single
// root element. A three-byte UTF-8 BOM at the start is skipped, as is any
// leading whitespace.
func NewTokenizer(text string, opts ...Option) *Tokenizer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := NewStream(text)
	if s.StartsWith("\xEF\xBB\xBF") {
		s.Advance(3)
	}
	s.SkipSpaces()

	return &Tokenizer{stream: s, state: stateRoot, opts: o}
}

// NewFragmentTokenizer creates a Tokenizer over fullText[start:end] that
// tokenizes straight into Elements state, suppressing the "single root
// element" requirement. Used to tokenize a snippet (e.g. an LSP completion
// preview) that isn't itself a complete document.
func NewFragmentTokenizer(fullText string, start, end int, opts ...Option) *Tokenizer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Tokenizer{
		stream:   newSubStream(fullText, start, end),
		state:    stateElements,
		fragment: true,
		opts:     o,
	}
}

// Next returns the next token. ok is false once the input is exhausted or a
// previous call returned an error — in both cases err is nil and the Token
// is the zero value. Once an error has been returned, the Tokenizer fast
// forwards to the end of the stream and every subsequent call returns
// ok == false.
func (t *Tokenizer) Next() (tok Token, err error, ok bool) {
	for !t.stream.AtEnd() && t.state != stateEnd {
		tok, err, ok = t.step()
		if !ok {
			continue
		}
		if err != nil {
			t.stream.JumpToEnd()
			t.state = stateEnd
			return Token{}, err, true
		}
		return tok, nil, true
	}
	return Token{}, nil, false
}

// step runs exactly one state-dependent parsing decision. ok is false when
// the step consumed input (e.g. skipped whitespace) without producing a
// token, signaling the caller to loop again.
func (t *Tokenizer) step() (Token, error, bool) {
	s := &t.stream
	start := s.pos

	switch t.state {
	case stateRoot:
		return t.stepRoot(start)
	case stateElements:
		return t.stepElements(start)
	case stateAttributes:
		return t.stepAttributes(start)
	case stateAfterElements:
		return t.stepAfterElements()
	default:
		return Token{}, nil, false
	}
}

func (t *Tokenizer) stepRoot(start int) (Token, error, bool) {
	s := &t.stream

	b0, ok0 := s.PeekAt(0)
	if !ok0 {
		return Token{}, Error{Kind: ErrUnknownToken, Pos: s.GenTextPos()}, true
	}

	switch b0 {
	case '<':
		b1, ok1 := s.PeekAt(1)
		if !ok1 || b1 == '/' {
			return Token{}, Error{Kind: ErrInvalidElement, Cause: StreamError{Kind: ErrInvalidName}, Pos: s.GenTextPos()}, true
		}
		t.state = stateAttributes
		tok, err := t.parseElementStart(start)
		return tok, err, true
	case '/':
		b1, ok1 := s.PeekAt(1)
		if ok1 && b1 == '*' {
			tok, err := t.parseComment(start)
			return tok, err, true
		}
		return Token{}, Error{Kind: ErrUnknownToken, Pos: s.GenTextPos().Sub(1)}, true
	default:
		return Token{}, Error{Kind: ErrUnknownToken, Pos: s.GenTextPos()}, true
	}
}

func (t *Tokenizer) stepElements(start int) (Token, error, bool) {
	s := &t.stream
	s.SkipSpaces()
	start = s.pos

	b0, ok0 := s.PeekAt(0)
	if !ok0 {
		return Token{}, Error{Kind: ErrUnknownToken, Pos: s.GenTextPos()}, true
	}

	switch b0 {
	case '<':
		b1, ok1 := s.PeekAt(1)
		switch {
		case ok1 && b1 == '/':
			if t.depth > 0 {
				t.depth--
			}
			if t.depth == 0 && !t.fragment {
				t.state = stateAfterElements
			} else {
				t.state = stateElements
			}
			tok, err := t.parseCloseElement(start)
			return tok, err, true
		case ok1:
			t.state = stateAttributes
			tok, err := t.parseElementStart(start)
			return tok, err, true
		default:
			return Token{}, Error{Kind: ErrUnknownToken, Pos: s.GenTextPos()}, true
		}
	case '/':
		b1, ok1 := s.PeekAt(1)
		if ok1 && b1 == '*' {
			tok, err := t.parseComment(start)
			return tok, err, true
		}
		return Token{}, Error{Kind: ErrUnknownToken, Pos: s.GenTextPos().Sub(1)}, true
	default:
		tok, err := t.parseText(start)
		return tok, err, true
	}
}

func (t *Tokenizer) stepAttributes(start int) (Token, error, bool) {
	s := &t.stream
	tok, cause := t.parseAttribute()

	if cause == nil && tok.Kind == KindElementEnd {
		if tok.End == EndOpen {
			t.depth++
			if t.opts.maxDepth > 0 && t.depth > t.opts.maxDepth {
				return Token{}, Error{Kind: ErrInvalidElement, Cause: StreamError{Kind: ErrInvalidName}, Pos: s.GenTextPosFrom(start)}, true
			}
		}
		if t.depth == 0 && !t.fragment {
			t.state = stateAfterElements
		} else {
			t.state = stateElements
		}
	}

	if cause != nil {
		se, _ := cause.(StreamError)
		return Token{}, Error{Kind: ErrInvalidAttribute, Cause: se, Pos: s.GenTextPosFrom(start)}, true
	}
	return tok, nil, true
}

func (t *Tokenizer) stepAfterElements() (Token, error, bool) {
	s := &t.stream
	if s.StartsWith("/*") {
		start := s.pos
		tok, err := t.parseComment(start)
		return tok, err, true
	}
	if s.StartsWithSpace() {
		s.SkipSpaces()
		return Token{}, nil, false
	}
	return Token{}, Error{Kind: ErrUnknownToken, Pos: s.GenTextPos()}, true
}

// --- lexical productions ---

func (t *Tokenizer) parseComment(start int) (Token, error) {
	s := &t.stream
	s.Advance(2) // consume "/*"
	textStart := s.pos

	for {
		if s.AtEnd() {
			return Token{}, wrapErr(ErrInvalidComment, StreamError{Kind: ErrUnexpectedEndOfStream}, start, s)
		}
		if s.StartsWith("*/") {
			break
		}
		_, size := utf8.DecodeRuneInString(s.text[s.pos:])
		if size <= 0 {
			size = 1
		}
		s.pos += size
	}

	textSpan := NewSpan(s.text, textStart, s.pos)
	if err := s.SkipString("*/"); err != nil {
		return Token{}, wrapErr(ErrInvalidComment, err.(StreamError), start, s)
	}

	return Token{Kind: KindComment, Span: s.SliceBack(start), CommentText: textSpan}, nil
}

func (t *Tokenizer) parseElementStart(start int) (Token, error) {
	s := &t.stream
	s.Advance(1) // consume '<'
	prefix, local, err := s.ConsumeQName()
	if err != nil {
		return Token{}, wrapErr(ErrInvalidElement, err.(StreamError), start, s)
	}
	return Token{Kind: KindElementStart, Span: s.SliceBack(start), Prefix: prefix, Local: local}, nil
}

func (t *Tokenizer) parseCloseElement(start int) (Token, error) {
	s := &t.stream
	s.Advance(2) // consume "</"
	prefix, local, err := s.ConsumeQName()
	if err != nil {
		return Token{}, wrapErr(ErrInvalidElement, err.(StreamError), start, s)
	}
	s.SkipSpaces()
	if err := s.ConsumeByte('>'); err != nil {
		return Token{}, wrapErr(ErrInvalidElement, err.(StreamError), start, s)
	}
	return Token{Kind: KindElementEnd, Span: s.SliceBack(start), End: EndClose, ClosePrefix: prefix, CloseLocal: local}, nil
}

// parseAttribute parses one attribute, modifier, or start-tag terminator.
// The returned error, when non-nil, is always a StreamError — the caller
// wraps it as InvalidAttribute with the position of the whole attribute run.
func (t *Tokenizer) parseAttribute() (Token, error) {
	s := &t.stream
	attrStart := s.pos
	hasSpace := s.StartsWithSpace()
	s.SkipSpaces()

	if b, ok := s.CurrByte(); ok {
		start := s.pos
		switch b {
		case '/':
			s.Advance(1)
			if err := s.ConsumeByte('>'); err != nil {
				return Token{}, err
			}
			return Token{Kind: KindElementEnd, Span: s.SliceBack(start), End: EndEmpty}, nil
		case '>':
			s.Advance(1)
			return Token{Kind: KindElementEnd, Span: s.SliceBack(start), End: EndOpen}, nil
		}
	}

	if !hasSpace {
		if !s.AtEnd() {
			b, _ := s.CurrByte()
			return Token{}, StreamError{Kind: ErrInvalidSpace, Actual: b, Pos: s.GenTextPosFrom(attrStart)}
		}
		return Token{}, StreamError{Kind: ErrUnexpectedEndOfStream}
	}

	start := s.pos
	prefix, local, err := s.ConsumeQName()
	if err != nil {
		return Token{}, err
	}

	if s.TryConsumeEq() {
		quote, err := s.ConsumeQuote()
		if err != nil {
			return Token{}, err
		}
		value := s.ConsumeChars(func(r rune) bool { return r != rune(quote) && r != '<' })
		if err := s.ConsumeByte(quote); err != nil {
			return Token{}, err
		}
		return Token{Kind: KindAttribute, Span: s.SliceBack(start), Prefix: prefix, Local: local, Value: value}, nil
	}

	return Token{Kind: KindModifier, Span: s.SliceBack(start), Prefix: prefix, Local: local}, nil
}

func (t *Tokenizer) parseText(start int) (Token, error) {
	s := &t.stream

	for !s.AtEnd() {
		if s.StartsWith("/*") {
			break
		}
		b, _ := s.CurrByte()
		if b == '<' {
			break
		}
		r, size := utf8.DecodeRuneInString(s.text[s.pos:])
		if !IsXMLChar(r) {
			return Token{}, wrapErr(ErrInvalidCharData, StreamError{Kind: ErrNonXMLChar, Rune: r, Pos: s.GenTextPos()}, start, s)
		}
		if size <= 0 {
			size = 1
		}
		s.pos += size
	}

	trimmed := s.pos
	for trimmed > start && isXMLSpaceByte(s.text[trimmed-1]) {
		trimmed--
	}

	span := NewSpan(s.text, start, trimmed)
	return Token{Kind: KindText, Span: span, Text: span}, nil
}

func wrapErr(kind ErrorKind, cause StreamError, start int, s *Stream) error {
	return Error{Kind: kind, Cause: cause, Pos: s.GenTextPosFrom(start)}
}
