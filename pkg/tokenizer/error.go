package tokenizer

import "fmt"

// StreamErrorKind discriminates the causes a Stream operation can fail with.
type StreamErrorKind int

const (
	// ErrUnexpectedEndOfStream means the stream ended earlier than expected.
	ErrUnexpectedEndOfStream StreamErrorKind = iota
	// ErrInvalidName means a QName was expected but not found.
	ErrInvalidName
	// ErrNonXMLChar means a non-XML character occurred in text content.
	ErrNonXMLChar
	// ErrInvalidChar means an unexpected byte occurred where a specific one
	// was expected.
	ErrInvalidChar
	// ErrInvalidQuote means a byte other than '"' or '\'' occurred where a
	// quote was expected.
	ErrInvalidQuote
	// ErrInvalidSpace means a byte other than XML whitespace occurred where
	// whitespace was required (e.g. between attributes).
	ErrInvalidSpace
	// ErrInvalidString means an expected literal string was not found.
	ErrInvalidString
	// ErrInvalidReference means an invalid reference occurred (reserved;
	// TRAX does not parse entity references, but the cause is kept so the
	// taxonomy mirrors the original grammar's full StreamError set).
	ErrInvalidReference
)

// StreamError is the cause carried by a StreamErrorKind failure, along with
// whatever extra detail that kind requires.
type StreamError struct {
	Kind     StreamErrorKind
	Rune     rune    // NonXmlChar
	Actual   byte    // InvalidChar, InvalidQuote, InvalidSpace
	Expected byte    // InvalidChar
	Str      string  // InvalidString
	Pos      TextPos // set for every kind except UnexpectedEndOfStream/InvalidName/InvalidReference
}

func (e StreamError) Error() string {
	switch e.Kind {
	case ErrUnexpectedEndOfStream:
		return "unexpected end of stream"
	case ErrInvalidName:
		return "invalid name token"
	case ErrNonXMLChar:
		return fmt.Sprintf("a non-XML character %q found at %s", e.Rune, e.Pos)
	case ErrInvalidChar:
		return fmt.Sprintf("expected %q not %q at %s", rune(e.Expected), rune(e.Actual), e.Pos)
	case ErrInvalidQuote:
		return fmt.Sprintf("expected quote mark not %q at %s", rune(e.Actual), e.Pos)
	case ErrInvalidSpace:
		return fmt.Sprintf("expected space not %q at %s", rune(e.Actual), e.Pos)
	case ErrInvalidString:
		return fmt.Sprintf("expected %q at %s", e.Str, e.Pos)
	case ErrInvalidReference:
		return "invalid reference"
	default:
		return "unknown stream error"
	}
}

// ErrorKind discriminates the tokenizer-level error variants.
type ErrorKind int

const (
	// ErrInvalidComment means an unterminated or malformed comment.
	ErrInvalidComment ErrorKind = iota
	// ErrInvalidElement means a malformed element start or close tag.
	ErrInvalidElement
	// ErrInvalidAttribute means a malformed attribute or modifier.
	ErrInvalidAttribute
	// ErrInvalidCharData means invalid text content.
	ErrInvalidCharData
	// ErrUnknownToken means an unrecognized leading byte.
	ErrUnknownToken
)

// Error is the error type produced by the tokenizer. It always carries the
// position at which the offending token started, and — for every kind
// except ErrUnknownToken — the underlying StreamError cause.
type Error struct {
	Kind  ErrorKind
	Cause StreamError
	Pos   TextPos
}

func (e Error) Error() string {
	switch e.Kind {
	case ErrInvalidComment:
		return fmt.Sprintf("invalid comment at %s: %s", e.Pos, e.Cause)
	case ErrInvalidElement:
		return fmt.Sprintf("invalid element at %s: %s", e.Pos, e.Cause)
	case ErrInvalidAttribute:
		return fmt.Sprintf("invalid attribute at %s: %s", e.Pos, e.Cause)
	case ErrInvalidCharData:
		return fmt.Sprintf("invalid character data at %s: %s", e.Pos, e.Cause)
	case ErrUnknownToken:
		return fmt.Sprintf("unknown token at %s", e.Pos)
	default:
		return fmt.Sprintf("tokenizer error at %s", e.Pos)
	}
}

// Unwrap exposes the underlying StreamError for errors.As/errors.Is. It
// returns nil for ErrUnknownToken, which carries no cause.
func (e Error) Unwrap() error {
	if e.Kind == ErrUnknownToken {
		return nil
	}
	return e.Cause
}
