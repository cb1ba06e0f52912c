package document

import (
	"errors"
	"fmt"

	"github.com/carterisonline/trax/pkg/tokenizer"
)

// ErrEmptyDocument is returned by Parse when the input produces no tokens
// at all.
var ErrEmptyDocument = errors.New("document: empty input, no root element")

// InvalidRootElementError is returned by Parse when the first token is not
// an empty-prefix "document" element start.
type InvalidRootElementError struct {
	Location tokenizer.TextRange
}

func (e InvalidRootElementError) Error() string {
	return fmt.Sprintf("document: expected root element <document> at %s", e.Location)
}

// SyntaxError wraps a lexical error surfaced by the tokenizer while Parse
// was driving it.
type SyntaxError struct {
	Cause error
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("document: %s", e.Cause)
}

func (e SyntaxError) Unwrap() error {
	return e.Cause
}

// InvalidTreeStructureError is returned by Parse when a close tag doesn't
// match the currently open element.
type InvalidTreeStructureError struct {
	ClosedElem      string
	CurrentOpenElem string
	Location        tokenizer.TextRange
}

func (e InvalidTreeStructureError) Error() string {
	return fmt.Sprintf("document: closing tag </%s> does not match open element <%s> at %s",
		e.ClosedElem, e.CurrentOpenElem, e.Location)
}

// NotFoundError is returned by Insert/Drop when an EntityRef addresses an
// empty or out-of-range slot.
type NotFoundError struct {
	Ref EntityRef
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("document: entity %s not found", e.Ref)
}

// ReplaceChildOutOfRangeError is returned by Insert when a Replace(n)
// position names a child slot beyond the parent's last index.
type ReplaceChildOutOfRangeError struct {
	N         int
	Parent    EntityRef
	LastIndex int
}

func (e ReplaceChildOutOfRangeError) Error() string {
	return fmt.Sprintf("document: replace index %d out of range for parent %s (last index %d)",
		e.N, e.Parent, e.LastIndex)
}

// DropEntityError is returned by Insert when the Drop performed as part of
// a Replace(n) fails.
type DropEntityError struct {
	N      int
	Parent EntityRef
	Cause  error
}

func (e DropEntityError) Error() string {
	return fmt.Sprintf("document: dropping child %d of %s: %s", e.N, e.Parent, e.Cause)
}

func (e DropEntityError) Unwrap() error {
	return e.Cause
}

// ErrRefuseDropRoot is returned by Drop when asked to drop the root element.
var ErrRefuseDropRoot = errors.New("document: refusing to drop the root element")
