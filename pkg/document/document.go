// Package document builds a validated tree on top of package tokenizer's
// permissive lexical stream: it matches open/close tags, rejects malformed
// roots, and stores elements and text nodes in flat, index-addressed arenas
// so that entity references stay valid across mutation.
package document

import (
	"fmt"

	"github.com/carterisonline/trax/internal/stack"
	"github.com/carterisonline/trax/pkg/tokenizer"
)

// EntityKind discriminates what an EntityRef addresses.
type EntityKind int

const (
	// EntityElement addresses a slot in Document.elements.
	EntityElement EntityKind = iota
	// EntityText addresses a slot in Document.texts.
	EntityText
)

func (k EntityKind) String() string {
	if k == EntityText {
		return "Text"
	}
	return "Element"
}

// EntityRef is a tagged arena index. Indices are never reused, so a stale
// EntityRef for a dropped entity simply addresses a nil slot rather than
// some unrelated later entity.
type EntityRef struct {
	Kind  EntityKind
	Index int
}

func (r EntityRef) String() string {
	return fmt.Sprintf("%s(%d)", r.Kind, r.Index)
}

// Attribute is a name/value pair on an element. Present distinguishes
// a modifier (bare name, no value) from an attribute whose value happens to
// be the empty string.
type Attribute struct {
	Prefix  string
	Local   string
	Value   string
	Present bool
}

// FullName renders prefix:local, or just local when Prefix is empty.
func (a Attribute) FullName() string {
	if a.Prefix == "" {
		return a.Local
	}
	return a.Prefix + ":" + a.Local
}

// Element is a live node in the tree. Parent is an index into
// Document.elements; for the root element (index 0) Parent is 0 (itself) —
// callers must special-case index 0 rather than relying on that
// self-reference meaning "has a live parent".
type Element struct {
	Parent     int
	Prefix     string
	Local      string
	Attributes []Attribute
	Children   []EntityRef
}

// FullName renders prefix:local, or just local when Prefix is empty.
func (e *Element) FullName() string {
	if e.Prefix == "" {
		return e.Local
	}
	return e.Prefix + ":" + e.Local
}

// Text is a live character-data node.
type Text struct {
	Parent  int
	Content string
}

// Document is a parsed TRAX tree: two arenas of optional slots, addressed by
// EntityRef. The root element is always at element index 0.
type Document struct {
	elements []*Element
	texts    []*Text
}

// Element returns the live element at i, or nil if the slot is empty or out
// of range.
func (d *Document) Element(i int) *Element {
	if i < 0 || i >= len(d.elements) {
		return nil
	}
	return d.elements[i]
}

// Text returns the live text node at i, or nil if the slot is empty or out
// of range.
func (d *Document) Text(i int) *Text {
	if i < 0 || i >= len(d.texts) {
		return nil
	}
	return d.texts[i]
}

// Entity resolves an EntityRef to its Element or Text. At most one of the
// two return values is non-nil; both are nil if the slot is empty or out of
// range.
func (d *Document) Entity(ref EntityRef) (*Element, *Text) {
	if ref.Kind == EntityText {
		return nil, d.Text(ref.Index)
	}
	return d.Element(ref.Index), nil
}

// Root is a convenience accessor for the always-live root element.
func (d *Document) Root() *Element {
	return d.elements[0]
}

// Parse tokenizes text and builds a validated Document. The first non-BOM,
// non-whitespace token must be an ElementStart for an empty-prefix element
// named "document"; any other shape is rejected before a partial tree is
// ever built — Parse returns either a Document or a nil Document and an
// error, never both. Close tags must match the open element; elements still
// open when the input ends are kept as they are, and a missing close tag is
// not reported as an error.
func Parse(text string) (*Document, error) {
	tok := tokenizer.NewTokenizer(text)

	first, err, ok := tok.Next()
	if !ok {
		return nil, ErrEmptyDocument
	}
	if err != nil {
		return nil, SyntaxError{Cause: err}
	}
	if first.Kind != tokenizer.KindElementStart || first.Prefix.Text() != "" || first.Local.Text() != "document" {
		return nil, InvalidRootElementError{Location: first.Span.Range()}
	}

	d := &Document{
		elements: []*Element{{Parent: 0, Local: "document"}},
	}

	var hier stack.Stack
	hier.Push(0)

	if err := d.driveAttributes(tok, &hier); err != nil {
		return nil, err
	}

	for hier.Len() > 0 {
		tk, err, ok := tok.Next()
		if !ok {
			break
		}
		if err != nil {
			return nil, SyntaxError{Cause: err}
		}

		switch tk.Kind {
		case tokenizer.KindElementStart:
			top := hier.Top()
			idx := len(d.elements)
			d.elements = append(d.elements, &Element{
				Parent: top,
				Prefix: tk.Prefix.Text(),
				Local:  tk.Local.Text(),
			})
			d.elements[top].Children = append(d.elements[top].Children, EntityRef{Kind: EntityElement, Index: idx})
			hier.Push(idx)
			if err := d.driveAttributes(tok, &hier); err != nil {
				return nil, err
			}

		case tokenizer.KindElementEnd:
			if tk.End == tokenizer.EndClose {
				top := hier.Top()
				cur := d.elements[top]
				if tk.ClosePrefix.Text() != cur.Prefix || tk.CloseLocal.Text() != cur.Local {
					return nil, InvalidTreeStructureError{
						ClosedElem:      fullName(tk.ClosePrefix.Text(), tk.CloseLocal.Text()),
						CurrentOpenElem: cur.FullName(),
						Location:        tk.Span.Range(),
					}
				}
				hier.Pop()
			}
			// EndOpen/EndEmpty are only produced inside driveAttributes.

		case tokenizer.KindText:
			top := hier.Top()
			idx := len(d.texts)
			d.texts = append(d.texts, &Text{Parent: top, Content: tk.Text.Text()})
			d.elements[top].Children = append(d.elements[top].Children, EntityRef{Kind: EntityText, Index: idx})

		case tokenizer.KindComment:
			// ignored at document level
		}
	}

	return d, nil
}

// driveAttributes consumes tokens belonging to the start tag just opened —
// Attribute, Modifier, and the terminating ElementEnd — pushing onto
// elements[top].Attributes and popping the hierarchy on a self-closing tag.
func (d *Document) driveAttributes(tok *tokenizer.Tokenizer, hier *stack.Stack) error {
	top := hier.Top()
	for {
		tk, err, ok := tok.Next()
		if !ok {
			return nil
		}
		if err != nil {
			return SyntaxError{Cause: err}
		}

		switch tk.Kind {
		case tokenizer.KindAttribute:
			d.elements[top].Attributes = append(d.elements[top].Attributes, Attribute{
				Prefix:  tk.Prefix.Text(),
				Local:   tk.Local.Text(),
				Value:   tk.Value.Text(),
				Present: true,
			})
		case tokenizer.KindModifier:
			d.elements[top].Attributes = append(d.elements[top].Attributes, Attribute{
				Prefix: tk.Prefix.Text(),
				Local:  tk.Local.Text(),
			})
		case tokenizer.KindElementEnd:
			if tk.End == tokenizer.EndEmpty {
				hier.Pop()
			}
			return nil
		default:
			// Unreachable while the tokenizer stays in Attributes state for
			// this tag, but return cleanly rather than looping forever.
			return nil
		}
	}
}

func fullName(prefix, local string) string {
	if prefix == "" {
		return local
	}
	return prefix + ":" + local
}
