package tokenizer

// Kind discriminates the variant held by a Token. Token is realized as a
// single struct with a Kind tag rather than an interface{} or a sum of
// concrete types, so callers switch on the Kind field without type assertions — the
// fields irrelevant to a given Kind are simply left at their zero value.
type Kind int

const (
	// KindComment is a /* ... */ comment.
	KindComment Kind = iota
	// KindElementStart is a "<name" open tag start.
	KindElementStart
	// KindAttribute is a "name=\"value\"" attribute.
	KindAttribute
	// KindModifier is a bare "name" attribute with no value.
	KindModifier
	// KindElementEnd is one of ">", "</name>", or "/>".
	KindElementEnd
	// KindText is a run of character data between tags.
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindComment:
		return "Comment"
	case KindElementStart:
		return "ElementStart"
	case KindAttribute:
		return "Attribute"
	case KindModifier:
		return "Modifier"
	case KindElementEnd:
		return "ElementEnd"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// EndKind discriminates the three ways an element's start tag can close.
type EndKind int

const (
	// EndOpen is a plain '>' — the element has content following it.
	EndOpen EndKind = iota
	// EndClose is a "</prefix:local>" closing tag.
	EndClose
	// EndEmpty is a self-closing "/>" .
	EndEmpty
)

func (k EndKind) String() string {
	switch k {
	case EndOpen:
		return "Open"
	case EndClose:
		return "Close"
	case EndEmpty:
		return "Empty"
	default:
		return "Unknown"
	}
}

// Token is a single lexical event produced by the tokenizer. Every field
// other than Kind and Span is only meaningful for the Kinds noted in its
// comment.
type Token struct {
	Kind Kind
	Span Span

	// KindComment
	CommentText Span

	// KindElementStart, KindAttribute, KindModifier
	Prefix Span
	Local  Span

	// KindAttribute
	Value Span

	// KindElementEnd
	End EndKind
	// KindElementEnd with End == EndClose
	ClosePrefix Span
	CloseLocal  Span

	// KindText
	Text Span
}
