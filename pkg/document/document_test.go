package document_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterisonline/trax/pkg/document"
)

func TestParseEmptyInput(t *testing.T) {
	_, err := document.Parse("")
	require.ErrorIs(t, err, document.ErrEmptyDocument)
}

func TestParseInvalidRootElementName(t *testing.T) {
	_, err := document.Parse("<doxument> </doxument>")
	require.Error(t, err)

	var re document.InvalidRootElementError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, uint32(1), re.Location.Start.Row)
	assert.Equal(t, uint32(1), re.Location.Start.Col)
	assert.Equal(t, uint32(10), re.Location.End.Col)
}

func TestParseInvalidRootElementPrefix(t *testing.T) {
	_, err := document.Parse("<prefix:document> </prefix:document>")
	require.Error(t, err)

	var re document.InvalidRootElementError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, uint32(1), re.Location.Start.Col)
	assert.Equal(t, uint32(17), re.Location.End.Col)
}

func TestParseCommentAloneIsInvalidRoot(t *testing.T) {
	_, err := document.Parse("/* comment */")
	require.Error(t, err)

	var re document.InvalidRootElementError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, uint32(1), re.Location.Start.Col)
	assert.Equal(t, uint32(14), re.Location.End.Col)
}

func TestParseTreeStructureMismatch(t *testing.T) {
	_, err := document.Parse("<document><one><two></one></two></document>")
	require.Error(t, err)

	var te document.InvalidTreeStructureError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "one", te.ClosedElem)
	assert.Equal(t, "two", te.CurrentOpenElem)
	assert.Equal(t, uint32(21), te.Location.Start.Col)
	assert.Equal(t, uint32(27), te.Location.End.Col)
}

func TestParseAttributesAndModifiers(t *testing.T) {
	doc, err := document.Parse(`<document><x a="1" m /></document>`)
	require.NoError(t, err)

	root := doc.Root()
	require.Len(t, root.Children, 1)

	x := doc.Element(root.Children[0].Index)
	require.NotNil(t, x)
	require.Len(t, x.Attributes, 2)

	assert.Equal(t, "a", x.Attributes[0].Local)
	assert.True(t, x.Attributes[0].Present)
	assert.Equal(t, "1", x.Attributes[0].Value)

	assert.Equal(t, "m", x.Attributes[1].Local)
	assert.False(t, x.Attributes[1].Present)
}

func TestParseQualifiedModifier(t *testing.T) {
	doc, err := document.Parse(`<document><two with:modifier><three/></two></document>`)
	require.NoError(t, err)

	root := doc.Root()
	two := doc.Element(root.Children[0].Index)
	require.NotNil(t, two)
	require.Len(t, two.Attributes, 1)
	assert.Equal(t, "with", two.Attributes[0].Prefix)
	assert.Equal(t, "modifier", two.Attributes[0].Local)
}

func TestParseSyntaxErrorWraps(t *testing.T) {
	_, err := document.Parse("<document><a b=1></a></document>")
	require.Error(t, err)

	var se document.SyntaxError
	require.True(t, errors.As(err, &se))
}

func TestRootSelfClosingHasNoChildren(t *testing.T) {
	doc, err := document.Parse("<document/>")
	require.NoError(t, err)
	assert.Empty(t, doc.Root().Children)
}

func TestTextNodesAttachToCurrentParent(t *testing.T) {
	doc, err := document.Parse("<document>hello<a/>world</document>")
	require.NoError(t, err)

	root := doc.Root()
	require.Len(t, root.Children, 3)

	_, text1 := doc.Entity(root.Children[0])
	require.NotNil(t, text1)
	assert.Equal(t, "hello", text1.Content)

	elem, _ := doc.Entity(root.Children[1])
	require.NotNil(t, elem)
	assert.Equal(t, "a", elem.Local)

	_, text2 := doc.Entity(root.Children[2])
	require.NotNil(t, text2)
	assert.Equal(t, "world", text2.Content)
}
