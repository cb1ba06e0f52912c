package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterisonline/trax/pkg/document"
)

func TestInsertBackOnEmptyRoot(t *testing.T) {
	doc, err := document.Parse("<document/>")
	require.NoError(t, err)

	ref, err := doc.Insert(0, document.InsertBack, "", "foo", nil)
	require.NoError(t, err)
	assert.Equal(t, document.EntityElement, ref.Kind)

	require.Equal(t, "<document>\n\t<foo />\n</document>\n", doc.Render())
}

func TestInsertFrontPlacesBeforeExisting(t *testing.T) {
	doc, err := document.Parse("<document><a/></document>")
	require.NoError(t, err)

	_, err = doc.Insert(0, document.InsertFront, "", "b", nil)
	require.NoError(t, err)

	require.Equal(t, "<document>\n\t<b />\n\t<a />\n</document>\n", doc.Render())
}

func TestInsertFrontNClampsToLastIndex(t *testing.T) {
	doc, err := document.Parse("<document><a/><b/></document>")
	require.NoError(t, err)

	// L=2, InsertFrontN(99) clamps to L-1=1, i.e. before the last child.
	_, err = doc.Insert(0, document.InsertFrontN(99), "", "c", nil)
	require.NoError(t, err)

	require.Equal(t, "<document>\n\t<a />\n\t<c />\n\t<b />\n</document>\n", doc.Render())
}

func TestInsertBackNClampsAtZero(t *testing.T) {
	doc, err := document.Parse("<document><a/><b/></document>")
	require.NoError(t, err)

	// L=2, InsertBackN(99) clamps to 0.
	_, err = doc.Insert(0, document.InsertBackN(99), "", "c", nil)
	require.NoError(t, err)

	require.Equal(t, "<document>\n\t<c />\n\t<a />\n\t<b />\n</document>\n", doc.Render())
}

func TestReplaceSwapsContentAtSamePosition(t *testing.T) {
	doc, err := document.Parse("<document><a/><b/><c/></document>")
	require.NoError(t, err)

	ref, err := doc.Insert(0, document.Replace(1), "", "z", nil)
	require.NoError(t, err)
	assert.Equal(t, document.EntityElement, ref.Kind)

	require.Equal(t, "<document>\n\t<a />\n\t<z />\n\t<c />\n</document>\n", doc.Render())
}

func TestReplaceOutOfRange(t *testing.T) {
	doc, err := document.Parse("<document><a/></document>")
	require.NoError(t, err)

	_, err = doc.Insert(0, document.Replace(5), "", "z", nil)
	require.Error(t, err)

	var oor document.ReplaceChildOutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 0, oor.LastIndex)
}

func TestInsertUnknownParentIsNotFound(t *testing.T) {
	doc, err := document.Parse("<document/>")
	require.NoError(t, err)

	_, err = doc.Insert(99, document.InsertBack, "", "x", nil)
	require.Error(t, err)

	var nf document.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestDropRootIsRefused(t *testing.T) {
	doc, err := document.Parse("<document><a/></document>")
	require.NoError(t, err)

	err = doc.Drop(document.EntityRef{Kind: document.EntityElement, Index: 0})
	require.ErrorIs(t, err, document.ErrRefuseDropRoot)

	require.Equal(t, "<document>\n\t<a />\n</document>\n", doc.Render())
}

func TestDropLeafElement(t *testing.T) {
	doc, err := document.Parse("<document><a/><b/></document>")
	require.NoError(t, err)

	root := doc.Root()
	err = doc.Drop(root.Children[0])
	require.NoError(t, err)

	require.Equal(t, "<document>\n\t<b />\n</document>\n", doc.Render())
}

func TestDropRecursesIntoDescendants(t *testing.T) {
	doc, err := document.Parse("<document><a><b/><c/></a></document>")
	require.NoError(t, err)

	root := doc.Root()
	aRef := root.Children[0]
	a := doc.Element(aRef.Index)
	require.Len(t, a.Children, 2)
	bIdx := a.Children[0].Index
	cIdx := a.Children[1].Index

	require.NoError(t, doc.Drop(aRef))

	assert.Nil(t, doc.Element(aRef.Index))
	assert.Nil(t, doc.Element(bIdx))
	assert.Nil(t, doc.Element(cIdx))
	assert.Empty(t, doc.Root().Children)
}

func TestDropUnknownEntityIsNotFound(t *testing.T) {
	doc, err := document.Parse("<document/>")
	require.NoError(t, err)

	err = doc.Drop(document.EntityRef{Kind: document.EntityElement, Index: 99})
	require.Error(t, err)

	var nf document.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestIndexStabilityAfterUnrelatedDrop(t *testing.T) {
	doc, err := document.Parse("<document><a/><b/><c/></document>")
	require.NoError(t, err)

	root := doc.Root()
	bRef := root.Children[1]
	cRef := root.Children[2]

	require.NoError(t, doc.Drop(bRef))

	// c's index is untouched by dropping its sibling b.
	c := doc.Element(cRef.Index)
	require.NotNil(t, c)
	assert.Equal(t, "c", c.Local)
}

func TestTreeConsistencyAfterInsert(t *testing.T) {
	doc, err := document.Parse("<document><a/></document>")
	require.NoError(t, err)

	ref, err := doc.Insert(0, document.InsertBack, "", "b", nil)
	require.NoError(t, err)

	b := doc.Element(ref.Index)
	require.NotNil(t, b)
	assert.Equal(t, 0, b.Parent)

	root := doc.Root()
	found := 0
	for _, c := range root.Children {
		if c == ref {
			found++
		}
	}
	assert.Equal(t, 1, found, "root.Children should contain the new element's EntityRef exactly once")
}
