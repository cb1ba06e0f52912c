package document_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/carterisonline/trax/pkg/document"
)

// snapshot is a cmp-friendly projection of a document's tree shape, used to
// compare structure without depending on unexported Document internals.
type snapshot struct {
	Name     string
	Attrs    []document.Attribute
	Children []any // snapshot or string (text content)
}

func snapshotElement(doc *document.Document, i int) snapshot {
	e := doc.Element(i)
	s := snapshot{Name: e.FullName(), Attrs: e.Attributes}
	for _, ref := range e.Children {
		if ref.Kind == document.EntityText {
			s.Children = append(s.Children, doc.Text(ref.Index).Content)
		} else {
			s.Children = append(s.Children, snapshotElement(doc, ref.Index))
		}
	}
	return s
}

func TestTreeShapeMatchesExpectedStructure(t *testing.T) {
	doc, err := document.Parse(`<document><one key="value" /><two with:modifier><three/></two></document>`)
	require.NoError(t, err)

	got := snapshotElement(doc, 0)
	want := snapshot{
		Name: "document",
		Children: []any{
			snapshot{Name: "one", Attrs: []document.Attribute{{Local: "key", Value: "value", Present: true}}},
			snapshot{
				Name:  "two",
				Attrs: []document.Attribute{{Prefix: "with", Local: "modifier"}},
				Children: []any{
					snapshot{Name: "three"},
				},
			},
		},
	}

	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("tree shape mismatch (-want +got):\n%s", diff)
	}
}

func TestTreeShapeAfterInsertMatchesExpectedStructure(t *testing.T) {
	doc, err := document.Parse(`<document><a/></document>`)
	require.NoError(t, err)

	_, err = doc.Insert(0, document.InsertBack, "", "b", []document.Attribute{{Local: "id", Value: "1", Present: true}})
	require.NoError(t, err)

	got := snapshotElement(doc, 0)
	want := snapshot{
		Name: "document",
		Children: []any{
			snapshot{Name: "a"},
			snapshot{Name: "b", Attrs: []document.Attribute{{Local: "id", Value: "1", Present: true}}},
		},
	}

	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("tree shape mismatch (-want +got):\n%s", diff)
	}
}
