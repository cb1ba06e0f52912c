package document_test

import (
	"testing"

	"github.com/carterisonline/trax/pkg/document"
)

// FuzzDocumentParse asserts only that Parse never panics, and that on
// success Render never panics either.
func FuzzDocumentParse(f *testing.F) {
	f.Add("<document></document>")
	f.Add("<document><one key=\"value\" /></document>")
	f.Add("<document><two with:modifier><three/></two></document>")
	f.Add("<document><a><b></a></b></document>")
	f.Add("")
	f.Add("/* comment */")
	f.Add("<doxument></doxument>")

	f.Fuzz(func(t *testing.T, input string) {
		doc, err := document.Parse(input)
		if err != nil {
			return
		}
		_ = doc.Render()
	})
}
