package document

import (
	"bytes"
	"sync"
)

// bufferPool reduces render-time allocation the way the teacher corpus's
// XML renderer pools its output buffers.
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// putBuffer returns buf to the pool unless it has grown unreasonably large,
// so one enormous render doesn't pin that much memory in the pool forever.
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() <= 64*1024 {
		bufferPool.Put(buf)
	}
}

// Render produces the canonical tab-indented textual form of the document,
// starting at the root element. Attribute and child order match insertion
// order; modifiers are serialized without "=value".
func (d *Document) Render() string {
	buf := getBuffer()
	defer putBuffer(buf)

	d.renderElement(buf, 0, 0)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return string(out)
}

func (d *Document) renderElement(buf *bytes.Buffer, i, depth int) {
	e := d.elements[i]
	if e == nil {
		return
	}

	writeIndent(buf, depth)
	buf.WriteByte('<')
	buf.WriteString(e.FullName())
	for _, a := range e.Attributes {
		buf.WriteByte(' ')
		buf.WriteString(a.FullName())
		if a.Present {
			buf.WriteString(`="`)
			buf.WriteString(a.Value)
			buf.WriteByte('"')
		}
	}

	if len(e.Children) == 0 {
		buf.WriteString(" />\n")
		return
	}

	buf.WriteString(">\n")
	for _, ref := range e.Children {
		switch ref.Kind {
		case EntityElement:
			d.renderElement(buf, ref.Index, depth+1)
		case EntityText:
			if t := d.texts[ref.Index]; t != nil {
				writeIndent(buf, depth+1)
				buf.WriteString(t.Content)
				buf.WriteByte('\n')
			}
		}
	}
	writeIndent(buf, depth)
	buf.WriteString("</")
	buf.WriteString(e.FullName())
	buf.WriteString(">\n")
}

func writeIndent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteByte('\t')
	}
}
