package panxml

import (
	"encoding/xml"
	"strings"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// Marshal serializes a node tree as an indented XML document with a
// declaration header. The output parses back into an equivalent tree and
// is accepted by PAN-OS imports.
func Marshal(root *Node) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	writeNode(&b, root, 0)
	return []byte(b.String())
}

func writeNode(b *strings.Builder, n *Node, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteByte('<')
	b.WriteString(n.Tag)
	for _, a := range n.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		xml.EscapeText(b, []byte(a.Value))
		b.WriteByte('"')
	}
	if len(n.Children) == 0 && n.Text == "" {
		b.WriteString("/>\n")
		return
	}
	b.WriteByte('>')
	if n.Text != "" {
		xml.EscapeText(b, []byte(n.Text))
	}
	if len(n.Children) > 0 {
		b.WriteByte('\n')
		for _, c := range n.Children {
			writeNode(b, c, depth+1)
		}
		b.WriteString(indent)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteString(">\n")
}
