package panxml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseError describes a malformed configuration document. Loading is all
// or nothing: the first syntax error aborts the parse and no tree is
// returned.
type ParseError struct {
	Path string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
	case e.Path != "":
		return fmt.Sprintf("%s: %s", e.Path, e.Msg)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

// ParseFile loads and parses an XML configuration export from disk.
func ParseFile(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	root, err := Parse(f)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return root, nil
}

// Parse builds a node tree from an XML document. Element, attribute, and
// member order is preserved; surrounding whitespace in character data is
// trimmed. Comments and processing instructions are dropped.
func Parse(r io.Reader) (*Node, error) {
	type frame struct {
		node *Node
		text strings.Builder
	}

	dec := xml.NewDecoder(r)
	var (
		root  *Node
		stack []*frame
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			var se *xml.SyntaxError
			if errors.As(err, &se) {
				return nil, &ParseError{Line: se.Line, Msg: se.Msg}
			}
			return nil, fmt.Errorf("read config: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Tag: t.Name.Local}
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				n.Attrs = append(n.Attrs, Attr{Key: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, &ParseError{Msg: "junk after document element"}
				}
				root = n
			} else {
				parent := stack[len(stack)-1].node
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, &frame{node: n})
		case xml.EndElement:
			top := stack[len(stack)-1]
			top.node.Text = strings.TrimSpace(top.text.String())
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}
	if root == nil {
		return nil, &ParseError{Msg: "no element found"}
	}
	return root, nil
}
