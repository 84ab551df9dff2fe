// Package panxml parses PAN-OS XML configuration exports into an immutable
// in-memory node tree and serializes node trees back to XML.
//
// The tree is read-only after parsing: navigation helpers never mutate it,
// so callers may resolve and extract from the same tree concurrently.
package panxml

import "strings"

// Attr is a single element attribute. Attribute order is preserved from the
// source document.
type Attr struct {
	Key   string
	Value string
}

// Node is one element of a parsed configuration document: a tag, its
// attributes in document order, its child elements in document order, and
// any character data directly inside it.
type Node struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Node
}

// Attr returns the value of the named attribute, or "" if absent.
func (n *Node) Attr(key string) string {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}

// Name returns the "name" identity attribute, or "" if absent.
func (n *Node) Name() string {
	return n.Attr("name")
}

// Child returns the first direct child with the given tag, or nil.
func (n *Node) Child(tag string) *Node {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// HasChild reports whether a direct child with the given tag exists.
func (n *Node) HasChild(tag string) bool {
	return n.Child(tag) != nil
}

// Find returns the first node matching path, or nil.
//
// Paths use the same shapes the PAN-OS export is queried with: "a/b/c"
// steps through direct children, "//a/b" matches an "a" element at any
// depth followed by a direct child "b", and "*" matches any tag. Results
// are in document order.
func (n *Node) Find(path string) *Node {
	if res := n.findAll(path, true); len(res) > 0 {
		return res[0]
	}
	return nil
}

// FindAll returns every node matching path, in document order.
func (n *Node) FindAll(path string) []*Node {
	return n.findAll(path, false)
}

func (n *Node) findAll(path string, first bool) []*Node {
	anywhere := false
	if strings.HasPrefix(path, "//") {
		anywhere = true
		path = path[2:]
	}
	segs := strings.Split(path, "/")
	if len(segs) == 0 || segs[0] == "" {
		return nil
	}

	var out []*Node
	if anywhere {
		// The first segment may start at any depth; the remaining
		// segments are direct-child steps. A node matches when its
		// tag chain below the search root ends with segs.
		var walk func(node *Node, chain []string) bool
		walk = func(node *Node, chain []string) bool {
			chain = append(chain, node.Tag)
			if chainMatches(chain, segs) {
				out = append(out, node)
				if first {
					return true
				}
			}
			for _, c := range node.Children {
				if walk(c, chain) {
					return true
				}
			}
			return false
		}
		for _, c := range n.Children {
			if walk(c, nil) {
				break
			}
		}
		return out
	}

	frontier := []*Node{n}
	for _, seg := range segs {
		var next []*Node
		for _, node := range frontier {
			for _, c := range node.Children {
				if segMatches(seg, c.Tag) {
					next = append(next, c)
				}
			}
		}
		frontier = next
		if len(frontier) == 0 {
			return nil
		}
	}
	if first && len(frontier) > 1 {
		frontier = frontier[:1]
	}
	return frontier
}

func segMatches(seg, tag string) bool {
	return seg == "*" || seg == tag
}

func chainMatches(chain, segs []string) bool {
	if len(chain) < len(segs) {
		return false
	}
	tail := chain[len(chain)-len(segs):]
	for i, seg := range segs {
		if !segMatches(seg, tail[i]) {
			return false
		}
	}
	return true
}

// FindText returns the trimmed text of the first node matching path, or ""
// when the path has no match.
func (n *Node) FindText(path string) string {
	if node := n.Find(path); node != nil {
		return node.Text
	}
	return ""
}

// Members collects the non-empty texts of "<path>/member" elements at any
// depth, in document order. PAN-OS uses member lists for every multi-value
// field (zones, addresses, applications, ...).
func (n *Node) Members(path string) []string {
	var out []string
	for _, m := range n.FindAll("//" + path + "/member") {
		if m.Text != "" {
			out = append(out, m.Text)
		}
	}
	return out
}
