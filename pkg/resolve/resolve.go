// Package resolve builds typed catalogs of named objects from a parsed
// PAN-OS export.
//
// Panorama repeats object definitions across scopes: device-group entries,
// shared sections, and bare device-level sections. One generic resolver
// walks a type-specific priority list of search paths and keeps exactly one
// definition per name. Per-type descriptors supply the paths and, for the
// four object families that use id-only reference markers, a stub
// predicate. Virtual and logical routers do not fit the name-keyed model
// and have their own aggregation in Routers.
package resolve

import "github.com/devnullNZ/Panorama2Terraform/pkg/panxml"

// Object is one catalog entry: the definition that won for its name, and
// whether that definition is a stub (a reference marker with no content).
type Object struct {
	Name string
	Node *panxml.Node
	Stub bool
}

// Catalog holds at most one Object per name and remembers the order in
// which names were first seen. Overwrites keep the original position.
type Catalog struct {
	index map[string]int
	items []Object
}

func NewCatalog() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Put records a full definition for name, displacing any earlier stub or
// full entry for the same name.
func (c *Catalog) Put(name string, node *panxml.Node) {
	if i, ok := c.index[name]; ok {
		c.items[i] = Object{Name: name, Node: node}
		return
	}
	c.index[name] = len(c.items)
	c.items = append(c.items, Object{Name: name, Node: node})
}

// PutStub records a stub placeholder for name. A stub never displaces an
// existing entry of either kind.
func (c *Catalog) PutStub(name string, node *panxml.Node) {
	if _, ok := c.index[name]; ok {
		return
	}
	c.index[name] = len(c.items)
	c.items = append(c.items, Object{Name: name, Node: node, Stub: true})
}

// Get returns the entry for name.
func (c *Catalog) Get(name string) (Object, bool) {
	if i, ok := c.index[name]; ok {
		return c.items[i], true
	}
	return Object{}, false
}

// Len returns the number of names in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// All returns the entries in first-seen order. The slice is shared with
// the catalog; callers must not modify it.
func (c *Catalog) All() []Object {
	return c.items
}

// TypeDesc describes how one object type is resolved: the type name used
// by the CLI, the search paths in priority order, and an optional stub
// predicate. A nil Stub means every entry counts as full.
type TypeDesc struct {
	Name  string
	Paths []string
	Stub  func(*panxml.Node) bool
}

// Resolve scans the descriptor's search paths in order and catalogs every
// named entry found. A full definition always overwrites the stored entry
// for its name, so the last full definition in scan order wins; a stub is
// recorded only when its name has not been seen at all. Resolving the same
// tree twice yields identical catalogs.
func Resolve(root *panxml.Node, desc TypeDesc) *Catalog {
	cat := NewCatalog()
	for _, path := range desc.Paths {
		for _, entry := range root.FindAll(path) {
			name := entry.Name()
			if name == "" {
				continue
			}
			if desc.Stub != nil && desc.Stub(entry) {
				cat.PutStub(name, entry)
				continue
			}
			cat.Put(name, entry)
		}
	}
	return cat
}
