// Package split extracts standalone per-device-group configurations from a
// Panorama export. Each bundle carries the group's own subtree, the shared
// objects merged across every shared section in the export, and a
// best-effort associated template and template stack, assembled under a
// fresh document root so the result converts like a single-firewall export.
package split

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devnullNZ/Panorama2Terraform/pkg/panxml"
)

// ErrNotFound reports that a requested device group does not exist in the
// source document. Batch callers treat it as a per-group failure and keep
// going with the remaining groups.
var ErrNotFound = errors.New("device group not found")

// Bundle is one extracted device-group configuration. Root is the
// assembled document; DeviceGroup, Template and TemplateStack alias
// subtrees of the source document and must not be modified. Template and
// TemplateStack are nil when no association was found, Shared is nil when
// the export has no shared sections.
type Bundle struct {
	Group         string
	Root          *panxml.Node
	DeviceGroup   *panxml.Node
	Shared        *panxml.Node
	Template      *panxml.Node
	TemplateStack *panxml.Node
}

// Groups lists the device-group names in the document, first occurrence
// first, without duplicates.
func Groups(root *panxml.Node) []string {
	var names []string
	seen := make(map[string]bool)
	for _, e := range root.FindAll("//device-group/entry") {
		name := e.Name()
		if name == "" || seen[name] {
			continue
		}
		names = append(names, name)
		seen[name] = true
	}
	return names
}

// Extract builds the standalone configuration for one device group. The
// synthetic root mirrors a firewall export: a config element holding a
// devices/localhost.localdomain entry with the device-group and any
// associated template content, and the merged shared section alongside.
func Extract(root *panxml.Node, group string) (*Bundle, error) {
	var target *panxml.Node
	for _, e := range root.FindAll("//device-group/entry") {
		if e.Name() == group {
			target = e
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("device group %q: %w", group, ErrNotFound)
	}

	version := root.Attr("version")
	if version == "" {
		version = "10.0.0"
	}
	config := &panxml.Node{
		Tag:   "config",
		Attrs: []panxml.Attr{{Key: "version", Value: version}},
	}
	localhost := &panxml.Node{
		Tag:   "entry",
		Attrs: []panxml.Attr{{Key: "name", Value: "localhost.localdomain"}},
	}
	config.Children = append(config.Children, &panxml.Node{
		Tag:      "devices",
		Children: []*panxml.Node{localhost},
	})
	localhost.Children = append(localhost.Children, &panxml.Node{
		Tag:      "device-group",
		Children: []*panxml.Node{target},
	})

	b := &Bundle{Group: group, Root: config, DeviceGroup: target}

	if shared := mergeShared(root); shared != nil {
		config.Children = append(config.Children, shared)
		b.Shared = shared
	}
	if tpl := findTemplate(root, group); tpl != nil {
		localhost.Children = append(localhost.Children, &panxml.Node{
			Tag:      "template",
			Children: []*panxml.Node{tpl},
		})
		b.Template = tpl
	}
	if stack := findTemplateStack(root, group); stack != nil {
		localhost.Children = append(localhost.Children, &panxml.Node{
			Tag:      "template-stack",
			Children: []*panxml.Node{stack},
		})
		b.TemplateStack = stack
	}
	return b, nil
}

// mergeShared folds every shared section of the document into one
// synthetic shared node. The first section to carry a category tag adopts
// that category whole; later sections contribute only entries whose names
// the adopted category does not already hold, at any depth. Adopted
// categories are shallow copies so appends never touch the source tree.
func mergeShared(root *panxml.Node) *panxml.Node {
	sections := root.FindAll("//shared")
	if len(sections) == 0 {
		return nil
	}
	merged := &panxml.Node{Tag: "shared"}
	adopted := make(map[string]*panxml.Node)
	names := make(map[string]map[string]bool)
	for _, section := range sections {
		for _, category := range section.Children {
			dst, ok := adopted[category.Tag]
			if !ok {
				dst = &panxml.Node{
					Tag:      category.Tag,
					Attrs:    category.Attrs,
					Text:     category.Text,
					Children: append([]*panxml.Node(nil), category.Children...),
				}
				adopted[category.Tag] = dst
				names[category.Tag] = entryNameSet(dst)
				merged.Children = append(merged.Children, dst)
				continue
			}
			present := names[category.Tag]
			for _, entry := range category.FindAll("//entry") {
				name := entry.Name()
				if name == "" || present[name] {
					continue
				}
				dst.Children = append(dst.Children, entry)
				present[name] = true
				// An appended entry brings its nested entries along.
				for nested := range entryNameSet(entry) {
					present[nested] = true
				}
			}
		}
	}
	return merged
}

// entryNameSet collects the names of every entry below a node, at any depth.
func entryNameSet(n *panxml.Node) map[string]bool {
	set := make(map[string]bool)
	for _, entry := range n.FindAll("//entry") {
		if name := entry.Name(); name != "" {
			set[name] = true
		}
	}
	return set
}

// findTemplate associates a template with a device group: first an exact
// name match after dropping the DG- naming prefix, then the first template
// whose name contains the full group name case-insensitively. The
// document-order tie-break between several substring matches is part of
// the contract, ambiguous as it is.
func findTemplate(root *panxml.Node, group string) *panxml.Node {
	want := strings.ReplaceAll(group, "DG-", "")
	want = strings.ReplaceAll(want, "dg-", "")
	templates := root.FindAll("//template/entry")
	for _, t := range templates {
		if t.Name() == want {
			return t
		}
	}
	lower := strings.ToLower(group)
	for _, t := range templates {
		if strings.Contains(strings.ToLower(t.Name()), lower) {
			return t
		}
	}
	return nil
}

// findTemplateStack returns the first template stack whose member device
// list carries the group name.
func findTemplateStack(root *panxml.Node, group string) *panxml.Node {
	for _, ts := range root.FindAll("//template-stack/entry") {
		for _, member := range ts.FindAll("//devices/entry") {
			if member.Name() == group {
				return ts
			}
		}
	}
	return nil
}
