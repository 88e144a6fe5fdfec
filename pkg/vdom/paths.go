package vdom

import (
	"fmt"

	werr "github.com/weft-ui/weft/internal/errors"
)

// ResolvePath follows a recorded path (root index, then child indices)
// to the TemplateNode it addresses. An unresolvable path panics: paths
// are recorded at build time, so failure means a corrupted template.
func ResolvePath(tpl *Template, path []byte) *TemplateNode {
	n, ok := lookupPath(tpl.Roots, path)
	if !ok {
		panic(fmt.Sprintf("vdom: path %v does not resolve in template %q", path, tpl.ID))
	}
	return n
}

// lookupPath is the non-panicking resolver used by Validate.
func lookupPath(roots []TemplateNode, path []byte) (*TemplateNode, bool) {
	if len(path) == 0 || int(path[0]) >= len(roots) {
		return nil, false
	}
	node := &roots[path[0]]
	for _, idx := range path[1:] {
		if node.Kind != NodeElement || int(idx) >= len(node.Children) {
			return nil, false
		}
		node = &node.Children[int(idx)]
	}
	return node, true
}

// CountDynamicNodes returns the number of NodeDynamic and NodeDynamicText
// placeholders reachable from roots.
func CountDynamicNodes(roots []TemplateNode) int {
	count := 0
	for i := range roots {
		count += countDynamicNodes(&roots[i])
	}
	return count
}

func countDynamicNodes(n *TemplateNode) int {
	if n.IsPlaceholder() {
		return 1
	}
	count := 0
	for i := range n.Children {
		count += countDynamicNodes(&n.Children[i])
	}
	return count
}

// CountDynamicAttrs returns the number of AttrDynamic placeholders
// reachable from roots.
func CountDynamicAttrs(roots []TemplateNode) int {
	count := 0
	for i := range roots {
		count += countDynamicAttrs(&roots[i])
	}
	return count
}

func countDynamicAttrs(n *TemplateNode) int {
	count := 0
	for i := range n.Attrs {
		if n.Attrs[i].Kind == AttrDynamic {
			count++
		}
	}
	for i := range n.Children {
		count += countDynamicAttrs(&n.Children[i])
	}
	return count
}

// Validate checks the template's core invariant: the path tables cover
// every placeholder, positionally matched to the placeholder indices, and
// every recorded path resolves to the node it was recorded for. Templates
// produced by BuildTemplate satisfy this by construction; Validate exists
// for templates arriving from manifests or the wire.
func (t *Template) Validate() error {
	if got, want := len(t.NodePaths), CountDynamicNodes(t.Roots); got != want {
		return werr.New("W001").WithDetail(fmt.Sprintf(
			"template %q has %d dynamic node placeholder(s) but %d node path(s)", t.ID, want, got))
	}
	if got, want := len(t.AttrPaths), CountDynamicAttrs(t.Roots); got != want {
		return werr.New("W002").WithDetail(fmt.Sprintf(
			"template %q has %d dynamic attribute placeholder(s) but %d attr path(s)", t.ID, want, got))
	}

	for i, path := range t.NodePaths {
		node, ok := lookupPath(t.Roots, path)
		if !ok {
			return werr.New("W003").WithDetail(fmt.Sprintf(
				"template %q: node path %d (%v) does not resolve", t.ID, i, path))
		}
		if !node.IsPlaceholder() || node.Index != i {
			return werr.New("W003").WithDetail(fmt.Sprintf(
				"template %q: node path %d (%v) resolves to %s(index=%d), want placeholder index %d",
				t.ID, i, path, node.Kind, node.Index, i))
		}
	}

	for i, path := range t.AttrPaths {
		node, ok := lookupPath(t.Roots, path)
		if !ok {
			return werr.New("W003").WithDetail(fmt.Sprintf(
				"template %q: attr path %d (%v) does not resolve", t.ID, i, path))
		}
		if node.Kind != NodeElement || !hasDynamicAttr(node, i) {
			return werr.New("W003").WithDetail(fmt.Sprintf(
				"template %q: attr path %d (%v) resolves to a node without dynamic attribute %d",
				t.ID, i, path, i))
		}
	}
	return nil
}

func hasDynamicAttr(n *TemplateNode, index int) bool {
	for i := range n.Attrs {
		if n.Attrs[i].Kind == AttrDynamic && n.Attrs[i].Index == index {
			return true
		}
	}
	return false
}
