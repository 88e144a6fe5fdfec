package vdom

import (
	"fmt"

	werr "github.com/weft-ui/weft/internal/errors"
)

// EmptyTemplateID is the synthetic template behind VNode.Empty.
const EmptyTemplateID TemplateID = "weft/empty"

// emptyTemplate has zero roots and zero paths. Shared by every empty
// VNode; it is immutable like any other template.
var emptyTemplate = &Template{ID: EmptyTemplateID}

// VNode binds one Template to one render's dynamic values and to the
// concrete host identities recorded while the tree is mounted. A VNode is
// created fresh each render and superseded, never mutated in place, by
// the next render's VNode for the same call site.
type VNode struct {
	// Key identifies this instance among keyed siblings for move-versus-
	// recreate decisions. For fragments it is the key of the first root.
	Key string

	// Parent is the host element that owns this tree, when known. Zero
	// means unset. This is a back-reference, not an ownership edge.
	Parent ElementID

	// Template is shared and immutable.
	Template *Template

	// RootIDs holds one identity cell per template root, written by the
	// reconciler after mounting and read on later updates and removals.
	RootIDs []ElementCell

	// DynamicNodes and DynamicAttrs are positionally aligned with the
	// template's NodePaths and AttrPaths index spaces and live for the
	// duration of this render.
	DynamicNodes []DynamicNode
	DynamicAttrs []*Attribute
}

// New binds a template to one render's dynamic values. The slot counts
// must match the template's path tables exactly; a mismatch is a
// programmer error on the producer side and fails fast here rather than
// as an index panic deep inside a later traversal.
func New(tpl *Template, key string, nodes []DynamicNode, attrs []*Attribute) (*VNode, error) {
	if got, want := len(nodes), len(tpl.NodePaths); got != want {
		return nil, werr.New("W001").WithDetail(fmt.Sprintf(
			"template %q declares %d dynamic node slot(s), render supplied %d", tpl.ID, want, got))
	}
	if got, want := len(attrs), len(tpl.AttrPaths); got != want {
		return nil, werr.New("W002").WithDetail(fmt.Sprintf(
			"template %q declares %d dynamic attribute slot(s), render supplied %d", tpl.ID, want, got))
	}
	return &VNode{
		Key:          key,
		Template:     tpl,
		RootIDs:      make([]ElementCell, len(tpl.Roots)),
		DynamicNodes: nodes,
		DynamicAttrs: attrs,
	}, nil
}

// MustNew is New for templates and values known correct at build time.
func MustNew(tpl *Template, key string, nodes []DynamicNode, attrs []*Attribute) *VNode {
	v, err := New(tpl, key, nodes, attrs)
	if err != nil {
		panic(err)
	}
	return v
}

// Empty returns the sentinel VNode for a component that rendered
// nothing: a valid, diffable node over a template with zero roots and
// zero slots. Callers always receive a VNode, never nil, so the
// reconciler has no nullable branch.
func Empty() *VNode {
	return &VNode{Template: emptyTemplate}
}

// IsEmpty reports whether this is an empty sentinel node.
func (v *VNode) IsEmpty() bool {
	return len(v.Template.Roots) == 0
}

// DynamicRoot resolves the dynamic node at root position idx, or nil when
// that root is fully static. An out-of-range idx panics: root counts are
// template-fixed, so a bad index means a corrupted template, not a
// runtime data condition.
func (v *VNode) DynamicRoot(idx int) DynamicNode {
	if idx < 0 || idx >= len(v.Template.Roots) {
		panic(fmt.Sprintf("vdom: root index %d out of range for template %q with %d root(s)",
			idx, v.Template.ID, len(v.Template.Roots)))
	}
	root := &v.Template.Roots[idx]
	if !root.IsPlaceholder() {
		return nil
	}
	return v.DynamicNodes[root.Index]
}
