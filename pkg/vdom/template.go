package vdom

// TemplateID identifies a template across renders. By convention it is
// the source location of the call site that produced the template, e.g.
// "app/views/card.go:42:8". Two renders with the same TemplateID are
// "the same template with new values" to the reconciler.
type TemplateID = string

// Template is an immutable description of a tree's static shape plus the
// path indices locating its dynamic holes. One Template is built per call
// site and shared by every VNode that call site produces; it owns no
// per-render state and exposes no mutation API.
type Template struct {
	ID TemplateID

	// Roots are the root-level nodes of the static skeleton.
	Roots []TemplateNode

	// NodePaths[i] locates the placeholder carrying dynamic-node index i:
	// the first byte is the root index, each following byte a child index.
	// len(NodePaths) always equals the number of NodeDynamic and
	// NodeDynamicText placeholders under Roots.
	NodePaths [][]byte

	// AttrPaths[i] locates the element carrying dynamic-attribute index i,
	// in the same root-then-children encoding. Elements with several
	// dynamic attributes contribute one (identical) path per attribute.
	AttrPaths [][]byte
}

// NodeKind is the TemplateNode type discriminator.
type NodeKind uint8

const (
	NodeElement     NodeKind = iota // Static element, may contain placeholders
	NodeText                        // Static text
	NodeDynamic                     // Placeholder for a whole dynamic subtree
	NodeDynamicText                 // Placeholder for dynamic text only
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case NodeElement:
		return "Element"
	case NodeText:
		return "Text"
	case NodeDynamic:
		return "Dynamic"
	case NodeDynamicText:
		return "DynamicText"
	default:
		return "Unknown"
	}
}

// TemplateNode is one node of the static skeleton. Kind selects which
// fields are meaningful: Tag/Namespace/Attrs/Children/InnerOpt for
// NodeElement, Text for NodeText, Index for the two placeholder kinds.
type TemplateNode struct {
	Kind      NodeKind
	Tag       string
	Namespace string
	Attrs     []TemplateAttribute
	Children  []TemplateNode
	// InnerOpt marks elements whose children may be optimized into a
	// single innerHTML-style write by the host backend.
	InnerOpt bool
	Text     string
	// Index is the dynamic slot this placeholder fills. Placeholder
	// indices follow document encounter order during construction and
	// match the position of the recorded path in NodePaths.
	Index int
}

// IsPlaceholder returns true for the two dynamic placeholder kinds.
func (n *TemplateNode) IsPlaceholder() bool {
	return n.Kind == NodeDynamic || n.Kind == NodeDynamicText
}

// AttrKind is the TemplateAttribute type discriminator.
type AttrKind uint8

const (
	AttrStatic  AttrKind = iota // Fixed name and value, known at build time
	AttrDynamic                 // Placeholder indexing into DynamicAttrs
)

// String returns the string representation of the AttrKind.
func (k AttrKind) String() string {
	switch k {
	case AttrStatic:
		return "Static"
	case AttrDynamic:
		return "Dynamic"
	default:
		return "Unknown"
	}
}

// TemplateAttribute is one attribute slot on a static element: either a
// fully static attribute or a placeholder for a per-render Attribute.
type TemplateAttribute struct {
	Kind      AttrKind
	Name      string
	Value     string
	Namespace string
	// Volatile marks attributes whose host property can change outside
	// the framework (form input values, scroll positions). The host
	// backend must reassign them on every patch rather than trusting the
	// last written value.
	Volatile bool
	Index    int
}
