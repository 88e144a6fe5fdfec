package vdom

// DynamicNode is the per-render payload filling a NodeDynamic or
// NodeDynamicText placeholder. The variant set is closed: VComponent,
// VText and VFragment are the only implementations.
type DynamicNode interface {
	isDynamicNode()
}

// VComponent is an embedded child component instance.
type VComponent struct {
	// Name is the component's declared name, kept for diagnostics.
	Name string

	// StaticProps reports whether Props are structurally comparable, so
	// the reconciler may memoize "same render function, equal props".
	StaticProps bool

	// Scope is assigned once the component is mounted by the external
	// scope state machine.
	Scope ScopeCell

	// Props is the type-erased props value handed to the render function.
	Props any

	// Render identifies the component's render function. IDs are issued
	// by a RenderRegistry at registration time, so "same render function,
	// different props" and "different render function entirely" are
	// distinguishable without comparing code addresses.
	Render RenderID
}

func (*VComponent) isDynamicNode() {}

// VText is dynamic text content plus the host identity of the text node
// it is mounted into.
type VText struct {
	ID    ElementCell
	Value string
}

func (*VText) isDynamicNode() {}

// VFragment is a sequence of nested VNodes. A fragment that rendered
// nothing keeps a placeholder identity in ID so its siblings still have a
// stable anchor in the host tree.
type VFragment struct {
	// ID is the empty-fragment anchor. Only meaningful when Nodes is
	// empty.
	ID ElementCell

	Nodes []*VNode
}

func (*VFragment) isDynamicNode() {}

// IsEmpty reports whether the fragment rendered nothing and is standing
// in as an anchor.
func (f *VFragment) IsEmpty() bool {
	return len(f.Nodes) == 0
}

// IsComponent reports whether the dynamic node is an embedded component.
func IsComponent(n DynamicNode) bool {
	_, ok := n.(*VComponent)
	return ok
}
