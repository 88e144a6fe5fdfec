package vdom

// CollectListeners indexes a VNode's mounted listener attributes by the
// host element they are attached to, recursing into non-empty fragments.
// The event-dispatch collaborator uses the result to route a raw host
// event to the listener(s) on its target element. Attributes whose
// MountedElement cell is still unset are skipped: they have not been
// mounted yet and cannot receive events.
func CollectListeners(v *VNode) map[ElementID][]*Attribute {
	out := make(map[ElementID][]*Attribute)
	collectListeners(v, out)
	return out
}

func collectListeners(v *VNode, out map[ElementID][]*Attribute) {
	if v == nil {
		return
	}
	for _, attr := range v.DynamicAttrs {
		if attr == nil || attr.Value.Kind != ValueListener {
			continue
		}
		id, ok := attr.MountedElement.Get()
		if !ok {
			continue
		}
		out[id] = append(out[id], attr)
	}
	for _, dyn := range v.DynamicNodes {
		frag, ok := dyn.(*VFragment)
		if !ok {
			continue
		}
		for _, child := range frag.Nodes {
			collectListeners(child, out)
		}
	}
}

// EachText visits every VText slot of a VNode, recursing into fragments.
func EachText(v *VNode, fn func(*VText)) {
	if v == nil {
		return
	}
	for _, dyn := range v.DynamicNodes {
		switch n := dyn.(type) {
		case *VText:
			fn(n)
		case *VFragment:
			for _, child := range n.Nodes {
				EachText(child, fn)
			}
		}
	}
}
