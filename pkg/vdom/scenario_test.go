package vdom

import "testing"

// These tests walk the data contracts the way a reconciler consumes
// them: two renders of the same template, the path tables locating the
// dynamic slots, and the identity cells carrying host handles across
// renders. The "reconciler" here is the minimal loop the contracts are
// designed for; the real algorithm lives outside this module.

// diffTexts compares the text slots of two renders of the same template
// and returns the slot indices whose values changed.
func diffTexts(old, next *VNode) []int {
	var changed []int
	for i, dyn := range old.DynamicNodes {
		oldText, ok := dyn.(*VText)
		if !ok {
			continue
		}
		newText, ok := next.DynamicNodes[i].(*VText)
		if !ok {
			continue
		}
		if oldText.Value != newText.Value {
			changed = append(changed, i)
		}
	}
	return changed
}

func TestScenarioSingleTextUpdate(t *testing.T) {
	// <div><span>{0}</span></div> rendered twice with one changed text.
	tpl := MustBuildTemplate("scenario/text",
		Element("div", nil, DynamicText(0)),
	)

	old := MustNew(tpl, "", []DynamicNode{&VText{Value: "3 items"}}, nil)
	old.DynamicNodes[0].(*VText).ID.Set(42) // mounted on element 42

	next := MustNew(tpl, "", []DynamicNode{&VText{Value: "4 items"}}, nil)

	if old.Template != next.Template {
		t.Fatal("renders of one call site must share the template pointer")
	}

	changed := diffTexts(old, next)
	if len(changed) != 1 || changed[0] != 0 {
		t.Fatalf("changed slots = %v, want [0]", changed)
	}

	// The path table locates the one changed slot without touching the
	// static skeleton.
	path := tpl.NodePaths[changed[0]]
	if node := ResolvePath(tpl, path); node.Kind != NodeDynamicText {
		t.Errorf("path %v resolves to %s, want DynamicText", path, node.Kind)
	}
	if len(path) != 2 || path[0] != 0 || path[1] != 0 {
		t.Errorf("path = %v, want [0 0]", path)
	}

	// The mount identity carries over: the update targets element 42.
	id, ok := old.DynamicNodes[0].(*VText).ID.Get()
	if !ok || id != 42 {
		t.Errorf("target = (%d, %v), want (42, true)", id, ok)
	}
}

func TestScenarioAttributePatchVersusReplace(t *testing.T) {
	oldVal := TextValue("count: 3")
	patchVal := TextValue("count: 4")
	replaceVal := IntValue(4)

	// Same variant, different value: legal in-place update.
	if !oldVal.MatchesType(patchVal) {
		t.Error("same-kind values must match type")
	}
	if oldVal.Equal(patchVal) {
		t.Error("changed value must compare unequal")
	}

	// Different variant: the slot must be torn down and replaced.
	if oldVal.MatchesType(replaceVal) {
		t.Error("cross-kind values must not match type")
	}

	// Unchanged value: no write at all.
	if !oldVal.Equal(TextValue("count: 3")) {
		t.Error("unchanged value must compare equal")
	}
}

func TestScenarioEmptyFragmentAnchorStability(t *testing.T) {
	tpl := MustBuildTemplate("scenario/list",
		Element("ul", nil, Dynamic(0)),
	)

	itemTpl := MustBuildTemplate("scenario/item",
		Element("li", nil, DynamicText(0)),
	)

	// First render: the list is empty, so the fragment mounts a
	// placeholder anchor in the host tree.
	empty := &VFragment{}
	first := MustNew(tpl, "", []DynamicNode{empty}, nil)
	if !empty.IsEmpty() {
		t.Fatal("fragment with no nodes must be empty")
	}
	empty.ID.Set(7) // anchor mounted as element 7

	// Second render: items appear. The reconciler replaces the anchor,
	// reading the stable identity from the previous render's cell.
	items := &VFragment{Nodes: []*VNode{
		MustNew(itemTpl, "a", []DynamicNode{&VText{Value: "first"}}, nil),
	}}
	second := MustNew(tpl, "", []DynamicNode{items}, nil)

	anchor, ok := empty.ID.Get()
	if !ok || anchor != 7 {
		t.Fatalf("anchor = (%d, %v), want (7, true)", anchor, ok)
	}
	if items.IsEmpty() {
		t.Error("fragment with nodes must not be empty")
	}

	// Third render: the list empties again; the new anchor gets a fresh
	// identity from the allocator, the old one is recycled.
	alloc := NewAllocator()
	for i := 0; i < 7; i++ {
		alloc.Acquire()
	}
	alloc.Release(anchor)
	emptyAgain := &VFragment{}
	third := MustNew(tpl, "", []DynamicNode{emptyAgain}, nil)
	emptyAgain.ID.Set(alloc.Acquire())

	newAnchor, ok := emptyAgain.ID.Get()
	if !ok || newAnchor != anchor {
		t.Errorf("recycled anchor = (%d, %v), want (%d, true)", newAnchor, ok, anchor)
	}

	_ = first
	_ = second
	_ = third
}
