package vdom

import "testing"

func TestCollectListenersSkipsUnmounted(t *testing.T) {
	tpl := MustBuildTemplate("app/buttons",
		Element("div", nil,
			Element("button", []TemplateAttribute{DynamicAttr(0)}),
			Element("button", []TemplateAttribute{DynamicAttr(1)}),
		),
	)

	mounted := &Attribute{Name: "onclick", Value: ListenerValue(func(*Event) {})}
	mounted.MountedElement.Set(10)
	unmounted := &Attribute{Name: "onclick", Value: ListenerValue(func(*Event) {})}

	v := MustNew(tpl, "", nil, []*Attribute{mounted, unmounted})

	table := CollectListeners(v)
	if len(table) != 1 {
		t.Fatalf("table has %d element(s), want 1", len(table))
	}
	if got := table[10]; len(got) != 1 || got[0] != mounted {
		t.Errorf("table[10] = %v, want the mounted attribute", got)
	}
}

func TestCollectListenersIgnoresNonListeners(t *testing.T) {
	tpl := MustBuildTemplate("app/mixed",
		Element("input", []TemplateAttribute{DynamicAttr(0), DynamicAttr(1)}),
	)

	value := &Attribute{Name: "value", Value: TextValue("x")}
	value.MountedElement.Set(4)
	listener := &Attribute{Name: "oninput", Value: ListenerValue(func(*Event) {})}
	listener.MountedElement.Set(4)

	v := MustNew(tpl, "", nil, []*Attribute{value, listener})

	table := CollectListeners(v)
	if got := table[4]; len(got) != 1 || got[0] != listener {
		t.Errorf("table[4] = %v, want only the listener attribute", got)
	}
}

func TestCollectListenersRecursesFragments(t *testing.T) {
	inner := MustBuildTemplate("app/item",
		Element("li", []TemplateAttribute{DynamicAttr(0)}),
	)
	attr := &Attribute{Name: "onclick", Value: ListenerValue(func(*Event) {})}
	attr.MountedElement.Set(21)
	child := MustNew(inner, "item-0", nil, []*Attribute{attr})

	outer := MustBuildTemplate("app/listwrap", Element("ul", nil, Dynamic(0)))
	v := MustNew(outer, "", []DynamicNode{&VFragment{Nodes: []*VNode{child}}}, nil)

	table := CollectListeners(v)
	if got := table[21]; len(got) != 1 || got[0] != attr {
		t.Errorf("table[21] = %v, want the nested listener", got)
	}
}

func TestEachText(t *testing.T) {
	inner := MustBuildTemplate("app/leaf", Element("span", nil, DynamicText(0)))
	child := MustNew(inner, "", []DynamicNode{&VText{Value: "nested"}}, nil)

	outer := MustBuildTemplate("app/texts",
		Element("div", nil, DynamicText(0), Dynamic(1)),
	)
	v := MustNew(outer, "", []DynamicNode{
		&VText{Value: "top"},
		&VFragment{Nodes: []*VNode{child}},
	}, nil)

	var seen []string
	EachText(v, func(txt *VText) { seen = append(seen, txt.Value) })

	if len(seen) != 2 || seen[0] != "top" || seen[1] != "nested" {
		t.Errorf("seen = %v, want [top nested]", seen)
	}
}
