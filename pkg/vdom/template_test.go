package vdom

import "testing"

func TestIsPlaceholder(t *testing.T) {
	tests := []struct {
		node TemplateNode
		want bool
	}{
		{Element("div", nil), false},
		{StaticText("x"), false},
		{Dynamic(0), true},
		{DynamicText(0), true},
	}
	for _, tt := range tests {
		if got := tt.node.IsPlaceholder(); got != tt.want {
			t.Errorf("IsPlaceholder(%s) = %v, want %v", tt.node.Kind, got, tt.want)
		}
	}
}

func TestKindStrings(t *testing.T) {
	if NodeDynamicText.String() != "DynamicText" {
		t.Errorf("NodeDynamicText = %q", NodeDynamicText.String())
	}
	if NodeKind(99).String() != "Unknown" {
		t.Errorf("NodeKind(99) = %q", NodeKind(99).String())
	}
	if AttrDynamic.String() != "Dynamic" {
		t.Errorf("AttrDynamic = %q", AttrDynamic.String())
	}
	if ValueListener.String() != "Listener" {
		t.Errorf("ValueListener = %q", ValueListener.String())
	}
}

func TestElementCell(t *testing.T) {
	var c ElementCell

	if _, ok := c.Get(); ok {
		t.Error("fresh cell reports set")
	}

	c.Set(17)
	id, ok := c.Get()
	if !ok || id != 17 {
		t.Errorf("Get = (%d, %v), want (17, true)", id, ok)
	}

	c.Clear()
	if _, ok := c.Get(); ok {
		t.Error("cleared cell reports set")
	}
}

func TestScopeCell(t *testing.T) {
	var c ScopeCell

	if _, ok := c.Get(); ok {
		t.Error("fresh scope cell reports assigned")
	}

	// Scope 0 is a valid scope, unlike element ID 0.
	c.Assign(0)
	id, ok := c.Get()
	if !ok || id != 0 {
		t.Errorf("Get = (%d, %v), want (0, true)", id, ok)
	}
}
