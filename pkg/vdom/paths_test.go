package vdom

import (
	"testing"

	werr "github.com/weft-ui/weft/internal/errors"
)

func TestResolvePath(t *testing.T) {
	tpl := MustBuildTemplate("app/resolve",
		Element("div", nil,
			StaticText("head"),
			Element("span", nil, DynamicText(0)),
		),
	)

	node := ResolvePath(tpl, tpl.NodePaths[0])
	if node.Kind != NodeDynamicText || node.Index != 0 {
		t.Errorf("resolved %s(index=%d), want DynamicText(0)", node.Kind, node.Index)
	}

	root := ResolvePath(tpl, []byte{0})
	if root.Tag != "div" {
		t.Errorf("root tag = %q, want div", root.Tag)
	}
}

func TestResolvePathPanicsOnBadPath(t *testing.T) {
	tpl := MustBuildTemplate("app/panic", Element("div", nil))

	defer func() {
		if recover() == nil {
			t.Error("ResolvePath did not panic on an unresolvable path")
		}
	}()
	ResolvePath(tpl, []byte{0, 5})
}

func TestCountHelpers(t *testing.T) {
	roots := []TemplateNode{
		Element("div",
			[]TemplateAttribute{DynamicAttr(0), StaticAttr("id", "x")},
			DynamicText(0),
			Element("p", []TemplateAttribute{DynamicAttr(1)}, Dynamic(1)),
		),
		Dynamic(2),
	}

	if got := CountDynamicNodes(roots); got != 3 {
		t.Errorf("CountDynamicNodes = %d, want 3", got)
	}
	if got := CountDynamicAttrs(roots); got != 2 {
		t.Errorf("CountDynamicAttrs = %d, want 2", got)
	}
}

func TestValidateCountMismatch(t *testing.T) {
	tpl := &Template{
		ID:    "bad/counts",
		Roots: []TemplateNode{Element("div", nil, Dynamic(0))},
		// One placeholder, no recorded path.
	}
	if err := tpl.Validate(); !werr.IsCode(err, "W001") {
		t.Errorf("err = %v, want W001", err)
	}

	tpl = &Template{
		ID:        "bad/attrcounts",
		Roots:     []TemplateNode{Element("div", []TemplateAttribute{DynamicAttr(0)})},
		AttrPaths: [][]byte{{0}, {0}},
	}
	if err := tpl.Validate(); !werr.IsCode(err, "W002") {
		t.Errorf("err = %v, want W002", err)
	}
}

func TestValidatePathMismatch(t *testing.T) {
	// The path table points at the static text node instead of the
	// placeholder next to it.
	tpl := &Template{
		ID: "bad/paths",
		Roots: []TemplateNode{
			Element("div", nil, StaticText("x"), Dynamic(0)),
		},
		NodePaths: [][]byte{{0, 0}},
	}
	if err := tpl.Validate(); !werr.IsCode(err, "W003") {
		t.Errorf("err = %v, want W003", err)
	}
}

func TestValidateUnresolvablePath(t *testing.T) {
	tpl := &Template{
		ID: "bad/unresolvable",
		Roots: []TemplateNode{
			Element("div", nil, Dynamic(0)),
		},
		NodePaths: [][]byte{{4, 4}},
	}
	if err := tpl.Validate(); !werr.IsCode(err, "W003") {
		t.Errorf("err = %v, want W003", err)
	}
}

func TestValidateAttrPathWithoutDynamicAttr(t *testing.T) {
	tpl := &Template{
		ID: "bad/attrpath",
		Roots: []TemplateNode{
			Element("div",
				[]TemplateAttribute{DynamicAttr(0)},
				Element("span", nil),
			),
		},
		AttrPaths: [][]byte{{0, 0}}, // span has no dynamic attribute
	}
	if err := tpl.Validate(); !werr.IsCode(err, "W003") {
		t.Errorf("err = %v, want W003", err)
	}
}
