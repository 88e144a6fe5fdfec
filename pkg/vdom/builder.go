package vdom

import (
	"fmt"

	werr "github.com/weft-ui/weft/internal/errors"
)

// Element creates a static element node.
func Element(tag string, attrs []TemplateAttribute, children ...TemplateNode) TemplateNode {
	return TemplateNode{Kind: NodeElement, Tag: tag, Attrs: attrs, Children: children}
}

// ElementNS creates a static element node in a namespace (SVG, MathML).
func ElementNS(tag, namespace string, attrs []TemplateAttribute, children ...TemplateNode) TemplateNode {
	return TemplateNode{Kind: NodeElement, Tag: tag, Namespace: namespace, Attrs: attrs, Children: children}
}

// StaticText creates a static text node.
func StaticText(text string) TemplateNode {
	return TemplateNode{Kind: NodeText, Text: text}
}

// Dynamic creates a placeholder for the dynamic subtree at slot index.
func Dynamic(index int) TemplateNode {
	return TemplateNode{Kind: NodeDynamic, Index: index}
}

// DynamicText creates a placeholder for dynamic text at slot index.
func DynamicText(index int) TemplateNode {
	return TemplateNode{Kind: NodeDynamicText, Index: index}
}

// StaticAttr creates a static attribute.
func StaticAttr(name, value string) TemplateAttribute {
	return TemplateAttribute{Kind: AttrStatic, Name: name, Value: value}
}

// VolatileAttr creates a static attribute whose host property can drift
// outside the framework's control (form values) and must be reassigned
// on every patch.
func VolatileAttr(name, value string) TemplateAttribute {
	return TemplateAttribute{Kind: AttrStatic, Name: name, Value: value, Volatile: true}
}

// DynamicAttr creates a placeholder for the dynamic attribute at slot
// index.
func DynamicAttr(index int) TemplateAttribute {
	return TemplateAttribute{Kind: AttrDynamic, Index: index}
}

// BuildTemplate assembles an immutable Template from root nodes,
// recording the root-to-node path of every placeholder so the reconciler
// can jump to dynamic positions without walking the static skeleton.
// Placeholder indices must form the contiguous ranges 0..n-1 in document
// encounter order; anything else fails with a coded diagnostic.
func BuildTemplate(id TemplateID, roots ...TemplateNode) (*Template, error) {
	nodeCount := CountDynamicNodes(roots)
	attrCount := CountDynamicAttrs(roots)

	nodePaths := make([][]byte, nodeCount)
	attrPaths := make([][]byte, attrCount)

	if len(roots) > 256 {
		return nil, werr.New("W004").WithDetail(fmt.Sprintf(
			"template %q: %d roots cannot be path-addressed (max 256)", id, len(roots)))
	}

	nextNode, nextAttr := 0, 0
	for r := range roots {
		err := recordPaths(id, &roots[r], []byte{byte(r)}, nodePaths, attrPaths, &nextNode, &nextAttr)
		if err != nil {
			return nil, err
		}
	}

	return &Template{
		ID:        id,
		Roots:     roots,
		NodePaths: nodePaths,
		AttrPaths: attrPaths,
	}, nil
}

// MustBuildTemplate is BuildTemplate for templates written by hand at
// build time, where a malformed placeholder index is a bug.
func MustBuildTemplate(id TemplateID, roots ...TemplateNode) *Template {
	t, err := BuildTemplate(id, roots...)
	if err != nil {
		panic(err)
	}
	return t
}

func recordPaths(id TemplateID, n *TemplateNode, path []byte, nodePaths, attrPaths [][]byte, nextNode, nextAttr *int) error {
	if n.IsPlaceholder() {
		if n.Index != *nextNode {
			return werr.New("W004").WithDetail(fmt.Sprintf(
				"template %q: placeholder at path %v carries index %d, encounter order requires %d",
				id, path, n.Index, *nextNode))
		}
		nodePaths[n.Index] = append([]byte(nil), path...)
		*nextNode++
		return nil
	}

	for i := range n.Attrs {
		if n.Attrs[i].Kind != AttrDynamic {
			continue
		}
		if n.Attrs[i].Index != *nextAttr {
			return werr.New("W004").WithDetail(fmt.Sprintf(
				"template %q: dynamic attribute at path %v carries index %d, encounter order requires %d",
				id, path, n.Attrs[i].Index, *nextAttr))
		}
		attrPaths[n.Attrs[i].Index] = append([]byte(nil), path...)
		*nextAttr++
	}

	if len(n.Children) > 256 {
		return werr.New("W004").WithDetail(fmt.Sprintf(
			"template %q: element at path %v has %d children (max 256)", id, path, len(n.Children)))
	}
	for c := range n.Children {
		err := recordPaths(id, &n.Children[c], append(path, byte(c)), nodePaths, attrPaths, nextNode, nextAttr)
		if err != nil {
			return err
		}
	}
	return nil
}
