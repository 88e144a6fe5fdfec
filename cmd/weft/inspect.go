package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	werr "github.com/weft-ui/weft/internal/errors"
	"github.com/weft-ui/weft/pkg/vdom"
)

// manifest is the YAML description of one template. Placeholder indices
// are explicit so a manifest can be checked against the encounter-order
// rule rather than silently renumbered.
type manifest struct {
	ID    string         `yaml:"id"`
	Roots []manifestNode `yaml:"roots"`
}

// manifestNode is one static node. Exactly one of Element, Text,
// Dynamic or DynamicText should be present.
type manifestNode struct {
	Element   string         `yaml:"element,omitempty"`
	Namespace string         `yaml:"namespace,omitempty"`
	Inner     bool           `yaml:"inner,omitempty"`
	Attrs     []manifestAttr `yaml:"attrs,omitempty"`
	Children  []manifestNode `yaml:"children,omitempty"`

	Text *string `yaml:"text,omitempty"`

	Dynamic     *int `yaml:"dynamic,omitempty"`
	DynamicText *int `yaml:"dynamic-text,omitempty"`
}

type manifestAttr struct {
	Name      string `yaml:"name,omitempty"`
	Value     string `yaml:"value,omitempty"`
	Namespace string `yaml:"namespace,omitempty"`
	Volatile  bool   `yaml:"volatile,omitempty"`

	Dynamic *int `yaml:"dynamic,omitempty"`
}

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <manifest.yaml>",
		Short: "Validate a template manifest and print its dynamic slots",
		Long: `Inspect loads a YAML template manifest, builds the template through
the path-recording constructor, verifies the placeholder invariants and
prints the dynamic-slot table.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0])
		},
	}
}

func runInspect(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return werr.New("W140").WithDetail(err.Error())
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return werr.New("W140").WithDetail(err.Error()).Wrap(err)
	}
	if m.ID == "" {
		return werr.New("W140").WithDetail("manifest has no template id")
	}

	roots := make([]vdom.TemplateNode, 0, len(m.Roots))
	for i := range m.Roots {
		node, err := convertNode(&m.Roots[i])
		if err != nil {
			return err
		}
		roots = append(roots, node)
	}

	tpl, err := vdom.BuildTemplate(vdom.TemplateID(m.ID), roots...)
	if err != nil {
		return werr.New("W141").WithDetail(err.Error()).Wrap(err)
	}
	if err := tpl.Validate(); err != nil {
		return werr.New("W141").WithDetail(err.Error()).Wrap(err)
	}

	printTemplate(tpl)
	return nil
}

func convertNode(n *manifestNode) (vdom.TemplateNode, error) {
	switch {
	case n.Dynamic != nil:
		return vdom.Dynamic(*n.Dynamic), nil

	case n.DynamicText != nil:
		return vdom.DynamicText(*n.DynamicText), nil

	case n.Text != nil:
		return vdom.StaticText(*n.Text), nil

	case n.Element != "":
		attrs := make([]vdom.TemplateAttribute, 0, len(n.Attrs))
		for i := range n.Attrs {
			attrs = append(attrs, convertAttr(&n.Attrs[i]))
		}
		children := make([]vdom.TemplateNode, 0, len(n.Children))
		for i := range n.Children {
			child, err := convertNode(&n.Children[i])
			if err != nil {
				return vdom.TemplateNode{}, err
			}
			children = append(children, child)
		}
		node := vdom.ElementNS(n.Element, n.Namespace, attrs, children...)
		node.InnerOpt = n.Inner
		return node, nil

	default:
		return vdom.TemplateNode{}, werr.New("W140").WithDetail(
			"node must set one of: element, text, dynamic, dynamic-text")
	}
}

func convertAttr(a *manifestAttr) vdom.TemplateAttribute {
	if a.Dynamic != nil {
		return vdom.DynamicAttr(*a.Dynamic)
	}
	attr := vdom.StaticAttr(a.Name, a.Value)
	attr.Namespace = a.Namespace
	attr.Volatile = a.Volatile
	return attr
}

func printTemplate(t *vdom.Template) {
	success("template %q is valid", t.ID)
	info("roots: %d", len(t.Roots))

	if len(t.NodePaths) > 0 {
		fmt.Println()
		info("dynamic node slots:")
		for i, p := range t.NodePaths {
			node := vdom.ResolvePath(t, p)
			info("  [%d] %-12s path %v", i, node.Kind, p)
		}
	}
	if len(t.AttrPaths) > 0 {
		fmt.Println()
		info("dynamic attribute slots:")
		for i, p := range t.AttrPaths {
			node := vdom.ResolvePath(t, p)
			info("  [%d] on <%s>      path %v", i, node.Tag, p)
		}
	}
	if len(t.NodePaths) == 0 && len(t.AttrPaths) == 0 {
		info("template is fully static")
	}
}
