// Package vdom provides the node model for Weft.
//
// A UI tree is described in two halves. The static half is a Template:
// the element/text skeleton known at build time, shared by every render
// of the same call site. The dynamic half is the per-render binding: the
// DynamicNode and Attribute values that fill the template's placeholder
// slots. A VNode pairs one Template with one set of dynamic values.
//
// The split is what makes diffing cheap: a reconciler never walks the
// static skeleton. It jumps straight to the dynamic positions using the
// template's NodePaths and AttrPaths and compares old and new slots
// one-for-one, so an update costs O(dynamic slots) regardless of how
// large the static tree is.
//
// # Core Types
//
// Template, TemplateNode and TemplateAttribute describe the static
// skeleton. DynamicNode (VComponent, VText, VFragment) and Attribute
// with its AttributeValue variants carry the per-render payload. VNode
// binds the two and records host identities (ElementID) as the tree is
// mounted.
//
// # Building Templates
//
// Templates are assembled from plain constructors and finalized with
// BuildTemplate, which records the placeholder paths:
//
//	tpl := vdom.MustBuildTemplate("views/card.go:12:4",
//	    vdom.Element("div", []vdom.TemplateAttribute{
//	        vdom.StaticAttr("class", "card"),
//	        vdom.DynamicAttr(0),
//	    },
//	        vdom.StaticText("Title: "),
//	        vdom.DynamicText(0),
//	    ),
//	)
//
// # Concurrency
//
// Templates are immutable after construction and safe to share between
// renders and goroutines. A VNode and its dynamic slots belong to the
// render pass that produced them; the model does no locking of its own.
package vdom
