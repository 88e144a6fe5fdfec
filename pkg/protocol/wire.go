package protocol

import (
	"github.com/weft-ui/weft/pkg/vdom"
)

// EncodeTemplate encodes a template's static skeleton and path tables.
func EncodeTemplate(t *vdom.Template) []byte {
	e := NewEncoder()
	EncodeTemplateTo(e, t)
	return e.Bytes()
}

// EncodeTemplateTo encodes a template using the provided encoder.
func EncodeTemplateTo(e *Encoder, t *vdom.Template) {
	e.WriteString(t.ID)

	e.WriteUvarint(uint64(len(t.Roots)))
	for i := range t.Roots {
		encodeTemplateNode(e, &t.Roots[i])
	}

	e.WriteUvarint(uint64(len(t.NodePaths)))
	for _, p := range t.NodePaths {
		e.WriteLenBytes(p)
	}

	e.WriteUvarint(uint64(len(t.AttrPaths)))
	for _, p := range t.AttrPaths {
		e.WriteLenBytes(p)
	}
}

func encodeTemplateNode(e *Encoder, n *vdom.TemplateNode) {
	e.WriteByte(byte(n.Kind))

	switch n.Kind {
	case vdom.NodeElement:
		e.WriteString(n.Tag)
		e.WriteString(n.Namespace)
		e.WriteBool(n.InnerOpt)

		e.WriteUvarint(uint64(len(n.Attrs)))
		for i := range n.Attrs {
			encodeTemplateAttr(e, &n.Attrs[i])
		}

		e.WriteUvarint(uint64(len(n.Children)))
		for i := range n.Children {
			encodeTemplateNode(e, &n.Children[i])
		}

	case vdom.NodeText:
		e.WriteString(n.Text)

	case vdom.NodeDynamic, vdom.NodeDynamicText:
		e.WriteUvarint(uint64(n.Index))
	}
}

func encodeTemplateAttr(e *Encoder, a *vdom.TemplateAttribute) {
	e.WriteByte(byte(a.Kind))

	switch a.Kind {
	case vdom.AttrStatic:
		e.WriteString(a.Name)
		e.WriteString(a.Value)
		e.WriteString(a.Namespace)
		e.WriteBool(a.Volatile)

	case vdom.AttrDynamic:
		e.WriteUvarint(uint64(a.Index))
	}
}

// DecodeTemplate decodes a template from bytes. The decoded template is
// checked against the model's path invariant before it is returned, so a
// template that made it off the wire is safe to hand to a reconciler.
func DecodeTemplate(data []byte) (*vdom.Template, error) {
	d := NewDecoder(data)
	return DecodeTemplateFrom(d)
}

// DecodeTemplateFrom decodes a template from a decoder.
func DecodeTemplateFrom(d *Decoder) (*vdom.Template, error) {
	id, err := d.ReadString()
	if err != nil {
		return nil, err
	}

	rootCount, err := d.ReadCollectionCount()
	if err != nil {
		return nil, err
	}
	roots := make([]vdom.TemplateNode, rootCount)
	for i := 0; i < rootCount; i++ {
		if err := decodeTemplateNode(d, &roots[i], 0); err != nil {
			return nil, err
		}
	}

	nodePaths, err := decodePaths(d)
	if err != nil {
		return nil, err
	}
	attrPaths, err := decodePaths(d)
	if err != nil {
		return nil, err
	}

	t := &vdom.Template{
		ID:        id,
		Roots:     roots,
		NodePaths: nodePaths,
		AttrPaths: attrPaths,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func decodePaths(d *Decoder) ([][]byte, error) {
	count, err := d.ReadCollectionCount()
	if err != nil {
		return nil, err
	}
	paths := make([][]byte, count)
	for i := 0; i < count; i++ {
		paths[i], err = d.ReadLenBytes()
		if err != nil {
			return nil, err
		}
	}
	return paths, nil
}

func decodeTemplateNode(d *Decoder, n *vdom.TemplateNode, depth int) error {
	if err := checkDepth(depth); err != nil {
		return err
	}

	kindByte, err := d.ReadByte()
	if err != nil {
		return err
	}
	n.Kind = vdom.NodeKind(kindByte)

	switch n.Kind {
	case vdom.NodeElement:
		if n.Tag, err = d.ReadString(); err != nil {
			return err
		}
		if n.Namespace, err = d.ReadString(); err != nil {
			return err
		}
		if n.InnerOpt, err = d.ReadBool(); err != nil {
			return err
		}

		attrCount, err := d.ReadCollectionCount()
		if err != nil {
			return err
		}
		if attrCount > 0 {
			n.Attrs = make([]vdom.TemplateAttribute, attrCount)
			for i := 0; i < attrCount; i++ {
				if err := decodeTemplateAttr(d, &n.Attrs[i]); err != nil {
					return err
				}
			}
		}

		childCount, err := d.ReadCollectionCount()
		if err != nil {
			return err
		}
		if childCount > 0 {
			n.Children = make([]vdom.TemplateNode, childCount)
			for i := 0; i < childCount; i++ {
				if err := decodeTemplateNode(d, &n.Children[i], depth+1); err != nil {
					return err
				}
			}
		}
		return nil

	case vdom.NodeText:
		n.Text, err = d.ReadString()
		return err

	case vdom.NodeDynamic, vdom.NodeDynamicText:
		idx, err := d.ReadUvarint()
		if err != nil {
			return err
		}
		n.Index = int(idx)
		return nil

	default:
		return ErrUnknownTag
	}
}

func decodeTemplateAttr(d *Decoder, a *vdom.TemplateAttribute) error {
	kindByte, err := d.ReadByte()
	if err != nil {
		return err
	}
	a.Kind = vdom.AttrKind(kindByte)

	switch a.Kind {
	case vdom.AttrStatic:
		if a.Name, err = d.ReadString(); err != nil {
			return err
		}
		if a.Value, err = d.ReadString(); err != nil {
			return err
		}
		if a.Namespace, err = d.ReadString(); err != nil {
			return err
		}
		a.Volatile, err = d.ReadBool()
		return err

	case vdom.AttrDynamic:
		idx, err := d.ReadUvarint()
		if err != nil {
			return err
		}
		a.Index = int(idx)
		return nil

	default:
		return ErrUnknownTag
	}
}

// EncodeAttributeValue encodes a dynamic attribute value. Listener and
// Any values are presence markers only: callbacks and opaque boxes never
// cross the wire.
func EncodeAttributeValue(e *Encoder, v vdom.AttributeValue) {
	e.WriteByte(byte(v.Kind))

	switch v.Kind {
	case vdom.ValueText:
		e.WriteString(v.Text)
	case vdom.ValueFloat:
		e.WriteFloat64(v.Float)
	case vdom.ValueInt:
		e.WriteSvarint(v.Int)
	case vdom.ValueBool:
		e.WriteBool(v.Bool)
	case vdom.ValueListener, vdom.ValueAny, vdom.ValueNone:
		// Tag only.
	}
}

// DecodeAttributeValue decodes a dynamic attribute value. Listener
// values decode to an empty (absent-callback) slot; Any values decode to
// an Any with no box.
func DecodeAttributeValue(d *Decoder) (vdom.AttributeValue, error) {
	kindByte, err := d.ReadByte()
	if err != nil {
		return vdom.AttributeValue{}, err
	}
	kind := vdom.ValueKind(kindByte)

	switch kind {
	case vdom.ValueText:
		s, err := d.ReadString()
		if err != nil {
			return vdom.AttributeValue{}, err
		}
		return vdom.TextValue(s), nil

	case vdom.ValueFloat:
		f, err := d.ReadFloat64()
		if err != nil {
			return vdom.AttributeValue{}, err
		}
		return vdom.FloatValue(f), nil

	case vdom.ValueInt:
		i, err := d.ReadSvarint()
		if err != nil {
			return vdom.AttributeValue{}, err
		}
		return vdom.IntValue(i), nil

	case vdom.ValueBool:
		b, err := d.ReadBool()
		if err != nil {
			return vdom.AttributeValue{}, err
		}
		return vdom.BoolValue(b), nil

	case vdom.ValueListener:
		return vdom.AttributeValue{Kind: vdom.ValueListener, Listener: &vdom.Listener{}}, nil

	case vdom.ValueAny:
		return vdom.AttributeValue{Kind: vdom.ValueAny}, nil

	case vdom.ValueNone:
		return vdom.NoneValue(), nil

	default:
		return vdom.AttributeValue{}, ErrUnknownTag
	}
}
