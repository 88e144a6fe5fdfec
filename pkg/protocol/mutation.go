package protocol

import (
	"github.com/weft-ui/weft/pkg/vdom"
)

// MutationOp identifies a host-tree command.
type MutationOp uint8

// Mutation operations. The stack-based ops (AppendChildren, ReplaceWith,
// InsertAfter, InsertBefore) consume Count nodes previously pushed with
// PushRoot or created by the Create* ops.
const (
	OpAppendChildren MutationOp = iota
	OpAssignID
	OpCreatePlaceholder
	OpCreateTextNode
	OpHydrateText
	OpLoadTemplate
	OpReplaceWith
	OpReplacePlaceholder
	OpInsertAfter
	OpInsertBefore
	OpSetAttribute
	OpSetText
	OpNewEventListener
	OpRemoveEventListener
	OpRemove
	OpPushRoot
)

func (op MutationOp) String() string {
	switch op {
	case OpAppendChildren:
		return "AppendChildren"
	case OpAssignID:
		return "AssignID"
	case OpCreatePlaceholder:
		return "CreatePlaceholder"
	case OpCreateTextNode:
		return "CreateTextNode"
	case OpHydrateText:
		return "HydrateText"
	case OpLoadTemplate:
		return "LoadTemplate"
	case OpReplaceWith:
		return "ReplaceWith"
	case OpReplacePlaceholder:
		return "ReplacePlaceholder"
	case OpInsertAfter:
		return "InsertAfter"
	case OpInsertBefore:
		return "InsertBefore"
	case OpSetAttribute:
		return "SetAttribute"
	case OpSetText:
		return "SetText"
	case OpNewEventListener:
		return "NewEventListener"
	case OpRemoveEventListener:
		return "RemoveEventListener"
	case OpRemove:
		return "Remove"
	case OpPushRoot:
		return "PushRoot"
	default:
		return "Unknown"
	}
}

// Mutation is a single host-tree command. Which fields are meaningful
// depends on Op; unused fields stay zero and cost one tag byte or less
// on the wire.
type Mutation struct {
	Op MutationOp

	// ID is the target element for most ops.
	ID vdom.ElementID

	// Path addresses a node inside a just-loaded template (AssignID,
	// HydrateText, ReplacePlaceholder).
	Path []byte

	// Name is the attribute or event name.
	Name string

	// Value carries the attribute value for SetAttribute.
	Value vdom.AttributeValue

	// Text is the text content for text-node ops.
	Text string

	// Namespace qualifies SetAttribute.
	Namespace string

	// Index selects a template (LoadTemplate root index) or similar
	// ordinal.
	Index int

	// Count is the stack arity for the stack-based ops.
	Count int

	// TemplateID names the template for LoadTemplate.
	TemplateID vdom.TemplateID
}

// Constructors for the common mutations. Reconcilers are free to build
// Mutation literals directly; these exist to keep call sites short.

func AssignID(path []byte, id vdom.ElementID) Mutation {
	return Mutation{Op: OpAssignID, Path: path, ID: id}
}

func CreateTextNode(text string, id vdom.ElementID) Mutation {
	return Mutation{Op: OpCreateTextNode, Text: text, ID: id}
}

func CreatePlaceholder(id vdom.ElementID) Mutation {
	return Mutation{Op: OpCreatePlaceholder, ID: id}
}

func HydrateText(path []byte, text string, id vdom.ElementID) Mutation {
	return Mutation{Op: OpHydrateText, Path: path, Text: text, ID: id}
}

func LoadTemplate(tpl vdom.TemplateID, rootIndex int, id vdom.ElementID) Mutation {
	return Mutation{Op: OpLoadTemplate, TemplateID: tpl, Index: rootIndex, ID: id}
}

func SetAttribute(id vdom.ElementID, name string, value vdom.AttributeValue, ns string) Mutation {
	return Mutation{Op: OpSetAttribute, ID: id, Name: name, Value: value, Namespace: ns}
}

func SetText(id vdom.ElementID, text string) Mutation {
	return Mutation{Op: OpSetText, ID: id, Text: text}
}

func NewEventListener(id vdom.ElementID, name string) Mutation {
	return Mutation{Op: OpNewEventListener, ID: id, Name: name}
}

func RemoveEventListener(id vdom.ElementID, name string) Mutation {
	return Mutation{Op: OpRemoveEventListener, ID: id, Name: name}
}

func Remove(id vdom.ElementID) Mutation {
	return Mutation{Op: OpRemove, ID: id}
}

func PushRoot(id vdom.ElementID) Mutation {
	return Mutation{Op: OpPushRoot, ID: id}
}

func AppendChildren(id vdom.ElementID, count int) Mutation {
	return Mutation{Op: OpAppendChildren, ID: id, Count: count}
}

func ReplaceWith(id vdom.ElementID, count int) Mutation {
	return Mutation{Op: OpReplaceWith, ID: id, Count: count}
}

func ReplacePlaceholder(path []byte, count int) Mutation {
	return Mutation{Op: OpReplacePlaceholder, Path: path, Count: count}
}

func InsertAfter(id vdom.ElementID, count int) Mutation {
	return Mutation{Op: OpInsertAfter, ID: id, Count: count}
}

func InsertBefore(id vdom.ElementID, count int) Mutation {
	return Mutation{Op: OpInsertBefore, ID: id, Count: count}
}

func encodeMutation(e *Encoder, m *Mutation) {
	e.WriteByte(byte(m.Op))

	switch m.Op {
	case OpAppendChildren, OpReplaceWith, OpInsertAfter, OpInsertBefore:
		e.WriteUvarint(uint64(m.ID))
		e.WriteUvarint(uint64(m.Count))

	case OpAssignID:
		e.WriteLenBytes(m.Path)
		e.WriteUvarint(uint64(m.ID))

	case OpCreatePlaceholder, OpPushRoot, OpRemove:
		e.WriteUvarint(uint64(m.ID))

	case OpCreateTextNode:
		e.WriteString(m.Text)
		e.WriteUvarint(uint64(m.ID))

	case OpHydrateText:
		e.WriteLenBytes(m.Path)
		e.WriteString(m.Text)
		e.WriteUvarint(uint64(m.ID))

	case OpLoadTemplate:
		e.WriteString(string(m.TemplateID))
		e.WriteUvarint(uint64(m.Index))
		e.WriteUvarint(uint64(m.ID))

	case OpReplacePlaceholder:
		e.WriteLenBytes(m.Path)
		e.WriteUvarint(uint64(m.Count))

	case OpSetAttribute:
		e.WriteUvarint(uint64(m.ID))
		e.WriteString(m.Name)
		e.WriteString(m.Namespace)
		EncodeAttributeValue(e, m.Value)

	case OpSetText:
		e.WriteUvarint(uint64(m.ID))
		e.WriteString(m.Text)

	case OpNewEventListener, OpRemoveEventListener:
		e.WriteUvarint(uint64(m.ID))
		e.WriteString(m.Name)
	}
}

func decodeMutation(d *Decoder, m *Mutation) error {
	opByte, err := d.ReadByte()
	if err != nil {
		return err
	}
	m.Op = MutationOp(opByte)

	switch m.Op {
	case OpAppendChildren, OpReplaceWith, OpInsertAfter, OpInsertBefore:
		id, err := d.ReadUvarint()
		if err != nil {
			return err
		}
		count, err := d.ReadUvarint()
		if err != nil {
			return err
		}
		m.ID = vdom.ElementID(id)
		m.Count = int(count)
		return nil

	case OpAssignID:
		if m.Path, err = d.ReadLenBytes(); err != nil {
			return err
		}
		id, err := d.ReadUvarint()
		if err != nil {
			return err
		}
		m.ID = vdom.ElementID(id)
		return nil

	case OpCreatePlaceholder, OpPushRoot, OpRemove:
		id, err := d.ReadUvarint()
		if err != nil {
			return err
		}
		m.ID = vdom.ElementID(id)
		return nil

	case OpCreateTextNode:
		if m.Text, err = d.ReadString(); err != nil {
			return err
		}
		id, err := d.ReadUvarint()
		if err != nil {
			return err
		}
		m.ID = vdom.ElementID(id)
		return nil

	case OpHydrateText:
		if m.Path, err = d.ReadLenBytes(); err != nil {
			return err
		}
		if m.Text, err = d.ReadString(); err != nil {
			return err
		}
		id, err := d.ReadUvarint()
		if err != nil {
			return err
		}
		m.ID = vdom.ElementID(id)
		return nil

	case OpLoadTemplate:
		tpl, err := d.ReadString()
		if err != nil {
			return err
		}
		idx, err := d.ReadUvarint()
		if err != nil {
			return err
		}
		id, err := d.ReadUvarint()
		if err != nil {
			return err
		}
		m.TemplateID = vdom.TemplateID(tpl)
		m.Index = int(idx)
		m.ID = vdom.ElementID(id)
		return nil

	case OpReplacePlaceholder:
		if m.Path, err = d.ReadLenBytes(); err != nil {
			return err
		}
		count, err := d.ReadUvarint()
		if err != nil {
			return err
		}
		m.Count = int(count)
		return nil

	case OpSetAttribute:
		id, err := d.ReadUvarint()
		if err != nil {
			return err
		}
		m.ID = vdom.ElementID(id)
		if m.Name, err = d.ReadString(); err != nil {
			return err
		}
		if m.Namespace, err = d.ReadString(); err != nil {
			return err
		}
		m.Value, err = DecodeAttributeValue(d)
		return err

	case OpSetText:
		id, err := d.ReadUvarint()
		if err != nil {
			return err
		}
		m.ID = vdom.ElementID(id)
		m.Text, err = d.ReadString()
		return err

	case OpNewEventListener, OpRemoveEventListener:
		id, err := d.ReadUvarint()
		if err != nil {
			return err
		}
		m.ID = vdom.ElementID(id)
		m.Name, err = d.ReadString()
		return err

	default:
		return ErrUnknownTag
	}
}

// MutationFrame is one render's worth of host-tree commands. Seq orders
// frames per session; a client applies frames strictly in Seq order.
type MutationFrame struct {
	Seq       uint64
	Mutations []Mutation
}

// Encode serializes the frame.
func (f *MutationFrame) Encode() []byte {
	e := NewEncoder()
	e.WriteUvarint(f.Seq)
	e.WriteUvarint(uint64(len(f.Mutations)))
	for i := range f.Mutations {
		encodeMutation(e, &f.Mutations[i])
	}
	return e.Bytes()
}

// DecodeMutationFrame parses a frame from bytes.
func DecodeMutationFrame(data []byte) (*MutationFrame, error) {
	d := NewDecoder(data)

	seq, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}

	count, err := d.ReadCollectionCount()
	if err != nil {
		return nil, err
	}

	f := &MutationFrame{Seq: seq}
	if count > 0 {
		f.Mutations = make([]Mutation, count)
		for i := 0; i < count; i++ {
			if err := decodeMutation(d, &f.Mutations[i]); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}
