package protocol

import (
	"github.com/weft-ui/weft/pkg/vdom"
)

// EventFrame carries a host event from client to server. Payload is the
// event data, encoded by the client in whatever shape the listener's
// decoder expects; the frame itself does not interpret it.
type EventFrame struct {
	Seq     uint64
	Target  vdom.ElementID
	Name    string
	Bubbles bool
	Payload []byte
}

// Encode serializes the frame.
func (f *EventFrame) Encode() []byte {
	e := NewEncoder()
	e.WriteUvarint(f.Seq)
	e.WriteUvarint(uint64(f.Target))
	e.WriteString(f.Name)
	e.WriteBool(f.Bubbles)
	e.WriteLenBytes(f.Payload)
	return e.Bytes()
}

// DecodeEventFrame parses a frame from bytes.
func DecodeEventFrame(data []byte) (*EventFrame, error) {
	d := NewDecoder(data)

	seq, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	target, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	name, err := d.ReadString()
	if err != nil {
		return nil, err
	}
	bubbles, err := d.ReadBool()
	if err != nil {
		return nil, err
	}
	payload, err := d.ReadLenBytes()
	if err != nil {
		return nil, err
	}

	return &EventFrame{
		Seq:     seq,
		Target:  vdom.ElementID(target),
		Name:    name,
		Bubbles: bubbles,
		Payload: payload,
	}, nil
}
