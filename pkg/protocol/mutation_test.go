package protocol

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/weft-ui/weft/pkg/vdom"
)

func TestMutationFrameRoundTrip(t *testing.T) {
	want := &MutationFrame{
		Seq: 42,
		Mutations: []Mutation{
			LoadTemplate("app/list", 0, 1),
			AssignID([]byte{0, 1}, 2),
			HydrateText([]byte{0, 0, 1}, "3 items", 3),
			CreateTextNode("tail", 4),
			CreatePlaceholder(5),
			ReplacePlaceholder([]byte{0, 2}, 2),
			SetAttribute(2, "class", vdom.TextValue("selected"), ""),
			SetAttribute(2, "width", vdom.FloatValue(128), "http://www.w3.org/2000/svg"),
			SetAttribute(2, "tabindex", vdom.IntValue(-1), ""),
			SetAttribute(2, "disabled", vdom.BoolValue(true), ""),
			SetAttribute(2, "hidden", vdom.NoneValue(), ""),
			SetText(3, "4 items"),
			NewEventListener(2, "click"),
			RemoveEventListener(2, "mouseover"),
			PushRoot(4),
			AppendChildren(1, 1),
			InsertBefore(2, 1),
			InsertAfter(2, 1),
			ReplaceWith(5, 2),
			Remove(4),
		},
	}

	got, err := DecodeMutationFrame(want.Encode())
	if err != nil {
		t.Fatalf("DecodeMutationFrame: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("frame mismatch (-want +got):\n%s", diff)
	}
}

func TestMutationFrameEmpty(t *testing.T) {
	want := &MutationFrame{Seq: 7}

	got, err := DecodeMutationFrame(want.Encode())
	if err != nil {
		t.Fatalf("DecodeMutationFrame: %v", err)
	}
	if got.Seq != 7 {
		t.Errorf("Seq = %d, want 7", got.Seq)
	}
	if len(got.Mutations) != 0 {
		t.Errorf("Mutations = %d, want 0", len(got.Mutations))
	}
}

func TestDecodeMutationFrameRejectsUnknownOp(t *testing.T) {
	e := NewEncoder()
	e.WriteUvarint(1)    // seq
	e.WriteUvarint(1)    // count
	e.WriteByte(0xEE)    // bogus op

	if _, err := DecodeMutationFrame(e.Bytes()); err == nil {
		t.Error("decode accepted an unknown mutation op")
	}
}

func TestMutationOpString(t *testing.T) {
	tests := []struct {
		op   MutationOp
		want string
	}{
		{OpLoadTemplate, "LoadTemplate"},
		{OpAssignID, "AssignID"},
		{OpSetAttribute, "SetAttribute"},
		{OpPushRoot, "PushRoot"},
		{MutationOp(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestEventFrameRoundTrip(t *testing.T) {
	want := &EventFrame{
		Seq:     9,
		Target:  14,
		Name:    "input",
		Bubbles: true,
		Payload: []byte(`{"value":"hello"}`),
	}

	got, err := DecodeEventFrame(want.Encode())
	if err != nil {
		t.Fatalf("DecodeEventFrame: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("frame mismatch (-want +got):\n%s", diff)
	}
}

func TestEventFrameEmptyPayload(t *testing.T) {
	want := &EventFrame{Seq: 1, Target: 3, Name: "click"}

	got, err := DecodeEventFrame(want.Encode())
	if err != nil {
		t.Fatalf("DecodeEventFrame: %v", err)
	}
	if got.Name != "click" || got.Target != 3 {
		t.Errorf("got %+v", got)
	}
	if len(got.Payload) != 0 {
		t.Errorf("Payload = %v, want empty", got.Payload)
	}
}
