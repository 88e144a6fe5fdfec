package vdom

import "testing"

type keyboardData struct {
	Key string
}

type mouseData struct {
	X, Y int
}

func TestNewListenerDelivery(t *testing.T) {
	var got keyboardData
	calls := 0

	val := NewListener(func(_ *Event, data keyboardData) {
		got = data
		calls++
	})
	if val.Kind != ValueListener {
		t.Fatalf("Kind = %v, want ValueListener", val.Kind)
	}

	val.Listener.Call(&Event{Name: "keydown", Data: keyboardData{Key: "Enter"}})

	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	if got.Key != "Enter" {
		t.Errorf("Key = %q, want Enter", got.Key)
	}
}

func TestNewListenerDropsMismatchedPayload(t *testing.T) {
	calls := 0
	val := NewListener(func(_ *Event, _ keyboardData) {
		calls++
	})

	// A mouse payload reaching a keyboard listener is dropped without
	// invocation and without a fault.
	val.Listener.Call(&Event{Name: "keydown", Data: mouseData{X: 1, Y: 2}})
	val.Listener.Call(&Event{Name: "keydown", Data: nil})

	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}

	// The listener still works for a correctly typed payload afterwards.
	val.Listener.Call(&Event{Name: "keydown", Data: keyboardData{Key: "a"}})
	if calls != 1 {
		t.Errorf("calls after typed payload = %d, want 1", calls)
	}
}

func TestListenerTakeReplace(t *testing.T) {
	calls := 0
	l := &Listener{}
	l.Replace(func(*Event) { calls++ })

	if !l.IsSet() {
		t.Fatal("IsSet = false after Replace")
	}

	fn := l.Take()
	if l.IsSet() {
		t.Error("IsSet = true after Take")
	}

	// Events hitting the absent slot are swallowed.
	l.Call(&Event{Name: "click"})
	if calls != 0 {
		t.Errorf("calls = %d, want 0 while taken", calls)
	}

	fn(&Event{Name: "click"})
	if calls != 1 {
		t.Errorf("calls = %d, want 1 after direct invoke", calls)
	}

	l.Replace(fn)
	l.Call(&Event{Name: "click"})
	if calls != 2 {
		t.Errorf("calls = %d, want 2 after Replace", calls)
	}
}

func TestNilListenerCall(t *testing.T) {
	var l *Listener
	// Must not panic.
	l.Call(&Event{Name: "click"})
	if l.IsSet() {
		t.Error("IsSet on nil listener = true")
	}
}

func TestStopPropagation(t *testing.T) {
	ev := &Event{Name: "click", Bubbles: true}
	ev.StopPropagation()
	if ev.Bubbles {
		t.Error("Bubbles = true after StopPropagation")
	}
}
