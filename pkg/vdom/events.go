package vdom

// Event is the type-erased UI event delivered to listeners. Data holds
// the concrete payload (KeyboardData, MouseData, an application type);
// listeners created with NewListener recover it by checked conversion.
type Event struct {
	// Name is the event name without prefix, e.g. "click", "input".
	Name string

	// Bubbles reports whether the event propagates to ancestor listeners
	// after this one runs.
	Bubbles bool

	Data any
}

// StopPropagation marks the event as consumed so the dispatch loop stops
// walking ancestors.
func (e *Event) StopPropagation() {
	e.Bubbles = false
}

// Listener is the mutable, optionally absent slot holding a type-erased
// event callback. The dispatch loop may Take the callback out while
// running it and Replace it afterwards; an absent listener swallows
// events. No locking: the slot is owned by the render pass like every
// other dynamic value.
type Listener struct {
	fn func(*Event)
}

// Call invokes the callback if one is present.
func (l *Listener) Call(ev *Event) {
	if l == nil || l.fn == nil {
		return
	}
	l.fn(ev)
}

// Take removes and returns the callback, leaving the slot absent.
func (l *Listener) Take() func(*Event) {
	fn := l.fn
	l.fn = nil
	return fn
}

// Replace stores a callback in the slot.
func (l *Listener) Replace(fn func(*Event)) {
	l.fn = fn
}

// IsSet reports whether a callback is present.
func (l *Listener) IsSet() bool {
	return l != nil && l.fn != nil
}

// NewListener erases a concretely typed callback into a listener
// attribute value. At dispatch the erased callback attempts a checked
// conversion of the event payload to T; on mismatch the event is dropped
// silently, with no callback invocation and no fault surfaced. The type
// gate is enforced structurally upstream (the same attribute name always
// declares the same payload type), so a mismatch here means a stale or
// misrouted event, not a render error.
func NewListener[T any](callback func(ev *Event, data T)) AttributeValue {
	erased := func(ev *Event) {
		data, ok := ev.Data.(T)
		if !ok {
			return
		}
		callback(ev, data)
	}
	return AttributeValue{Kind: ValueListener, Listener: &Listener{fn: erased}}
}

// ListenerValue wraps an already-erased callback, for callers that do
// their own payload handling.
func ListenerValue(fn func(*Event)) AttributeValue {
	return AttributeValue{Kind: ValueListener, Listener: &Listener{fn: fn}}
}
