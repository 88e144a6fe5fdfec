package vdom

// ElementID is an opaque, allocator-issued handle correlating a virtual
// slot (a VNode root, a dynamic text node, an empty fragment's anchor, a
// mounted attribute) with a concrete host-side element. ID 0 is reserved
// as "unset"; the Allocator never issues it.
type ElementID uint64

// ElementCell is a single mutable identity slot embedded in otherwise
// read-only structures. The reconciler writes it once when the slot is
// mounted and reads it on every later diff or removal pass. The cell does
// no locking: it is owned by the single diff pass that owns the VNode.
type ElementCell struct {
	id ElementID
}

// Set records the host identity for this slot.
func (c *ElementCell) Set(id ElementID) {
	c.id = id
}

// Get returns the recorded identity and whether one has been set.
func (c *ElementCell) Get() (ElementID, bool) {
	return c.id, c.id != 0
}

// Clear resets the cell to unset, used when the slot is unmounted.
func (c *ElementCell) Clear() {
	c.id = 0
}

// ScopeID identifies a component scope owned by the external scope/hook
// state machine.
type ScopeID uint32

// ScopeCell holds the scope identity a VComponent is assigned once it is
// mounted. Like ElementCell it is written once and then read-mostly.
type ScopeCell struct {
	id  ScopeID
	set bool
}

// Assign records the mounted scope identity.
func (c *ScopeCell) Assign(id ScopeID) {
	c.id = id
	c.set = true
}

// Get returns the scope identity and whether one has been assigned.
func (c *ScopeCell) Get() (ScopeID, bool) {
	return c.id, c.set
}
