package vdom

import "sync"

// Allocator issues stable ElementIDs for mounted slots and recycles them
// when slots are removed from the host tree. It is the identity-issuing
// half of the render arena; the arena's memory management itself lives
// with the external render-pass owner.
//
// Unlike the rest of the model the allocator is shared across render
// passes, so it guards itself with a mutex.
type Allocator struct {
	mu   sync.Mutex
	next ElementID
	free []ElementID
}

// NewAllocator creates an Allocator. IDs start at 1; 0 means "unset".
func NewAllocator() *Allocator {
	return &Allocator{next: 1}
}

// Acquire returns a fresh or recycled ElementID.
func (a *Allocator) Acquire() ElementID {
	a.mu.Lock()
	defer a.mu.Unlock()

	if n := len(a.free); n > 0 {
		id := a.free[n-1]
		a.free = a.free[:n-1]
		return id
	}
	id := a.next
	a.next++
	return id
}

// Release returns an ID to the free list for reuse. Releasing the
// reserved zero ID is a no-op.
func (a *Allocator) Release(id ElementID) {
	if id == 0 {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.free = append(a.free, id)
}

// InUse returns the number of IDs issued and not yet released.
func (a *Allocator) InUse() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return int(a.next) - 1 - len(a.free)
}
