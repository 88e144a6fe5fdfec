// Package protocol implements Weft's binary wire format.
//
// Three kinds of payload cross the wire. Templates are shipped once, when
// a client first sees a call site; they carry the full static skeleton
// plus the placeholder path tables. Mutation frames are the per-render
// delta: the sequenced list of host-tree commands a reconciler emitted.
// Event frames travel the other way, carrying a host event toward the
// listener mounted on its target element.
//
// The encoding is varint-based with length-prefixed strings and byte
// slices. Decoding enforces allocation, collection and depth limits so a
// malicious peer cannot force large allocations or deep recursion.
//
// Listener and opaque Any attribute values never cross the wire; they
// are encoded as bare presence markers and decode to empty slots.
package protocol
