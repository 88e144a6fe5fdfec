// Package errors provides structured, coded error messages for Weft.
//
// Every fail-fast condition in the node model carries a stable code
// (e.g. "W001") that maps to a short message, a suggestion and a
// documentation URL. Call sites add the concrete diagnostic (which
// template, which counts) via WithDetail.
//
// # Error Categories
//
//   - template: template construction and slot-count invariants
//   - render: per-render binding errors
//   - protocol: wire codec errors
//   - cli: manifest and tooling errors
//
// # Usage
//
//	err := errors.New("W001").
//	    WithDetail(`template "views/card.go:12:4" declares 2 dynamic node slot(s), render supplied 3`).
//	    WithSuggestion("supply exactly one value per placeholder, in placeholder order")
package errors
