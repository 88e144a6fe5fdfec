// Package live ships mutation frames to a connected client and routes
// incoming event frames back into the node model's listener table.
//
// A Handler upgrades HTTP requests to WebSocket and runs one Session per
// connection. The application pushes sequenced mutation frames through
// the session; the session decodes event frames from the client and
// dispatches them to the listeners mounted on the target element. A
// listener whose payload type does not match drops the event silently,
// per the model's contract.
//
// Prometheus metrics and OpenTelemetry tracing are opt-in, configured
// with functional options.
package live
