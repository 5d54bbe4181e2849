// Package ws provides the WebSocket surface of the SurfGate backend.
//
// One connection serves many validation requests. Message types:
//   - validate: {"type": "validate", "url": ..., "id": ...}
//   - validate_batch: {"type": "validate_batch", "urls": [...], "id": ...}
//   - ping
//
// A rejected URL is a normal response, not a connection error; the
// connection stays open across any mix of outcomes.
package ws
