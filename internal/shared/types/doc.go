// Package types provides shared data structures for the SurfGate backend.
//
// This package defines the service vocabulary used across components:
//
//   - Service: Service provider definition
//   - Tool: Service tool specification
//   - Context: Execution context for operations
//   - Result: Standard operation result
//
// Request Types:
//   - ValidateRequest, ValidateBatchRequest: URL validation surface
//   - WSMessage: WebSocket communication
package types
