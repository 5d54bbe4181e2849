// Package http provides the REST surface of the SurfGate backend.
//
// Endpoints:
//   - GET  /            service banner
//   - GET  /health      liveness and registry stats
//   - GET  /services    registered service definitions
//   - POST /services/execute  invoke a tool by ID
//   - POST /validate         validate one address-bar input
//   - POST /validate/batch   validate a list of inputs
//   - GET  /metrics/json     aggregated metrics snapshot
//
// Request bodies are decoded with sonic. Validation rejections return
// 422 with a structured {code, message} error; batch responses are
// always 200 with per-item outcomes.
package http
