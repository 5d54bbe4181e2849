// Package main is the entry point for the SurfGate backend server.
//
// SurfGate validates and sanitizes address-bar input for an embedded
// browsing surface before any navigation happens.
//
// The server provides:
//   - REST API for single and batch URL validation
//   - WebSocket streaming for interactive address-bar checks
//   - Service provider registry
//   - Rate limiting and Prometheus metrics
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	surfgate-server -port 8000
package main
