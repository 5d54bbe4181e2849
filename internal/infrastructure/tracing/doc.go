// Package tracing provides lightweight request tracing for the SurfGate
// backend.
//
// Spans carry ULID trace and span IDs, propagate over the X-Trace-ID
// and X-Span-ID headers, and are exported through the structured logger.
// A bounded buffer drops spans under pressure rather than blocking the
// request path.
package tracing
