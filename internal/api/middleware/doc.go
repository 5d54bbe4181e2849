// Package middleware provides HTTP middleware for the SurfGate API.
//
// Stack:
//   - CORS: cross-origin resource sharing with configurable origins
//   - RateLimit: per-IP token bucket rate limiting
//   - RequestID: ULID request correlation via X-Request-ID
//
// Example Usage:
//
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
//	router.Use(middleware.RequestID())
package middleware
