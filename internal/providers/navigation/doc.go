// Package navigation exposes the URL validation pipeline as a service
// provider.
//
// Tools:
//   - navigation.validate: validate and sanitize one address-bar input
//   - navigation.validateBatch: validate a batch with per-item isolation
//
// The provider owns the mapping from loosely typed tool params onto the
// pipeline's typed contract: a non-string url or non-array urls value is
// rejected by the pipeline's type gates, never by a binder. Rejections come
// back with a stable error code so calling UIs can branch on it.
package navigation
