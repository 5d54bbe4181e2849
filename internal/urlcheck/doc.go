// Package urlcheck decides whether address-bar input denotes a safe,
// loadable network resource.
//
// Validate runs a fixed gate sequence over one input: type check, trim and
// emptiness check, markup sanitization, scheme inference for bare hostnames,
// structural parse, protocol allowlist, hostname sanity, then a second
// sanitization pass over the canonical form. Every rejection is a typed
// *ValidationError carrying one of five closed error codes; no partial
// output is ever produced alongside an error.
//
// The protocol check is an allowlist, never a denylist: only http and https
// pass, so schemes like javascript:, data:, file: and anything invented
// later are rejected without code changes.
//
// ValidateMany applies Validate across a slice with per-item fault
// isolation and order-preserving output.
package urlcheck
