// Package sanitize strips HTML markup from address-bar input.
//
// URLs contain no legitimate HTML, so the policy is maximal: every tag,
// attribute and event handler is removed while the surrounding text is
// preserved byte-for-byte. Built on bluemonday's strict policy with the
// entity escaping undone afterwards, iterated until the output is stable,
// which makes Strip idempotent.
package sanitize
