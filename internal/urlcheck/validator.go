package urlcheck

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/surfgate/backend/internal/sanitize"
)

// schemePattern matches an explicit URL scheme per RFC 3986.
var schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

// Result is the outcome of a successful validation. Sanitized is always a
// fully-qualified, re-parseable URL; Protocol is the lowercase scheme with
// trailing colon (e.g. "https:").
type Result struct {
	Valid     bool   `json:"valid"`
	Sanitized string `json:"sanitized"`
	Protocol  string `json:"protocol"`
}

// Validator runs the validation pipeline. Stateless apart from the shared
// sanitizer policy; safe for concurrent use.
type Validator struct {
	sanitizer *sanitize.Sanitizer
	workers   int
}

// New creates a validator with the default batch worker count.
func New() *Validator {
	return &Validator{
		sanitizer: sanitize.New(),
		workers:   defaultBatchWorkers,
	}
}

// WithWorkers sets the batch fan-out width. Values below 1 are ignored.
func (v *Validator) WithWorkers(n int) *Validator {
	if n >= 1 {
		v.workers = n
	}
	return v
}

// Validate decides whether input is a safe navigation target. On success it
// returns a canonical, markup-free URL and its protocol; on failure a typed
// error and no output. Each gate runs in order and the first failure wins.
func (v *Validator) Validate(input interface{}) (*Result, *ValidationError) {
	raw, ok := input.(string)
	if !ok {
		return nil, newError(CodeInvalidType, "url must be a string, got %T", input)
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, newError(CodeEmptyURL, "url must not be empty")
	}

	// Sanitize before any structural parsing so markup cannot steer the
	// parser. Tags and attributes go; their text content stays.
	clean := v.sanitizer.Strip(trimmed)

	// Bare hostnames typed into an address bar default to https.
	if !schemePattern.MatchString(clean) {
		clean = "https://" + clean
	}

	parsed, err := url.Parse(clean)
	if err != nil {
		return nil, wrapError(CodeMalformedURL, err, "invalid url: %v", err)
	}

	// Browsers read "https:example.com" as "https://example.com". net/url
	// parses it as opaque instead; reparse in authority form when possible.
	if parsed.Opaque != "" {
		withAuthority := parsed.Scheme + "://" + clean[len(parsed.Scheme)+1:]
		if reparsed, rerr := url.Parse(withAuthority); rerr == nil {
			parsed = reparsed
		}
	}

	protocol := strings.ToLower(parsed.Scheme) + ":"
	if !ProtocolAllowed(protocol) {
		return nil, newError(CodeProtocolNotAllowed,
			"protocol %q is not allowed, expected one of: %s",
			protocol, strings.Join(AllowedProtocols(), ", "))
	}

	// WHATWG parsers refuse host-less http(s) URLs at the parse step;
	// net/url accepts them, so the gate lives here instead.
	if parsed.Host == "" {
		return nil, newError(CodeMalformedURL, "url %q has no host", clean)
	}

	// net/url rejects whitespace in the authority today; the gate stays so
	// a more lenient parser can never widen what gets through.
	if strings.Contains(parsed.Hostname(), " ") {
		return nil, newError(CodeInvalidHostname, "hostname %q contains whitespace", parsed.Hostname())
	}

	// Second pass over the canonical form catches markup that rode through
	// parsing inside query or fragment content.
	final := v.sanitizer.Strip(parsed.String())

	return &Result{
		Valid:     true,
		Sanitized: final,
		Protocol:  protocol,
	}, nil
}
