package urlcheck

// allowedProtocols is the closed set of navigable schemes. Lowercase with
// trailing colon, matching the Protocol field of Result. Read-only after
// init; nothing mutates it at runtime.
var allowedProtocols = map[string]bool{
	"http:":  true,
	"https:": true,
}

// ProtocolAllowed reports whether a lowercase scheme (trailing colon
// included, e.g. "https:") is on the allowlist.
func ProtocolAllowed(protocol string) bool {
	return allowedProtocols[protocol]
}

// AllowedProtocols returns the allowlist in stable order for use in
// rejection messages.
func AllowedProtocols() []string {
	return []string{"http:", "https:"}
}
