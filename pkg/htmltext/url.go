package htmltext

import (
	"net/url"
	"strings"
)

var safeSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
	"tel":    true,
}

var blockedPrefixes = []string{"javascript:", "data:", "vbscript:"}

// IsSafeURL reports whether a string may be used as an href. Empty
// strings, fragment and relative paths are fine; absolute URLs must use
// http, https, mailto or tel. Script-bearing schemes are rejected even
// when url.Parse cannot make sense of the value.
func IsSafeURL(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return true
	}
	if strings.HasPrefix(trimmed, "/") || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "./") {
		return true
	}

	lower := strings.ToLower(trimmed)
	for _, prefix := range blockedPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		// Unparseable values are treated as relative paths.
		return true
	}
	if parsed.Scheme == "" {
		return true
	}
	return safeSchemes[strings.ToLower(parsed.Scheme)]
}

// SanitizeURL returns the trimmed URL when it is safe, the fallback
// otherwise. Non-string and nil values also yield the fallback.
func SanitizeURL(value any, fallback string) string {
	raw, ok := value.(string)
	if !ok || raw == "" {
		return fallback
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if IsSafeURL(trimmed) {
		return trimmed
	}
	return fallback
}

// SafeHref sanitizes a URL for use in an href attribute, falling back
// to a dead link.
func SafeHref(value any) string {
	return SanitizeURL(value, "#")
}
