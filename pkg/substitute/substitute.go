// Package substitute implements the textual substitution primitives the
// renderer applies to module HTML templates: named {{key}} placeholders,
// occurrence-ordered positional replacement, and marker splicing.
package substitute

import (
	"regexp"
	"strings"
)

// Placeholder replaces every occurrence of {{ key }} (whitespace around
// the key tolerated) with value. Keys absent from the template are a
// no-op.
func Placeholder(html, key, value string) string {
	re := regexp.MustCompile(`\{\{\s*` + regexp.QuoteMeta(key) + `\s*\}\}`)
	return re.ReplaceAllLiteralString(html, value)
}

// Named applies Placeholder for every entry of data. Placeholders whose
// key is not present in data are left untouched so that a partial map
// never corrupts the template.
func Named(html string, data map[string]string) string {
	for key, value := range data {
		html = Placeholder(html, key, value)
	}
	return html
}

// Sequence is an ordered queue of replacement values consumed one per
// pattern match, left to right. Templates reuse the same literal
// placeholder text for semantically distinct fields (left column vs
// right column); document order is the only disambiguation key.
type Sequence struct {
	values []string
	index  int
}

// NewSequence builds a Sequence over the given values.
func NewSequence(values ...string) *Sequence {
	return &Sequence{values: values}
}

// Next returns the next queued value, or "" once the queue is drained.
func (s *Sequence) Next() string {
	if s.index >= len(s.values) {
		s.index++
		return ""
	}
	v := s.values[s.index]
	s.index++
	return v
}

// Remaining reports how many values have not been consumed yet.
func (s *Sequence) Remaining() int {
	if s.index >= len(s.values) {
		return 0
	}
	return len(s.values) - s.index
}

// Replace substitutes the k-th match of pattern with the k-th queued
// value. Matches beyond the queue become empty strings.
func (s *Sequence) Replace(html string, pattern *regexp.Regexp) string {
	return pattern.ReplaceAllStringFunc(html, func(string) string {
		return s.Next()
	})
}

// Sequential is a convenience wrapper replacing pattern matches with
// values in document order.
func Sequential(html string, pattern *regexp.Regexp, values ...string) string {
	return NewSequence(values...).Replace(html, pattern)
}

// ReplaceFirst substitutes only the first match of pattern, keeping the
// capture-group expansion of replacement.
func ReplaceFirst(html string, pattern *regexp.Regexp, replacement string) string {
	loc := pattern.FindStringIndex(html)
	if loc == nil {
		return html
	}
	matched := html[loc[0]:loc[1]]
	expanded := pattern.ReplaceAllString(matched, replacement)
	return html[:loc[0]] + expanded + html[loc[1]:]
}

// RemoveMarker deletes every occurrence of the literal marker.
func RemoveMarker(html, marker string) string {
	return strings.ReplaceAll(html, marker, "")
}

// SpliceMarker replaces every occurrence of the literal marker with
// content.
func SpliceMarker(html, marker, content string) string {
	return strings.ReplaceAll(html, marker, content)
}
