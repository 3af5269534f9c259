// Package htmltext contains small pure helpers for preparing property
// values before they are substituted into module HTML templates.
package htmltext

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// IsEmpty reports whether a property value counts as absent: nil, or a
// string that is blank after trimming. Booleans and numbers are never
// empty, false and 0 are meaningful property values.
func IsEmpty(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// ShouldRender is the inverse of IsEmpty.
func ShouldRender(value any) bool {
	return !IsEmpty(value)
}

// FormatWithBreaks converts newlines to <br> for plain text. Text that
// already contains an HTML tag is returned unchanged, it came from the
// rich-text editor and carries its own markup.
func FormatWithBreaks(text string) string {
	if text == "" {
		return ""
	}
	if tagPattern.MatchString(text) {
		return text
	}
	return strings.ReplaceAll(text, "\n", "<br>")
}

// SafeFormat returns "" for empty values, otherwise FormatWithBreaks.
func SafeFormat(text string) string {
	if IsEmpty(text) {
		return ""
	}
	return FormatWithBreaks(text)
}

// StripTags removes all HTML tags, leaving the text content.
func StripTags(html string) string {
	return tagPattern.ReplaceAllString(html, "")
}

// Stringify renders a property value for template substitution.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
