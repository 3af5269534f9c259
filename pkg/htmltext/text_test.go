package htmltext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"whitespace string", "   ", true},
		{"tab and newline", "\t\n", true},
		{"non-empty string", "x", false},
		{"zero", 0, false},
		{"false", false, false},
		{"true", true, false},
		{"float zero", 0.0, false},
		{"slice", []string{}, false},
		{"map", map[string]any{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmpty(tt.value))
		})
	}
}

func TestShouldRender(t *testing.T) {
	assert.False(t, ShouldRender(""))
	assert.False(t, ShouldRender(nil))
	assert.True(t, ShouldRender("text"))
	assert.True(t, ShouldRender(false))
	assert.True(t, ShouldRender(0))
}

func TestFormatWithBreaks(t *testing.T) {
	t.Run("converts newlines in plain text", func(t *testing.T) {
		assert.Equal(t, "line one<br>line two", FormatWithBreaks("line one\nline two"))
	})

	t.Run("leaves HTML untouched", func(t *testing.T) {
		html := "<p>first</p>\n<p>second</p>"
		assert.Equal(t, html, FormatWithBreaks(html))
	})

	t.Run("empty string", func(t *testing.T) {
		assert.Equal(t, "", FormatWithBreaks(""))
	})
}

func TestSafeFormat(t *testing.T) {
	assert.Equal(t, "", SafeFormat("   "))
	assert.Equal(t, "a<br>b", SafeFormat("a\nb"))
	assert.Equal(t, "<strong>hi</strong>", SafeFormat("<strong>hi</strong>"))
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "hello world", StripTags("<p>hello <b>world</b></p>"))
	assert.Equal(t, "plain", StripTags("plain"))
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "", Stringify(nil))
	assert.Equal(t, "text", Stringify("text"))
	assert.Equal(t, "true", Stringify(true))
	assert.Equal(t, "false", Stringify(false))
	assert.Equal(t, "42", Stringify(42))
	assert.Equal(t, "1.5", Stringify(1.5))
	assert.Equal(t, "3", Stringify(3.0))
}

func TestIsSafeURL(t *testing.T) {
	safe := []string{
		"",
		"  ",
		"/path",
		"#anchor",
		"./relative.html",
		"https://example.com",
		"http://example.com/page?a=1",
		"mailto:team@example.com",
		"tel:+15550100",
		"page.html",
		"folder/page",
	}
	for _, u := range safe {
		assert.True(t, IsSafeURL(u), "expected safe: %q", u)
	}

	unsafe := []string{
		"javascript:alert(1)",
		"JavaScript:alert(1)",
		"data:text/html;base64,xxxx",
		"vbscript:msgbox",
		"ftp://example.com/file",
	}
	for _, u := range unsafe {
		assert.False(t, IsSafeURL(u), "expected unsafe: %q", u)
	}
}

func TestSanitizeURL(t *testing.T) {
	assert.Equal(t, "https://example.com", SanitizeURL("https://example.com", "#"))
	assert.Equal(t, "#", SanitizeURL("javascript:alert(1)", "#"))
	assert.Equal(t, "#", SanitizeURL(nil, "#"))
	assert.Equal(t, "#", SanitizeURL(123, "#"))
	assert.Equal(t, "", SanitizeURL("   ", "#"))
}

func TestSafeHref(t *testing.T) {
	assert.Equal(t, "#", SafeHref("data:text/html,evil"))
	assert.Equal(t, "/landing", SafeHref("/landing"))
}

func TestHexColorHelpers(t *testing.T) {
	assert.True(t, IsValidHexColor("#ff0000"))
	assert.True(t, IsValidHexColor("#abc"))
	assert.False(t, IsValidHexColor("ff0000"))
	assert.False(t, IsValidHexColor(""))
	assert.False(t, IsValidHexColor("#zzzzzz"))

	assert.Equal(t, "#ff00aa", FormatHexColor(" FF00AA "))
	assert.Equal(t, "", FormatHexColor(""))

	assert.Equal(t, "#aabbcc", ExpandHexColor("#abc"))
	assert.Equal(t, "#aabbcc", ExpandHexColor("#aabbcc"))
	assert.Equal(t, "#000000", ExpandHexColor(""))

	assert.Equal(t, "#ff0000", NormalizeColorInput("ff0000"))
	assert.Equal(t, "#ff0000", NormalizeColorInput("#ff0000extra"))
	assert.Equal(t, "#abc", NormalizeColorInput(" #abc "))
	assert.Equal(t, "", NormalizeColorInput(""))
}
