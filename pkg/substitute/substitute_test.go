package substitute

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholder(t *testing.T) {
	t.Run("replaces all occurrences", func(t *testing.T) {
		html := "<div>{{text}}</div><div>{{text}}</div>"
		assert.Equal(t, "<div>x</div><div>x</div>", Placeholder(html, "text", "x"))
	})

	t.Run("tolerates whitespace around key", func(t *testing.T) {
		assert.Equal(t, "<div>x</div>", Placeholder("<div>{{ text }}</div>", "text", "x"))
	})

	t.Run("leaves other placeholders alone", func(t *testing.T) {
		html := "<div>{{other}}</div>"
		assert.Equal(t, html, Placeholder(html, "text", "x"))
	})

	t.Run("value containing dollar signs is literal", func(t *testing.T) {
		assert.Equal(t, "<div>$1 off</div>", Placeholder("<div>{{deal}}</div>", "deal", "$1 off"))
	})
}

func TestNamed(t *testing.T) {
	html := "<h1>{{title}}</h1><p>{{body}}</p><a>{{missing}}</a>"
	result := Named(html, map[string]string{"title": "Hello", "body": "World"})

	assert.Contains(t, result, "<h1>Hello</h1>")
	assert.Contains(t, result, "<p>World</p>")
	// Unknown keys stay untouched so a partial map never corrupts the template.
	assert.Contains(t, result, "{{missing}}")
}

func TestNamedIdempotent(t *testing.T) {
	html := "<h1>{{title}}</h1>"
	data := map[string]string{"title": "Done"}
	once := Named(html, data)
	twice := Named(once, data)
	assert.Equal(t, once, twice)
}

func TestSequence(t *testing.T) {
	t.Run("replaces in document order", func(t *testing.T) {
		html := `<a href="#"></a><a href="#"></a><a href="#"></a>`
		pattern := regexp.MustCompile(`href="#"`)
		result := Sequential(html, pattern, `href="u1"`, `href="u2"`, `href="u3"`)
		assert.Equal(t, `<a href="u1"></a><a href="u2"></a><a href="u3"></a>`, result)
	})

	t.Run("exhausted queue yields empty strings", func(t *testing.T) {
		html := "<div>A</div><div>A</div><div>A</div>"
		pattern := regexp.MustCompile(`A`)
		result := Sequential(html, pattern, "x", "y")
		assert.Equal(t, "<div>x</div><div>y</div><div></div>", result)
	})

	t.Run("no match returns input", func(t *testing.T) {
		html := "<div>content</div>"
		assert.Equal(t, html, Sequential(html, regexp.MustCompile(`Z`), "x"))
	})

	t.Run("next and remaining", func(t *testing.T) {
		s := NewSequence("a", "b")
		assert.Equal(t, 2, s.Remaining())
		assert.Equal(t, "a", s.Next())
		assert.Equal(t, "b", s.Next())
		assert.Equal(t, "", s.Next())
		assert.Equal(t, 0, s.Remaining())
	})
}

func TestReplaceFirst(t *testing.T) {
	html := `<table border="0"><table border="0">`
	re := regexp.MustCompile(`(<table[^>]*?)>`)
	result := ReplaceFirst(html, re, `$1 style="color:red">`)
	assert.Equal(t, `<table border="0" style="color:red"><table border="0">`, result)
}

func TestMarkers(t *testing.T) {
	assert.Equal(t, "<div></div>", RemoveMarker("<div><!-- rows --></div>", "<!-- rows -->"))
	assert.Equal(t, "<div><tr></tr></div>", SpliceMarker("<div><!-- rows --></div>", "<!-- rows -->", "<tr></tr>"))
	assert.Equal(t, "<div>{{X.Y}} gone</div>", SpliceMarker("<div>{{X.Y}} {{M}}</div>", "{{M}}", "gone"))
}

func TestRemoveCommentBlock(t *testing.T) {
	html := `
		<h1>Main</h1>
		<!-- subtitle -->
		<tr><td>optional</td></tr>
		<!-- //subtitle -->
		<p>after</p>`

	result := RemoveCommentBlock(html, "subtitle")

	assert.NotContains(t, result, "optional")
	assert.NotContains(t, result, "<!-- subtitle -->")
	assert.Contains(t, result, "<h1>Main</h1>")
	assert.Contains(t, result, "<p>after</p>")
}

func TestRemoveCommentBlockNonGreedy(t *testing.T) {
	html := `<!-- button 1 -->one<!-- //button 1 --><span>keep</span><!-- button 1 -->two<!-- //button 1 -->`
	result := RemoveCommentBlock(html, "button 1")
	assert.Equal(t, "<span>keep</span>", result)
}

func TestHasCommentBlock(t *testing.T) {
	assert.True(t, HasCommentBlock("<!-- x -->a<!-- //x -->", "x"))
	assert.False(t, HasCommentBlock("<!-- x -->a", "x"))
}

func TestUnwrapCommentBlock(t *testing.T) {
	html := `<!-- image link --><a href="https://x" target="_blank"><img src="i.png"></a><!-- //image link -->`
	result := UnwrapCommentBlock(html, "image link")
	assert.Equal(t, `<img src="i.png">`, result)
}

func TestRemoveEnclosing(t *testing.T) {
	html := `<tr><td>{{subTitle}}</td></tr><tr><td>keep</td></tr>`
	needle := regexp.MustCompile(`\{\{subTitle\}\}`)

	result := RemoveEnclosing(html, needle, "tr")

	assert.NotContains(t, result, "{{subTitle}}")
	assert.Contains(t, result, "keep")
}

func TestRemovePlaceholderOrElement(t *testing.T) {
	t.Run("removes enclosing element", func(t *testing.T) {
		html := `<div class="sub">{{subTitle}}</div><div>rest</div>`
		result := RemovePlaceholderOrElement(html, "subTitle", "div")
		assert.NotContains(t, result, "subTitle")
		assert.Contains(t, result, "rest")
	})

	t.Run("erases bare placeholder", func(t *testing.T) {
		result := RemovePlaceholderOrElement("before {{subTitle}} after", "subTitle", "tr")
		assert.Equal(t, "before  after", result)
	})
}

func TestOpenCloseMarker(t *testing.T) {
	assert.Equal(t, "<!-- button -->", OpenMarker("button"))
	assert.Equal(t, "<!-- //button -->", CloseMarker("button"))
}
