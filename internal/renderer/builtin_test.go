package renderer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoButtonTemplate = `<!-- button 1 --><a href="https://example.com" style="background: #111111; color: #ffffff">button label</a><!-- //button 1 --><!-- button 2 --><a href="https://example.com" style="background: #111111; color: #ffffff">button label</a><!-- //button 2 -->`

func processType(t *testing.T, typeID, template string, props map[string]any) string {
	t.Helper()
	r := NewBuiltinRegistry()
	require.True(t, r.Has(typeID))
	html, err := r.Lookup(typeID).Process(context.Background(), template, props, testEnv(t, nil))
	require.NoError(t, err)
	return html
}

func TestTwoButtonBothVisible(t *testing.T) {
	out := processType(t, "two-button", twoButtonTemplate, map[string]any{
		"showFirst": true, "firstText": "FIRST", "firstUrl": "https://first.example",
		"showSecond": true, "secondText": "SECOND", "secondUrl": "https://second.example",
	})

	assert.Contains(t, out, `href="https://first.example"`)
	assert.Contains(t, out, "FIRST")
	assert.Contains(t, out, `href="https://second.example"`)
	assert.Contains(t, out, "SECOND")
}

func TestTwoButtonHiddenFirstKeepsSecondValues(t *testing.T) {
	out := processType(t, "two-button", twoButtonTemplate, map[string]any{
		"showFirst": false, "firstText": "FIRST", "firstUrl": "https://first.example",
		"showSecond": true, "secondText": "SECOND", "secondUrl": "https://second.example",
	})

	// hiding button 1 must not shift its text or link onto button 2
	assert.Contains(t, out, "SECOND")
	assert.Contains(t, out, `href="https://second.example"`)
	assert.NotContains(t, out, "FIRST")
	assert.NotContains(t, out, "https://first.example")
}

func TestTwoButtonHiddenSecond(t *testing.T) {
	out := processType(t, "two-button", twoButtonTemplate, map[string]any{
		"showFirst": true, "firstText": "FIRST", "firstUrl": "https://first.example",
		"showSecond": false, "secondText": "SECOND", "secondUrl": "https://second.example",
	})

	assert.Contains(t, out, "FIRST")
	assert.Contains(t, out, `href="https://first.example"`)
	assert.NotContains(t, out, "SECOND")
	assert.NotContains(t, out, "https://second.example")
}

func TestSubtitleBarLegacyTemplate(t *testing.T) {
	// marker-less legacy layout: the whole row must go when empty
	legacy := `<table><tr><td class="subtitle">{{subTitle}}</td></tr><tr><td>body</td></tr></table>`

	t.Run("empty removes enclosing row", func(t *testing.T) {
		out := processType(t, "subtitle-bar", legacy, map[string]any{"subTitle": ""})
		assert.NotContains(t, out, "subTitle")
		assert.NotContains(t, out, `class="subtitle"`)
		assert.Contains(t, out, "<td>body</td>")
	})

	t.Run("value substitutes in place", func(t *testing.T) {
		out := processType(t, "subtitle-bar", legacy, map[string]any{"subTitle": "Weekly digest"})
		assert.Contains(t, out, `<td class="subtitle">Weekly digest</td>`)
		assert.Contains(t, out, "<td>body</td>")
	})
}

func TestSubtitleBarMarkedTemplate(t *testing.T) {
	marked := `<h1>head</h1><!-- subtitle --><div>{{subTitle}}</div><!-- //subtitle -->`

	t.Run("empty removes comment block", func(t *testing.T) {
		out := processType(t, "subtitle-bar", marked, map[string]any{"subTitle": ""})
		assert.Equal(t, "<h1>head</h1>", out)
	})

	t.Run("value keeps block with markers stripped", func(t *testing.T) {
		out := processType(t, "subtitle-bar", marked, map[string]any{"subTitle": "Weekly"})
		assert.Equal(t, "<h1>head</h1><div>Weekly</div>", out)
	})
}
