package renderer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edmkit/edmkit/internal/domain"
)

func runStep(t *testing.T, step PipelineStep, html string, props map[string]any) string {
	t.Helper()
	out, err := step(context.Background(), html, props, testEnv(t, nil))
	require.NoError(t, err)
	return out
}

func TestPositionalText(t *testing.T) {
	step := PositionalText("content title", "left", "right")
	html := "<td>content title</td><td>content title</td>"

	out := runStep(t, step, html, map[string]any{"left": "First", "right": "Second"})
	assert.Equal(t, "<td>First</td><td>Second</td>", out)

	t.Run("missing keys become empty", func(t *testing.T) {
		out := runStep(t, step, html, map[string]any{"left": "Only"})
		assert.Equal(t, "<td>Only</td><td></td>", out)
	})
}

func TestSwapColor(t *testing.T) {
	step := SwapColor("#111111", "first", "second")
	html := `<a style="background: #111111">x</a><a style="background: #111111">y</a>`

	t.Run("empty value keeps the template default", func(t *testing.T) {
		out := runStep(t, step, html, map[string]any{"first": "#ff0000", "second": ""})
		assert.Equal(t, `<a style="background: #ff0000">x</a><a style="background: #111111">y</a>`, out)
	})

	t.Run("invalid color keeps the template default", func(t *testing.T) {
		out := runStep(t, step, html, map[string]any{"first": "not-a-color", "second": "#00ff00"})
		assert.Equal(t, `<a style="background: #111111">x</a><a style="background: #00ff00">y</a>`, out)
	})

	t.Run("shorthand expands and bare hex gains prefix", func(t *testing.T) {
		out := runStep(t, step, html, map[string]any{"first": "#abc", "second": "ff0000"})
		assert.Equal(t, `<a style="background: #aabbcc">x</a><a style="background: #ff0000">y</a>`, out)
	})
}

func TestReplaceText(t *testing.T) {
	step := ReplaceText("subTitle")
	out := runStep(t, step, "<td>{{subTitle}}</td>", map[string]any{"subTitle": "a\nb"})
	assert.Equal(t, "<td>a<br>b</td>", out)
}

func TestSwapImageSources(t *testing.T) {
	step := SwapImageSources("https://cdn.example.com/default.png", "leftImage", "rightImage")
	html := `<img src="https://cdn.example.com/default.png"><img src="https://cdn.example.com/default.png">`

	out := runStep(t, step, html, map[string]any{
		"leftImage":  "https://cdn.example.com/custom.png",
		"rightImage": "",
	})

	assert.Contains(t, out, `src="https://cdn.example.com/custom.png"`)
	assert.Contains(t, out, `src="https://cdn.example.com/default.png"`)
}

func TestSwapLinks(t *testing.T) {
	step := SwapLinks("https://example.com", "firstUrl", "secondUrl")
	html := `<a href="https://example.com">a</a><a href="https://example.com">b</a>`

	out := runStep(t, step, html, map[string]any{
		"firstUrl":  "https://edmkit.io/news",
		"secondUrl": "javascript:alert(1)",
	})

	assert.Contains(t, out, `href="https://edmkit.io/news"`)
	// unsafe URLs collapse to the safe fallback
	assert.Contains(t, out, `href="#"`)
	assert.NotContains(t, out, "javascript:")
}

func TestRemoveBlockUnless(t *testing.T) {
	step := RemoveBlockUnless("button 1", "showFirst")
	html := `<!-- button 1 --><a>go</a><!-- //button 1 -->`

	t.Run("false removes block", func(t *testing.T) {
		assert.Equal(t, "", runStep(t, step, html, map[string]any{"showFirst": false}))
	})

	t.Run("absent removes block", func(t *testing.T) {
		assert.Equal(t, "", runStep(t, step, html, map[string]any{}))
	})

	t.Run("true keeps content, strips markers", func(t *testing.T) {
		assert.Equal(t, "<a>go</a>", runStep(t, step, html, map[string]any{"showFirst": true}))
	})
}

func TestRemoveBlockWhenEmpty(t *testing.T) {
	step := RemoveBlockWhenEmpty("subtitle", "subTitle")
	html := `<h1>Main</h1><!-- subtitle --><p>{{subTitle}}</p><!-- //subtitle -->`

	t.Run("empty removes whole block", func(t *testing.T) {
		out := runStep(t, step, html, map[string]any{"subTitle": ""})
		assert.Equal(t, "<h1>Main</h1>", out)
	})

	t.Run("present keeps block", func(t *testing.T) {
		out := runStep(t, step, html, map[string]any{"subTitle": "Weekly"})
		assert.Equal(t, "<h1>Main</h1><p>{{subTitle}}</p>", out)
	})
}

func TestUnwrapLinkWhenEmpty(t *testing.T) {
	step := UnwrapLinkWhenEmpty("image link", "linkUrl")
	html := `<!-- image link --><a href="https://example.com"><img src="i.png"></a><!-- //image link -->`

	t.Run("empty link unwraps image", func(t *testing.T) {
		out := runStep(t, step, html, map[string]any{"linkUrl": ""})
		assert.Equal(t, `<img src="i.png">`, out)
	})

	t.Run("present link keeps wrapper", func(t *testing.T) {
		out := runStep(t, step, html, map[string]any{"linkUrl": "https://x.io"})
		assert.Equal(t, `<a href="https://example.com"><img src="i.png"></a>`, out)
	})
}

func TestRemoveLegacyElement(t *testing.T) {
	step := RemoveLegacyElement("subTitle", "tr")
	html := `<tr><td>{{subTitle}}</td></tr><tr><td>keep</td></tr>`

	out := runStep(t, step, html, map[string]any{"subTitle": ""})
	assert.NotContains(t, out, "subTitle")
	assert.Contains(t, out, "keep")

	t.Run("non-empty value leaves template alone", func(t *testing.T) {
		assert.Equal(t, html, runStep(t, step, html, map[string]any{"subTitle": "x"}))
	})
}

func TestTableRowsAt(t *testing.T) {
	step := TableRowsAt("<!-- table rows -->", "tableRows")
	html := "<table><!-- table rows --></table>"

	t.Run("rows render in input order", func(t *testing.T) {
		out := runStep(t, step, html, map[string]any{"tableRows": []domain.TableRow{
			{Header: "A", Data: "1"},
			{Header: "B", Data: "2"},
		}})
		assert.Equal(t, 2, strings.Count(out, "<tr>"))
		assert.Less(t, strings.Index(out, ">A<"), strings.Index(out, ">B<"))
	})

	t.Run("empty list removes marker and emits no rows", func(t *testing.T) {
		out := runStep(t, step, html, map[string]any{"tableRows": []domain.TableRow{}})
		assert.Equal(t, "<table></table>", out)
	})

	t.Run("decoded JSON rows", func(t *testing.T) {
		out := runStep(t, step, html, map[string]any{"tableRows": []any{
			map[string]any{"header": "H", "data": "D"},
		}})
		assert.Contains(t, out, ">H<")
		assert.Contains(t, out, ">D<")
	})
}

func TestGridTableAt(t *testing.T) {
	step := GridTableAt("<!-- table cells -->", "tableCells")
	cells := [][]domain.TableCell{
		{
			{Kind: domain.CellHeader, Content: "head", ColSpan: 2, RowSpan: 1},
			{Kind: domain.CellData, Content: "covered", ColSpan: 1, RowSpan: 1, Hidden: true},
		},
		{
			{Kind: domain.CellData, Content: "a", ColSpan: 1, RowSpan: 1},
			{Kind: domain.CellData, Content: "b", ColSpan: 1, RowSpan: 1},
		},
	}

	out := runStep(t, step, "<table><!-- table cells --></table>", map[string]any{"tableCells": cells})

	assert.Contains(t, out, `colspan="2"`)
	assert.NotContains(t, out, "covered")
	assert.Contains(t, out, ">a<")
	assert.Contains(t, out, ">b<")
}
