package renderer

import (
	"context"
	"regexp"

	"github.com/edmkit/edmkit/internal/domain"
	"github.com/edmkit/edmkit/pkg/htmltext"
	"github.com/edmkit/edmkit/pkg/substitute"
)

// The constructors below build the pipeline steps module registry
// entries are composed of. Positional steps depend on the template
// structure matching the configured occurrence order exactly; that
// contract is pinned by the golden-template tests.

// PositionalText replaces the k-th occurrence of the literal
// placeholder text with the value of the k-th key, left to right.
func PositionalText(placeholder string, keys ...string) PipelineStep {
	pattern := regexp.MustCompile(regexp.QuoteMeta(placeholder))
	return func(_ context.Context, html string, props map[string]any, _ *Env) (string, error) {
		values := make([]string, len(keys))
		for i, key := range keys {
			values[i] = htmltext.SafeFormat(htmltext.Stringify(props[key]))
		}
		return substitute.Sequential(html, pattern, values...), nil
	}
}

// SwapColor replaces the k-th occurrence of a default hex color with
// the k-th key's value, by occurrence. Values that are not valid hex
// colors (including empty ones) keep the template default; shorthand
// colors are expanded to six digits for email clients.
func SwapColor(literal string, keys ...string) PipelineStep {
	pattern := regexp.MustCompile(regexp.QuoteMeta(literal))
	return func(_ context.Context, html string, props map[string]any, _ *Env) (string, error) {
		values := make([]string, len(keys))
		for i, key := range keys {
			v := htmltext.FormatHexColor(htmltext.Stringify(props[key]))
			if !htmltext.IsValidHexColor(v) {
				values[i] = literal
				continue
			}
			values[i] = htmltext.ExpandHexColor(v)
		}
		return substitute.Sequential(html, pattern, values...), nil
	}
}

// ReplaceText substitutes the named {{key}} placeholder with the
// property value through safeFormat. Used by modules that opt out of
// the generic placeholder pass because their pipeline must see the raw
// template first.
func ReplaceText(key string) PipelineStep {
	return func(_ context.Context, html string, props map[string]any, _ *Env) (string, error) {
		return substitute.Placeholder(html, key, htmltext.SafeFormat(htmltext.Stringify(props[key]))), nil
	}
}

// SwapImageSources replaces src attributes carrying the default image
// URL with the configured keys' values, by occurrence. Unsafe and empty
// URLs keep the default.
func SwapImageSources(defaultSrc string, keys ...string) PipelineStep {
	pattern := regexp.MustCompile(`src="` + regexp.QuoteMeta(defaultSrc) + `"`)
	return func(_ context.Context, html string, props map[string]any, _ *Env) (string, error) {
		values := make([]string, len(keys))
		for i, key := range keys {
			src := htmltext.SanitizeURL(props[key], defaultSrc)
			if src == "" {
				src = defaultSrc
			}
			values[i] = `src="` + src + `"`
		}
		return substitute.Sequential(html, pattern, values...), nil
	}
}

// SwapLinks replaces href attributes carrying the default link target
// with the configured keys' values, by occurrence. Unsafe URLs become
// the safe fallback, empty values keep the default.
func SwapLinks(defaultHref string, keys ...string) PipelineStep {
	pattern := regexp.MustCompile(`href="` + regexp.QuoteMeta(defaultHref) + `"`)
	return func(_ context.Context, html string, props map[string]any, _ *Env) (string, error) {
		values := make([]string, len(keys))
		for i, key := range keys {
			href := defaultHref
			if !htmltext.IsEmpty(props[key]) {
				href = htmltext.SafeHref(htmltext.Stringify(props[key]))
			}
			values[i] = `href="` + href + `"`
		}
		return substitute.Sequential(html, pattern, values...), nil
	}
}

// RemoveBlockUnless deletes the labeled comment block when the boolean
// property is false or absent, and strips the markers when it is true.
func RemoveBlockUnless(label, key string) PipelineStep {
	return func(_ context.Context, html string, props map[string]any, _ *Env) (string, error) {
		if v, ok := props[key].(bool); !ok || !v {
			return substitute.RemoveCommentBlock(html, label), nil
		}
		return stripMarkers(html, label), nil
	}
}

// RemoveBlockWhenEmpty deletes the labeled comment block when the
// property is empty, and strips the markers when content is present.
func RemoveBlockWhenEmpty(label, key string) PipelineStep {
	return func(_ context.Context, html string, props map[string]any, _ *Env) (string, error) {
		if htmltext.IsEmpty(props[key]) {
			return substitute.RemoveCommentBlock(html, label), nil
		}
		return stripMarkers(html, label), nil
	}
}

// UnwrapLinkWhenEmpty drops the labeled <a> wrapper when the link
// property is empty, keeping the wrapped content. A present link keeps
// the wrapper with the markers stripped.
func UnwrapLinkWhenEmpty(label, key string) PipelineStep {
	return func(_ context.Context, html string, props map[string]any, _ *Env) (string, error) {
		if htmltext.IsEmpty(props[key]) {
			return substitute.UnwrapCommentBlock(html, label), nil
		}
		return stripMarkers(html, label), nil
	}
}

// RemoveLegacyElement deletes the element enclosing the named
// placeholder when the property is empty. Best effort for templates
// that predate comment markers.
func RemoveLegacyElement(key string, tags ...string) PipelineStep {
	return func(_ context.Context, html string, props map[string]any, _ *Env) (string, error) {
		if htmltext.IsEmpty(props[key]) {
			return substitute.RemovePlaceholderOrElement(html, key, tags...), nil
		}
		return html, nil
	}
}

// TableRowsAt renders the header/data rows stored under key and
// splices them at the marker. An empty list removes the marker so the
// output carries zero rows.
func TableRowsAt(marker, key string) PipelineStep {
	return func(_ context.Context, html string, props map[string]any, _ *Env) (string, error) {
		rows := asTableRows(props[key])
		if len(rows) == 0 {
			return substitute.RemoveMarker(html, marker), nil
		}
		return substitute.SpliceMarker(html, marker, RowsHTML(rows)), nil
	}
}

// GridTableAt renders the 2-D cell grid stored under key at the
// marker, hidden cells excluded.
func GridTableAt(marker, key string) PipelineStep {
	return func(_ context.Context, html string, props map[string]any, _ *Env) (string, error) {
		cells := asGrid(props[key])
		if len(cells) == 0 {
			return substitute.RemoveMarker(html, marker), nil
		}
		return substitute.SpliceMarker(html, marker, GridHTML(cells)), nil
	}
}

// AdditionalContentAt splices the additional-content entries stored
// under key at the marker, fetching their sub-templates on demand.
func AdditionalContentAt(marker, key string) PipelineStep {
	return func(ctx context.Context, html string, props map[string]any, env *Env) (string, error) {
		return InsertAdditionalContent(ctx, html, asAdditionalContent(props[key]), marker, env), nil
	}
}

// StripMarkers removes leftover comment markers for the given labels
// without touching the content between them. Used as a final cleanup
// step.
func StripMarkers(labels ...string) PipelineStep {
	return func(_ context.Context, html string, _ map[string]any, _ *Env) (string, error) {
		for _, label := range labels {
			html = stripMarkers(html, label)
		}
		return html, nil
	}
}

func stripMarkers(html, label string) string {
	html = substitute.RemoveMarker(html, substitute.OpenMarker(label))
	return substitute.RemoveMarker(html, substitute.CloseMarker(label))
}

// asTableRows accepts both the typed slice used in-process and the
// decoded-JSON form arriving over the HTTP API.
func asTableRows(v any) []domain.TableRow {
	switch typed := v.(type) {
	case []domain.TableRow:
		return typed
	case []any:
		out := make([]domain.TableRow, 0, len(typed))
		for _, item := range typed {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			out = append(out, domain.TableRow{
				Header: htmltext.Stringify(m["header"]),
				Data:   htmltext.Stringify(m["data"]),
			})
		}
		return out
	default:
		return nil
	}
}

func asGrid(v any) [][]domain.TableCell {
	switch typed := v.(type) {
	case [][]domain.TableCell:
		return typed
	case []any:
		out := make([][]domain.TableCell, 0, len(typed))
		for _, rowVal := range typed {
			rowItems, ok := rowVal.([]any)
			if !ok {
				continue
			}
			row := make([]domain.TableCell, 0, len(rowItems))
			for _, cellVal := range rowItems {
				m, ok := cellVal.(map[string]any)
				if !ok {
					continue
				}
				cell := domain.TableCell{
					Kind:    domain.CellKind(htmltext.Stringify(m["type"])),
					Content: htmltext.Stringify(m["content"]),
					ColSpan: asInt(m["colSpan"], 1),
					RowSpan: asInt(m["rowSpan"], 1),
					Width:   htmltext.Stringify(m["width"]),
					Align:   htmltext.Stringify(m["align"]),
				}
				if hidden, ok := m["hidden"].(bool); ok {
					cell.Hidden = hidden
				}
				row = append(row, cell)
			}
			out = append(out, row)
		}
		return out
	default:
		return nil
	}
}

func asAdditionalContent(v any) []domain.AdditionalContent {
	switch typed := v.(type) {
	case []domain.AdditionalContent:
		return typed
	case []any:
		out := make([]domain.AdditionalContent, 0, len(typed))
		for _, item := range typed {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			entry := domain.AdditionalContent{
				Kind:         domain.ContentKind(htmltext.Stringify(m["kind"])),
				TemplateName: htmltext.Stringify(m["templateName"]),
				Order:        asInt(m["order"], 0),
				Data:         map[string]string{},
			}
			if entry.TemplateName == "" {
				entry.TemplateName = string(entry.Kind)
			}
			if data, ok := m["data"].(map[string]any); ok {
				for k, dv := range data {
					entry.Data[k] = htmltext.Stringify(dv)
				}
			}
			out = append(out, entry)
		}
		return out
	default:
		return nil
	}
}

func asInt(v any, fallback int) int {
	switch typed := v.(type) {
	case int:
		return typed
	case float64:
		return int(typed)
	default:
		return fallback
	}
}
