package renderer

import (
	"context"
	"fmt"
	"strings"

	"github.com/edmkit/edmkit/internal/domain"
	"github.com/edmkit/edmkit/pkg/htmltext"
	"github.com/edmkit/edmkit/pkg/substitute"
)

// InsertAdditionalContent splices the rendered sub-blocks for entries
// into html at the literal marker. An empty list removes the marker. A
// sub-template that cannot be fetched skips its entry with a diagnostic
// so one missing partial never blanks the whole module.
func InsertAdditionalContent(ctx context.Context, html string, entries []domain.AdditionalContent, marker string, env *Env) string {
	if len(entries) == 0 {
		return substitute.RemoveMarker(html, marker)
	}

	var blocks []string
	for _, entry := range domain.SortAdditionalContent(entries) {
		partial, err := env.Source.Partial(ctx, entry.TemplateName)
		if err != nil {
			env.Logger.WithFields(map[string]interface{}{
				"kind":  string(entry.Kind),
				"error": err.Error(),
			}).Warn("skipping additional content block")
			env.Report(domain.Diagnostic{
				Severity: domain.SeverityWarning,
				Message:  fmt.Sprintf("additional content %q skipped: %v", entry.Kind, err),
			})
			continue
		}

		data := make(map[string]string, len(entry.Data))
		for k, v := range entry.Data {
			data[k] = htmltext.FormatWithBreaks(v)
		}
		blocks = append(blocks, substitute.Named(partial, data))
	}

	return substitute.SpliceMarker(html, marker, strings.Join(blocks, "\n"))
}
