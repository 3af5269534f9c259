package renderer

import (
	"fmt"
	"strings"

	"github.com/edmkit/edmkit/internal/domain"
	"github.com/edmkit/edmkit/pkg/htmltext"
)

const (
	headerCellStyle = "width: 20%; padding: 12px 16px; text-align: left; vertical-align: top; background-color: #f5f5f5; font-weight: bold; border-bottom: 1px solid #e0e0e0;"
	dataCellStyle   = "width: 80%; padding: 12px 16px; text-align: left; vertical-align: top; border-bottom: 1px solid #e0e0e0;"
	gridCellStyle   = "padding: 10px 12px; border: 1px solid #e0e0e0; vertical-align: top;"
)

// RowsHTML renders header/data pairs as table rows in input order. An
// empty slice yields "".
func RowsHTML(rows []domain.TableRow) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(`<tr><th style="` + headerCellStyle + `">`)
		b.WriteString(htmltext.FormatWithBreaks(row.Header))
		b.WriteString(`</th><td style="` + dataCellStyle + `">`)
		b.WriteString(htmltext.FormatWithBreaks(row.Data))
		b.WriteString(`</td></tr>`)
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// GridHTML renders a 2-D cell grid as table rows. Hidden cells are
// skipped entirely, spans and per-cell width/alignment become
// attributes on the emitted cell.
func GridHTML(cells [][]domain.TableCell) string {
	var b strings.Builder
	for _, row := range cells {
		b.WriteString("<tr>")
		for _, cell := range row {
			if cell.Hidden {
				continue
			}
			tag := "td"
			if cell.Kind == domain.CellHeader {
				tag = "th"
			}
			b.WriteString("<" + tag)
			if cell.ColSpan > 1 {
				b.WriteString(fmt.Sprintf(` colspan="%d"`, cell.ColSpan))
			}
			if cell.RowSpan > 1 {
				b.WriteString(fmt.Sprintf(` rowspan="%d"`, cell.RowSpan))
			}
			if cell.Width != "" {
				b.WriteString(` width="` + cell.Width + `"`)
			}
			style := gridCellStyle
			if cell.Align != "" {
				style += " text-align: " + cell.Align + ";"
			}
			if cell.Kind == domain.CellHeader {
				style += " background-color: #f5f5f5; font-weight: bold;"
			}
			b.WriteString(` style="` + style + `">`)
			b.WriteString(htmltext.FormatWithBreaks(cell.Content))
			b.WriteString("</" + tag + ">")
		}
		b.WriteString("</tr>\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
