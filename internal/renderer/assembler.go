package renderer

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/edmkit/edmkit/internal/domain"
	"github.com/edmkit/edmkit/pkg/htmltext"
	"github.com/edmkit/edmkit/pkg/logger"
	"github.com/edmkit/edmkit/pkg/substitute"
)

// WrapOptions controls the outer shell the assembled modules are
// wrapped in.
type WrapOptions struct {
	// FullDocument emits a complete HTML document with doctype and
	// head. When false the output is a bare container div suitable for
	// embedding.
	FullDocument    bool
	Title           string
	BackgroundColor string
	Border          string
	Width           int
}

// Result is one finished assembly: the HTML plus every diagnostic
// collected along the way.
type Result struct {
	HTML        string              `json:"html"`
	Diagnostics []domain.Diagnostic `json:"diagnostics,omitempty"`
}

// Assembler renders whole newsletters.
type Assembler struct {
	source   TemplateSource
	registry *Registry
	logger   logger.Logger
}

// NewAssembler wires an assembler.
func NewAssembler(source TemplateSource, registry *Registry, log logger.Logger) *Assembler {
	return &Assembler{source: source, registry: registry, logger: log}
}

// Render assembles the newsletter's modules in ascending order. The
// session is treated as a snapshot: callers must not mutate it while a
// render is in flight. Template fetches run in parallel, pipelines run
// sequentially per module, and output concatenation always follows the
// sorted order. A module whose template cannot be fetched or processed
// is skipped with a diagnostic so one broken module never blanks the
// newsletter.
func (a *Assembler) Render(ctx context.Context, n *domain.Newsletter, opts WrapOptions) Result {
	env := NewEnv(a.source, a.logger)
	modules := n.Ordered()

	templates := make([]string, len(modules))
	fetchErrs := make([]error, len(modules))

	g, fetchCtx := errgroup.WithContext(ctx)
	for i, m := range modules {
		i, m := i, m
		g.Go(func() error {
			templates[i], fetchErrs[i] = a.source.Module(fetchCtx, m.Type)
			return nil
		})
	}
	// fetch errors are kept per module, the group itself never fails
	_ = g.Wait()

	var b strings.Builder
	for i, m := range modules {
		if fetchErrs[i] != nil {
			a.logger.WithFields(map[string]interface{}{
				"moduleType": m.Type,
				"error":      fetchErrs[i].Error(),
			}).Error("skipping module, template fetch failed")
			env.Report(domain.Diagnostic{
				Severity:   domain.SeverityError,
				ModuleID:   m.ID,
				ModuleType: m.Type,
				Message:    fmt.Sprintf("template fetch failed: %v", fetchErrs[i]),
			})
			continue
		}

		html, err := a.registry.Lookup(m.Type).Process(ctx, templates[i], m.Properties, env)
		if err != nil {
			env.Report(domain.Diagnostic{
				Severity:   domain.SeverityError,
				ModuleID:   m.ID,
				ModuleType: m.Type,
				Message:    fmt.Sprintf("processing failed: %v", err),
			})
			continue
		}

		if len(m.Styles) > 0 {
			html = ApplyContainerStyles(html, m.Styles)
		}
		b.WriteString(html)
		b.WriteString("\n")
	}

	return Result{
		HTML:        wrap(b.String(), opts),
		Diagnostics: env.Diagnostics(),
	}
}

var firstContainerPattern = regexp.MustCompile(`(?i)(<(?:table|div)\b[^>]*?)(/?>)`)

// ApplyContainerStyles injects a style attribute built from the
// camelCase style map into the first table or div tag of html. Nested
// containers are never touched.
func ApplyContainerStyles(html string, styles map[string]string) string {
	css := StylesToCSS(styles)
	if css == "" {
		return html
	}
	return substitute.ReplaceFirst(html, firstContainerPattern, `$1 style="`+css+`"$2`)
}

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// StylesToCSS converts a camelCase style map to a CSS declaration
// string. Keys are emitted in sorted order, empty values are dropped.
func StylesToCSS(styles map[string]string) string {
	keys := make([]string, 0, len(styles))
	for k := range styles {
		if strings.TrimSpace(styles[k]) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		kebab := strings.ToLower(camelBoundary.ReplaceAllString(k, "${1}-${2}"))
		parts = append(parts, kebab+": "+styles[k]+";")
	}
	return strings.Join(parts, " ")
}

func wrap(content string, opts WrapOptions) string {
	if opts.Width <= 0 {
		opts.Width = 680
	}
	bg := htmltext.FormatHexColor(opts.BackgroundColor)
	if !htmltext.IsValidHexColor(bg) {
		bg = "#ffffff"
	}
	opts.BackgroundColor = htmltext.ExpandHexColor(bg)

	containerStyle := fmt.Sprintf("max-width: %dpx; margin: 0 auto; background-color: %s;", opts.Width, opts.BackgroundColor)
	if opts.Border != "" {
		containerStyle += " border: " + opts.Border + ";"
	}

	container := `<div class="email-container" style="` + containerStyle + `">` + "\n" + content + "</div>"
	if !opts.FullDocument {
		return container
	}

	// the title element must hold plain text
	title := htmltext.StripTags(opts.Title)
	if title == "" {
		title = "Newsletter"
	}

	return `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>` + title + `</title>
</head>
<body style="margin: 0; padding: 0; background-color: #f4f4f4;">
` + container + `
</body>
</html>`
}
