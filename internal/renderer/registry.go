package renderer

import (
	"context"
	"sort"
	"sync"

	"github.com/edmkit/edmkit/internal/domain"
	"github.com/edmkit/edmkit/pkg/htmltext"
	"github.com/edmkit/edmkit/pkg/logger"
	"github.com/edmkit/edmkit/pkg/richtext"
	"github.com/edmkit/edmkit/pkg/substitute"
)

// Env carries the per-render collaborators a processor may need:
// template source for sub-template fetches, diagnostics collection and
// logging.
type Env struct {
	Source TemplateSource
	Logger logger.Logger

	mu          sync.Mutex
	diagnostics []domain.Diagnostic
}

// NewEnv builds an environment for one render run.
func NewEnv(source TemplateSource, log logger.Logger) *Env {
	return &Env{Source: source, Logger: log}
}

// Report records a diagnostic. Safe for concurrent use.
func (e *Env) Report(d domain.Diagnostic) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.diagnostics = append(e.diagnostics, d)
}

// Diagnostics returns everything reported so far.
func (e *Env) Diagnostics() []domain.Diagnostic {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.Diagnostic, len(e.diagnostics))
	copy(out, e.diagnostics)
	return out
}

// PipelineStep is one module-specific transformation applied after the
// generic placeholder pass. Steps run in order, each consuming the
// previous step's output.
type PipelineStep func(ctx context.Context, html string, props map[string]any, env *Env) (string, error)

// Processor renders one module instance's template into finished HTML.
type Processor interface {
	Process(ctx context.Context, html string, props map[string]any, env *Env) (string, error)
}

// moduleProcessor is the standard registry-driven processor: defaults,
// rich-text field keys, an optional generic placeholder pass and an
// ordered pipeline.
type moduleProcessor struct {
	defaults     map[string]any
	richTextKeys []string
	autoReplace  bool
	pipeline     []PipelineStep
}

// mergedProperties layers instance properties over the type defaults,
// instance values winning.
func (p *moduleProcessor) mergedProperties(props map[string]any) map[string]any {
	merged := make(map[string]any, len(p.defaults)+len(props))
	for k, v := range p.defaults {
		merged[k] = v
	}
	for k, v := range props {
		merged[k] = v
	}
	return merged
}

func (p *moduleProcessor) isRichText(key string) bool {
	for _, k := range p.richTextKeys {
		if k == key {
			return true
		}
	}
	return false
}

// substituteAll runs the generic named-placeholder pass. Rich-text
// fields are normalized first, plain strings go through safeFormat,
// everything else is stringified as-is. Iteration order is fixed so
// renders are deterministic.
func (p *moduleProcessor) substituteAll(html string, props map[string]any) string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := props[key]
		var rendered string
		switch {
		case p.isRichText(key):
			rendered = richtext.Normalize(htmltext.Stringify(value))
		default:
			if s, ok := value.(string); ok {
				rendered = htmltext.SafeFormat(s)
			} else if value == nil {
				rendered = ""
			} else {
				switch value.(type) {
				case []domain.TableRow, [][]domain.TableCell, []domain.AdditionalContent, []any, map[string]any:
					// structured values are consumed by pipeline steps
					continue
				default:
					rendered = htmltext.Stringify(value)
				}
			}
		}
		html = substitute.Placeholder(html, key, rendered)
	}
	return html
}

func (p *moduleProcessor) Process(ctx context.Context, html string, props map[string]any, env *Env) (string, error) {
	merged := p.mergedProperties(props)
	if p.autoReplace {
		html = p.substituteAll(html, merged)
	}
	for _, step := range p.pipeline {
		var err error
		html, err = step(ctx, html, merged, env)
		if err != nil {
			return "", err
		}
	}
	return html, nil
}

// Registry maps module type ids to processors. Unknown types fall back
// to a plain named-substitution processor so unconfigured module types
// still render.
type Registry struct {
	processors map[string]Processor
	fallback   Processor
}

// NewRegistry returns an empty registry with the generic fallback.
func NewRegistry() *Registry {
	return &Registry{
		processors: map[string]Processor{},
		fallback:   &moduleProcessor{autoReplace: true},
	}
}

// Register binds a processor to a module type id.
func (r *Registry) Register(typeID string, p Processor) {
	r.processors[typeID] = p
}

// Lookup returns the processor for the type, or the fallback.
func (r *Registry) Lookup(typeID string) Processor {
	if p, ok := r.processors[typeID]; ok {
		return p
	}
	return r.fallback
}

// Has reports whether a dedicated processor is registered for the type.
func (r *Registry) Has(typeID string) bool {
	_, ok := r.processors[typeID]
	return ok
}
