// Package catalog loads and validates the module-type catalog: the
// JSON resource listing every available module type and its editable
// property schema.
package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/tidwall/gjson"

	"github.com/edmkit/edmkit/internal/domain"
	"github.com/edmkit/edmkit/pkg/logger"
)

// Catalog is the validated set of module types, keyed by type id.
type Catalog struct {
	entries map[string]domain.ModuleMetadata
}

// Empty returns a catalog with no entries.
func Empty() *Catalog {
	return &Catalog{entries: map[string]domain.ModuleMetadata{}}
}

// FromMetadata builds a catalog from already-validated entries.
func FromMetadata(entries []domain.ModuleMetadata) *Catalog {
	c := Empty()
	for _, e := range entries {
		c.entries[e.TypeID] = e
	}
	return c
}

// Lookup returns the metadata for a type id.
func (c *Catalog) Lookup(typeID string) (domain.ModuleMetadata, bool) {
	meta, ok := c.entries[typeID]
	return meta, ok
}

// Has reports whether the type id is present.
func (c *Catalog) Has(typeID string) bool {
	_, ok := c.entries[typeID]
	return ok
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// All returns every entry sorted by type id.
func (c *Catalog) All() []domain.ModuleMetadata {
	out := make([]domain.ModuleMetadata, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].TypeID < out[j].TypeID
	})
	return out
}

// DefaultPropertiesFor seeds the property map for a new instance of the
// given type. Unknown types get an empty map.
func (c *Catalog) DefaultPropertiesFor(typeID string) map[string]any {
	if meta, ok := c.entries[typeID]; ok {
		return meta.DefaultProperties()
	}
	return map[string]any{}
}

// Parse decodes and validates raw catalog JSON. Entries missing any of
// the required fields (id, name, editableProps array) are dropped with
// a diagnostic. A malformed top level never fails hard: the result is
// an empty catalog plus a diagnostic, so the caller keeps running with
// a reduced feature set.
func Parse(raw []byte) (*Catalog, []domain.Diagnostic) {
	var diags []domain.Diagnostic

	if !gjson.ValidBytes(raw) {
		diags = append(diags, domain.Diagnostic{
			Severity: domain.SeverityError,
			Message:  "catalog is not valid JSON, continuing with empty catalog",
		})
		return Empty(), diags
	}

	doc := gjson.ParseBytes(raw)
	list := doc.Get("modules")
	if !list.Exists() {
		list = doc
	}
	if !list.IsArray() {
		diags = append(diags, domain.Diagnostic{
			Severity: domain.SeverityError,
			Message:  "catalog top level is not a module array, continuing with empty catalog",
		})
		return Empty(), diags
	}

	c := Empty()
	for i, item := range list.Array() {
		meta, err := parseEntry(item)
		if err != nil {
			diags = append(diags, domain.Diagnostic{
				Severity: domain.SeverityWarning,
				Message:  fmt.Sprintf("catalog entry %d dropped: %v", i, err),
			})
			continue
		}
		c.entries[meta.TypeID] = meta
	}
	return c, diags
}

func parseEntry(item gjson.Result) (domain.ModuleMetadata, error) {
	id := item.Get("id").String()
	name := item.Get("name").String()
	props := item.Get("editableProps")

	if id == "" {
		return domain.ModuleMetadata{}, fmt.Errorf("missing id")
	}
	if name == "" {
		return domain.ModuleMetadata{}, fmt.Errorf("missing name for %q", id)
	}
	if !props.IsArray() {
		return domain.ModuleMetadata{}, fmt.Errorf("missing editableProps array for %q", id)
	}

	meta := domain.ModuleMetadata{
		TypeID:      id,
		Name:        name,
		Description: item.Get("description").String(),
		Category:    item.Get("category").String(),
		Thumbnail:   item.Get("thumbnail").String(),
	}
	for _, p := range props.Array() {
		key := p.Get("key").String()
		if key == "" {
			continue
		}
		kind := domain.PropKind(p.Get("kind").String())
		if kind == "" {
			kind = domain.PropText
		}
		meta.Props = append(meta.Props, domain.EditableProp{
			Key:         key,
			Label:       p.Get("label").String(),
			Kind:        kind,
			Placeholder: p.Get("placeholder").String(),
		})
	}
	return meta, nil
}

// Loader fetches catalog JSON from an HTTP URL or a local file path and
// parses it. URL wins when both are configured.
type Loader struct {
	url    string
	path   string
	client *http.Client
	logger logger.Logger
}

// NewLoader builds a loader for the given sources.
func NewLoader(url, path string, log logger.Logger) *Loader {
	return &Loader{
		url:    url,
		path:   path,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: log,
	}
}

// Load fetches and parses the catalog. Fetch and parse failures are
// reported as diagnostics alongside an empty catalog, never as an
// error that would take the service down.
func (l *Loader) Load(ctx context.Context) (*Catalog, []domain.Diagnostic) {
	raw, err := l.fetch(ctx)
	if err != nil {
		l.logger.WithField("error", err.Error()).Error("failed to load module catalog")
		return Empty(), []domain.Diagnostic{{
			Severity: domain.SeverityError,
			Message:  fmt.Sprintf("catalog load failed: %v", err),
		}}
	}

	c, diags := Parse(raw)
	for _, d := range diags {
		l.logger.WithField("detail", d.Message).Warn("catalog validation")
	}
	l.logger.WithField("modules", c.Len()).Info("module catalog loaded")
	return c, diags
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	if l.url != "" {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
		if err != nil {
			return nil, err
		}
		resp, err := l.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetching %s: status %d", l.url, resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}
	if l.path != "" {
		return os.ReadFile(l.path)
	}
	return nil, fmt.Errorf("no catalog source configured")
}
