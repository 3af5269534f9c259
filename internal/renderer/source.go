// Package renderer turns placed module instances into finished
// newsletter HTML: it fetches module templates, applies the per-type
// content processors and assembles the ordered result.
package renderer

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"time"
)

// TemplateSource resolves raw HTML templates. Module returns the
// template for a module type, Partial the sub-template for an
// additional-content kind.
type TemplateSource interface {
	Module(ctx context.Context, typeID string) (string, error)
	Partial(ctx context.Context, kind string) (string, error)
}

// HTTPSource fetches templates from <base>/modules/<id>.html and
// <base>/partials/<kind>.html.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource builds a source rooted at baseURL.
func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *HTTPSource) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}
	return string(body), nil
}

func (s *HTTPSource) Module(ctx context.Context, typeID string) (string, error) {
	return s.get(ctx, s.baseURL+"/modules/"+typeID+".html")
}

func (s *HTTPSource) Partial(ctx context.Context, kind string) (string, error) {
	return s.get(ctx, s.baseURL+"/partials/"+kind+".html")
}

// FSSource reads templates from a filesystem using the same layout as
// HTTPSource. Useful for bundled or on-disk template sets.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource builds a source over fsys.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

func (s *FSSource) Module(_ context.Context, typeID string) (string, error) {
	b, err := fs.ReadFile(s.fsys, "modules/"+typeID+".html")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (s *FSSource) Partial(_ context.Context, kind string) (string, error) {
	b, err := fs.ReadFile(s.fsys, "partials/"+kind+".html")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// MapSource serves templates from memory, keyed by type id and partial
// kind. Mostly used in tests.
type MapSource struct {
	Modules  map[string]string
	Partials map[string]string
}

func (s *MapSource) Module(_ context.Context, typeID string) (string, error) {
	if html, ok := s.Modules[typeID]; ok {
		return html, nil
	}
	return "", fmt.Errorf("module template %q not found", typeID)
}

func (s *MapSource) Partial(_ context.Context, kind string) (string, error) {
	if html, ok := s.Partials[kind]; ok {
		return html, nil
	}
	return "", fmt.Errorf("partial template %q not found", kind)
}
