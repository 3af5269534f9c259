// Package app wires configuration, catalog, renderer and HTTP handlers
// into a runnable service.
package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/edmkit/edmkit/config"
	"github.com/edmkit/edmkit/internal/catalog"
	apihttp "github.com/edmkit/edmkit/internal/http"
	"github.com/edmkit/edmkit/internal/renderer"
	"github.com/edmkit/edmkit/pkg/logger"
)

type App struct {
	config    *config.Config
	logger    logger.Logger
	mux       *http.ServeMux
	server    *http.Server
	catalog   *catalog.Catalog
	assembler *renderer.Assembler
}

type AppOption func(*App)

// WithLogger overrides the default logger.
func WithLogger(l logger.Logger) AppOption {
	return func(a *App) {
		a.logger = l
	}
}

func NewApp(cfg *config.Config, opts ...AppOption) *App {
	a := &App{
		config: cfg,
		mux:    http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = logger.NewLoggerWithLevel(cfg.LogLevel)
	}
	return a
}

// Initialize loads the catalog and wires the renderer and handlers.
func (a *App) Initialize(ctx context.Context) error {
	source, err := a.templateSource()
	if err != nil {
		return err
	}

	if a.config.Catalog.URL == "" && a.config.Catalog.Path == "" {
		a.catalog = catalog.Builtin()
	} else {
		loader := catalog.NewLoader(a.config.Catalog.URL, a.config.Catalog.Path, a.logger)
		a.catalog, _ = loader.Load(ctx)
	}

	a.assembler = renderer.NewAssembler(source, renderer.NewBuiltinRegistry(), a.logger)

	apihttp.NewRenderHandler(a.assembler, a.logger).RegisterRoutes(a.mux)
	apihttp.NewValidateHandler(a.logger).RegisterRoutes(a.mux)
	apihttp.NewCatalogHandler(a.catalog, a.logger).RegisterRoutes(a.mux)

	a.mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	a.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port),
		Handler:      a.mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	a.logger.WithFields(map[string]interface{}{
		"addr":    a.server.Addr,
		"modules": a.catalog.Len(),
	}).Info("Application initialized")
	return nil
}

func (a *App) templateSource() (renderer.TemplateSource, error) {
	if dir := a.config.Templates.Dir; dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, fmt.Errorf("template dir %s: %w", dir, err)
		}
		return renderer.NewFSSource(os.DirFS(dir)), nil
	}
	return renderer.NewHTTPSource(a.config.Templates.BaseURL), nil
}

// Start runs the HTTP server until it fails or is shut down.
func (a *App) Start() error {
	a.logger.WithField("addr", a.server.Addr).Info("Server listening")
	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	if a.server == nil {
		return nil
	}
	return a.server.Shutdown(ctx)
}

// Mux exposes the router, mainly for tests.
func (a *App) Mux() *http.ServeMux {
	return a.mux
}

// Catalog returns the loaded module catalog.
func (a *App) Catalog() *catalog.Catalog {
	return a.catalog
}
