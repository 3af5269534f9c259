package http

import (
	"net/http"

	"github.com/edmkit/edmkit/internal/catalog"
	"github.com/edmkit/edmkit/pkg/logger"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
	logger  logger.Logger
}

func NewCatalogHandler(c *catalog.Catalog, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: c,
		logger:  logger,
	}
}

func (h *CatalogHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/api/modules.list", http.HandlerFunc(h.HandleList))
	mux.Handle("/api/modules.defaults", http.HandlerFunc(h.HandleDefaults))
}

// HandleList handles the list module types request (GET)
func (h *CatalogHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	modules := h.catalog.All()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"modules":     modules,
		"total_count": len(modules),
	})
}

// HandleDefaults handles the default properties request (GET)
func (h *CatalogHandler) HandleDefaults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	typeID := r.URL.Query().Get("type_id")
	if typeID == "" {
		WriteJSONError(w, "type_id is required", http.StatusBadRequest)
		return
	}
	if !h.catalog.Has(typeID) {
		WriteJSONError(w, "Unknown module type", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"type_id":    typeID,
		"properties": h.catalog.DefaultPropertiesFor(typeID),
	})
}
