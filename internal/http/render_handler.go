package http

import (
	"encoding/json"
	"net/http"

	"github.com/edmkit/edmkit/internal/domain"
	"github.com/edmkit/edmkit/internal/renderer"
	"github.com/edmkit/edmkit/pkg/logger"
)

type RenderHandler struct {
	assembler *renderer.Assembler
	logger    logger.Logger
}

func NewRenderHandler(assembler *renderer.Assembler, logger logger.Logger) *RenderHandler {
	return &RenderHandler{
		assembler: assembler,
		logger:    logger,
	}
}

func (h *RenderHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/api/newsletters.render", http.HandlerFunc(h.HandleRender))
}

type renderRequest struct {
	Newsletter *domain.Newsletter `json:"newsletter"`
	Options    struct {
		FullDocument    bool   `json:"fullDocument"`
		Title           string `json:"title"`
		BackgroundColor string `json:"backgroundColor"`
		Border          string `json:"border"`
		Width           int    `json:"width"`
	} `json:"options"`
}

// HandleRender handles the render newsletter request (POST)
func (h *RenderHandler) HandleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Newsletter == nil {
		WriteJSONError(w, "newsletter is required", http.StatusBadRequest)
		return
	}

	result := h.assembler.Render(r.Context(), req.Newsletter, renderer.WrapOptions{
		FullDocument:    req.Options.FullDocument,
		Title:           req.Options.Title,
		BackgroundColor: req.Options.BackgroundColor,
		Border:          req.Options.Border,
		Width:           req.Options.Width,
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"html":        result.HTML,
		"diagnostics": result.Diagnostics,
	})
}
