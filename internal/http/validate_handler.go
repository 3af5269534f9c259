package http

import (
	"encoding/json"
	"net/http"

	"github.com/edmkit/edmkit/internal/emailcheck"
	"github.com/edmkit/edmkit/pkg/logger"
)

type ValidateHandler struct {
	logger logger.Logger
}

func NewValidateHandler(logger logger.Logger) *ValidateHandler {
	return &ValidateHandler{logger: logger}
}

func (h *ValidateHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/api/newsletters.validate", http.HandlerFunc(h.HandleValidate))
	mux.Handle("/api/newsletters.checkCompatibility", http.HandlerFunc(h.HandleCheckCompatibility))
}

type validateRequest struct {
	HTML string `json:"html"`
}

// HandleValidate handles the validate newsletter HTML request (POST)
func (h *ValidateHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.HTML == "" {
		WriteJSONError(w, "html is required", http.StatusBadRequest)
		return
	}

	report, err := emailcheck.Validate(req.HTML)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to validate newsletter HTML")
		WriteJSONError(w, "Failed to validate HTML", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// HandleCheckCompatibility handles the client compatibility check request (POST)
func (h *ValidateHandler) HandleCheckCompatibility(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.HTML == "" {
		WriteJSONError(w, "html is required", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"issues": emailcheck.ClientCompat(req.HTML),
	})
}
