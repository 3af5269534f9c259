package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edmkit/edmkit/pkg/logger"
)

func TestHandleValidate(t *testing.T) {
	handler := NewValidateHandler(logger.NewTestLogger(t))

	body, _ := json.Marshal(map[string]string{
		"html": `<!DOCTYPE html><body style="font-family: Arial;"><img src="a.png"></body>`,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/newsletters.validate", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()
	handler.HandleValidate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Valid  bool `json:"valid"`
		Issues []struct {
			Message string `json:"message"`
		} `json:"issues"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Valid)
	require.NotEmpty(t, resp.Issues)
	assert.Contains(t, resp.Issues[0].Message, "alt text")
}

func TestHandleValidateRequiresHTML(t *testing.T) {
	handler := NewValidateHandler(logger.NewTestLogger(t))

	req := httptest.NewRequest(http.MethodPost, "/api/newsletters.validate", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	handler.HandleValidate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCheckCompatibility(t *testing.T) {
	handler := NewValidateHandler(logger.NewTestLogger(t))

	body, _ := json.Marshal(map[string]string{
		"html": `<div style="border-radius: 6px;">x</div>`,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/newsletters.checkCompatibility", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()
	handler.HandleCheckCompatibility(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Issues []struct {
			Client string `json:"client"`
		} `json:"issues"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Issues, 1)
	assert.Equal(t, "outlook", resp.Issues[0].Client)
}
