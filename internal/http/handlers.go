package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/vokinneberg/sqlchart/internal/types"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=http

// GeneratorService defines the interface for the generation pipeline.
type GeneratorService interface {
	GenerateCodeAndSQL(ctx context.Context, req types.Request) (*types.Response, error)
}

// ModelLister defines the interface for listing locally available models.
type ModelLister interface {
	ListModels(ctx context.Context) ([]types.Model, error)
}

type Handler struct {
	service GeneratorService
	models  ModelLister
}

// NewHandlers initializes handlers with dependencies. models may be nil when
// the configured backend is hosted and has no local model list.
func NewHandlers(service GeneratorService, models ModelLister) *Handler {
	return &Handler{
		service: service,
		models:  models,
	}
}

func (h *Handler) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req types.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.service.GenerateCodeAndSQL(r.Context(), req)
	if err != nil {
		var invalidInput *types.InvalidInputError
		if errors.As(err, &invalidInput) {
			errorResponse(w, http.StatusBadRequest, invalidInput.Reason, nil)
			return
		}
		slog.Error("Error generating code and SQL", "error", err, "query", req.Query)
		errorResponse(w, http.StatusInternalServerError, "Failed to generate code and SQL", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

func (h *Handler) ModelsHandler(w http.ResponseWriter, r *http.Request) {
	if h.models == nil {
		errorResponse(w, http.StatusNotFound, "Model listing is only available for the local provider", nil)
		return
	}

	models, err := h.models.ListModels(r.Context())
	if err != nil {
		slog.Error("Error listing models", "error", err)
		errorResponse(w, http.StatusInternalServerError, "Failed to list models", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string][]types.Model{"models": models}); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

func HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

func errorResponse(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errorMsg := message
	if err != nil {
		errorMsg = fmt.Sprintf("%s: %v", message, err)
	}

	if err := json.NewEncoder(w).Encode(types.ErrorResponse{
		Error:   http.StatusText(status),
		Message: errorMsg,
	}); err != nil {
		slog.Error("Error encoding error response", "error", err, "status", status)
	}
}
