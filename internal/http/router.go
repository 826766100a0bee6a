package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vokinneberg/sqlchart/internal/observability"
)

// NewRouter wires the HTTP routes and middleware.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(observability.RequestLogger)

	r.Post("/generate", h.GenerateHandler)
	r.Get("/models", h.ModelsHandler)
	r.Get("/health", HealthHandler)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
