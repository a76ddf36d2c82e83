package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	// set before mounting sub-routers so they inherit both
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	router.Use(
		h.withTraceID,
		h.withLogging,
		h.withRecoverer,
		withSecureHeaders,
		h.withCORS(),
		middleware.RequestSize(h.maxBodyBytes),
	)

	router.Get("/health", h.health)

	router.Route("/api/v1", func(r chi.Router) {
		// reserved for versioned API routes
	})

	if h.metricsHandler != nil {
		router.Method(http.MethodGet, "/metrics", h.metricsHandler)
	}

	return router
}
