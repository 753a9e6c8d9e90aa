package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withCORS, withGZip)

	router.Post("/api/openai", h.complete)
	router.Get("/api/version", h.getServerVersion)

	// Everything else, wrong-method API calls included, is a static file lookup.
	router.NotFound(h.serveStatic)
	router.MethodNotAllowed(h.serveStatic)

	return router
}
