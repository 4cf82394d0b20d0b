package http

import (
	"net/http"

	"notify-digest/internal/ingestors"
	"notify-digest/internal/shared/loggers"
	"notify-digest/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(ingestionService ingestors.IngestionService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	ingestEventHandler := NewIngestEventHandler(ingestionService)
	healthHandler := NewHealthHandler()

	router.Post("/events", errorHandlingAdapter(ingestEventHandler))
	router.Get("/healthz", errorHandlingAdapter(healthHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
