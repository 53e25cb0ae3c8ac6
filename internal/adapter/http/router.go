package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/plastinin/mediashelf/internal/adapter/http/handler"
	httpmiddleware "github.com/plastinin/mediashelf/internal/adapter/http/middleware"
	"go.uber.org/zap"
)

// NewRouter создаёт и настраивает HTTP роутер
func NewRouter(
	docHandler *handler.DocumentHandler,
	healthHandler *handler.HealthHandler,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httpmiddleware.NewLoggingMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	// Health check (вне версионирования API)
	r.Get("/health", healthHandler.Check)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Documents
		r.Route("/documents", func(r chi.Router) {
			r.Post("/", docHandler.Upload)
			r.Get("/", docHandler.List)
			r.Get("/{id}", docHandler.GetByID)
			r.Get("/{id}/file", docHandler.Download)
			r.Get("/{id}/thumbnail", docHandler.Thumbnail)
			r.Delete("/{id}", docHandler.Delete)
		})
	})

	return r
}
