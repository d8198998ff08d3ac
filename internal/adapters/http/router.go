// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/cratedocs-web/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/cratedocs-web/internal/adapters/http/render"
	"github.com/jsamuelsen11/cratedocs-web/internal/domain"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	sitemapHandler *handlers.SitemapHandler,
	aboutHandler *handlers.AboutHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		render.WriteError(w, req, domain.ErrNotFound)
	})

	// Health endpoints.
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// Sitemaps.
	r.Get("/sitemap.xml", sitemapHandler.Index)
	r.Get("/-/sitemap/{"+handlers.ShardParam+"}/sitemap.xml", sitemapHandler.Shard)

	// About pages. The static builds route wins over the {name} pattern.
	r.Route("/about", func(r chi.Router) {
		r.Get("/", aboutHandler.Index)
		r.Get("/builds", aboutHandler.Builds)
		r.Get("/{"+handlers.PageParam+"}", aboutHandler.Page)
	})

	return r
}
