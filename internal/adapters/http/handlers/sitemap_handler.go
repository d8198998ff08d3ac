package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/cratedocs-web/internal/adapters/http/dto"
	"github.com/jsamuelsen11/cratedocs-web/internal/adapters/http/render"
	"github.com/jsamuelsen11/cratedocs-web/internal/ports"
)

// ShardParam is the chi URL parameter holding the shard letter.
const ShardParam = "letter"

// SitemapHandler serves the sitemap index and the per-letter shard sitemaps.
type SitemapHandler struct {
	svc     ports.SitemapService
	baseURL string
}

// NewSitemapHandler creates a SitemapHandler. baseURL is the public site
// root used to build absolute <loc> URLs.
func NewSitemapHandler(svc ports.SitemapService, baseURL string) *SitemapHandler {
	return &SitemapHandler{svc: svc, baseURL: baseURL}
}

// Index handles GET /sitemap.xml.
func (h *SitemapHandler) Index(w http.ResponseWriter, r *http.Request) {
	idx := h.svc.Index(r.Context())
	render.XML(w, r, http.StatusOK, dto.NewSitemapIndex(h.baseURL, idx))
}

// Shard handles GET /-/sitemap/{letter}/sitemap.xml.
func (h *SitemapHandler) Shard(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.Shard(r.Context(), chi.URLParam(r, ShardParam))
	if err != nil {
		render.WriteError(w, r, err)
		return
	}
	render.XML(w, r, http.StatusOK, dto.NewURLSet(h.baseURL, doc))
}
