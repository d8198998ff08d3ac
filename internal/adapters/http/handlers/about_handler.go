package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/cratedocs-web/internal/adapters/http/dto"
	"github.com/jsamuelsen11/cratedocs-web/internal/adapters/http/render"
	"github.com/jsamuelsen11/cratedocs-web/internal/domain/about"
	"github.com/jsamuelsen11/cratedocs-web/internal/ports"
)

// PageParam is the chi URL parameter holding the about page name.
const PageParam = "name"

// AboutHandler serves the /about pages.
type AboutHandler struct {
	svc ports.AboutService
}

// NewAboutHandler creates an AboutHandler.
func NewAboutHandler(svc ports.AboutService) *AboutHandler {
	return &AboutHandler{svc: svc}
}

// Index handles GET /about.
func (h *AboutHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "")
}

// Page handles GET /about/{name}.
func (h *AboutHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, chi.URLParam(r, PageParam))
}

// Builds handles GET /about/builds.
func (h *AboutHandler) Builds(w http.ResponseWriter, r *http.Request) {
	builds, err := h.svc.Builds(r.Context())
	if err != nil {
		render.WriteError(w, r, err)
		return
	}
	render.HTML(w, r, http.StatusOK, about.TemplateName(about.PageBuilds), dto.NewBuildsPage(builds))
}

func (h *AboutHandler) renderPage(w http.ResponseWriter, r *http.Request, name string) {
	page, err := h.svc.Page(r.Context(), name)
	if err != nil {
		render.WriteError(w, r, err)
		return
	}
	render.HTML(w, r, http.StatusOK, page.Template, dto.NewAboutPage(page))
}
