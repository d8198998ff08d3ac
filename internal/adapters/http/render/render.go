// Package render writes HTTP responses for the inbound adapter: HTML pages
// from the embedded template set, sitemap XML documents and the HTML error
// page.
//
// Responses are rendered into a buffer first, so a template failure produces
// a clean 500 instead of a half-written page.
package render

import (
	"bytes"
	"embed"
	"encoding/xml"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/cratedocs-web/internal/adapters/http/dto"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeXML  = "application/xml"

	layoutTemplate = "layout"
	errorTemplate  = "error.html"
)

//go:embed templates
var templateFS embed.FS

// pages maps a template identifier such as "core/about/index.html" to a
// template set holding the shared layout and that page.
var pages = mustParsePages()

func mustParsePages() map[string]*template.Template {
	base := template.Must(template.ParseFS(templateFS, "templates/layout.html"))

	files, err := fs.Glob(templateFS, "templates/core/about/*.html")
	if err != nil {
		panic(err)
	}
	files = append(files, "templates/"+errorTemplate)

	out := make(map[string]*template.Template, len(files))
	for _, file := range files {
		set := template.Must(base.Clone())
		out[strings.TrimPrefix(file, "templates/")] = template.Must(set.ParseFS(templateFS, file))
	}
	return out
}

// HasTemplate reports whether a page template named name is embedded.
func HasTemplate(name string) bool {
	_, ok := pages[name]
	return ok
}

// HTML renders the page template name with data inside the shared layout.
func HTML(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	t, ok := pages[name]
	if !ok {
		slog.ErrorContext(r.Context(), "unknown page template", slog.String("template", name))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layoutTemplate, data); err != nil {
		slog.ErrorContext(r.Context(), "failed to render page",
			slog.String("template", name),
			slog.Any("error", err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	write(w, r, status, contentTypeHTML, buf.Bytes())
}

// XML writes v as an indented XML document with the standard header.
func XML(w http.ResponseWriter, r *http.Request, status int, v any) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode xml response", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	buf.WriteByte('\n')

	write(w, r, status, contentTypeXML, buf.Bytes())
}

// WriteError renders the HTML error page for err. The status comes from the
// domain error err wraps.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	page := dto.NewErrorPage(err)
	HTML(w, r, page.Status, errorTemplate, page)
}

func write(w http.ResponseWriter, r *http.Request, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		slog.DebugContext(r.Context(), "failed to write response", slog.Any("error", err))
	}
}
