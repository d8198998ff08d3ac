// Package about resolves the informational /about pages of the site and
// describes the build environment shown on the builds page.
package about

import (
	"fmt"

	"github.com/jsamuelsen11/cratedocs-web/internal/domain"
)

// Page names with their own template.
const (
	PageIndex        = "index"
	PageBadges       = "badges"
	PageMetadata     = "metadata"
	PageRedirections = "redirections"
	PageDownload     = "download"
	PageBuilds       = "builds"
)

// NotFoundTitle is the title of the error page for unknown about pages.
const NotFoundTitle = "The requested page does not exist"

// DefaultSourceURL is where new about page templates are contributed.
const DefaultSourceURL = "https://github.com/rust-lang/docs.rs/tree/master/templates/core/about"

// Page is a resolved about page. ActiveTab is the resolved name and is
// used by the renderer to highlight the matching navigation entry.
type Page struct {
	Name      string
	Template  string
	ActiveTab string
}

// NotFoundError is returned for about page names without a template.
// It carries everything needed to render a user-facing error page.
type NotFoundError struct {
	Name      string
	Title     string
	Message   string
	SourceURL string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("about page %q: %s", e.Name, domain.ErrNotFound.Error())
}

func (e *NotFoundError) Unwrap() error {
	return domain.ErrNotFound
}

// Resolve maps a requested page name to its template. "about" and "index"
// (and the empty name of the bare /about path) all resolve to the index
// page. Anything unknown yields a *NotFoundError.
func Resolve(name string) (Page, error) {
	var resolved string
	switch name {
	case "", "about", PageIndex:
		resolved = PageIndex
	case PageBadges, PageMetadata, PageRedirections, PageDownload:
		resolved = name
	default:
		return Page{}, &NotFoundError{
			Name:      name,
			Title:     NotFoundTitle,
			Message:   "This /about page does not exist. Perhaps you are interested in creating it?",
			SourceURL: DefaultSourceURL,
		}
	}
	return Page{
		Name:      resolved,
		Template:  TemplateName(resolved),
		ActiveTab: resolved,
	}, nil
}

// TemplateName returns the template identifier of an about page.
func TemplateName(page string) string {
	return "core/about/" + page + ".html"
}
