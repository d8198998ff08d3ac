package dto

import (
	"github.com/dustin/go-humanize"

	"github.com/jsamuelsen11/cratedocs-web/internal/domain/about"
)

// Tab is one entry of the about navigation bar.
type Tab struct {
	Name   string
	Title  string
	Href   string
	Active bool
}

var aboutTabs = []struct{ name, title, href string }{
	{about.PageIndex, "About", "/about"},
	{about.PageBadges, "Badges", "/about/badges"},
	{about.PageBuilds, "Builds", "/about/builds"},
	{about.PageMetadata, "Metadata", "/about/metadata"},
	{about.PageRedirections, "Redirections", "/about/redirections"},
	{about.PageDownload, "Download", "/about/download"},
}

// Tabs returns the navigation bar with the entry named active highlighted.
func Tabs(active string) []Tab {
	tabs := make([]Tab, len(aboutTabs))
	for i, t := range aboutTabs {
		tabs[i] = Tab{Name: t.name, Title: t.title, Href: t.href, Active: t.name == active}
	}
	return tabs
}

// AboutPage is the view model shared by the static about pages.
type AboutPage struct {
	ActiveTab string
	Tabs      []Tab
}

// NewAboutPage builds the view model of a resolved page.
func NewAboutPage(p about.Page) AboutPage {
	return AboutPage{ActiveTab: p.ActiveTab, Tabs: Tabs(p.ActiveTab)}
}

// BuildsPage is the view model of the builds page. Sizes are rendered in
// human-readable IEC units.
type BuildsPage struct {
	ActiveTab    string
	Tabs         []Tab
	RustcVersion string
	HasRustc     bool
	Memory       string
	Timeout      string
	Targets      int
	Networking   bool
	MaxLogSize   string
}

// NewBuildsPage converts the builds content into its view model.
func NewBuildsPage(b about.Builds) BuildsPage {
	page := BuildsPage{
		ActiveTab:  b.ActiveTab,
		Tabs:       Tabs(b.ActiveTab),
		Memory:     humanizeBytes(b.Limits.Memory),
		Timeout:    b.Limits.Timeout.String(),
		Targets:    b.Limits.Targets,
		Networking: b.Limits.Networking,
		MaxLogSize: humanizeBytes(b.Limits.MaxLogSize),
	}
	if b.RustcVersion != nil {
		page.RustcVersion = *b.RustcVersion
		page.HasRustc = true
	}
	return page
}

func humanizeBytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}
