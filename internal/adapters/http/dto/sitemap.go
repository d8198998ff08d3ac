// Package dto provides the view models rendered by the inbound HTTP adapter:
// sitemap protocol XML documents, about page data and the error page.
package dto

import (
	"encoding/xml"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/cratedocs-web/internal/domain/sitemap"
)

// SitemapNamespace is the sitemap protocol 0.9 XML namespace.
const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// shardPriority is the crawl priority advertised for every documentation page.
const shardPriority = "1.0"

// SitemapIndex is the <sitemapindex> document.
type SitemapIndex struct {
	XMLName  xml.Name     `xml:"sitemapindex"`
	Xmlns    string       `xml:"xmlns,attr"`
	Sitemaps []SitemapRef `xml:"sitemap"`
}

// SitemapRef points at one shard sitemap.
type SitemapRef struct {
	Loc string `xml:"loc"`
}

// URLSet is the <urlset> document of one shard.
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// URL is one documentation page entry.
type URL struct {
	Loc      string `xml:"loc"`
	LastMod  string `xml:"lastmod"`
	Priority string `xml:"priority"`
}

// ShardPath returns the path of a shard sitemap.
func ShardPath(key sitemap.ShardKey) string {
	return "/-/sitemap/" + key.String() + "/sitemap.xml"
}

// NewSitemapIndex converts the index into its XML document. baseURL is the
// public site root without a trailing slash.
func NewSitemapIndex(baseURL string, idx sitemap.Index) SitemapIndex {
	base := strings.TrimRight(baseURL, "/")
	refs := make([]SitemapRef, len(idx.Shards))
	for i, k := range idx.Shards {
		refs[i] = SitemapRef{Loc: base + ShardPath(k)}
	}
	return SitemapIndex{Xmlns: SitemapNamespace, Sitemaps: refs}
}

// NewURLSet converts a shard document into its XML document. Each entry
// links the latest documentation of a package for one target.
func NewURLSet(baseURL string, doc sitemap.Document) URLSet {
	base := strings.TrimRight(baseURL, "/")
	urls := make([]URL, len(doc.Entries))
	for i, e := range doc.Entries {
		urls[i] = URL{
			Loc:      base + "/" + url.PathEscape(e.PackageName) + "/latest/" + url.PathEscape(e.TargetName) + "/",
			LastMod:  e.LastModified,
			Priority: shardPriority,
		}
	}
	return URLSet{Xmlns: SitemapNamespace, URLs: urls}
}
