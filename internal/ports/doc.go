// Package ports holds the interfaces that separate the layers. Handlers
// depend on the service ports (SitemapService, AboutService); the
// application services depend on the storage ports (ReleaseQuery,
// ConfigStore), which the postgres and memory adapters implement.
package ports
