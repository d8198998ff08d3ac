package dto_test

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/jsamuelsen11/cratedocs-web/internal/adapters/http/dto"
	"github.com/jsamuelsen11/cratedocs-web/internal/domain/sitemap"
)

func TestNewSitemapIndex(t *testing.T) {
	t.Parallel()

	got := dto.NewSitemapIndex("https://docs.rs/", sitemap.BuildIndex())

	if len(got.Sitemaps) != sitemap.ShardCount {
		t.Fatalf("len(Sitemaps) = %d, want %d", len(got.Sitemaps), sitemap.ShardCount)
	}
	if want := "https://docs.rs/-/sitemap/a/sitemap.xml"; got.Sitemaps[0].Loc != want {
		t.Errorf("Sitemaps[0].Loc = %q, want %q", got.Sitemaps[0].Loc, want)
	}
	if want := "https://docs.rs/-/sitemap/z/sitemap.xml"; got.Sitemaps[25].Loc != want {
		t.Errorf("Sitemaps[25].Loc = %q, want %q", got.Sitemaps[25].Loc, want)
	}
	if got.Xmlns != dto.SitemapNamespace {
		t.Errorf("Xmlns = %q, want %q", got.Xmlns, dto.SitemapNamespace)
	}
}

func TestNewURLSet(t *testing.T) {
	t.Parallel()

	key, err := sitemap.ParseShardKey("s")
	if err != nil {
		t.Fatalf("ParseShardKey: %v", err)
	}
	doc := sitemap.Document{
		Shard: key,
		Entries: []sitemap.Entry{
			{PackageName: "serde", TargetName: "serde", LastModified: "2024-03-05T12:30:15+00:00"},
			{PackageName: "serde-json", TargetName: "serde_json", LastModified: "2022-08-28T00:00:00+00:00"},
		},
	}

	got := dto.NewURLSet("https://docs.rs", doc)

	if len(got.URLs) != 2 {
		t.Fatalf("len(URLs) = %d, want 2", len(got.URLs))
	}
	if want := "https://docs.rs/serde/latest/serde/"; got.URLs[0].Loc != want {
		t.Errorf("URLs[0].Loc = %q, want %q", got.URLs[0].Loc, want)
	}
	if want := "https://docs.rs/serde-json/latest/serde_json/"; got.URLs[1].Loc != want {
		t.Errorf("URLs[1].Loc = %q, want %q", got.URLs[1].Loc, want)
	}
	if got.URLs[1].LastMod != "2022-08-28T00:00:00+00:00" {
		t.Errorf("URLs[1].LastMod = %q", got.URLs[1].LastMod)
	}
	if got.URLs[0].Priority != "1.0" {
		t.Errorf("URLs[0].Priority = %q, want %q", got.URLs[0].Priority, "1.0")
	}
}

func TestURLSet_MarshalsSitemapProtocol(t *testing.T) {
	t.Parallel()

	set := dto.NewURLSet("https://docs.rs", sitemap.Document{
		Entries: []sitemap.Entry{{PackageName: "rand", TargetName: "rand", LastModified: "2023-01-02T03:04:05+00:00"}},
	})

	out, err := xml.Marshal(set)
	if err != nil {
		t.Fatalf("xml.Marshal: %v", err)
	}
	body := string(out)
	for _, want := range []string{
		`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`,
		`<loc>https://docs.rs/rand/latest/rand/</loc>`,
		`<lastmod>2023-01-02T03:04:05+00:00</lastmod>`,
		`<priority>1.0</priority>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("marshaled urlset missing %q:\n%s", want, body)
		}
	}
}
