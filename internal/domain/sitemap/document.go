package sitemap

import (
	"time"
)

// LastModifiedLayout is the textual timestamp format used for every
// last-modified value. The numeric offset form renders UTC as "+00:00".
const LastModifiedLayout = "2006-01-02T15:04:05-07:00"

// RecrawlFloor is the earliest last-modified instant ever reported. Every
// documentation page gained a canonical link on this date, so crawlers must
// treat all of them as changed since then.
var RecrawlFloor = time.Date(2022, time.August, 28, 0, 0, 0, 0, time.UTC)

// ReleaseRow is one aggregated record from the release query: the newest
// release time of a package for a single build target.
type ReleaseRow struct {
	PackageName     string
	TargetName      string
	LastReleaseTime time.Time
}

// Entry is one URL of a shard document.
type Entry struct {
	PackageName  string
	TargetName   string
	LastModified string
}

// Document is the content of one shard sitemap.
type Document struct {
	Shard   ShardKey
	Entries []Entry
}

// NormalizeLastModified clamps t so it never precedes RecrawlFloor.
func NormalizeLastModified(t time.Time) time.Time {
	if t.Before(RecrawlFloor) {
		return RecrawlFloor
	}
	return t
}

// FormatLastModified normalizes t and renders it in UTC using
// LastModifiedLayout. Sub-second precision is dropped.
func FormatLastModified(t time.Time) string {
	return NormalizeLastModified(t).UTC().Format(LastModifiedLayout)
}

type rowKey struct {
	pkg    string
	target string
}

// Aggregate groups rows by (package, target) and keeps the newest release
// time of each group. Groups keep the position of their first row, so input
// that is already grouped comes back unchanged.
func Aggregate(rows []ReleaseRow) []ReleaseRow {
	out := make([]ReleaseRow, 0, len(rows))
	seen := make(map[rowKey]int, len(rows))
	for _, r := range rows {
		k := rowKey{pkg: r.PackageName, target: r.TargetName}
		if i, ok := seen[k]; ok {
			if r.LastReleaseTime.After(out[i].LastReleaseTime) {
				out[i].LastReleaseTime = r.LastReleaseTime
			}
			continue
		}
		seen[k] = len(out)
		out = append(out, r)
	}
	return out
}

// BuildDocument assembles the shard document from query rows: one entry per
// (package, target) carrying the normalized, formatted newest release time.
func BuildDocument(key ShardKey, rows []ReleaseRow) Document {
	grouped := Aggregate(rows)
	entries := make([]Entry, len(grouped))
	for i, r := range grouped {
		entries[i] = Entry{
			PackageName:  r.PackageName,
			TargetName:   r.TargetName,
			LastModified: FormatLastModified(r.LastReleaseTime),
		}
	}
	return Document{Shard: key, Entries: entries}
}
