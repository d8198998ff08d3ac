// Package sitemap holds the pure sitemap logic: shard key validation, the
// fixed sitemap index, release aggregation and the last-modified date policy.
//
// Packages are partitioned into 26 shards by the lowercase first letter of
// their name. The index lists every shard; each shard document lists one
// entry per (package, build target) with a successful documentation build.
package sitemap

import (
	"fmt"

	"github.com/jsamuelsen11/cratedocs-web/internal/domain"
)

// ShardKey identifies one sitemap shard. It is always a single lowercase
// ASCII letter; use ParseShardKey to build one from untrusted input.
type ShardKey byte

const (
	firstShard ShardKey = 'a'
	lastShard  ShardKey = 'z'

	// ShardCount is the number of shards referenced by the sitemap index.
	ShardCount = int(lastShard-firstShard) + 1
)

// ParseShardKey validates a raw path segment. It fails with an error
// wrapping domain.ErrNotFound unless raw is exactly one byte in 'a'..'z'.
func ParseShardKey(raw string) (ShardKey, error) {
	if len(raw) != 1 {
		return 0, fmt.Errorf("sitemap shard %q: %w", raw, domain.ErrNotFound)
	}
	k := ShardKey(raw[0])
	if k < firstShard || k > lastShard {
		return 0, fmt.Errorf("sitemap shard %q: %w", raw, domain.ErrNotFound)
	}
	return k, nil
}

// String returns the key as a one-letter string. It doubles as the
// case-insensitive name prefix handed to the release query.
func (k ShardKey) String() string {
	return string(rune(k))
}

// Index is the sitemap index: every shard key in ascending order.
type Index struct {
	Shards []ShardKey
}

// BuildIndex returns the fixed index 'a' through 'z'. It never consults
// storage, so the most frequently crawled document costs no query.
func BuildIndex() Index {
	shards := make([]ShardKey, 0, ShardCount)
	for k := firstShard; k <= lastShard; k++ {
		shards = append(shards, k)
	}
	return Index{Shards: shards}
}
