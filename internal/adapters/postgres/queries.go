package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jsamuelsen11/cratedocs-web/internal/domain/sitemap"
)

// releasesQuery returns the newest release time per (crate, target) for
// crates with built documentation whose name matches $1.
const releasesQuery = `SELECT crates.name, releases.target_name, MAX(releases.release_time) AS release_time
FROM crates
INNER JOIN releases ON releases.crate_id = crates.id
WHERE releases.rustdoc_status = true AND crates.name ILIKE $1
GROUP BY crates.name, releases.target_name
ORDER BY crates.name, releases.target_name`

const configQuery = `SELECT value FROM config WHERE name = $1`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePrefix turns a literal prefix into an ILIKE pattern.
func likePrefix(prefix string) string {
	return likeEscaper.Replace(prefix) + "%"
}

// FetchReleases implements ports.ReleaseQuery.
func (s *Store) FetchReleases(ctx context.Context, prefix string) ([]sitemap.ReleaseRow, error) {
	var out []sitemap.ReleaseRow
	err := s.execute(ctx, "SELECT releases", func(ctx context.Context) error {
		rows, err := s.pool.Query(ctx, releasesQuery, likePrefix(prefix))
		if err != nil {
			return err
		}
		out, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (sitemap.ReleaseRow, error) {
			var r sitemap.ReleaseRow
			err := row.Scan(&r.PackageName, &r.TargetName, &r.LastReleaseTime)
			return r, err
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("fetch releases with prefix %q: %w", prefix, err)
	}
	return out, nil
}

// GetConfig implements ports.ConfigStore. Values are stored as JSON; only
// JSON strings are accepted.
func (s *Store) GetConfig(ctx context.Context, name string) (string, bool, error) {
	var (
		value string
		found bool
	)
	err := s.execute(ctx, "SELECT config", func(ctx context.Context) error {
		var raw []byte
		err := s.pool.QueryRow(ctx, configQuery, name).Scan(&raw)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := json.Unmarshal(raw, &value); err != nil {
			return fmt.Errorf("decode value: %w", err)
		}
		found = true
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("get config %q: %w", name, err)
	}
	return value, found, nil
}
