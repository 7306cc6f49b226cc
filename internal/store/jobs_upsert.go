package store

import (
	"context"
	"database/sql"
	"fmt"

	"jobboerse-cli/internal/domain"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// SourceID identifies a stored listing. Listings with a reference number
// are shared across runs; without one nothing identifies them reliably, so
// the key is scoped to the run and position.
func SourceID(j domain.JobSummary, runID string, pos int) string {
	if j.RefNr != "" && j.RefNr != domain.NA {
		return "refnr:" + j.RefNr
	}
	return fmt.Sprintf("run:%s:%d", runID, pos)
}

// UpsertListing inserts j under sourceID or refreshes the stored copy.
// first_seen is kept from the first insert.
func UpsertListing(ctx context.Context, db execer, sourceID string, j domain.JobSummary, runID, seenAt string) error {
	_, err := db.ExecContext(ctx, `
INSERT INTO listings (source_id, title, company, location, postal_code, street, region, country,
                      latitude, longitude, refnr, modified, url, first_seen, last_run_id)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(source_id) DO UPDATE SET
  title = excluded.title,
  company = excluded.company,
  location = excluded.location,
  postal_code = excluded.postal_code,
  street = excluded.street,
  region = excluded.region,
  country = excluded.country,
  latitude = excluded.latitude,
  longitude = excluded.longitude,
  modified = excluded.modified,
  url = excluded.url,
  last_run_id = excluded.last_run_id;`,
		sourceID, j.Title, j.Company, j.Location, j.PostalCode, j.Street, j.Region, j.Country,
		j.Latitude, j.Longitude, j.RefNr, j.Modified, j.URL, seenAt, runID,
	)
	if err != nil {
		return fmt.Errorf("upsert listing: %w", err)
	}
	return nil
}
