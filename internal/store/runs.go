package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"jobboerse-cli/internal/domain"
)

const tsLayout = "2006-01-02T15:04:05.000Z07:00"

var ErrRunNotFound = errors.New("search run not found")

type Run struct {
	ID        string
	Keyword   string
	Location  string
	Results   int
	CreatedAt time.Time
}

// SaveRun records one search and the listings it returned, in order.
func SaveRun(ctx context.Context, db *sql.DB, keyword, location string, jobs []domain.JobSummary) (Run, error) {
	run := Run{
		ID:        uuid.NewString(),
		Keyword:   keyword,
		Location:  location,
		Results:   len(jobs),
		CreatedAt: time.Now().UTC(),
	}
	created := run.CreatedAt.Format(tsLayout)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
INSERT INTO search_runs (id, keyword, location, results, created_at)
VALUES (?, ?, ?, ?, ?);`,
		run.ID, run.Keyword, run.Location, run.Results, created,
	); err != nil {
		return Run{}, fmt.Errorf("insert run: %w", err)
	}

	for i, j := range jobs {
		sid := SourceID(j, run.ID, i)
		if err := UpsertListing(ctx, tx, sid, j, run.ID, created); err != nil {
			return Run{}, err
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO run_listings (run_id, source_id, position)
VALUES (?, ?, ?);`,
			run.ID, sid, i,
		); err != nil {
			return Run{}, fmt.Errorf("link listing %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, err
	}
	return run, nil
}

// ListRuns returns the most recent runs first.
func ListRuns(ctx context.Context, db *sql.DB, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.QueryContext(ctx, `
SELECT id, keyword, location, results, created_at
FROM search_runs
ORDER BY created_at DESC
LIMIT ?;`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindRun resolves a run by full id or unique id prefix.
func FindRun(ctx context.Context, db *sql.DB, idOrPrefix string) (Run, error) {
	if idOrPrefix == "" {
		return Run{}, fmt.Errorf("empty run id: %w", ErrRunNotFound)
	}
	// literal prefix match; LIKE would treat % and _ as wildcards
	rows, err := db.QueryContext(ctx, `
SELECT id, keyword, location, results, created_at
FROM search_runs
WHERE substr(id, 1, length(?)) = ?
ORDER BY id = ? DESC
LIMIT 2;`, idOrPrefix, idOrPrefix, idOrPrefix)
	if err != nil {
		return Run{}, err
	}
	defer rows.Close()

	var found []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return Run{}, err
		}
		found = append(found, r)
	}
	if err := rows.Err(); err != nil {
		return Run{}, err
	}

	switch {
	case len(found) == 0:
		return Run{}, fmt.Errorf("%q: %w", idOrPrefix, ErrRunNotFound)
	case found[0].ID == idOrPrefix, len(found) == 1:
		return found[0], nil
	default:
		return Run{}, fmt.Errorf("run id prefix %q is ambiguous", idOrPrefix)
	}
}

// RunListings returns the listings of a run in their original order.
func RunListings(ctx context.Context, db *sql.DB, runID string) ([]domain.JobSummary, error) {
	rows, err := db.QueryContext(ctx, `
SELECT l.title, l.company, l.location, l.postal_code, l.street, l.region, l.country,
       l.latitude, l.longitude, l.refnr, l.modified, l.url
FROM run_listings rl
JOIN listings l ON l.source_id = rl.source_id
WHERE rl.run_id = ?
ORDER BY rl.position;`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.JobSummary
	for rows.Next() {
		var j domain.JobSummary
		if err := rows.Scan(
			&j.Title,
			&j.Company,
			&j.Location,
			&j.PostalCode,
			&j.Street,
			&j.Region,
			&j.Country,
			&j.Latitude,
			&j.Longitude,
			&j.RefNr,
			&j.Modified,
			&j.URL,
		); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanRun(rows *sql.Rows) (Run, error) {
	var r Run
	var created string
	if err := rows.Scan(&r.ID, &r.Keyword, &r.Location, &r.Results, &created); err != nil {
		return Run{}, err
	}
	t, err := time.Parse(tsLayout, created)
	if err != nil {
		return Run{}, fmt.Errorf("run %s: created_at: %w", r.ID, err)
	}
	r.CreatedAt = t
	return r, nil
}
