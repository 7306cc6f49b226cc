package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboerse-cli/internal/domain"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "history", "jobboerse.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db.Pool))

	var v int
	require.NoError(t, db.Pool.QueryRow(`PRAGMA user_version;`).Scan(&v))
	assert.Equal(t, 1, v)
}

func TestSaveRun_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	jobs := []domain.JobSummary{
		{Title: "Koch", RefNr: "r1", Modified: "2024-03-02", URL: "u1"},
		{Title: "Bäcker", RefNr: domain.NA, Modified: domain.NA, URL: "u2"},
		{Title: "Koch", RefNr: "r1", Modified: "2024-03-02", URL: "u1"},
	}

	run, err := SaveRun(ctx, db.Pool, "Koch", "Berlin", jobs)
	require.NoError(t, err)
	assert.Len(t, run.ID, 36)
	assert.Equal(t, 3, run.Results)

	got, err := RunListings(ctx, db.Pool, run.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Koch", got[0].Title)
	assert.Equal(t, "Bäcker", got[1].Title)
	assert.Equal(t, "u1", got[2].URL)

	var n int
	require.NoError(t, db.Pool.QueryRow(`SELECT COUNT(*) FROM listings;`).Scan(&n))
	assert.Equal(t, 2, n)
}

func TestSaveRun_UpdatesListingKeepsFirstSeen(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	first, err := SaveRun(ctx, db.Pool, "Koch", "", []domain.JobSummary{{RefNr: "r1", Modified: "2024-03-01"}})
	require.NoError(t, err)
	second, err := SaveRun(ctx, db.Pool, "Koch", "", []domain.JobSummary{{RefNr: "r1", Modified: "2024-03-09"}})
	require.NoError(t, err)

	var modified, lastRun, firstSeen string
	require.NoError(t, db.Pool.QueryRow(
		`SELECT modified, last_run_id, first_seen FROM listings WHERE source_id = ?;`, "refnr:r1",
	).Scan(&modified, &lastRun, &firstSeen))

	assert.Equal(t, "2024-03-09", modified)
	assert.Equal(t, second.ID, lastRun)
	assert.Equal(t, first.CreatedAt.Format(tsLayout), firstSeen)
}

func TestListRuns_NewestFirst(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	for _, kw := range []string{"a", "b", "c"} {
		_, err := SaveRun(ctx, db.Pool, kw, "", nil)
		require.NoError(t, err)
	}

	runs, err := ListRuns(ctx, db.Pool, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.False(t, runs[0].CreatedAt.Before(runs[1].CreatedAt))
}

func TestFindRun(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	run, err := SaveRun(ctx, db.Pool, "Koch", "Berlin", nil)
	require.NoError(t, err)

	got, err := FindRun(ctx, db.Pool, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, "Berlin", got.Location)

	got, err = FindRun(ctx, db.Pool, run.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)

	_, err = FindRun(ctx, db.Pool, "does-not-exist")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestFindRun_PrefixIsLiteral(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	_, err := SaveRun(ctx, db.Pool, "Koch", "", nil)
	require.NoError(t, err)

	for _, in := range []string{"%", "_", "________", ""} {
		_, err = FindRun(ctx, db.Pool, in)
		assert.ErrorIs(t, err, ErrRunNotFound, "input %q", in)
	}
}

func TestSaveRun_ListingsWithoutRefNrStayDistinct(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	base := "https://jobboerse.arbeitsagentur.de/vamJB/"

	jobs := []domain.JobSummary{
		{Title: "Koch", RefNr: domain.NA, URL: base},
		{Title: "Baecker", RefNr: domain.NA, URL: base},
	}
	run, err := SaveRun(ctx, db.Pool, "Koch", "", jobs)
	require.NoError(t, err)
	again, err := SaveRun(ctx, db.Pool, "Koch", "", jobs[1:])
	require.NoError(t, err)

	got, err := RunListings(ctx, db.Pool, run.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Koch", got[0].Title)
	assert.Equal(t, "Baecker", got[1].Title)

	got, err = RunListings(ctx, db.Pool, again.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Baecker", got[0].Title)
}

func TestListRuns_BadCreatedAt(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	_, err := db.Pool.Exec(`INSERT INTO search_runs (id, keyword, location, results, created_at)
VALUES ('r-1', 'Koch', '', 0, 'yesterday');`)
	require.NoError(t, err)

	_, err = ListRuns(ctx, db.Pool, 10)
	assert.ErrorContains(t, err, "created_at")

	_, err = FindRun(ctx, db.Pool, "r-1")
	assert.ErrorContains(t, err, "created_at")
}

func TestSourceID(t *testing.T) {
	assert.Equal(t, "refnr:r1", SourceID(domain.JobSummary{RefNr: "r1", URL: "u"}, "run-a", 0))
	assert.Equal(t, "refnr:r1", SourceID(domain.JobSummary{RefNr: "r1", URL: "u"}, "run-b", 3))
	assert.Equal(t, "run:run-a:0", SourceID(domain.JobSummary{RefNr: domain.NA, URL: "u"}, "run-a", 0))
	assert.Equal(t, "run:run-a:1", SourceID(domain.JobSummary{RefNr: "", URL: "u"}, "run-a", 1))
}
