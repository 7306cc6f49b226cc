package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"jobboerse-cli/internal/domain"
)

// ErrLocked is returned when another run is writing the same export.
var ErrLocked = errors.New("export file is locked by another run")

// WriteCSV overwrites path with a header row and one row per job, using the
// full column set. The file itself is locked while it is written, so a
// concurrent run fails with ErrLocked instead of interleaving rows.
func WriteCSV(path string, jobs []domain.JobSummary) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	if !ok {
		return fmt.Errorf("%s: %w", path, ErrLocked)
	}
	defer func() { _ = lock.Unlock() }()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	// truncate only once the lock is held
	if err := f.Truncate(0); err != nil {
		return fmt.Errorf("truncate csv: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(domain.SummaryColumns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, j := range jobs {
		if err := w.Write(j.Values(domain.SummaryColumns)); err != nil {
			return fmt.Errorf("write csv row ref=%q: %w", j.RefNr, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	log.Printf("[export] wrote %d rows to %s", len(jobs), path)
	return f.Close()
}
