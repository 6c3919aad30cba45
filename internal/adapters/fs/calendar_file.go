package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yotei-dev/yotei/internal/domain"
)

// calendarFile is the on-disk envelope. Schedules is decoded through a
// pointer so a file missing the "schedules" key is distinguishable from
// an empty calendar and can be rejected.
type calendarFile struct {
	Schedules *[]domain.EntryRecord `json:"schedules"`
}

// FileRepository implements ports.Repository using a single JSON file.
type FileRepository struct {
	path string
}

// NewFileRepository creates a new FileRepository for the given file path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Load reads the calendar file and returns its entries.
// Returns an empty entry set and nil error if the file does not exist
// (first-run behavior). Any decode failure, malformed timestamp or
// invariant violation in the file is a PersistenceError.
func (r *FileRepository) Load(ctx context.Context) ([]domain.Entry, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &domain.PersistenceError{Op: "load", Path: r.path, Err: err}
	}

	var doc calendarFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &domain.PersistenceError{Op: "load", Path: r.path, Err: err}
	}
	if doc.Schedules == nil {
		return nil, &domain.PersistenceError{Op: "load", Path: r.path, Err: fmt.Errorf(`missing "schedules" key`)}
	}

	entries := make([]domain.Entry, 0, len(*doc.Schedules))
	for i, rec := range *doc.Schedules {
		e, err := rec.ToEntry()
		if err != nil {
			return nil, &domain.PersistenceError{Op: "load", Path: r.path, Err: fmt.Errorf("schedules[%d]: %w", i, err)}
		}
		entries = append(entries, e)
	}

	// A calendar written by another tool could violate the invariants
	// the store enforces; reject it here rather than at mutation time.
	if err := domain.ValidateEntries(entries); err != nil {
		return nil, &domain.PersistenceError{Op: "load", Path: r.path, Err: err}
	}

	return entries, nil
}

// Save persists the entire entry set atomically.
// Uses atomic write (write to temp file, then rename) so a failed save
// leaves the previous calendar file intact.
func (r *FileRepository) Save(ctx context.Context, entries []domain.Entry) error {
	// Ensure directory exists
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return &domain.PersistenceError{Op: "save", Path: r.path, Err: err}
		}
	}

	records := make([]domain.EntryRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, e.ToRecord())
	}
	doc := calendarFile{Schedules: &records}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &domain.PersistenceError{Op: "save", Path: r.path, Err: err}
	}

	// Write to temp file
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return &domain.PersistenceError{Op: "save", Path: r.path, Err: err}
	}

	// Atomic rename
	if err := os.Rename(tmp, r.path); err != nil {
		return &domain.PersistenceError{Op: "save", Path: r.path, Err: err}
	}
	return nil
}

// Path returns the calendar file path.
func (r *FileRepository) Path() string { return r.path }
