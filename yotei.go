// Package yotei manages a small personal schedule: named time intervals
// persisted to a single JSON file, with overlap-free add, delete and list.
//
// Example usage:
//
//	repo := yotei.NewFileRepository("schedules.json")
//	store, err := yotei.Load(ctx, repo)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	entry, err := store.Add("会議", start, end)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := yotei.Save(ctx, repo, store); err != nil {
//	    log.Fatal(err)
//	}
package yotei

import (
	"context"
	"time"

	"github.com/yotei-dev/yotei/internal/adapters/fs"
	"github.com/yotei-dev/yotei/internal/calendar"
	"github.com/yotei-dev/yotei/internal/domain"
	"github.com/yotei-dev/yotei/internal/ports"
)

// Entry is a single scheduled item: id, subject and a half-open
// [Start, End) interval.
type Entry = domain.Entry

// Store holds the in-memory entry set and enforces the calendar
// invariants (unique ids, no overlapping intervals).
type Store = calendar.Store

// Repository persists the whole entry set atomically.
type Repository = ports.Repository

// Error types returned by the store and repositories.
// Check them with errors.As.
type (
	ValidationError  = domain.ValidationError
	OverlapError     = domain.OverlapError
	NotFoundError    = domain.NotFoundError
	PersistenceError = domain.PersistenceError
)

// TimeLayout is the timestamp format used in the calendar file and in
// CLI arguments.
const TimeLayout = domain.TimeLayout

// ParseTime parses a timestamp in TimeLayout.
func ParseTime(s string) (time.Time, error) {
	return domain.ParseTime(s)
}

// NewFileRepository returns a Repository backed by a single JSON file at
// the given path. Loading a missing file yields an empty calendar; saves
// replace the file atomically.
func NewFileRepository(path string) Repository {
	return fs.NewFileRepository(path)
}

// NewStore builds a Store from an entry set, rejecting sets that violate
// the calendar invariants.
func NewStore(entries []Entry) (*Store, error) {
	return calendar.NewStore(entries)
}

// Load reads the calendar from the repository and builds a Store from it.
func Load(ctx context.Context, repo Repository) (*Store, error) {
	entries, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return calendar.NewStore(entries)
}

// Save persists the store's current entry set through the repository.
func Save(ctx context.Context, repo Repository, store *Store) error {
	return repo.Save(ctx, store.List())
}
