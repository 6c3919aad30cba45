package ports

import (
	"context"

	"github.com/yotei-dev/yotei/internal/domain"
)

// Repository handles persistence of the calendar entry set.
// Implementations persist the whole set to disk (or other storage)
// atomically; there are no partial writes.
type Repository interface {
	// Load retrieves the persisted entry set.
	// Returns an empty set and nil error if nothing has been saved yet.
	// Returns an error only for actual read or decode failures.
	Load(ctx context.Context) ([]domain.Entry, error)

	// Save persists the entire entry set atomically.
	// The implementation should use atomic writes (e.g., write to temp
	// file, then rename) so a failed save leaves the previous calendar
	// intact.
	Save(ctx context.Context, entries []domain.Entry) error
}
