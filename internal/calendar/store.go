package calendar

import (
	"fmt"
	"time"

	"github.com/yotei-dev/yotei/internal/domain"
)

// Store holds the in-memory set of schedule entries and enforces the
// calendar invariants: ids are unique and no two entries overlap in
// time. Entries keep their insertion order.
//
// A Store is not safe for concurrent use; each command invocation owns
// one Store for its lifetime.
type Store struct {
	entries []domain.Entry
}

// NewStore builds a Store from an existing entry set, typically the one
// a repository loaded from disk. It rejects entry sets that violate the
// invariants, so a Store is valid from construction on.
func NewStore(entries []domain.Entry) (*Store, error) {
	if err := domain.ValidateEntries(entries); err != nil {
		return nil, err
	}
	s := &Store{entries: make([]domain.Entry, len(entries))}
	copy(s.entries, entries)
	return s, nil
}

// List returns the entries in insertion order. The returned slice is a
// copy; mutating it does not affect the store.
func (s *Store) List() []domain.Entry {
	out := make([]domain.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries in the store.
func (s *Store) Len() int { return len(s.entries) }

// Add validates the candidate, checks it against every existing entry
// for overlap, assigns the next id and appends it. The store is only
// mutated on success.
//
// The id policy is max-of-existing plus one (1 for an empty store), so
// an id can be reused across runs if the highest entry was deleted and
// the calendar reloaded. Within one run ids are never reused.
func (s *Store) Add(subject string, start, end time.Time) (domain.Entry, error) {
	if subject == "" {
		return domain.Entry{}, &domain.ValidationError{Field: "subject", Reason: "must not be empty"}
	}
	if !start.Before(end) {
		return domain.Entry{}, &domain.ValidationError{
			Field:  "interval",
			Reason: fmt.Sprintf("start %s must be before end %s", start.Format(domain.TimeLayout), end.Format(domain.TimeLayout)),
		}
	}

	candidate := domain.Entry{Subject: subject, Start: start, End: end}
	for _, e := range s.entries {
		if e.Overlaps(candidate) {
			return domain.Entry{}, &domain.OverlapError{Conflict: e, Start: start, End: end}
		}
	}

	candidate.ID = s.nextID()
	s.entries = append(s.entries, candidate)
	return candidate, nil
}

// Delete removes the entry with the given id and returns it.
// The store is only mutated on success.
func (s *Store) Delete(id uint64) (domain.Entry, error) {
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return e, nil
		}
	}
	return domain.Entry{}, &domain.NotFoundError{ID: id}
}

// nextID returns one greater than the current maximum id, or 1 when the
// store is empty.
func (s *Store) nextID() uint64 {
	var max uint64
	for _, e := range s.entries {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}
