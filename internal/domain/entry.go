package domain

import (
	"fmt"
	"time"
)

// TimeLayout is the timestamp format used in the calendar file and in
// CLI arguments: local datetime at seconds precision, no offset.
const TimeLayout = "2006-01-02T15:04:05"

// Entry represents a single scheduled item.
type Entry struct {
	// ID is the unique identifier assigned by the store (positive).
	ID uint64

	// Subject is the label of the entry. Opaque beyond being non-empty.
	Subject string

	// Start is the inclusive beginning of the interval.
	Start time.Time

	// End is the exclusive end of the interval. Start < End always holds.
	End time.Time
}

// Overlaps reports whether the two entries' intervals share at least one
// instant under half-open [Start, End) comparison. Entries that exactly
// touch (one's End equals the other's Start) do not overlap.
func (e Entry) Overlaps(other Entry) bool {
	return e.Start.Before(other.End) && other.Start.Before(e.End)
}

// EntryRecord mirrors Entry for JSON serialization in the calendar file.
// Timestamps are kept as strings so the on-disk format stays fixed at
// TimeLayout regardless of how time.Time would marshal itself.
type EntryRecord struct {
	ID      uint64 `json:"id"`
	Subject string `json:"subject"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// ParseTime parses a timestamp in TimeLayout.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(TimeLayout, s)
}

// ToRecord converts an Entry to its serialized form.
func (e Entry) ToRecord() EntryRecord {
	return EntryRecord{
		ID:      e.ID,
		Subject: e.Subject,
		Start:   e.Start.Format(TimeLayout),
		End:     e.End.Format(TimeLayout),
	}
}

// ToEntry converts a serialized record back to an Entry.
// It fails on a non-positive id or a timestamp outside TimeLayout.
func (r EntryRecord) ToEntry() (Entry, error) {
	if r.ID == 0 {
		return Entry{}, fmt.Errorf("id must be positive")
	}
	start, err := ParseTime(r.Start)
	if err != nil {
		return Entry{}, fmt.Errorf("parse start %q: %w", r.Start, err)
	}
	end, err := ParseTime(r.End)
	if err != nil {
		return Entry{}, fmt.Errorf("parse end %q: %w", r.End, err)
	}
	return Entry{ID: r.ID, Subject: r.Subject, Start: start, End: end}, nil
}

// ValidateEntries checks the store invariants over a full entry set:
// unique ids and no two intervals overlapping. Returns a ValidationError
// for a duplicate id, an OverlapError for an interval conflict.
func ValidateEntries(entries []Entry) error {
	seen := make(map[uint64]struct{}, len(entries))
	for i, e := range entries {
		if _, dup := seen[e.ID]; dup {
			return &ValidationError{Field: "id", Reason: fmt.Sprintf("duplicate id %d", e.ID)}
		}
		seen[e.ID] = struct{}{}

		for _, prev := range entries[:i] {
			if prev.Overlaps(e) {
				return &OverlapError{Conflict: prev, Start: e.Start, End: e.End}
			}
		}
	}
	return nil
}
