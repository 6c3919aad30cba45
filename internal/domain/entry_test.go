package domain

import (
	"errors"
	"testing"
	"time"
)

func datetime(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func TestEntryOverlaps(t *testing.T) {
	// The candidate interval is fixed at [19:00, 20:00); each case moves
	// the existing entry around it.
	candidate := Entry{
		ID:      999,
		Subject: "new",
		Start:   datetime(2024, time.January, 1, 19, 0),
		End:     datetime(2024, time.January, 1, 20, 0),
	}

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{
			name:  "entirely before",
			start: datetime(2024, time.January, 1, 18, 15),
			end:   datetime(2024, time.January, 1, 18, 45),
			want:  false,
		},
		{
			name:  "overlaps candidate start",
			start: datetime(2024, time.January, 1, 18, 15),
			end:   datetime(2024, time.January, 1, 19, 15),
			want:  true,
		},
		{
			name:  "contained in candidate",
			start: datetime(2024, time.January, 1, 19, 15),
			end:   datetime(2024, time.January, 1, 19, 45),
			want:  true,
		},
		{
			name:  "contains candidate",
			start: datetime(2024, time.January, 1, 18, 30),
			end:   datetime(2024, time.January, 1, 20, 15),
			want:  true,
		},
		{
			name:  "overlaps candidate end",
			start: datetime(2024, time.January, 1, 19, 45),
			end:   datetime(2024, time.January, 1, 20, 45),
			want:  true,
		},
		{
			name:  "entirely after",
			start: datetime(2024, time.January, 1, 20, 15),
			end:   datetime(2024, time.January, 1, 20, 45),
			want:  false,
		},
		{
			name:  "touching end-to-start does not overlap",
			start: datetime(2024, time.January, 1, 18, 0),
			end:   datetime(2024, time.January, 1, 19, 0),
			want:  false,
		},
		{
			name:  "touching start-to-end does not overlap",
			start: datetime(2024, time.January, 1, 20, 0),
			end:   datetime(2024, time.January, 1, 21, 0),
			want:  false,
		},
		{
			name:  "different day",
			start: datetime(2024, time.January, 8, 19, 0),
			end:   datetime(2024, time.January, 8, 20, 0),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := Entry{ID: 1, Subject: "existing", Start: tt.start, End: tt.end}

			if got := existing.Overlaps(candidate); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// Overlap must be symmetric.
			if got := candidate.Overlaps(existing); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEntryRecordRoundTrip(t *testing.T) {
	entry := Entry{
		ID:      3,
		Subject: "会議",
		Start:   datetime(2025, time.May, 1, 10, 0),
		End:     datetime(2025, time.May, 1, 11, 0),
	}

	rec := entry.ToRecord()
	if rec.Start != "2025-05-01T10:00:00" {
		t.Errorf("Start = %q, want 2025-05-01T10:00:00", rec.Start)
	}
	if rec.End != "2025-05-01T11:00:00" {
		t.Errorf("End = %q, want 2025-05-01T11:00:00", rec.End)
	}

	got, err := rec.ToEntry()
	if err != nil {
		t.Fatalf("ToEntry() error = %v", err)
	}
	if got.ID != entry.ID || got.Subject != entry.Subject {
		t.Errorf("ToEntry() = %+v, want %+v", got, entry)
	}
	if !got.Start.Equal(entry.Start) || !got.End.Equal(entry.End) {
		t.Errorf("ToEntry() interval = [%v, %v), want [%v, %v)", got.Start, got.End, entry.Start, entry.End)
	}
}

func TestEntryRecordToEntry_Invalid(t *testing.T) {
	tests := []struct {
		name string
		rec  EntryRecord
	}{
		{
			name: "zero id",
			rec:  EntryRecord{ID: 0, Subject: "x", Start: "2025-05-01T10:00:00", End: "2025-05-01T11:00:00"},
		},
		{
			name: "timestamp with offset",
			rec:  EntryRecord{ID: 1, Subject: "x", Start: "2025-05-01T10:00:00+09:00", End: "2025-05-01T11:00:00"},
		},
		{
			name: "timestamp without seconds",
			rec:  EntryRecord{ID: 1, Subject: "x", Start: "2025-05-01T10:00", End: "2025-05-01T11:00:00"},
		},
		{
			name: "not a timestamp",
			rec:  EntryRecord{ID: 1, Subject: "x", Start: "2025-05-01T10:00:00", End: "tomorrow"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.rec.ToEntry(); err == nil {
				t.Error("ToEntry() expected error")
			}
		})
	}
}

func TestValidateEntries(t *testing.T) {
	a := Entry{ID: 1, Subject: "a", Start: datetime(2025, time.May, 1, 10, 0), End: datetime(2025, time.May, 1, 11, 0)}
	b := Entry{ID: 2, Subject: "b", Start: datetime(2025, time.May, 1, 11, 0), End: datetime(2025, time.May, 1, 12, 0)}

	if err := ValidateEntries([]Entry{a, b}); err != nil {
		t.Fatalf("ValidateEntries() error = %v for a valid set", err)
	}
	if err := ValidateEntries(nil); err != nil {
		t.Fatalf("ValidateEntries() error = %v for an empty set", err)
	}

	dup := b
	dup.ID = 1
	err := ValidateEntries([]Entry{a, dup})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("ValidateEntries() error = %v, want ValidationError for duplicate id", err)
	}

	clash := Entry{ID: 3, Subject: "c", Start: datetime(2025, time.May, 1, 10, 30), End: datetime(2025, time.May, 1, 10, 45)}
	err = ValidateEntries([]Entry{a, b, clash})
	var oerr *OverlapError
	if !errors.As(err, &oerr) {
		t.Fatalf("ValidateEntries() error = %v, want OverlapError", err)
	}
	if oerr.Conflict.ID != a.ID {
		t.Errorf("Conflict.ID = %d, want %d", oerr.Conflict.ID, a.ID)
	}
}
