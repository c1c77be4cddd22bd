package experience

import (
	"context"
	"errors"
	"strings"

	domain "experiencebuddy/internal/domain/experience"
)

// ErrNotFound is returned when no experience exists for a requested ID.
var ErrNotFound = errors.New("experience not found")

// Filter narrows List results. Zero values mean "no filter" for that field;
// Category "all" is treated the same as empty.
type Filter struct {
	Query    string // keyword substring vs title/description, case-insensitive
	Category string // exact category match, case-insensitive
	Location string // substring vs location, case-insensitive
}

// Matches reports whether e satisfies every set filter field.
// INVARIANT: e is not mutated
func (f Filter) Matches(e domain.Experience) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(e.Title), q) &&
			!strings.Contains(strings.ToLower(e.Description), q) {
			return false
		}
	}
	if f.Category != "" && !strings.EqualFold(f.Category, "all") {
		if !strings.EqualFold(e.Category, f.Category) {
			return false
		}
	}
	if f.Location != "" {
		if !strings.Contains(strings.ToLower(e.Location), strings.ToLower(f.Location)) {
			return false
		}
	}
	return true
}

// Store owns the authoritative experience list. Implementations must
// serialize Insert and AddAttendee against the same record so that no
// concurrent update is lost, and must hand out defensive copies only.
type Store interface {
	// Insert places a new record at the head of the ordering (most-recent-first).
	Insert(ctx context.Context, e domain.Experience) error
	// GetByID returns the record or ErrNotFound.
	GetByID(ctx context.Context, id string) (domain.Experience, error)
	// List returns all records matching the filter, most-recent-first.
	List(ctx context.Context, f Filter) ([]domain.Experience, error)
	// AddAttendee appends userID to the record's attendee list. It returns
	// ErrNotFound when the record is absent, and nil without mutation when
	// userID is the creator or already an attendee (idempotent).
	AddAttendee(ctx context.Context, experienceID, userID string) error
	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)
}
