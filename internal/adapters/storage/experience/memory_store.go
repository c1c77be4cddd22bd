package experience

import (
	"context"
	"sync"

	domain "experiencebuddy/internal/domain/experience"
)

// MemoryStore implements Store on an in-process list. This is the default
// backend: state is fully reinitialized to the seed set on process restart
// and is explicitly not durable.
type MemoryStore struct {
	mu          sync.RWMutex
	experiences []domain.Experience // head = most recent
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Insert places e at the head of the list.
// PRE: e passed domain validation; e.ID is unique across the store
// POST: e is the first record returned by List
func (s *MemoryStore) Insert(_ context.Context, e domain.Experience) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.experiences = append([]domain.Experience{e.Clone()}, s.experiences...)
	return nil
}

// GetByID returns a defensive copy of the record, or ErrNotFound.
// PRE: id is non-empty
// POST: the store is unchanged; the returned copy owns its attendee slice
func (s *MemoryStore) GetByID(_ context.Context, id string) (domain.Experience, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.experiences {
		if e.ID == id {
			return e.Clone(), nil
		}
	}
	return domain.Experience{}, ErrNotFound
}

// List returns defensive copies of all records matching f, most-recent-first.
func (s *MemoryStore) List(_ context.Context, f Filter) ([]domain.Experience, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Experience
	for _, e := range s.experiences {
		if f.Matches(e) {
			out = append(out, e.Clone())
		}
	}
	return out, nil
}

// AddAttendee appends userID to the record's attendee list under the write
// lock, so two concurrent calls for the same record cannot lose an update.
// PRE: experienceID and userID are non-empty
// POST: userID is in the attendee list unless it is the creator; the call is
// idempotent and returns ErrNotFound only when the record is absent
func (s *MemoryStore) AddAttendee(_ context.Context, experienceID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.experiences {
		if s.experiences[i].ID != experienceID {
			continue
		}
		e := &s.experiences[i]
		if e.CreatorID == userID || e.HasAttendee(userID) {
			// Desired state already holds: user is associated with the record.
			return nil
		}
		e.Attendees = append(e.Attendees, userID)
		return nil
	}
	return ErrNotFound
}

// Count returns the number of stored records.
func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.experiences), nil
}
