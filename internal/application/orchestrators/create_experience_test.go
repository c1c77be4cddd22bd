package orchestrators

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	experienceStore "experiencebuddy/internal/adapters/storage/experience"
	domain "experiencebuddy/internal/domain/experience"
)

// mockExperienceStore implements the orchestrator store interfaces on a
// plain slice, head-first like the real backends.
type mockExperienceStore struct {
	experiences []domain.Experience
	insertErr   error
}

// Insert implements ExperienceStoreForCreate / ExperienceStoreForSeed.
// PRE: e is valid
// POST: e is the first record
func (m *mockExperienceStore) Insert(_ context.Context, e domain.Experience) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.experiences = append([]domain.Experience{e}, m.experiences...)
	return nil
}

// GetByID implements ExperienceStoreForInterest.
// PRE: id is non-empty
// POST: returns record or ErrNotFound
func (m *mockExperienceStore) GetByID(_ context.Context, id string) (domain.Experience, error) {
	for _, e := range m.experiences {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Experience{}, experienceStore.ErrNotFound
}

// AddAttendee implements ExperienceStoreForInterest.
// PRE: ids are non-empty
// POST: userID recorded unless creator/duplicate; ErrNotFound when absent
func (m *mockExperienceStore) AddAttendee(_ context.Context, experienceID, userID string) error {
	for i := range m.experiences {
		if m.experiences[i].ID != experienceID {
			continue
		}
		e := &m.experiences[i]
		if e.CreatorID == userID || e.HasAttendee(userID) {
			return nil
		}
		e.Attendees = append(e.Attendees, userID)
		return nil
	}
	return experienceStore.ErrNotFound
}

// Count implements ExperienceStoreForSeed.
// POST: returns the number of records
func (m *mockExperienceStore) Count(_ context.Context) (int, error) {
	return len(m.experiences), nil
}

var fixedTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return fixedTime }

func fixedID() string { return "test-id-001" }

func validCreateForm() domain.CreateForm {
	return domain.CreateForm{
		Title:       "Weekend Hiking Trip",
		Description: "A scenic hike in the hills",
		Date:        "2024-07-13T00:00:00.000Z",
		Time:        "09:00",
		Location:    "Mountain View Trail",
		Category:    "Sports",
	}
}

// TestExecuteCreateExperience_Valid tests the happy path.
func TestExecuteCreateExperience_Valid(t *testing.T) {
	store := &mockExperienceStore{}
	res := ExecuteCreateExperience(context.Background(), CreateExperienceInput{
		Form:        validCreateForm(),
		CreatorID:   "mockUser123",
		CreatorName: "Current User",
	}, CreateExperienceDeps{
		ExperienceStore: store,
		GenerateID:      fixedID,
		Now:             fixedNow,
	})
	if !res.Success {
		t.Fatalf("expected success, got %+v", res)
	}
	e := res.Experience
	if e.ID != "test-id-001" {
		t.Errorf("ID = %s, want test-id-001", e.ID)
	}
	if e.CreatorID != "mockUser123" || e.CreatorName != "Current User" {
		t.Errorf("creator not attributed: %+v", e)
	}
	if len(e.Attendees) != 0 {
		t.Errorf("expected empty attendees, got %v", e.Attendees)
	}
	if e.ImageURL != "" {
		t.Errorf("expected absent ImageURL, got %q", e.ImageURL)
	}
	if len(store.experiences) != 1 || store.experiences[0].ID != "test-id-001" {
		t.Error("expected the record at the head of the store")
	}
}

// TestExecuteCreateExperience_MultibyteTitle tests that a 100-character
// multibyte title passes both validation layers and the record is stored.
func TestExecuteCreateExperience_MultibyteTitle(t *testing.T) {
	store := &mockExperienceStore{}
	form := validCreateForm()
	form.Title = strings.Repeat("é", 100)
	res := ExecuteCreateExperience(context.Background(), CreateExperienceInput{
		Form:        form,
		CreatorID:   "mockUser123",
		CreatorName: "Current User",
	}, CreateExperienceDeps{
		ExperienceStore: store,
		GenerateID:      fixedID,
		Now:             fixedNow,
	})
	if !res.Success {
		t.Fatalf("expected success, got %+v", res)
	}
	if res.FieldErrors != nil {
		t.Errorf("expected no field errors, got %v", res.FieldErrors)
	}
	if len(store.experiences) != 1 {
		t.Fatalf("expected the record to be stored, got %d", len(store.experiences))
	}
	if store.experiences[0].Title != form.Title {
		t.Error("stored title differs from the submitted one")
	}
}

// TestExecuteCreateExperience_ShortTitle tests that a 4-char title fails with
// a title field error and no record is created.
func TestExecuteCreateExperience_ShortTitle(t *testing.T) {
	store := &mockExperienceStore{}
	form := validCreateForm()
	form.Title = "Hike"
	res := ExecuteCreateExperience(context.Background(), CreateExperienceInput{
		Form:        form,
		CreatorID:   "mockUser123",
		CreatorName: "Current User",
	}, CreateExperienceDeps{
		ExperienceStore: store,
		GenerateID:      fixedID,
		Now:             fixedNow,
	})
	if res.Success {
		t.Fatal("expected failure for 4-char title")
	}
	if res.FieldErrors.First("title") == "" {
		t.Errorf("expected a title field error, got %v", res.FieldErrors)
	}
	if len(store.experiences) != 0 {
		t.Error("expected no record on validation failure")
	}
}

// TestExecuteCreateExperience_StoreFault tests that an insert failure is
// converted to a generic message without field errors.
func TestExecuteCreateExperience_StoreFault(t *testing.T) {
	store := &mockExperienceStore{insertErr: errors.New("disk on fire")}
	res := ExecuteCreateExperience(context.Background(), CreateExperienceInput{
		Form:        validCreateForm(),
		CreatorID:   "mockUser123",
		CreatorName: "Current User",
	}, CreateExperienceDeps{
		ExperienceStore: store,
		GenerateID:      fixedID,
		Now:             fixedNow,
	})
	if res.Success {
		t.Fatal("expected failure on store fault")
	}
	if res.FieldErrors != nil {
		t.Errorf("expected no field errors, got %v", res.FieldErrors)
	}
	if res.Message == "" || res.Message == "disk on fire" {
		t.Errorf("internal detail must not leak: %q", res.Message)
	}
}

// TestExecuteCreateExperience_MissingCreator tests that an empty acting
// identity is treated as an internal fault.
func TestExecuteCreateExperience_MissingCreator(t *testing.T) {
	store := &mockExperienceStore{}
	res := ExecuteCreateExperience(context.Background(), CreateExperienceInput{
		Form: validCreateForm(),
	}, CreateExperienceDeps{
		ExperienceStore: store,
		GenerateID:      fixedID,
		Now:             fixedNow,
	})
	if res.Success {
		t.Fatal("expected failure for missing creator")
	}
	if len(store.experiences) != 0 {
		t.Error("expected no record")
	}
}
