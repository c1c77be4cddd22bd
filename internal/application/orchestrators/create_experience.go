package orchestrators

import (
	"context"
	"log/slog"
	"time"

	domain "experiencebuddy/internal/domain/experience"
)

// ExperienceStoreForCreate defines the store interface needed by CreateExperience.
type ExperienceStoreForCreate interface {
	Insert(ctx context.Context, e domain.Experience) error
}

// CreateExperienceInput carries the raw form submission plus the acting
// identity resolved by the caller (session account or the placeholder user).
type CreateExperienceInput struct {
	Form        domain.CreateForm
	CreatorID   string
	CreatorName string
}

// CreateExperienceResult is the boundary-adapter result shape: validation
// failures come back as field-keyed messages for display next to the inputs,
// never as an error.
type CreateExperienceResult struct {
	Success     bool
	Message     string
	FieldErrors domain.FieldErrors
	Experience  domain.Experience
}

// CreateExperienceDeps holds dependencies for CreateExperience.
type CreateExperienceDeps struct {
	ExperienceStore ExperienceStoreForCreate
	GenerateID      func() string
	Now             func() time.Time
}

// ExecuteCreateExperience validates the submission and inserts the new record
// at the head of the store.
// PRE: CreatorID and CreatorName identify the acting user
// POST: on success the returned Experience has a fresh unique ID, empty
// attendees, and normalized fields; on validation failure no record exists
// and FieldErrors names every offending field. Internal faults are logged and
// converted to a generic failure message.
func ExecuteCreateExperience(ctx context.Context, input CreateExperienceInput, deps CreateExperienceDeps) CreateExperienceResult {
	if input.CreatorID == "" {
		slog.Error("experience_event", "event", "create_missing_creator")
		return CreateExperienceResult{
			Success: false,
			Message: "Failed to create experience due to a server error. Please try again later.",
		}
	}

	e, fieldErrs := input.Form.Validate()
	if fieldErrs != nil {
		slog.Info("experience_event", "event", "create_rejected", "fields", len(fieldErrs))
		return CreateExperienceResult{
			Success:     false,
			Message:     "Invalid data provided. Please check the form.",
			FieldErrors: fieldErrs,
		}
	}

	e.ID = deps.GenerateID()
	e.CreatorID = input.CreatorID
	e.CreatorName = input.CreatorName
	e.Attendees = []string{}
	e.CreatedAt = deps.Now()

	if err := e.Validate(); err != nil {
		// The form already passed, so a failing record check is a fault,
		// not user input.
		slog.Error("experience_event", "event", "create_invalid_record", "error", err.Error())
		return CreateExperienceResult{
			Success: false,
			Message: "Failed to create experience due to a server error. Please try again later.",
		}
	}

	if err := deps.ExperienceStore.Insert(ctx, e); err != nil {
		slog.Error("experience_event", "event", "create_insert_failed", "error", err.Error())
		return CreateExperienceResult{
			Success: false,
			Message: "Failed to create experience due to a server error. Please try again later.",
		}
	}

	slog.Info("experience_event", "event", "experience_created", "experience_id", e.ID, "category", e.Category, "created_by", e.CreatorID)
	return CreateExperienceResult{
		Success:    true,
		Message:    "Experience created successfully!",
		Experience: e,
	}
}
