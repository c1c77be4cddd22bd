package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"

	"experiencebuddy/internal/adapters/email"
	experienceStore "experiencebuddy/internal/adapters/storage/experience"
	accountDomain "experiencebuddy/internal/domain/account"
	domain "experiencebuddy/internal/domain/experience"
)

// ExperienceStoreForInterest defines the store interface needed by ExpressInterest.
type ExperienceStoreForInterest interface {
	GetByID(ctx context.Context, id string) (domain.Experience, error)
	AddAttendee(ctx context.Context, experienceID, userID string) error
}

// AccountStoreForInterest resolves an experience creator to an account so a
// notification email can be addressed. Creators without an account (the
// seeded placeholder users) are simply not notified.
type AccountStoreForInterest interface {
	GetByID(ctx context.Context, id string) (accountDomain.Account, error)
}

// ExpressInterestInput carries input for the express interest orchestrator.
type ExpressInterestInput struct {
	ExperienceID string
	UserID       string // acting user, resolved by the caller
	UserName     string // display name for the notification, may be empty
}

// ExpressInterestResult reports success or failure with a user-facing message.
type ExpressInterestResult struct {
	Success bool
	Message string
}

// ExpressInterestDeps holds dependencies for ExpressInterest.
// AccountStore and EmailSender may be nil to disable creator notifications.
type ExpressInterestDeps struct {
	ExperienceStore ExperienceStoreForInterest
	AccountStore    AccountStoreForInterest
	EmailSender     email.Sender
	EmailFrom       string
	EmailReplyTo    string
}

// ExecuteExpressInterest records the acting user as interested in the
// experience.
// PRE: ExperienceID and UserID are non-empty
// POST: the user appears in the attendee list unless they are the creator;
// the call is idempotent and therefore safe to retry. Not-found surfaces as a
// failure message, never as an error to the caller.
func ExecuteExpressInterest(ctx context.Context, input ExpressInterestInput, deps ExpressInterestDeps) ExpressInterestResult {
	if input.ExperienceID == "" {
		return ExpressInterestResult{Success: false, Message: "Missing experience ID."}
	}
	if input.UserID == "" {
		slog.Error("experience_event", "event", "interest_missing_user", "experience_id", input.ExperienceID)
		return ExpressInterestResult{Success: false, Message: "An error occurred while expressing interest."}
	}

	err := deps.ExperienceStore.AddAttendee(ctx, input.ExperienceID, input.UserID)
	if errors.Is(err, experienceStore.ErrNotFound) {
		slog.Info("experience_event", "event", "interest_not_found", "experience_id", input.ExperienceID)
		return ExpressInterestResult{Success: false, Message: "Failed to express interest. Experience might not exist."}
	}
	if err != nil {
		slog.Error("experience_event", "event", "interest_failed", "experience_id", input.ExperienceID, "error", err.Error())
		return ExpressInterestResult{Success: false, Message: "An error occurred while expressing interest."}
	}

	slog.Info("experience_event", "event", "interest_expressed", "experience_id", input.ExperienceID, "user_id", input.UserID)
	notifyCreator(ctx, input, deps)
	return ExpressInterestResult{Success: true, Message: "Interest expressed successfully."}
}

// notifyCreator emails the experience creator that someone wants to join.
// Best-effort: a failed or unaddressable notification never fails the
// interest call.
func notifyCreator(ctx context.Context, input ExpressInterestInput, deps ExpressInterestDeps) {
	if deps.AccountStore == nil || deps.EmailSender == nil {
		return
	}
	exp, err := deps.ExperienceStore.GetByID(ctx, input.ExperienceID)
	if err != nil {
		return
	}
	creator, err := deps.AccountStore.GetByID(ctx, exp.CreatorID)
	if err != nil {
		// Placeholder creators have no account.
		return
	}

	who := input.UserName
	if who == "" {
		who = "Someone"
	}
	body := fmt.Sprintf("<p>%s expressed interest in joining <strong>%s</strong>.</p>",
		template.HTMLEscapeString(who), template.HTMLEscapeString(exp.Title))
	if _, err := deps.EmailSender.Send(ctx, email.SendRequest{
		To:      []string{creator.Email},
		From:    deps.EmailFrom,
		Subject: "New interest in your experience: " + exp.Title,
		HTML:    body,
		ReplyTo: deps.EmailReplyTo,
	}); err != nil {
		slog.Error("experience_event", "event", "interest_notify_failed", "experience_id", exp.ID, "error", err.Error())
	}
}
