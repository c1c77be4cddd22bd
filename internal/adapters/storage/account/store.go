package account

import (
	"context"
	"errors"

	domain "experiencebuddy/internal/domain/account"
)

// ErrNotFound is returned when no account exists for a requested ID or email.
var ErrNotFound = errors.New("account not found")

// Store persists Account state. Accounts back the demo authentication
// collaborator only, so the single in-memory implementation suffices.
type Store interface {
	Save(ctx context.Context, a domain.Account) error
	GetByID(ctx context.Context, id string) (domain.Account, error)
	GetByEmail(ctx context.Context, email string) (domain.Account, error)
	Count(ctx context.Context) (int, error)
}
