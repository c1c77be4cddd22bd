package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"experiencebuddy/internal/domain/account"
)

// AccountStoreForSeed defines the store interface needed by SeedDemoAccount.
type AccountStoreForSeed interface {
	GetByEmail(ctx context.Context, email string) (account.Account, error)
	Save(ctx context.Context, a account.Account) error
}

// SeedDemoAccountDeps holds dependencies for SeedDemoAccount.
type SeedDemoAccountDeps struct {
	AccountStore AccountStoreForSeed
}

// ExecuteSeedDemoAccount creates the demo sign-in account if it does not
// already exist. Idempotent.
// PRE: email, name, password are non-empty
// POST: an account with the given email exists
func ExecuteSeedDemoAccount(ctx context.Context, deps SeedDemoAccountDeps, email, name, password string) error {
	if _, err := deps.AccountStore.GetByEmail(ctx, email); err == nil {
		return nil
	}

	a := account.Account{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      name,
		Role:      account.RoleMember,
		CreatedAt: time.Now(),
	}
	if err := a.SetPassword(password); err != nil {
		return err
	}
	if err := a.Validate(); err != nil {
		return err
	}
	if err := deps.AccountStore.Save(ctx, a); err != nil {
		return err
	}

	slog.Info("auth_event", "event", "demo_account_seeded", "email", email)
	return nil
}
