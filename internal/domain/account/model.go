package account

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Account roles
const (
	RoleMember = "member"
)

// Domain errors
var (
	ErrEmptyEmail    = errors.New("account email cannot be empty")
	ErrEmptyName     = errors.New("account name cannot be empty")
	ErrEmptyPassword = errors.New("password cannot be empty")
	ErrWrongPassword = errors.New("password does not match")
)

// Account is a signed-in user. Authentication is a thin collaborator for the
// experience flows: handlers resolve the acting identity from a session when
// one exists and otherwise fall back to the fixed placeholder identity.
type Account struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// Validate checks if the Account has valid data.
// PRE: Account struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Account) Validate() error {
	if a.Email == "" {
		return ErrEmptyEmail
	}
	if a.Name == "" {
		return ErrEmptyName
	}
	return nil
}

// SetPassword hashes and stores a password using bcrypt with cost 12.
// PRE: plaintext is non-empty
// POST: PasswordHash is set to bcrypt hash
func (a *Account) SetPassword(plaintext string) error {
	if plaintext == "" {
		return ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), 12)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

// CheckPassword compares a plaintext password against the stored hash.
// PRE: PasswordHash is a valid bcrypt hash
// POST: Returns nil on match, ErrWrongPassword otherwise
func (a *Account) CheckPassword(plaintext string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(plaintext)); err != nil {
		return ErrWrongPassword
	}
	return nil
}
