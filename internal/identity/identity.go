package identity

import (
	"context"
	"errors"
)

// ErrInvalidCredentials collapses every credential failure into one value so
// callers cannot tell an unknown user apart from a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Identity is the verified subject returned by a credential check.
type Identity struct {
	ID    string
	Email string
}

// Verifier checks an email/password pair against whichever identity backend
// is configured.
type Verifier interface {
	VerifyPassword(ctx context.Context, email, password string) (*Identity, error)
}
