// Package auth holds the back-office login rules.
package auth

import (
	"github.com/Fabri-com/esteticas/internal/domain/user"
	"github.com/Fabri-com/esteticas/internal/pkg/errs"
	"github.com/Fabri-com/esteticas/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrAccountDisabled    = errs.New("user inactive")
)

// Credentials is a login attempt that already passed shape checks.
type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(email, pass string) (Credentials, error) {
	e, err := user.NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}
	p, err := user.NewPassword(pass)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{email: e, password: p}, nil
}

func (c Credentials) Email() user.Email { return c.email }

// Verify checks the attempt against the stored hash. The account state is
// reported only after the password matched, so a wrong guess never learns
// whether the account is disabled.
func (c Credentials) Verify(passwordHash string, active bool) error {
	if err := password.ComparePassword(passwordHash, c.password.Value()); err != nil {
		return ErrInvalidCredentials
	}
	if !active {
		return ErrAccountDisabled
	}
	return nil
}
