// Package password hashes back-office credentials with bcrypt.
package password

import (
	"fmt"

	"github.com/Fabri-com/esteticas/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errs.New("password hashing failed")
	ErrComparisonFailed = errs.New("password comparison failed")
	ErrInvalidPassword  = errs.New("invalid password")
	ErrPasswordTooLong  = errs.New("password exceeds 72 bytes")
)

const (
	DefaultCost = 12
	// bcrypt ignores everything past this many bytes
	maxBytes = 72
)

func HashPassword(password string) (string, error) {
	return HashPasswordWithCost(password, DefaultCost)
}

func HashPasswordWithCost(password string, cost int) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}
	if len(password) > maxBytes {
		return "", ErrPasswordTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("%w: bcrypt cost %d: %w", ErrHashingFailed, cost, err)
	}
	return string(hashed), nil
}

// ComparePassword returns ErrComparisonFailed on a mismatch; any other error means the hash is unusable.
func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	switch {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrComparisonFailed
	default:
		return errs.Wrap(err, "compare password hash")
	}
}
