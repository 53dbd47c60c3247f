package customer

import "errors"

var (
	ErrInvalidPhone    = errors.New("phone number cannot be normalized to an Argentine mobile number")
	ErrInvalidFullName = errors.New("full name must be at least 3 characters")
	ErrInvalidEmail    = errors.New("invalid email format")
)

const (
	countryCode      = "54"
	mobileMarker     = "9"
	nationalDigits   = 10
	minRawDigits     = 8
	minFullNameRunes = 3
)
