package customer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Phone is a canonical Argentine mobile number: "549" followed by the 10-digit national
// number (area code + subscriber). Two inputs denote the same customer iff their Phones match.
type Phone struct {
	value string
}

// NormalizePhone reduces the many ways Argentine numbers are written to one stable key.
// "011-1234-5678", "+54 9 11 1234-5678", "11 15 1234-5678" and "1112345678" all become
// "5491112345678".
func NormalizePhone(raw string) (Phone, error) {
	d := Digits(raw)
	if len(d) < minRawDigits {
		return Phone{}, ErrInvalidPhone
	}

	d = strings.TrimPrefix(d, "00")
	if strings.HasPrefix(d, countryCode) && len(d) >= nationalDigits+len(countryCode) {
		d = d[len(countryCode):]
	}
	if strings.HasPrefix(d, mobileMarker) && len(d) == nationalDigits+1 {
		d = d[1:]
	}
	d = strings.TrimPrefix(d, "0")

	// Area codes are 2 to 4 digits; a local "15" after them is the old mobile prefix.
	if len(d) == nationalDigits+2 {
		for areaLen := 2; areaLen <= 4; areaLen++ {
			if d[areaLen:areaLen+2] == "15" {
				d = d[:areaLen] + d[areaLen+2:]
				break
			}
		}
	}

	if len(d) != nationalDigits {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: countryCode + mobileMarker + d}, nil
}

// ReconstructPhone wraps an already canonical value read from storage.
func ReconstructPhone(canonical string) Phone {
	return Phone{value: canonical}
}

// Digits drops every non-digit character.
func Digits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (p Phone) String() string { return p.value }

// National is the 10-digit number without country code and mobile marker.
func (p Phone) National() string {
	if len(p.value) <= len(countryCode)+len(mobileMarker) {
		return ""
	}
	return p.value[len(countryCode)+len(mobileMarker):]
}

func (p Phone) IsZero() bool { return p.value == "" }

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: strings.ToLower(s)}, nil
}

func (e Email) String() string { return e.value }

type FullName struct {
	value string
}

func NewFullName(s string) (FullName, error) {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) < minFullNameRunes {
		return FullName{}, ErrInvalidFullName
	}
	return FullName{value: s}, nil
}

func (n FullName) String() string { return n.value }
