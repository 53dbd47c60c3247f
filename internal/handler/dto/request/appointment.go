package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalDateTimeLayout is the browser datetime-local format, read in the business timezone.
const LocalDateTimeLayout = "2006-01-02T15:04"

type CreateAppointmentRequest struct {
	ServiceID string  `json:"service_id" binding:"required,uuid"`
	StartAt   string  `json:"start_at" binding:"required,localdatetime"`
	FullName  string  `json:"full_name" binding:"required,min=3,max=120"`
	Phone     string  `json:"phone" binding:"required,phone"`
	Email     *string `json:"email,omitempty" binding:"omitempty,max=254"`
	Notes     *string `json:"notes,omitempty" binding:"omitempty,max=500"`
}

func (r CreateAppointmentRequest) ParsedServiceID() (uuid.UUID, error) {
	return uuid.Parse(r.ServiceID)
}

// OptionalEmail drops blank emails so the form may send "".
func (r CreateAppointmentRequest) OptionalEmail() *string {
	if r.Email == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Email)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ParseStartAt accepts RFC 3339 (with offset) or a local YYYY-MM-DDTHH:MM read in loc.
func ParseStartAt(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(LocalDateTimeLayout, s, loc); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", s, loc)
}
