package queries

import (
	"time"

	"github.com/google/uuid"
)

type ServiceView struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	DurationMinutes     int       `json:"duration_minutes"`
	SlotIntervalMinutes int       `json:"slot_interval_minutes"`
	PriceCents          int64     `json:"price_cents"`
}

type SlotsView struct {
	ServiceID uuid.UUID `json:"service_id"`
	Date      string    `json:"date"`
	Slots     []string  `json:"slots"`
}

type CustomerView struct {
	ID       uuid.UUID `json:"id"`
	Phone    string    `json:"phone"`
	FullName string    `json:"full_name"`
	Email    *string   `json:"email,omitempty"`
}

// AppointmentView joins an appointment with its customer and service for display.
type AppointmentView struct {
	ID            uuid.UUID  `json:"id"`
	ServiceID     uuid.UUID  `json:"service_id"`
	ServiceName   string     `json:"service_name"`
	CustomerID    uuid.UUID  `json:"customer_id"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	CustomerEmail *string    `json:"customer_email,omitempty"`
	StartAt       time.Time  `json:"start_at"`
	EndAt         time.Time  `json:"end_at"`
	Status        string     `json:"status"`
	Notes         *string    `json:"notes,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type AgendaView struct {
	Date         string             `json:"date"`
	Appointments []*AppointmentView `json:"appointments"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
