package response

import (
	"time"

	"github.com/Fabri-com/esteticas/internal/usecase/commands"
	"github.com/Fabri-com/esteticas/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreateAppointmentResponse struct {
	ID               uuid.UUID `json:"id"`
	Status           string    `json:"status"`
	StartAt          time.Time `json:"start_at"`
	EndAt            time.Time `json:"end_at"`
	ExpiresAt        time.Time `json:"expires_at"`
	ConfirmationText string    `json:"confirmation_text"`
	WhatsAppLink     string    `json:"whatsapp_link"`
}

func FromReserveResult(r *commands.ReserveResult) CreateAppointmentResponse {
	return CreateAppointmentResponse{
		ID:               r.AppointmentID,
		Status:           r.Status,
		StartAt:          r.StartAt,
		EndAt:            r.EndAt,
		ExpiresAt:        r.ExpiresAt,
		ConfirmationText: r.Confirmation.Text,
		WhatsAppLink:     r.Confirmation.WhatsAppLink,
	}
}

type AppointmentResponse struct {
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

type AgendaResponse struct {
	Date         string                `json:"date"`
	Appointments []AppointmentResponse `json:"appointments"`
}

type SweepResponse struct {
	Cancelled int64 `json:"cancelled"`
}

func FromAppointmentView(v *queries.AppointmentView) (AppointmentResponse, error) {
	var out AppointmentResponse
	if err := copier.Copy(&out, v); err != nil {
		return AppointmentResponse{}, err
	}
	return out, nil
}

func FromAgendaView(v *queries.AgendaView) (AgendaResponse, error) {
	items := make([]AppointmentResponse, 0, len(v.Appointments))
	if err := copier.Copy(&items, v.Appointments); err != nil {
		return AgendaResponse{}, err
	}
	return AgendaResponse{Date: v.Date, Appointments: items}, nil
}
