package response

import (
	"github.com/Fabri-com/esteticas/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	DurationMinutes     int       `json:"duration_minutes"`
	SlotIntervalMinutes int       `json:"slot_interval_minutes"`
	PriceCents          int64     `json:"price_cents"`
}

type SlotsResponse struct {
	ServiceID uuid.UUID `json:"service_id"`
	Date      string    `json:"date"`
	Slots     []string  `json:"slots"`
}

type CustomerResponse struct {
	ID       uuid.UUID `json:"id"`
	Phone    string    `json:"phone"`
	FullName string    `json:"full_name"`
	Email    *string   `json:"email"`
}

func FromServiceViews(views []*queries.ServiceView) ([]ServiceResponse, error) {
	out := make([]ServiceResponse, 0, len(views))
	if err := copier.Copy(&out, views); err != nil {
		return nil, err
	}
	return out, nil
}

func FromSlotsView(v *queries.SlotsView) SlotsResponse {
	slots := v.Slots
	if slots == nil {
		slots = []string{}
	}
	return SlotsResponse{ServiceID: v.ServiceID, Date: v.Date, Slots: slots}
}

// FromCustomerView returns nil for an unknown customer so the body renders as JSON null.
func FromCustomerView(v *queries.CustomerView) (*CustomerResponse, error) {
	if v == nil {
		return nil, nil
	}
	var out CustomerResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}
