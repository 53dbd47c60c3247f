//go:build unit || e2e

package builder

import (
	"time"

	"github.com/Fabri-com/esteticas/internal/domain/appointment"
	reqdto "github.com/Fabri-com/esteticas/internal/handler/dto/request"
	sqlc "github.com/Fabri-com/esteticas/internal/infra/sqlc/generated"
	"github.com/Fabri-com/esteticas/internal/pkg/pgconv"
	"github.com/Fabri-com/esteticas/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID            uuid.UUID
	ServiceID     uuid.UUID
	ServiceName   string
	CustomerID    uuid.UUID
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	StartAt       time.Time
	EndAt         time.Time
	Status        appointment.Status
	Notes         *string
	ExpiresAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	now := time.Now().Truncate(time.Second)
	start := now.Add(48 * time.Hour)
	expires := now.Add(10 * time.Minute)
	return &AppointmentBuilder{
		ID:            uuid.New(),
		ServiceID:     uuid.New(),
		ServiceName:   "Manicura",
		CustomerID:    uuid.New(),
		CustomerName:  "Lucía Fernández",
		CustomerPhone: "5491122334455",
		StartAt:       start,
		EndAt:         start.Add(55 * time.Minute),
		Status:        appointment.StatusPendingConfirmation,
		ExpiresAt:     &expires,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (a *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(a)
	return a
}

func (a *AppointmentBuilder) WithStatus(status appointment.Status) *AppointmentBuilder {
	a.Status = status
	return a
}

func (a *AppointmentBuilder) BuildDomain() *appointment.Appointment {
	interval, err := appointment.NewInterval(a.StartAt, a.EndAt)
	if err != nil {
		panic(err)
	}
	var notes appointment.Notes
	if a.Notes != nil {
		notes, err = appointment.NewNotes(*a.Notes)
		if err != nil {
			panic(err)
		}
	}
	return appointment.ReconstructAppointment(
		a.ID, a.CustomerID, a.ServiceID,
		interval, a.Status, notes,
		a.ExpiresAt, a.CreatedAt, a.UpdatedAt,
	)
}

func (a *AppointmentBuilder) BuildInfra() sqlc.Appointments {
	return sqlc.Appointments{
		ID:         a.ID,
		CustomerID: a.CustomerID,
		ServiceID:  a.ServiceID,
		StartAt:    pgconv.TimeToPgtype(a.StartAt),
		EndAt:      pgconv.TimeToPgtype(a.EndAt),
		Status:     a.Status.String(),
		Notes:      pgconv.StringPtrToPgtype(a.Notes),
		ExpiresAt:  pgconv.TimePtrToPgtype(a.ExpiresAt),
		CreatedAt:  pgconv.TimeToPgtype(a.CreatedAt),
		UpdatedAt:  pgconv.TimeToPgtype(a.UpdatedAt),
	}
}

func (a *AppointmentBuilder) BuildDetailRow() sqlc.FindAppointmentDetailRow {
	return sqlc.FindAppointmentDetailRow{
		ID:            a.ID,
		StartAt:       pgconv.TimeToPgtype(a.StartAt),
		EndAt:         pgconv.TimeToPgtype(a.EndAt),
		Status:        a.Status.String(),
		Notes:         pgconv.StringPtrToPgtype(a.Notes),
		ExpiresAt:     pgconv.TimePtrToPgtype(a.ExpiresAt),
		CreatedAt:     pgconv.TimeToPgtype(a.CreatedAt),
		UpdatedAt:     pgconv.TimeToPgtype(a.UpdatedAt),
		CustomerID:    a.CustomerID,
		CustomerName:  a.CustomerName,
		CustomerPhone: a.CustomerPhone,
		CustomerEmail: pgconv.StringPtrToPgtype(a.CustomerEmail),
		ServiceID:     a.ServiceID,
		ServiceName:   a.ServiceName,
	}
}

func (a *AppointmentBuilder) BuildReadModel() *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:            a.ID,
		ServiceID:     a.ServiceID,
		ServiceName:   a.ServiceName,
		CustomerID:    a.CustomerID,
		CustomerName:  a.CustomerName,
		CustomerPhone: a.CustomerPhone,
		CustomerEmail: a.CustomerEmail,
		StartAt:       a.StartAt,
		EndAt:         a.EndAt,
		Status:        a.Status.String(),
		Notes:         a.Notes,
		ExpiresAt:     a.ExpiresAt,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// ReservationBuilder shapes the public booking request body.
type ReservationBuilder struct {
	ServiceID string
	StartAt   string
	FullName  string
	Phone     string
	Email     *string
	Notes     *string
}

func NewReservationBuilder(serviceID uuid.UUID, startAt string) *ReservationBuilder {
	return &ReservationBuilder{
		ServiceID: serviceID.String(),
		StartAt:   startAt,
		FullName:  "Lucía Fernández",
		Phone:     "11 2233-4455",
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) BuildDTO() reqdto.CreateAppointmentRequest {
	return reqdto.CreateAppointmentRequest{
		ServiceID: r.ServiceID,
		StartAt:   r.StartAt,
		FullName:  r.FullName,
		Phone:     r.Phone,
		Email:     r.Email,
		Notes:     r.Notes,
	}
}
