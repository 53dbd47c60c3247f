package converter

import (
	"github.com/Fabri-com/esteticas/internal/domain/appointment"
	"github.com/Fabri-com/esteticas/internal/domain/customer"
	sqlc "github.com/Fabri-com/esteticas/internal/infra/sqlc/generated"
	"github.com/Fabri-com/esteticas/internal/pkg/pgconv"
)

func AppointmentToInfra(a *appointment.Appointment) sqlc.CreateAppointmentParams {
	return sqlc.CreateAppointmentParams{
		ID:         a.ID(),
		CustomerID: a.CustomerID(),
		ServiceID:  a.ServiceID(),
		StartAt:    pgconv.TimeToPgtype(a.Interval().Start()),
		EndAt:      pgconv.TimeToPgtype(a.Interval().End()),
		Status:     a.Status().String(),
		Notes:      pgconv.StringPtrToPgtype(a.Notes().Ptr()),
		ExpiresAt:  pgconv.TimePtrToPgtype(a.ExpiresAt()),
		CreatedAt:  pgconv.TimeToPgtype(a.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

// AppointmentFromInfra trusts stored rows: the CHECK constraints already hold for them.
func AppointmentFromInfra(row sqlc.Appointments) (*appointment.Appointment, error) {
	interval, err := appointment.NewInterval(pgconv.TimeFromPgtype(row.StartAt), pgconv.TimeFromPgtype(row.EndAt))
	if err != nil {
		return nil, err
	}
	status, err := appointment.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	var notes appointment.Notes
	if row.Notes.Valid {
		notes, err = appointment.NewNotes(row.Notes.String)
		if err != nil {
			return nil, err
		}
	}

	return appointment.ReconstructAppointment(
		row.ID,
		row.CustomerID,
		row.ServiceID,
		interval,
		status,
		notes,
		pgconv.TimePtrFromPgtype(row.ExpiresAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func CustomerToInfra(c *customer.Customer) sqlc.UpsertCustomerParams {
	return sqlc.UpsertCustomerParams{
		ID:       c.ID(),
		Phone:    c.Phone().String(),
		FullName: c.FullName().String(),
		Email:    pgconv.StringPtrToPgtype(c.EmailString()),
	}
}
