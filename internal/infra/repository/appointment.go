package repository

import (
	"context"
	"time"

	"github.com/Fabri-com/esteticas/internal/domain/appointment"
	"github.com/Fabri-com/esteticas/internal/infra"
	"github.com/Fabri-com/esteticas/internal/infra/repository/converter"
	sqlc "github.com/Fabri-com/esteticas/internal/infra/sqlc/generated"
	"github.com/Fabri-com/esteticas/internal/pkg/pgconv"
	"github.com/Fabri-com/esteticas/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AppointmentWriteQueries interface {
	LockServiceSchedule(ctx context.Context, db sqlc.DBTX, serviceID uuid.UUID) error
	ExpireStaleHoldsForService(ctx context.Context, db sqlc.DBTX, arg sqlc.ExpireStaleHoldsForServiceParams) (int64, error)
	ExpireStaleHolds(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
	FindOverlappingAppointments(ctx context.Context, db sqlc.DBTX, arg sqlc.FindOverlappingAppointmentsParams) ([]sqlc.FindOverlappingAppointmentsRow, error)
	CreateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAppointmentParams) (uuid.UUID, error)
	GetAppointmentForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Appointments, error)
	UpdateAppointmentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAppointmentStatusParams) error
}

type AppointmentRepository struct {
	queries AppointmentWriteQueries
}

func NewAppointmentRepository(queries AppointmentWriteQueries) *AppointmentRepository {
	return &AppointmentRepository{
		queries: queries,
	}
}

func (r *AppointmentRepository) LockService(ctx context.Context, tx sqlc.DBTX, serviceID uuid.UUID) error {
	if err := r.queries.LockServiceSchedule(ctx, tx, serviceID); err != nil {
		return infra.WrapRepoErr("failed to lock service schedule", err)
	}
	return nil
}

func (r *AppointmentRepository) ExpireStaleHolds(ctx context.Context, tx sqlc.DBTX, serviceID uuid.UUID, now time.Time) (int64, error) {
	n, err := r.queries.ExpireStaleHoldsForService(ctx, tx, sqlc.ExpireStaleHoldsForServiceParams{
		ServiceID: serviceID,
		Now:       pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire stale holds for service", err)
	}
	return n, nil
}

func (r *AppointmentRepository) ExpireAllStaleHolds(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error) {
	n, err := r.queries.ExpireStaleHolds(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire stale holds", err)
	}
	return n, nil
}

func (r *AppointmentRepository) FindOverlapping(ctx context.Context, tx sqlc.DBTX, serviceID uuid.UUID, interval appointment.Interval) ([]shared.OverlapSnapshot, error) {
	rows, err := r.queries.FindOverlappingAppointments(ctx, tx, sqlc.FindOverlappingAppointmentsParams{
		ServiceID: serviceID,
		Statuses:  appointment.StatusStrings(appointment.ActiveStatuses),
		StartAt:   pgconv.TimeToPgtype(interval.Start()),
		EndAt:     pgconv.TimeToPgtype(interval.End()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find overlapping appointments", err)
	}

	out := make([]shared.OverlapSnapshot, 0, len(rows))
	for _, row := range rows {
		out = append(out, shared.OverlapSnapshot{
			ID:      row.ID,
			StartAt: pgconv.TimeFromPgtype(row.StartAt),
			EndAt:   pgconv.TimeFromPgtype(row.EndAt),
			Status:  row.Status,
		})
	}
	return out, nil
}

func (r *AppointmentRepository) Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) (uuid.UUID, error) {
	id, err := r.queries.CreateAppointment(ctx, tx, converter.AppointmentToInfra(a))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create appointment", err)
	}
	return id, nil
}

func (r *AppointmentRepository) GetForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*appointment.Appointment, error) {
	row, err := r.queries.GetAppointmentForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load appointment", err)
	}
	a, err := converter.AppointmentFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored appointment is malformed", err, infra.KindDBFailure)
	}
	return a, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error {
	err := r.queries.UpdateAppointmentStatus(ctx, tx, sqlc.UpdateAppointmentStatusParams{
		ID:        a.ID(),
		Status:    a.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(a.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment status", err)
	}
	return nil
}
