package readstore

import (
	"context"
	"time"

	"github.com/Fabri-com/esteticas/internal/infra"
	sqlc "github.com/Fabri-com/esteticas/internal/infra/sqlc/generated"
	"github.com/Fabri-com/esteticas/internal/pkg/pgconv"
	"github.com/Fabri-com/esteticas/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentReadQueries interface {
	FindAppointmentDetail(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindAppointmentDetailRow, error)
	ListAppointmentsBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAppointmentsBetweenParams) ([]sqlc.ListAppointmentsBetweenRow, error)
}

type AppointmentReadStore struct {
	queries AppointmentReadQueries
	db      sqlc.DBTX
}

func NewAppointmentReadStore(queries AppointmentReadQueries, db sqlc.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	row, err := r.queries.FindAppointmentDetail(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment", err)
	}
	return toAppointmentView(sqlc.ListAppointmentsBetweenRow(row)), nil
}

// ListBetween returns appointments starting in [from, to), ordered by start time.
func (r *AppointmentReadStore) ListBetween(ctx context.Context, from, to time.Time) ([]*queries.AppointmentView, error) {
	rows, err := r.queries.ListAppointmentsBetween(ctx, r.db, sqlc.ListAppointmentsBetweenParams{
		FromAt: pgconv.TimeToPgtype(from),
		ToAt:   pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}

	result := make([]*queries.AppointmentView, len(rows))
	for i, row := range rows {
		result[i] = toAppointmentView(row)
	}
	return result, nil
}

func toAppointmentView(row sqlc.ListAppointmentsBetweenRow) *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:            row.ID,
		ServiceID:     row.ServiceID,
		ServiceName:   row.ServiceName,
		CustomerID:    row.CustomerID,
		CustomerName:  row.CustomerName,
		CustomerPhone: row.CustomerPhone,
		CustomerEmail: pgconv.StringPtrFromPgtype(row.CustomerEmail),
		StartAt:       pgconv.TimeFromPgtype(row.StartAt),
		EndAt:         pgconv.TimeFromPgtype(row.EndAt),
		Status:        row.Status,
		Notes:         pgconv.StringPtrFromPgtype(row.Notes),
		ExpiresAt:     pgconv.TimePtrFromPgtype(row.ExpiresAt),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
