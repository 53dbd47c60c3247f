package readstore

import (
	"context"
	"time"

	"github.com/Fabri-com/esteticas/internal/domain/service"
	"github.com/Fabri-com/esteticas/internal/infra"
	sqlc "github.com/Fabri-com/esteticas/internal/infra/sqlc/generated"
	"github.com/Fabri-com/esteticas/internal/pkg/pgconv"
	"github.com/Fabri-com/esteticas/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceReadQueries interface {
	ListActiveServices(ctx context.Context, db sqlc.DBTX) ([]sqlc.Services, error)
	FindServiceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Services, error)
	ListServiceWindowsByWeekday(ctx context.Context, db sqlc.DBTX, arg sqlc.ListServiceWindowsByWeekdayParams) ([]sqlc.ServiceTimeWindows, error)
}

type ServiceReadStore struct {
	queries ServiceReadQueries
	db      sqlc.DBTX
}

func NewServiceReadStore(queries ServiceReadQueries, db sqlc.DBTX) *ServiceReadStore {
	return &ServiceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceReadStore) ListActive(ctx context.Context) ([]*queries.ServiceView, error) {
	rows, err := r.queries.ListActiveServices(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active services", err)
	}

	result := make([]*queries.ServiceView, len(rows))
	for i, row := range rows {
		result[i] = toServiceView(row)
	}
	return result, nil
}

// FindByID returns the service whether or not it is active.
func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*service.Service, error) {
	row, err := r.queries.FindServiceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return toServiceDomain(row), nil
}

// WindowsFor returns the stored windows as-is; NULL bounds become zero values that fail IsValid.
func (r *ServiceReadStore) WindowsFor(ctx context.Context, serviceID uuid.UUID, weekday time.Weekday) ([]service.TimeWindow, error) {
	rows, err := r.queries.ListServiceWindowsByWeekday(ctx, r.db, sqlc.ListServiceWindowsByWeekdayParams{
		ServiceID: serviceID,
		Weekday:   int16(weekday),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service windows", err)
	}

	windows := make([]service.TimeWindow, 0, len(rows))
	for _, row := range rows {
		windows = append(windows, toTimeWindow(row))
	}
	return windows, nil
}

func toServiceView(row sqlc.Services) *queries.ServiceView {
	return &queries.ServiceView{
		ID:                  row.ID,
		Name:                row.Name,
		Description:         row.Description,
		DurationMinutes:     int(row.DurationMinutes),
		SlotIntervalMinutes: int(row.SlotIntervalMinutes),
		PriceCents:          row.PriceCents,
	}
}

func toServiceDomain(row sqlc.Services) *service.Service {
	return service.ReconstructService(
		row.ID,
		row.Name,
		row.Description,
		int(row.DurationMinutes),
		int(row.SlotIntervalMinutes),
		row.PriceCents,
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func toTimeWindow(row sqlc.ServiceTimeWindows) service.TimeWindow {
	var start, end service.TimeOfDay
	if m, ok := pgconv.MinutesFromPgTime(row.StartTime); ok {
		start, _ = service.TimeOfDayFromMinutes(m)
	}
	if m, ok := pgconv.MinutesFromPgTime(row.EndTime); ok {
		end, _ = service.TimeOfDayFromMinutes(m)
	}
	return service.ReconstructTimeWindow(int(row.Weekday), start, end)
}
