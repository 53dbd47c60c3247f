//go:build unit || e2e

package builder

import (
	"time"

	"github.com/Fabri-com/esteticas/internal/domain/service"
	sqlc "github.com/Fabri-com/esteticas/internal/infra/sqlc/generated"
	"github.com/Fabri-com/esteticas/internal/pkg/pgconv"
	"github.com/Fabri-com/esteticas/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	ID                  uuid.UUID
	Name                string
	Description         string
	DurationMinutes     int
	SlotIntervalMinutes int
	PriceCents          int64
	IsActive            bool
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		ID:                  uuid.New(),
		Name:                "Manicura",
		Description:         "Manicura semipermanente",
		DurationMinutes:     45,
		SlotIntervalMinutes: 30,
		PriceCents:          1500000,
		IsActive:            true,
	}
}

func (s *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(s)
	return s
}

func (s *ServiceBuilder) AsInactive() *ServiceBuilder {
	s.IsActive = false
	return s
}

func (s *ServiceBuilder) BuildDomain() *service.Service {
	now := time.Now()
	return service.ReconstructService(
		s.ID, s.Name, s.Description,
		s.DurationMinutes, s.SlotIntervalMinutes,
		s.PriceCents, s.IsActive, now, now,
	)
}

func (s *ServiceBuilder) BuildInfra() sqlc.Services {
	now := pgconv.TimeToPgtype(time.Now())
	return sqlc.Services{
		ID:                  s.ID,
		Name:                s.Name,
		Description:         s.Description,
		DurationMinutes:     int32(s.DurationMinutes),
		SlotIntervalMinutes: int32(s.SlotIntervalMinutes),
		PriceCents:          s.PriceCents,
		IsActive:            s.IsActive,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

func (s *ServiceBuilder) BuildReadModel() *queries.ServiceView {
	return &queries.ServiceView{
		ID:                  s.ID,
		Name:                s.Name,
		Description:         s.Description,
		DurationMinutes:     s.DurationMinutes,
		SlotIntervalMinutes: s.SlotIntervalMinutes,
		PriceCents:          s.PriceCents,
	}
}

// WindowRow builds a stored weekly window for this service; start and end are minutes after midnight.
func (s *ServiceBuilder) WindowRow(weekday time.Weekday, start, end int) sqlc.ServiceTimeWindows {
	return sqlc.ServiceTimeWindows{
		ID:        uuid.New(),
		ServiceID: s.ID,
		Weekday:   int16(weekday),
		StartTime: pgconv.MinutesToPgTime(start),
		EndTime:   pgconv.MinutesToPgTime(end),
	}
}
