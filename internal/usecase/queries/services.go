package queries

import (
	"context"
	"time"

	"github.com/Fabri-com/esteticas/internal/domain/service"
	"github.com/Fabri-com/esteticas/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceQueries interface {
	ListActive(ctx context.Context) ([]*ServiceView, error)
}

type ServiceReadStore interface {
	ListActive(ctx context.Context) ([]*ServiceView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*service.Service, error)
	WindowsFor(ctx context.Context, serviceID uuid.UUID, weekday time.Weekday) ([]service.TimeWindow, error)
}

type serviceQueriesImpl struct {
	readStore ServiceReadStore
}

func NewServiceQueries(readStore ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{
		readStore: readStore,
	}
}

func (q *serviceQueriesImpl) ListActive(ctx context.Context) ([]*ServiceView, error) {
	services, err := q.readStore.ListActive(ctx)
	if err != nil {
		return nil, shared.TranslateStorageErr("list services", err)
	}
	if services == nil {
		services = []*ServiceView{}
	}
	return services, nil
}
