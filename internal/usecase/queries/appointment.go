package queries

import (
	"context"
	"time"

	"github.com/Fabri-com/esteticas/internal/infra"
	"github.com/Fabri-com/esteticas/internal/pkg/errs"
	"github.com/Fabri-com/esteticas/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	// Agenda lists every appointment starting on date (business timezone), cancelled ones included.
	Agenda(ctx context.Context, date string) (*AgendaView, error)
}

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]*AppointmentView, error)
}

type appointmentQueriesImpl struct {
	readStore AppointmentReadStore
	loc       *time.Location
}

func NewAppointmentQueries(readStore AppointmentReadStore, loc *time.Location) AppointmentQueries {
	return &appointmentQueriesImpl{
		readStore: readStore,
		loc:       loc,
	}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NewNotFoundError("appointment", id.String())
		}
		return nil, shared.TranslateStorageErr("load appointment", err)
	}
	return view, nil
}

func (q *appointmentQueriesImpl) Agenda(ctx context.Context, date string) (*AgendaView, error) {
	day, err := parseDay(date, q.loc)
	if err != nil {
		return nil, err
	}

	items, err := q.readStore.ListBetween(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, shared.TranslateStorageErr("list agenda", err)
	}
	if items == nil {
		items = []*AppointmentView{}
	}
	return &AgendaView{Date: day.Format(DateLayout), Appointments: items}, nil
}
