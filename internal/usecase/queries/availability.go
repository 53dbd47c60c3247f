package queries

import (
	"context"
	"time"

	"github.com/Fabri-com/esteticas/internal/domain/availability"
	"github.com/Fabri-com/esteticas/internal/infra"
	"github.com/Fabri-com/esteticas/internal/pkg/clock"
	"github.com/Fabri-com/esteticas/internal/pkg/errs"
	"github.com/Fabri-com/esteticas/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	ListSlots(ctx context.Context, serviceID uuid.UUID, date string) (*SlotsView, error)
}

type availabilityQueriesImpl struct {
	readStore ServiceReadStore
	clock     clock.Clock
	loc       *time.Location
}

func NewAvailabilityQueries(readStore ServiceReadStore, clk clock.Clock, loc *time.Location) AvailabilityQueries {
	return &availabilityQueriesImpl{
		readStore: readStore,
		clock:     clk,
		loc:       loc,
	}
}

// ListSlots lists start times for date in the business timezone. Days already over yield
// no slots; today only yields slots still ahead of now.
func (q *availabilityQueriesImpl) ListSlots(ctx context.Context, serviceID uuid.UUID, date string) (*SlotsView, error) {
	day, err := parseDay(date, q.loc)
	if err != nil {
		return nil, err
	}

	svc, err := q.readStore.FindByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NewNotFoundError("service", serviceID.String())
		}
		return nil, shared.TranslateStorageErr("load service", err)
	}
	if !svc.IsActive() {
		return nil, errs.NewNotFoundError("service", serviceID.String())
	}

	view := &SlotsView{ServiceID: serviceID, Date: day.Format(DateLayout), Slots: []string{}}

	now := q.clock.Now()
	if day.Before(startOfDay(now.In(q.loc))) {
		return view, nil
	}

	windows, err := q.readStore.WindowsFor(ctx, serviceID, day.Weekday())
	if err != nil {
		return nil, shared.TranslateStorageErr("load service windows", err)
	}

	view.Slots = availability.ComputeSlots(svc.SlotIntervalMinutes(), windows, day, now)
	return view, nil
}
