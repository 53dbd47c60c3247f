package appointment

import (
	"time"

	"github.com/Fabri-com/esteticas/internal/domain/service"
	"github.com/Fabri-com/esteticas/internal/pkg/clock"

	"github.com/google/uuid"
)

// Factory creates pending holds. Buffer is appended to the service duration; Hold is how
// long a pending appointment keeps its slot before the sweep may cancel it.
type Factory struct {
	Clock  clock.Clock
	Buffer time.Duration
	Hold   time.Duration
}

func NewFactory(clock clock.Clock, buffer, hold time.Duration) *Factory {
	return &Factory{
		Clock:  clock,
		Buffer: buffer,
		Hold:   hold,
	}
}

// IntervalFor is the range an appointment for svc starting at start would block.
func (f *Factory) IntervalFor(svc *service.Service, start time.Time) (Interval, error) {
	return NewInterval(start, start.Add(svc.Duration()+f.Buffer))
}

func (f *Factory) CreatePending(
	svc *service.Service,
	customerID uuid.UUID,
	start time.Time,
	notes Notes,
) (*Appointment, error) {
	if err := svc.EnsureBookable(); err != nil {
		return nil, err
	}

	now := f.Clock.Now()
	if !start.After(now) {
		return nil, ErrStartNotInFuture
	}

	interval, err := f.IntervalFor(svc, start)
	if err != nil {
		return nil, err
	}

	expiresAt := now.Add(f.Hold)
	return &Appointment{
		id:         uuid.New(),
		customerID: customerID,
		serviceID:  svc.ID(),
		interval:   interval,
		status:     StatusPendingConfirmation,
		notes:      notes,
		expiresAt:  &expiresAt,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}
