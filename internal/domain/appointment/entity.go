package appointment

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	id         uuid.UUID
	customerID uuid.UUID
	serviceID  uuid.UUID
	interval   Interval
	status     Status
	notes      Notes
	expiresAt  *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

func ReconstructAppointment(
	id, customerID, serviceID uuid.UUID,
	interval Interval,
	status Status,
	notes Notes,
	expiresAt *time.Time,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:         id,
		customerID: customerID,
		serviceID:  serviceID,
		interval:   interval,
		status:     status,
		notes:      notes,
		expiresAt:  expiresAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// TransitionTo applies a status change. Moving to the current status is a no-op and
// reports changed=false.
func (a *Appointment) TransitionTo(next Status, now time.Time) (bool, error) {
	if !next.IsValid() {
		return false, ErrInvalidStatus
	}
	if next == a.status {
		return false, nil
	}
	if !a.status.CanTransitionTo(next) {
		return false, ErrInvalidTransition
	}
	a.status = next
	a.updatedAt = now
	return true, nil
}

// HoldExpired reports whether a pending hold has run out at now.
func (a *Appointment) HoldExpired(now time.Time) bool {
	return a.status == StatusPendingConfirmation && a.expiresAt != nil && !a.expiresAt.After(now)
}

func (a *Appointment) ID() uuid.UUID         { return a.id }
func (a *Appointment) CustomerID() uuid.UUID { return a.customerID }
func (a *Appointment) ServiceID() uuid.UUID  { return a.serviceID }
func (a *Appointment) Interval() Interval    { return a.interval }
func (a *Appointment) Status() Status        { return a.status }
func (a *Appointment) Notes() Notes          { return a.notes }
func (a *Appointment) ExpiresAt() *time.Time { return a.expiresAt }
func (a *Appointment) CreatedAt() time.Time  { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time  { return a.updatedAt }
