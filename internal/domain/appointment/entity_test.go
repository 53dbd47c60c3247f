//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"github.com/Fabri-com/esteticas/internal/domain/appointment"
	"github.com/Fabri-com/esteticas/internal/domain/service"
	"github.com/Fabri-com/esteticas/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseNow = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func manicure(active bool) *service.Service {
	return service.ReconstructService(uuid.New(), "Manicure", "", 45, 30, 1500000, active, baseNow, baseNow)
}

func TestFactory_CreatePending(t *testing.T) {
	clk := clock.NewMockClock(baseNow)
	f := appointment.NewFactory(clk, 10*time.Minute, 10*time.Minute)

	t.Run("end includes duration and buffer", func(t *testing.T) {
		svc := manicure(true)
		customerID := uuid.New()
		start := baseNow.Add(2 * time.Hour)

		a, err := f.CreatePending(svc, customerID, start, appointment.Notes{})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, a.ID())
		assert.Equal(t, svc.ID(), a.ServiceID())
		assert.Equal(t, customerID, a.CustomerID())
		assert.Equal(t, start, a.Interval().Start())
		assert.Equal(t, start.Add(55*time.Minute), a.Interval().End())
		assert.Equal(t, appointment.StatusPendingConfirmation, a.Status())
		require.NotNil(t, a.ExpiresAt())
		assert.Equal(t, baseNow.Add(10*time.Minute), *a.ExpiresAt())
	})

	tests := []struct {
		name  string
		svc   *service.Service
		start time.Time
		errIs error
	}{
		{name: "start equal to now", svc: manicure(true), start: baseNow, errIs: appointment.ErrStartNotInFuture},
		{name: "start in the past", svc: manicure(true), start: baseNow.Add(-time.Minute), errIs: appointment.ErrStartNotInFuture},
		{name: "inactive service", svc: manicure(false), start: baseNow.Add(time.Hour), errIs: service.ErrServiceInactive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := f.CreatePending(tt.svc, uuid.New(), tt.start, appointment.Notes{})
			require.ErrorIs(t, err, tt.errIs)
			assert.Nil(t, a)
		})
	}
}

func TestAppointment_TransitionTo(t *testing.T) {
	all := []appointment.Status{
		appointment.StatusPendingConfirmation,
		appointment.StatusConfirmed,
		appointment.StatusCompleted,
		appointment.StatusCancelled,
		appointment.StatusNoShow,
	}
	allowed := map[appointment.Status]map[appointment.Status]bool{
		appointment.StatusPendingConfirmation: {appointment.StatusConfirmed: true, appointment.StatusCancelled: true},
		appointment.StatusConfirmed:           {appointment.StatusCompleted: true, appointment.StatusCancelled: true, appointment.StatusNoShow: true},
	}

	for _, from := range all {
		for _, to := range all {
			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				a := reconstruct(t, from)
				later := baseNow.Add(time.Minute)

				changed, err := a.TransitionTo(to, later)

				switch {
				case from == to:
					require.NoError(t, err)
					assert.False(t, changed)
					assert.Equal(t, from, a.Status())
				case allowed[from][to]:
					require.NoError(t, err)
					assert.True(t, changed)
					assert.Equal(t, to, a.Status())
					assert.Equal(t, later, a.UpdatedAt())
				default:
					require.ErrorIs(t, err, appointment.ErrInvalidTransition)
					assert.False(t, changed)
					assert.Equal(t, from, a.Status())
				}
			})
		}
	}

	t.Run("unknown status rejected", func(t *testing.T) {
		a := reconstruct(t, appointment.StatusConfirmed)
		_, err := a.TransitionTo(appointment.Status("archived"), baseNow)
		require.ErrorIs(t, err, appointment.ErrInvalidStatus)
	})
}

func TestAppointment_HoldExpired(t *testing.T) {
	a := reconstruct(t, appointment.StatusPendingConfirmation)
	exp := *a.ExpiresAt()

	assert.False(t, a.HoldExpired(exp.Add(-time.Second)))
	assert.True(t, a.HoldExpired(exp))
	assert.True(t, a.HoldExpired(exp.Add(time.Hour)))

	confirmed := reconstruct(t, appointment.StatusConfirmed)
	assert.False(t, confirmed.HoldExpired(exp.Add(time.Hour)))
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in    string
		want  appointment.Status
		errIs error
	}{
		{in: "pending_confirmation", want: appointment.StatusPendingConfirmation},
		{in: "confirmed", want: appointment.StatusConfirmed},
		{in: "completed", want: appointment.StatusCompleted},
		{in: "done", want: appointment.StatusCompleted},
		{in: "cancelled", want: appointment.StatusCancelled},
		{in: "no_show", want: appointment.StatusNoShow},
		{in: "canceled", errIs: appointment.ErrInvalidStatus},
		{in: "", errIs: appointment.ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := appointment.ParseStatus(tt.in)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func reconstruct(t *testing.T, status appointment.Status) *appointment.Appointment {
	t.Helper()
	start := baseNow.Add(24 * time.Hour)
	iv, err := appointment.NewInterval(start, start.Add(time.Hour))
	require.NoError(t, err)

	var expiresAt *time.Time
	if status == appointment.StatusPendingConfirmation {
		e := baseNow.Add(10 * time.Minute)
		expiresAt = &e
	}
	return appointment.ReconstructAppointment(
		uuid.New(), uuid.New(), uuid.New(), iv, status, appointment.Notes{}, expiresAt, baseNow, baseNow,
	)
}
