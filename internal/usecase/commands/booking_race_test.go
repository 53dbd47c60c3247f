//go:build unit

package commands_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/Fabri-com/esteticas/internal/domain/appointment"
	"github.com/Fabri-com/esteticas/internal/pkg/clock"
	"github.com/Fabri-com/esteticas/internal/pkg/errs"
	"github.com/Fabri-com/esteticas/internal/usecase/commands"
	"github.com/Fabri-com/esteticas/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingEnv struct {
	store   *memStore
	clock   *clock.MockClock
	loc     *time.Location
	booking commands.BookingCommands
	status  commands.AppointmentCommands
	expiry  commands.ExpiryCommands
}

func newBookingEnv(t *testing.T) (*bookingEnv, *builder.ServiceBuilder) {
	loc := buenosAires(t)
	sb := builder.NewServiceBuilder()
	store := newMemStore(sb.BuildDomain())
	uow := &memUoW{store: store}
	clk := clock.NewMockClock(time.Date(2025, 3, 7, 12, 0, 0, 0, loc))
	logger := slog.New(slog.DiscardHandler)
	factory := appointment.NewFactory(clk, 10*time.Minute, 10*time.Minute)

	return &bookingEnv{
		store:   store,
		clock:   clk,
		loc:     loc,
		booking: commands.NewBookingCommands(uow, factory, loc, businessPhone, logger),
		status:  commands.NewAppointmentCommands(uow, clk, logger),
		expiry:  commands.NewExpiryCommands(uow, clk, logger),
	}, sb
}

func (e *bookingEnv) at(hour, minute int) time.Time {
	return time.Date(2025, 3, 10, hour, minute, 0, 0, e.loc)
}

func reserveInput(sb *builder.ServiceBuilder, start time.Time, n int) commands.ReserveInput {
	return commands.ReserveInput{
		ServiceID: sb.ID,
		StartAt:   start,
		FullName:  fmt.Sprintf("Clienta %02d", n),
		Phone:     fmt.Sprintf("11 2233-%04d", n),
	}
}

func TestReserve_ConcurrentSameSlotOneWinner(t *testing.T) {
	env, sb := newBookingEnv(t)
	const callers = 20

	var wg sync.WaitGroup
	results := make([]error, callers)
	for i := range callers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = env.booking.Reserve(context.Background(), reserveInput(sb, env.at(10, 0), i))
		}(i)
	}
	wg.Wait()

	wins, conflicts := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, errs.ErrConflict):
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, callers-1, conflicts)
	assert.Equal(t, 1, env.store.byStatus(appointment.StatusPendingConfirmation))
	assert.Equal(t, 1, env.store.outboxLen())
}

func TestReserve_ConcurrentOverlappingStarts(t *testing.T) {
	env, sb := newBookingEnv(t)
	// 45 min service + 10 min buffer: every start below intersects 10:00-10:55
	starts := []time.Time{env.at(9, 30), env.at(10, 0), env.at(10, 30)}

	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i, start := range starts {
		wg.Add(1)
		go func(i int, start time.Time) {
			defer wg.Done()
			_, err := env.booking.Reserve(context.Background(), reserveInput(sb, start, i))
			if err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, errs.ErrConflict)
		}(i, start)
	}
	wg.Wait()

	// 9:30 and 10:30 do not overlap each other, so either one or two may win
	assert.GreaterOrEqual(t, wins, 1)
	assert.LessOrEqual(t, wins, 2)
}

func TestReserve_AdjacentIntervalsDoNotConflict(t *testing.T) {
	env, sb := newBookingEnv(t)
	ctx := context.Background()

	first, err := env.booking.Reserve(ctx, reserveInput(sb, env.at(10, 0), 1))
	require.NoError(t, err)
	assert.True(t, first.EndAt.Equal(env.at(10, 55)))

	_, err = env.booking.Reserve(ctx, reserveInput(sb, env.at(10, 55), 2))
	require.NoError(t, err)

	_, err = env.booking.Reserve(ctx, reserveInput(sb, env.at(10, 54), 3))
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestReserve_ExpiredHoldFreesSlot(t *testing.T) {
	env, sb := newBookingEnv(t)
	ctx := context.Background()

	_, err := env.booking.Reserve(ctx, reserveInput(sb, env.at(10, 0), 1))
	require.NoError(t, err)

	_, err = env.booking.Reserve(ctx, reserveInput(sb, env.at(10, 0), 2))
	require.ErrorIs(t, err, errs.ErrConflict)

	env.clock.Add(10 * time.Minute)

	_, err = env.booking.Reserve(ctx, reserveInput(sb, env.at(10, 0), 2))
	require.NoError(t, err)
	assert.Equal(t, 1, env.store.byStatus(appointment.StatusCancelled))
	assert.Equal(t, 1, env.store.byStatus(appointment.StatusPendingConfirmation))
}

func TestReserve_ConfirmedAppointmentIsNeverSwept(t *testing.T) {
	env, sb := newBookingEnv(t)
	ctx := context.Background()

	res, err := env.booking.Reserve(ctx, reserveInput(sb, env.at(10, 0), 1))
	require.NoError(t, err)

	_, err = env.status.UpdateStatus(ctx, res.AppointmentID, "confirmed")
	require.NoError(t, err)

	env.clock.Add(time.Hour)
	n, err := env.expiry.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = env.booking.Reserve(ctx, reserveInput(sb, env.at(10, 0), 2))
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestSweepExpired_Idempotent(t *testing.T) {
	env, sb := newBookingEnv(t)
	ctx := context.Background()

	for i, start := range []time.Time{env.at(9, 0), env.at(11, 0), env.at(15, 0)} {
		_, err := env.booking.Reserve(ctx, reserveInput(sb, start, i))
		require.NoError(t, err)
	}

	env.clock.Add(5 * time.Minute)
	n, err := env.expiry.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "holds still within their window")

	env.clock.Add(6 * time.Minute)
	n, err = env.expiry.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = env.expiry.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
