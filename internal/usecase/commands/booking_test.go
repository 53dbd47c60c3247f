//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/Fabri-com/esteticas/internal/domain/appointment"
	"github.com/Fabri-com/esteticas/internal/domain/customer"
	"github.com/Fabri-com/esteticas/internal/infra"
	sqlc "github.com/Fabri-com/esteticas/internal/infra/sqlc/generated"
	"github.com/Fabri-com/esteticas/internal/pkg/clock"
	"github.com/Fabri-com/esteticas/internal/pkg/errs"
	"github.com/Fabri-com/esteticas/internal/usecase/commands"
	"github.com/Fabri-com/esteticas/internal/usecase/shared"
	"github.com/Fabri-com/esteticas/tests/common/builder"
	sharedmock "github.com/Fabri-com/esteticas/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const businessPhone = "5491100000000"

func buenosAires(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	require.NoError(t, err)
	return loc
}

type bookingFixture struct {
	uow      *sharedmock.MockUnitOfWork
	reads    *sharedmock.MockCommandReads
	tx       *sharedmock.MockTx
	appts    *sharedmock.MockAppointmentRepository
	custs    *sharedmock.MockCustomerRepository
	outbox   *sharedmock.MockOutboxRepository
	clock    *clock.MockClock
	loc      *time.Location
	commands commands.BookingCommands
}

func newBookingFixture(t *testing.T) *bookingFixture {
	ctrl := gomock.NewController(t)
	loc := buenosAires(t)
	f := &bookingFixture{
		uow:    sharedmock.NewMockUnitOfWork(ctrl),
		reads:  sharedmock.NewMockCommandReads(ctrl),
		tx:     sharedmock.NewMockTx(ctrl),
		appts:  sharedmock.NewMockAppointmentRepository(ctrl),
		custs:  sharedmock.NewMockCustomerRepository(ctrl),
		outbox: sharedmock.NewMockOutboxRepository(ctrl),
		clock:  clock.NewMockClock(time.Date(2025, 3, 7, 12, 0, 0, 0, loc)),
		loc:    loc,
	}
	factory := appointment.NewFactory(f.clock, 10*time.Minute, 10*time.Minute)
	f.commands = commands.NewBookingCommands(f.uow, factory, loc, businessPhone, slog.New(slog.DiscardHandler))

	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Appointments().Return(f.appts).AnyTimes()
	f.tx.EXPECT().Customers().Return(f.custs).AnyTimes()
	f.tx.EXPECT().Outbox().Return(f.outbox).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	return f
}

func (f *bookingFixture) runTx() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
}

func (f *bookingFixture) input(serviceID uuid.UUID) commands.ReserveInput {
	return commands.ReserveInput{
		ServiceID: serviceID,
		StartAt:   time.Date(2025, 3, 10, 10, 0, 0, 0, f.loc),
		FullName:  "Lucía Fernández",
		Phone:     "011 2233-4455",
	}
}

func TestReserve_Success(t *testing.T) {
	f := newBookingFixture(t)
	svc := builder.NewServiceBuilder().BuildDomain()
	in := f.input(svc.ID())
	notes := "uñas cortas"
	in.Notes = &notes
	customerID := uuid.New()
	now := f.clock.Now()

	f.reads.EXPECT().ServiceByID(gomock.Any(), svc.ID()).Return(svc, nil)
	f.runTx()
	gomock.InOrder(
		f.appts.EXPECT().LockService(gomock.Any(), gomock.Any(), svc.ID()).Return(nil),
		f.appts.EXPECT().ExpireStaleHolds(gomock.Any(), gomock.Any(), svc.ID(), now).Return(int64(1), nil),
		f.appts.EXPECT().FindOverlapping(gomock.Any(), gomock.Any(), svc.ID(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _ uuid.UUID, interval appointment.Interval) ([]shared.OverlapSnapshot, error) {
				assert.Equal(t, 55*time.Minute, interval.Duration())
				return nil, nil
			}),
		f.custs.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, c *customer.Customer) (uuid.UUID, error) {
				assert.Equal(t, "5491122334455", c.Phone().String())
				return customerID, nil
			}),
		f.appts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, a *appointment.Appointment) (uuid.UUID, error) {
				assert.Equal(t, customerID, a.CustomerID())
				assert.Equal(t, appointment.StatusPendingConfirmation, a.Status())
				return a.ID(), nil
			}),
		f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, msg shared.OutboxMessage) error {
				assert.Equal(t, shared.KindAppointmentRequested, msg.Kind)
				assert.Equal(t, shared.TopicAppointments, msg.Topic)
				var payload map[string]any
				require.NoError(t, json.Unmarshal(msg.Payload, &payload))
				assert.Equal(t, "5491122334455", payload["customer_phone"])
				assert.Equal(t, msg.AggregateID.String(), payload["appointment_id"])
				return nil
			}),
	)

	got, err := f.commands.Reserve(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, customerID, got.CustomerID)
	assert.Equal(t, "pending_confirmation", got.Status)
	assert.True(t, got.EndAt.Equal(in.StartAt.Add(55*time.Minute)))
	assert.True(t, got.ExpiresAt.Equal(now.Add(10*time.Minute)))
	assert.Equal(t, "Hola! Soy Lucía Fernández. Quiero reservar Manicura el 10/3/2025 a las 10:00. Notas: uñas cortas", got.Confirmation.Text)
	assert.True(t, strings.HasPrefix(got.Confirmation.WhatsAppLink, "https://wa.me/"+businessPhone+"?text="))
}

func TestReserve_RejectedBeforeTransaction(t *testing.T) {
	svc := builder.NewServiceBuilder().BuildDomain()
	long := strings.Repeat("x", 501)
	badEmail := "not-an-email"

	tests := []struct {
		name      string
		mutate    func(in *commands.ReserveInput)
		loads     bool
		wantField string
	}{
		{name: "short name", mutate: func(in *commands.ReserveInput) { in.FullName = " Al " }, wantField: "full_name"},
		{name: "missing phone", mutate: func(in *commands.ReserveInput) { in.Phone = "" }, wantField: "phone"},
		{name: "malformed email", mutate: func(in *commands.ReserveInput) { in.Email = &badEmail }, wantField: "email"},
		{name: "notes too long", mutate: func(in *commands.ReserveInput) { in.Notes = &long }, wantField: "notes"},
		{name: "unnormalizable phone", mutate: func(in *commands.ReserveInput) { in.Phone = "12345" }, loads: true, wantField: "phone"},
		{name: "start in the past", mutate: func(in *commands.ReserveInput) { in.StartAt = in.StartAt.AddDate(0, 0, -7) }, loads: true, wantField: "start_at"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(t)
			if tt.loads {
				f.reads.EXPECT().ServiceByID(gomock.Any(), svc.ID()).Return(svc, nil)
			}
			in := f.input(svc.ID())
			tt.mutate(&in)

			got, err := f.commands.Reserve(context.Background(), in)

			assert.Nil(t, got)
			var verr *errs.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestReserve_StartEqualToNowRejected(t *testing.T) {
	f := newBookingFixture(t)
	svc := builder.NewServiceBuilder().BuildDomain()
	f.reads.EXPECT().ServiceByID(gomock.Any(), svc.ID()).Return(svc, nil)
	in := f.input(svc.ID())
	in.StartAt = f.clock.Now()

	_, err := f.commands.Reserve(context.Background(), in)

	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestReserve_ServiceNotBookable(t *testing.T) {
	tests := []struct {
		name    string
		lookup  func(f *bookingFixture, id uuid.UUID)
		wantErr error
	}{
		{
			name: "missing",
			lookup: func(f *bookingFixture, id uuid.UUID) {
				f.reads.EXPECT().ServiceByID(gomock.Any(), id).
					Return(nil, infra.WrapRepoErr("service not found", pgx.ErrNoRows))
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name: "inactive",
			lookup: func(f *bookingFixture, id uuid.UUID) {
				inactive := builder.NewServiceBuilder().With(func(b *builder.ServiceBuilder) { b.ID = id }).AsInactive().BuildDomain()
				f.reads.EXPECT().ServiceByID(gomock.Any(), id).Return(inactive, nil)
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name: "storage down",
			lookup: func(f *bookingFixture, id uuid.UUID) {
				f.reads.EXPECT().ServiceByID(gomock.Any(), id).
					Return(nil, infra.WrapRepoErr("failed to find service by ID", errors.New("connection refused")))
			},
			wantErr: errs.ErrTransientStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(t)
			id := uuid.New()
			tt.lookup(f, id)

			got, err := f.commands.Reserve(context.Background(), f.input(id))

			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReserve_Conflicts(t *testing.T) {
	svc := builder.NewServiceBuilder().BuildDomain()

	t.Run("overlap found", func(t *testing.T) {
		f := newBookingFixture(t)
		f.reads.EXPECT().ServiceByID(gomock.Any(), svc.ID()).Return(svc, nil)
		f.runTx()
		f.appts.EXPECT().LockService(gomock.Any(), gomock.Any(), svc.ID()).Return(nil)
		f.appts.EXPECT().ExpireStaleHolds(gomock.Any(), gomock.Any(), svc.ID(), gomock.Any()).Return(int64(0), nil)
		f.appts.EXPECT().FindOverlapping(gomock.Any(), gomock.Any(), svc.ID(), gomock.Any()).
			Return([]shared.OverlapSnapshot{{ID: uuid.New(), Status: "confirmed"}}, nil)

		got, err := f.commands.Reserve(context.Background(), f.input(svc.ID()))

		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("exclusion constraint at insert", func(t *testing.T) {
		f := newBookingFixture(t)
		f.reads.EXPECT().ServiceByID(gomock.Any(), svc.ID()).Return(svc, nil)
		f.runTx()
		f.appts.EXPECT().LockService(gomock.Any(), gomock.Any(), svc.ID()).Return(nil)
		f.appts.EXPECT().ExpireStaleHolds(gomock.Any(), gomock.Any(), svc.ID(), gomock.Any()).Return(int64(0), nil)
		f.appts.EXPECT().FindOverlapping(gomock.Any(), gomock.Any(), svc.ID(), gomock.Any()).Return(nil, nil)
		f.custs.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		f.appts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("failed to create appointment", &pgconn.PgError{Code: "23P01"}))

		_, err := f.commands.Reserve(context.Background(), f.input(svc.ID()))

		var cerr *errs.ConflictError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, shared.ErrOverlap, cerr.Reason)
	})
}

func TestReserve_TransientStorage(t *testing.T) {
	f := newBookingFixture(t)
	svc := builder.NewServiceBuilder().BuildDomain()
	f.reads.EXPECT().ServiceByID(gomock.Any(), svc.ID()).Return(svc, nil)
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).Return(errors.New("failed to begin transaction"))

	got, err := f.commands.Reserve(context.Background(), f.input(svc.ID()))

	assert.Nil(t, got)
	var terr *errs.TransientStorageError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "reserve appointment", terr.Op)
}
