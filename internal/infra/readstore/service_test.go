//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"github.com/Fabri-com/esteticas/internal/infra"
	sqlc "github.com/Fabri-com/esteticas/internal/infra/sqlc/generated"
	"github.com/Fabri-com/esteticas/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockServiceReadQueries struct {
	mock.Mock
}

func (m *MockServiceReadQueries) ListActiveServices(ctx context.Context, db sqlc.DBTX) ([]sqlc.Services, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.Services), args.Error(1)
}

func (m *MockServiceReadQueries) FindServiceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Services, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Services), args.Error(1)
}

func (m *MockServiceReadQueries) ListServiceWindowsByWeekday(ctx context.Context, db sqlc.DBTX, arg sqlc.ListServiceWindowsByWeekdayParams) ([]sqlc.ServiceTimeWindows, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ServiceTimeWindows), args.Error(1)
}

func TestServiceReadStore_ListActive(t *testing.T) {
	manicure := builder.NewServiceBuilder().BuildInfra()
	lifting := builder.NewServiceBuilder().With(func(b *builder.ServiceBuilder) {
		b.Name = "Lifting de pestañas"
		b.DurationMinutes = 60
		b.SlotIntervalMinutes = 60
	}).BuildInfra()

	t.Run("maps rows in order", func(t *testing.T) {
		mockQueries := new(MockServiceReadQueries)
		mockQueries.On("ListActiveServices", mock.Anything, mock.Anything).Return([]sqlc.Services{lifting, manicure}, nil)

		got, err := NewServiceReadStore(mockQueries, nil).ListActive(context.Background())

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Lifting de pestañas", got[0].Name)
		assert.Equal(t, 60, got[0].DurationMinutes)
		assert.Equal(t, manicure.ID, got[1].ID)
		assert.Equal(t, 30, got[1].SlotIntervalMinutes)
		mockQueries.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockServiceReadQueries)
		mockQueries.On("ListActiveServices", mock.Anything, mock.Anything).Return([]sqlc.Services(nil), assert.AnError)

		got, err := NewServiceReadStore(mockQueries, nil).ListActive(context.Background())

		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestServiceReadStore_FindByID(t *testing.T) {
	row := builder.NewServiceBuilder().BuildInfra()
	noInterval := builder.NewServiceBuilder().With(func(b *builder.ServiceBuilder) {
		b.SlotIntervalMinutes = 0
	}).BuildInfra()

	tests := []struct {
		name         string
		mockReturn   sqlc.Services
		mockError    error
		wantInterval int
		wantKind     infra.RepositoryErrorKind
	}{
		{
			name:         "success",
			mockReturn:   row,
			wantInterval: 30,
		},
		{
			name:         "missing interval falls back to default",
			mockReturn:   noInterval,
			wantInterval: 60,
		},
		{
			name:       "not found",
			mockReturn: sqlc.Services{},
			mockError:  pgx.ErrNoRows,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			mockReturn: sqlc.Services{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockServiceReadQueries)
			mockQueries.On("FindServiceByID", mock.Anything, mock.Anything, tt.mockReturn.ID).Return(tt.mockReturn, tt.mockError)

			svc, err := NewServiceReadStore(mockQueries, nil).FindByID(context.Background(), tt.mockReturn.ID)

			if tt.mockError != nil {
				assert.Nil(t, svc)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.mockReturn.ID, svc.ID())
			assert.Equal(t, tt.wantInterval, svc.SlotIntervalMinutes())
			assert.Equal(t, 45*time.Minute, svc.Duration())
			assert.True(t, svc.IsActive())
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestServiceReadStore_WindowsFor(t *testing.T) {
	b := builder.NewServiceBuilder()
	morning := b.WindowRow(time.Monday, 9*60, 13*60)
	nullEnd := b.WindowRow(time.Monday, 15*60, 0)
	nullEnd.EndTime = pgtype.Time{}

	mockQueries := new(MockServiceReadQueries)
	mockQueries.On("ListServiceWindowsByWeekday", mock.Anything, mock.Anything, sqlc.ListServiceWindowsByWeekdayParams{
		ServiceID: b.ID,
		Weekday:   int16(time.Monday),
	}).Return([]sqlc.ServiceTimeWindows{morning, nullEnd}, nil)

	windows, err := NewServiceReadStore(mockQueries, nil).WindowsFor(context.Background(), b.ID, time.Monday)

	require.NoError(t, err)
	require.Len(t, windows, 2)
	assert.Equal(t, time.Monday, windows[0].Weekday())
	assert.Equal(t, "09:00", windows[0].Start().String())
	assert.Equal(t, "13:00", windows[0].End().String())
	assert.True(t, windows[0].IsValid())
	assert.False(t, windows[1].IsValid())
	mockQueries.AssertExpectations(t)
}
