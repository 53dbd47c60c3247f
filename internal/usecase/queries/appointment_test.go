//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Fabri-com/esteticas/internal/infra"
	"github.com/Fabri-com/esteticas/internal/pkg/errs"
	"github.com/Fabri-com/esteticas/internal/usecase/queries"
	"github.com/Fabri-com/esteticas/tests/common/builder"
	queriesmock "github.com/Fabri-com/esteticas/tests/mock/queries"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAgenda(t *testing.T) {
	loc := buenosAires(t)
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)
	to := time.Date(2025, 3, 11, 0, 0, 0, 0, loc)

	t.Run("day bounds in business timezone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockAppointmentReadStore(ctrl)
		items := []*queries.AppointmentView{
			builder.NewAppointmentBuilder().BuildReadModel(),
			builder.NewAppointmentBuilder().BuildReadModel(),
		}
		rs.EXPECT().ListBetween(gomock.Any(), from, to).Return(items, nil)

		got, err := queries.NewAppointmentQueries(rs, loc).Agenda(context.Background(), "2025-03-10")

		require.NoError(t, err)
		assert.Equal(t, "2025-03-10", got.Date)
		assert.Equal(t, items, got.Appointments)
	})

	t.Run("empty day renders empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockAppointmentReadStore(ctrl)
		rs.EXPECT().ListBetween(gomock.Any(), from, to).Return(nil, nil)

		got, err := queries.NewAppointmentQueries(rs, loc).Agenda(context.Background(), "2025-03-10")

		require.NoError(t, err)
		assert.NotNil(t, got.Appointments)
		assert.Empty(t, got.Appointments)
	})

	t.Run("malformed date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockAppointmentReadStore(ctrl)

		_, err := queries.NewAppointmentQueries(rs, loc).Agenda(context.Background(), "2025-13-01")

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockAppointmentReadStore(ctrl)
		rs.EXPECT().ListBetween(gomock.Any(), from, to).
			Return(nil, infra.WrapRepoErr("failed to list appointments", errors.New("timeout")))

		_, err := queries.NewAppointmentQueries(rs, loc).Agenda(context.Background(), "2025-03-10")

		assert.ErrorIs(t, err, errs.ErrTransientStorage)
	})
}

func TestGetAppointmentByID(t *testing.T) {
	loc := buenosAires(t)
	ab := builder.NewAppointmentBuilder()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockAppointmentReadStore(ctrl)
		rs.EXPECT().FindByID(gomock.Any(), ab.ID).Return(ab.BuildReadModel(), nil)

		got, err := queries.NewAppointmentQueries(rs, loc).GetByID(context.Background(), ab.ID)

		require.NoError(t, err)
		assert.Equal(t, ab.ID, got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockAppointmentReadStore(ctrl)
		rs.EXPECT().FindByID(gomock.Any(), ab.ID).
			Return(nil, infra.WrapRepoErr("appointment not found", pgx.ErrNoRows))

		_, err := queries.NewAppointmentQueries(rs, loc).GetByID(context.Background(), ab.ID)

		var nf *errs.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "appointment", nf.Entity)
	})
}
