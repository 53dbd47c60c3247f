//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

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

func TestFindByPhone(t *testing.T) {
	cb := builder.NewCustomerBuilder()

	tests := []struct {
		name    string
		raw     string
		setup   func(rs *queriesmock.MockCustomerReadStore)
		want    *queries.CustomerView
		wantErr error
	}{
		{
			name: "national format is canonicalized",
			raw:  "011 15 2233-4455",
			setup: func(rs *queriesmock.MockCustomerReadStore) {
				rs.EXPECT().FindByPhone(gomock.Any(), "5491122334455").Return(cb.BuildReadModel(), nil)
			},
			want: cb.BuildReadModel(),
		},
		{
			name: "international format",
			raw:  "+54 9 11 2233-4455",
			setup: func(rs *queriesmock.MockCustomerReadStore) {
				rs.EXPECT().FindByPhone(gomock.Any(), "5491122334455").Return(cb.BuildReadModel(), nil)
			},
			want: cb.BuildReadModel(),
		},
		{
			name: "unknown phone",
			raw:  "1199998888",
			setup: func(rs *queriesmock.MockCustomerReadStore) {
				rs.EXPECT().FindByPhone(gomock.Any(), "5491199998888").
					Return(nil, infra.WrapRepoErr("customer not found", pgx.ErrNoRows))
			},
			want: nil,
		},
		{
			name:    "not a phone",
			raw:     "abc",
			setup:   func(*queriesmock.MockCustomerReadStore) {},
			wantErr: errs.ErrValidation,
		},
		{
			name: "storage failure",
			raw:  "1122334455",
			setup: func(rs *queriesmock.MockCustomerReadStore) {
				rs.EXPECT().FindByPhone(gomock.Any(), "5491122334455").
					Return(nil, infra.WrapRepoErr("failed to find customer by phone", errors.New("timeout")))
			},
			wantErr: errs.ErrTransientStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rs := queriesmock.NewMockCustomerReadStore(ctrl)
			tt.setup(rs)

			got, err := queries.NewCustomerQueries(rs).FindByPhone(context.Background(), tt.raw)

			if tt.wantErr != nil {
				assert.Nil(t, got)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
