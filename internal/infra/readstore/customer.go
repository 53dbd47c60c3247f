package readstore

import (
	"context"

	"github.com/Fabri-com/esteticas/internal/infra"
	sqlc "github.com/Fabri-com/esteticas/internal/infra/sqlc/generated"
	"github.com/Fabri-com/esteticas/internal/pkg/pgconv"
	"github.com/Fabri-com/esteticas/internal/usecase/queries"
)

type CustomerReadQueries interface {
	FindCustomerByPhone(ctx context.Context, db sqlc.DBTX, phone string) (sqlc.Customers, error)
}

type CustomerReadStore struct {
	queries CustomerReadQueries
	db      sqlc.DBTX
}

func NewCustomerReadStore(queries CustomerReadQueries, db sqlc.DBTX) *CustomerReadStore {
	return &CustomerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerReadStore) FindByPhone(ctx context.Context, canonicalPhone string) (*queries.CustomerView, error) {
	row, err := r.queries.FindCustomerByPhone(ctx, r.db, canonicalPhone)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by phone", err)
	}

	return &queries.CustomerView{
		ID:       row.ID,
		Phone:    row.Phone,
		FullName: row.FullName,
		Email:    pgconv.StringPtrFromPgtype(row.Email),
	}, nil
}
