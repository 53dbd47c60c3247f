package repository

import (
	"context"

	"github.com/Fabri-com/esteticas/internal/domain/customer"
	"github.com/Fabri-com/esteticas/internal/infra"
	"github.com/Fabri-com/esteticas/internal/infra/repository/converter"
	sqlc "github.com/Fabri-com/esteticas/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type CustomerWriteQueries interface {
	UpsertCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCustomerParams) (uuid.UUID, error)
}

type CustomerRepository struct {
	queries CustomerWriteQueries
}

func NewCustomerRepository(queries CustomerWriteQueries) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
	}
}

// Upsert returns the id of the row keyed by c's phone, which is c's own id only for new customers.
func (r *CustomerRepository) Upsert(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) (uuid.UUID, error) {
	id, err := r.queries.UpsertCustomer(ctx, tx, converter.CustomerToInfra(c))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert customer", err)
	}
	return id, nil
}
