package queries

import (
	"context"

	"github.com/Fabri-com/esteticas/internal/domain/customer"
	"github.com/Fabri-com/esteticas/internal/infra"
	"github.com/Fabri-com/esteticas/internal/pkg/errs"
	"github.com/Fabri-com/esteticas/internal/usecase/shared"
)

type CustomerQueries interface {
	// FindByPhone returns nil without error when nobody booked with that phone yet.
	FindByPhone(ctx context.Context, rawPhone string) (*CustomerView, error)
}

type CustomerReadStore interface {
	FindByPhone(ctx context.Context, canonicalPhone string) (*CustomerView, error)
}

type customerQueriesImpl struct {
	readStore CustomerReadStore
}

func NewCustomerQueries(readStore CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{
		readStore: readStore,
	}
}

func (q *customerQueriesImpl) FindByPhone(ctx context.Context, rawPhone string) (*CustomerView, error) {
	phone, err := customer.NormalizePhone(rawPhone)
	if err != nil {
		return nil, errs.NewValidationError("phone", err.Error())
	}

	view, err := q.readStore.FindByPhone(ctx, phone.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, shared.TranslateStorageErr("find customer", err)
	}
	return view, nil
}
