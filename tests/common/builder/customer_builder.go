//go:build unit || e2e

package builder

import (
	"time"

	"github.com/Fabri-com/esteticas/internal/domain/customer"
	sqlc "github.com/Fabri-com/esteticas/internal/infra/sqlc/generated"
	"github.com/Fabri-com/esteticas/internal/pkg/pgconv"
	"github.com/Fabri-com/esteticas/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	ID       uuid.UUID
	Phone    string
	FullName string
	Email    *string
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		ID:       uuid.New(),
		Phone:    "5491122334455",
		FullName: "Lucía Fernández",
	}
}

func (c *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(c)
	return c
}

func (c *CustomerBuilder) BuildDomain() (*customer.Customer, error) {
	phone, err := customer.NormalizePhone(c.Phone)
	if err != nil {
		return nil, err
	}
	name, err := customer.NewFullName(c.FullName)
	if err != nil {
		return nil, err
	}
	var email *customer.Email
	if c.Email != nil {
		e, err := customer.NewEmail(*c.Email)
		if err != nil {
			return nil, err
		}
		email = &e
	}
	return customer.NewCustomer(phone, name, email), nil
}

func (c *CustomerBuilder) BuildInfra() sqlc.Customers {
	now := pgconv.TimeToPgtype(time.Now())
	return sqlc.Customers{
		ID:        c.ID,
		Phone:     c.Phone,
		FullName:  c.FullName,
		Email:     pgconv.StringPtrToPgtype(c.Email),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (c *CustomerBuilder) BuildReadModel() *queries.CustomerView {
	return &queries.CustomerView{
		ID:       c.ID,
		Phone:    c.Phone,
		FullName: c.FullName,
		Email:    c.Email,
	}
}
