package customer

import (
	"time"

	"github.com/google/uuid"
)

// Customer is identified by its canonical phone. Reservations upsert it, so the stored
// name and email follow the most recent booking.
type Customer struct {
	id        uuid.UUID
	phone     Phone
	fullName  FullName
	email     *Email
	createdAt time.Time
	updatedAt time.Time
}

func NewCustomer(phone Phone, fullName FullName, email *Email) *Customer {
	return &Customer{
		id:       uuid.New(),
		phone:    phone,
		fullName: fullName,
		email:    email,
	}
}

func ReconstructCustomer(
	id uuid.UUID,
	phone Phone,
	fullName FullName,
	email *Email,
	createdAt, updatedAt time.Time,
) *Customer {
	return &Customer{
		id:        id,
		phone:     phone,
		fullName:  fullName,
		email:     email,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) Phone() Phone         { return c.phone }
func (c *Customer) FullName() FullName   { return c.fullName }
func (c *Customer) Email() *Email        { return c.email }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

// EmailString returns nil when the customer left no email.
func (c *Customer) EmailString() *string {
	if c.email == nil {
		return nil
	}
	s := c.email.String()
	return &s
}
