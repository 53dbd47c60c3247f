package shared

import (
	"context"
	"time"

	"github.com/Fabri-com/esteticas/internal/domain/appointment"
	"github.com/Fabri-com/esteticas/internal/domain/customer"
	"github.com/Fabri-com/esteticas/internal/domain/service"
	"github.com/Fabri-com/esteticas/internal/domain/user"
	sqlc "github.com/Fabri-com/esteticas/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Appointments() AppointmentRepository
	Customers() CustomerRepository
	Outbox() OutboxRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ServiceByID(ctx context.Context, id uuid.UUID) (*service.Service, error)
}

type AppointmentRepository interface {
	// LockService serialises reservations of one service until the transaction ends.
	LockService(ctx context.Context, tx sqlc.DBTX, serviceID uuid.UUID) error
	ExpireStaleHolds(ctx context.Context, tx sqlc.DBTX, serviceID uuid.UUID, now time.Time) (int64, error)
	ExpireAllStaleHolds(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
	FindOverlapping(ctx context.Context, tx sqlc.DBTX, serviceID uuid.UUID, interval appointment.Interval) ([]OverlapSnapshot, error)
	Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) (uuid.UUID, error)
	GetForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*appointment.Appointment, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error
}

type CustomerRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) (uuid.UUID, error)
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, tx sqlc.DBTX, msg OutboxMessage) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, batchSize, maxAttempts int) ([]OutboxJob, error)
	MarkPublished(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID, lastError string) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	Upsert(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
}
