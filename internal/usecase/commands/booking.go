package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/Fabri-com/esteticas/internal/domain/appointment"
	"github.com/Fabri-com/esteticas/internal/domain/customer"
	"github.com/Fabri-com/esteticas/internal/domain/service"
	"github.com/Fabri-com/esteticas/internal/infra"
	"github.com/Fabri-com/esteticas/internal/pkg/errs"
	"github.com/Fabri-com/esteticas/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReserveInput struct {
	ServiceID uuid.UUID
	StartAt   time.Time
	FullName  string
	Phone     string
	Email     *string
	Notes     *string
}

type ReserveResult struct {
	AppointmentID uuid.UUID
	ServiceID     uuid.UUID
	CustomerID    uuid.UUID
	Status        string
	StartAt       time.Time
	EndAt         time.Time
	ExpiresAt     time.Time
	Confirmation  appointment.Confirmation
}

type BookingCommands interface {
	// Reserve places a pending hold on [start, start+duration+buffer) for the service.
	Reserve(ctx context.Context, in ReserveInput) (*ReserveResult, error)
}

type bookingCommandsImpl struct {
	uow           shared.UnitOfWork
	factory       *appointment.Factory
	loc           *time.Location
	businessPhone string
	logger        *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	factory *appointment.Factory,
	loc *time.Location,
	businessPhone string,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:           uow,
		factory:       factory,
		loc:           loc,
		businessPhone: businessPhone,
		logger:        logger,
	}
}

type reserveFields struct {
	fullName customer.FullName
	phone    customer.Phone
	email    *customer.Email
	notes    appointment.Notes
}

type appointmentRequestedPayload struct {
	AppointmentID    uuid.UUID `json:"appointment_id"`
	ServiceID        uuid.UUID `json:"service_id"`
	ServiceName      string    `json:"service_name"`
	CustomerID       uuid.UUID `json:"customer_id"`
	CustomerName     string    `json:"customer_name"`
	CustomerPhone    string    `json:"customer_phone"`
	StartAt          time.Time `json:"start_at"`
	EndAt            time.Time `json:"end_at"`
	ExpiresAt        time.Time `json:"expires_at"`
	ConfirmationText string    `json:"confirmation_text"`
	WhatsAppLink     string    `json:"whatsapp_link"`
}

func (b *bookingCommandsImpl) Reserve(ctx context.Context, in ReserveInput) (*ReserveResult, error) {
	fields, err := validateShape(in)
	if err != nil {
		return nil, err
	}

	svc, err := b.uow.CommandReads().ServiceByID(ctx, in.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NewNotFoundError("service", in.ServiceID.String())
		}
		return nil, shared.TranslateStorageErr("load service", err)
	}
	if !svc.IsActive() {
		return nil, errs.NewNotFoundError("service", in.ServiceID.String())
	}

	phone, err := customer.NormalizePhone(in.Phone)
	if err != nil {
		return nil, errs.NewValidationError("phone", err.Error())
	}
	fields.phone = phone

	if !in.StartAt.After(b.factory.Clock.Now()) {
		return nil, errs.NewValidationError("start_at", appointment.ErrStartNotInFuture.Error())
	}

	confirmation := appointment.BuildConfirmation(
		fields.fullName.String(), svc.Name(), in.StartAt, b.loc, fields.notes, b.businessPhone,
	)

	var created *appointment.Appointment
	var customerID uuid.UUID
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, customerID = nil, uuid.Nil
		repo := tx.Appointments()

		if err := repo.LockService(ctx, tx.DB(), svc.ID()); err != nil {
			return err
		}

		now := b.factory.Clock.Now()
		if n, err := repo.ExpireStaleHolds(ctx, tx.DB(), svc.ID(), now); err != nil {
			return err
		} else if n > 0 {
			b.logger.InfoContext(ctx, "expired stale holds before reserving", "service_id", svc.ID(), "count", n)
		}

		interval, err := b.factory.IntervalFor(svc, in.StartAt)
		if err != nil {
			return errs.NewValidationError("start_at", err.Error())
		}
		overlaps, err := repo.FindOverlapping(ctx, tx.DB(), svc.ID(), interval)
		if err != nil {
			return err
		}
		if len(overlaps) > 0 {
			return errs.NewConflictError(shared.ErrOverlap)
		}

		cust := customer.NewCustomer(fields.phone, fields.fullName, fields.email)
		customerID, err = tx.Customers().Upsert(ctx, tx.DB(), cust)
		if err != nil {
			return err
		}

		appt, err := b.factory.CreatePending(svc, customerID, in.StartAt, fields.notes)
		if err != nil {
			return translateFactoryErr(svc, err)
		}
		if _, err := repo.Create(ctx, tx.DB(), appt); err != nil {
			return err
		}

		payload, err := json.Marshal(appointmentRequestedPayload{
			AppointmentID:    appt.ID(),
			ServiceID:        svc.ID(),
			ServiceName:      svc.Name(),
			CustomerID:       customerID,
			CustomerName:     fields.fullName.String(),
			CustomerPhone:    fields.phone.String(),
			StartAt:          appt.Interval().Start(),
			EndAt:            appt.Interval().End(),
			ExpiresAt:        *appt.ExpiresAt(),
			ConfirmationText: confirmation.Text,
			WhatsAppLink:     confirmation.WhatsAppLink,
		})
		if err != nil {
			return errs.Wrap(err, "failed to encode appointment.requested payload")
		}
		if err := tx.Outbox().Enqueue(ctx, tx.DB(), shared.OutboxMessage{
			Kind:        shared.KindAppointmentRequested,
			Topic:       shared.TopicAppointments,
			AggregateID: appt.ID(),
			Payload:     payload,
			RunAt:       now,
		}); err != nil {
			return err
		}

		created = appt
		return nil
	})
	if err != nil {
		return nil, shared.TranslateStorageErr("reserve appointment", err)
	}

	b.logger.InfoContext(ctx, "appointment reserved",
		"appointment_id", created.ID(),
		"service_id", svc.ID(),
		"start_at", created.Interval().Start())

	return &ReserveResult{
		AppointmentID: created.ID(),
		ServiceID:     svc.ID(),
		CustomerID:    customerID,
		Status:        created.Status().String(),
		StartAt:       created.Interval().Start(),
		EndAt:         created.Interval().End(),
		ExpiresAt:     *created.ExpiresAt(),
		Confirmation:  confirmation,
	}, nil
}

func validateShape(in ReserveInput) (reserveFields, error) {
	var f reserveFields

	name, err := customer.NewFullName(in.FullName)
	if err != nil {
		return f, errs.NewValidationError("full_name", err.Error())
	}
	f.fullName = name

	if len(in.Phone) == 0 {
		return f, errs.NewValidationError("phone", "is required")
	}

	if in.Email != nil && *in.Email != "" {
		email, err := customer.NewEmail(*in.Email)
		if err != nil {
			return f, errs.NewValidationError("email", err.Error())
		}
		f.email = &email
	}

	if in.Notes != nil {
		notes, err := appointment.NewNotes(*in.Notes)
		if err != nil {
			return f, errs.NewValidationError("notes", err.Error())
		}
		f.notes = notes
	}

	if in.StartAt.IsZero() {
		return f, errs.NewValidationError("start_at", "is required")
	}
	return f, nil
}

func translateFactoryErr(svc *service.Service, err error) error {
	switch {
	case errors.Is(err, service.ErrServiceInactive):
		return errs.NewNotFoundError("service", svc.ID().String())
	case errors.Is(err, appointment.ErrStartNotInFuture):
		return errs.NewValidationError("start_at", err.Error())
	default:
		return errs.NewValidationError("", err.Error())
	}
}
