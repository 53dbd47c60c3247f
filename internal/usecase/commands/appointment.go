package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/Fabri-com/esteticas/internal/domain/appointment"
	"github.com/Fabri-com/esteticas/internal/infra"
	"github.com/Fabri-com/esteticas/internal/pkg/clock"
	"github.com/Fabri-com/esteticas/internal/pkg/errs"
	"github.com/Fabri-com/esteticas/internal/usecase/shared"

	"github.com/google/uuid"
)

type StatusChangeResult struct {
	AppointmentID uuid.UUID
	Previous      appointment.Status
	Current       appointment.Status
	Changed       bool
}

type AppointmentCommands interface {
	UpdateStatus(ctx context.Context, id uuid.UUID, newStatus string) (*StatusChangeResult, error)
}

type appointmentCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewAppointmentCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) AppointmentCommands {
	return &appointmentCommandsImpl{
		uow:    uow,
		clock:  clk,
		logger: logger,
	}
}

type statusChangedPayload struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	ChangedAt     time.Time `json:"changed_at"`
}

func (c *appointmentCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus string) (*StatusChangeResult, error) {
	next, err := appointment.ParseStatus(newStatus)
	if err != nil {
		return nil, errs.NewValidationError("status", err.Error())
	}

	var result *StatusChangeResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, err := tx.Appointments().GetForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.NewNotFoundError("appointment", id.String())
			}
			return err
		}

		previous := appt.Status()
		now := c.clock.Now()
		changed, err := appt.TransitionTo(next, now)
		if err != nil {
			if errors.Is(err, appointment.ErrInvalidTransition) {
				return errs.Mark(errs.NewValidationError("status", previous.String()+" -> "+next.String()+": "+err.Error()), appointment.ErrInvalidTransition)
			}
			return errs.NewValidationError("status", err.Error())
		}
		result = &StatusChangeResult{AppointmentID: id, Previous: previous, Current: appt.Status(), Changed: changed}
		if !changed {
			return nil
		}

		if err := tx.Appointments().UpdateStatus(ctx, tx.DB(), appt); err != nil {
			return err
		}

		payload, err := json.Marshal(statusChangedPayload{
			AppointmentID: id,
			From:          previous.String(),
			To:            appt.Status().String(),
			ChangedAt:     now,
		})
		if err != nil {
			return errs.Wrap(err, "failed to encode appointment.status_changed payload")
		}
		return tx.Outbox().Enqueue(ctx, tx.DB(), shared.OutboxMessage{
			Kind:        shared.KindAppointmentStatusChanged,
			Topic:       shared.TopicAppointments,
			AggregateID: id,
			Payload:     payload,
			RunAt:       now,
		})
	})
	if err != nil {
		return nil, shared.TranslateStorageErr("update appointment status", err)
	}

	if result.Changed {
		c.logger.InfoContext(ctx, "appointment status changed",
			"appointment_id", id,
			"from", result.Previous,
			"to", result.Current)
	}
	return result, nil
}
