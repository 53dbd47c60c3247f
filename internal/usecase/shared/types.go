package shared

import (
	"time"

	"github.com/google/uuid"
)

// Outbox job kinds and their Kafka topics.
const (
	KindAppointmentRequested     = "appointment.requested"
	KindAppointmentStatusChanged = "appointment.status_changed"

	TopicAppointments = "esteticas.appointments"
)

// OverlapSnapshot is an existing appointment that blocks a requested interval.
type OverlapSnapshot struct {
	ID      uuid.UUID
	StartAt time.Time
	EndAt   time.Time
	Status  string
}

type OutboxMessage struct {
	Kind        string
	Topic       string
	AggregateID uuid.UUID
	Payload     []byte
	RunAt       time.Time
}

type OutboxJob struct {
	ID          uuid.UUID
	Kind        string
	Topic       string
	AggregateID uuid.UUID
	Payload     []byte
	Attempts    int
	CreatedAt   time.Time
}
