package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service is a bookable salon service. The booking engine only reads it.
type Service struct {
	id                  uuid.UUID
	name                string
	description         string
	durationMinutes     int
	slotIntervalMinutes int
	priceCents          int64
	isActive            bool
	createdAt           time.Time
	updatedAt           time.Time
}

func NewService(name, description string, durationMinutes, slotIntervalMinutes int, priceCents int64) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if slotIntervalMinutes <= 0 {
		return nil, ErrInvalidInterval
	}
	if priceCents < 0 {
		return nil, ErrInvalidPrice
	}
	return &Service{
		id:                  uuid.New(),
		name:                name,
		description:         strings.TrimSpace(description),
		durationMinutes:     durationMinutes,
		slotIntervalMinutes: slotIntervalMinutes,
		priceCents:          priceCents,
		isActive:            true,
	}, nil
}

func ReconstructService(
	id uuid.UUID,
	name, description string,
	durationMinutes, slotIntervalMinutes int,
	priceCents int64,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Service {
	if slotIntervalMinutes <= 0 {
		slotIntervalMinutes = DefaultSlotIntervalMinutes
	}
	return &Service{
		id:                  id,
		name:                name,
		description:         description,
		durationMinutes:     durationMinutes,
		slotIntervalMinutes: slotIntervalMinutes,
		priceCents:          priceCents,
		isActive:            isActive,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

// EnsureBookable rejects services that cannot take new appointments.
func (s *Service) EnsureBookable() error {
	if !s.isActive {
		return ErrServiceInactive
	}
	if s.durationMinutes <= 0 {
		return ErrInvalidDuration
	}
	return nil
}

func (s *Service) Duration() time.Duration {
	return time.Duration(s.durationMinutes) * time.Minute
}

func (s *Service) ID() uuid.UUID            { return s.id }
func (s *Service) Name() string             { return s.name }
func (s *Service) Description() string      { return s.description }
func (s *Service) DurationMinutes() int     { return s.durationMinutes }
func (s *Service) SlotIntervalMinutes() int { return s.slotIntervalMinutes }
func (s *Service) PriceCents() int64        { return s.priceCents }
func (s *Service) IsActive() bool           { return s.isActive }
func (s *Service) CreatedAt() time.Time     { return s.createdAt }
func (s *Service) UpdatedAt() time.Time     { return s.updatedAt }
