package service

import "errors"

var (
	ErrInvalidName       = errors.New("service name is required")
	ErrInvalidDuration   = errors.New("duration must be greater than zero")
	ErrInvalidInterval   = errors.New("slot interval must be greater than zero")
	ErrInvalidPrice      = errors.New("price cannot be negative")
	ErrInvalidTimeOfDay  = errors.New("invalid time of day")
	ErrInvalidWeekday    = errors.New("weekday must be between 0 (Sunday) and 6 (Saturday)")
	ErrWindowEndNotAfter = errors.New("window end must be after window start")
	ErrServiceInactive   = errors.New("service is not active")
)

// DefaultSlotIntervalMinutes applies when a stored service carries no interval.
const DefaultSlotIntervalMinutes = 60

const minutesPerDay = 24 * 60
