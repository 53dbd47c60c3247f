package appointment

import "errors"

var (
	ErrInvalidStatus     = errors.New("invalid appointment status")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrInvalidInterval   = errors.New("appointment end must be after start")
	ErrStartNotInFuture  = errors.New("appointment start must be in the future")
	ErrNotesTooLong      = errors.New("notes must be at most 500 characters")
)

const MaxNotesLength = 500

type Status string

const (
	StatusPendingConfirmation Status = "pending_confirmation"
	StatusConfirmed           Status = "confirmed"
	StatusCompleted           Status = "completed"
	StatusCancelled           Status = "cancelled"
	StatusNoShow              Status = "no_show"
)

// ActiveStatuses occupy their interval: no two appointments of one service in these states overlap.
var ActiveStatuses = []Status{StatusPendingConfirmation, StatusConfirmed, StatusCompleted}

var transitions = map[Status][]Status{
	StatusPendingConfirmation: {StatusConfirmed, StatusCancelled},
	StatusConfirmed:           {StatusCompleted, StatusCancelled, StatusNoShow},
}

// ParseStatus accepts the stored names plus "done" for completed.
func ParseStatus(s string) (Status, error) {
	if s == "done" {
		return StatusCompleted, nil
	}
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingConfirmation, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

func (s Status) IsActive() bool {
	switch s {
	case StatusPendingConfirmation, StatusConfirmed, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// StatusStrings converts statuses for storage queries.
func StatusStrings(statuses []Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
