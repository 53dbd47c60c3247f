package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time expressed as minutes after midnight.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 24 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	m := hour*60 + minute
	if m > minutesPerDay {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: m}, nil
}

// TimeOfDayFromMinutes accepts 0..1440; 1440 represents the end of the day (24:00).
func TimeOfDayFromMinutes(m int) (TimeOfDay, error) {
	if m < 0 || m > minutesPerDay {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: m}, nil
}

// ParseTimeOfDay accepts "HH:MM" and "HH:MM:SS" (seconds are ignored).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return NewTimeOfDay(h, m)
}

func (t TimeOfDay) Minutes() int { return t.minutes }

func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return TimeOfDay{minutes: t.minutes + minutes}
}

func (t TimeOfDay) Before(other TimeOfDay) bool { return t.minutes < other.minutes }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// On places the time of day on the calendar date of d, in d's location.
func (t TimeOfDay) On(d time.Time) time.Time {
	y, mo, day := d.Date()
	return time.Date(y, mo, day, t.minutes/60, t.minutes%60, 0, 0, d.Location())
}

// TimeWindow is a recurring weekly interval [Start, End) during which a service is offered.
type TimeWindow struct {
	weekday time.Weekday
	start   TimeOfDay
	end     TimeOfDay
}

func NewTimeWindow(weekday int, start, end TimeOfDay) (TimeWindow, error) {
	if weekday < 0 || weekday > 6 {
		return TimeWindow{}, ErrInvalidWeekday
	}
	if !start.Before(end) {
		return TimeWindow{}, ErrWindowEndNotAfter
	}
	return TimeWindow{weekday: time.Weekday(weekday), start: start, end: end}, nil
}

// ReconstructTimeWindow rebuilds a stored window without validation. Stored rows may be
// malformed; callers check IsValid before using them.
func ReconstructTimeWindow(weekday int, start, end TimeOfDay) TimeWindow {
	return TimeWindow{weekday: time.Weekday(weekday), start: start, end: end}
}

func (w TimeWindow) Weekday() time.Weekday { return w.weekday }
func (w TimeWindow) Start() TimeOfDay      { return w.start }
func (w TimeWindow) End() TimeOfDay        { return w.end }

func (w TimeWindow) IsValid() bool {
	return w.weekday >= time.Sunday && w.weekday <= time.Saturday && w.start.Before(w.end)
}
