package appointment

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Interval is the half-open range [start, end) an appointment blocks, buffer included.
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{start: start, end: end}, nil
}

func (i Interval) Start() time.Time { return i.start }
func (i Interval) End() time.Time   { return i.end }

func (i Interval) Duration() time.Duration {
	return i.end.Sub(i.start)
}

// Overlaps is false for intervals that merely touch.
func (i Interval) Overlaps(other Interval) bool {
	return i.start.Before(other.end) && other.start.Before(i.end)
}

type Notes struct {
	value string
}

func NewNotes(s string) (Notes, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxNotesLength {
		return Notes{}, ErrNotesTooLong
	}
	return Notes{value: s}, nil
}

func (n Notes) String() string {
	return n.value
}

func (n Notes) IsEmpty() bool {
	return n.value == ""
}

// Ptr returns nil for empty notes, matching the nullable column.
func (n Notes) Ptr() *string {
	if n.IsEmpty() {
		return nil
	}
	s := n.value
	return &s
}
