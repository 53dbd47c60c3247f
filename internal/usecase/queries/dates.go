package queries

import (
	"time"

	"github.com/Fabri-com/esteticas/internal/pkg/errs"
)

const DateLayout = "2006-01-02"

// parseDay reads a YYYY-MM-DD calendar date as midnight in loc.
func parseDay(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, errs.NewValidationError("date", "is required")
	}
	d, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, errs.NewValidationError("date", "must be formatted as YYYY-MM-DD")
	}
	return d, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
